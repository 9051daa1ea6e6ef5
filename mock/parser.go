package mock

import (
	"io"

	"github.com/fwojciec/htminl"
)

var _ htminl.Parser = (*Parser)(nil)

// Parser is a mock implementation of htminl.Parser.
type Parser struct {
	ParseFn func(r io.Reader, sink htminl.Sink) error
}

func (p *Parser) Parse(r io.Reader, sink htminl.Sink) error {
	return p.ParseFn(r, sink)
}
