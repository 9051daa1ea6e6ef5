// Package goquery verifies minified markup against its source using
// goquery documents.
package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/htminl"
)

// Ensure Verifier implements htminl.Verifier at compile time.
var _ htminl.Verifier = (*Verifier)(nil)

// Verifier re-parses the original and minified markup and checks that both
// hold the same elements in the same order and the same text once
// whitespace is ignored.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify returns an ESAVE error describing the first difference found.
func (v *Verifier) Verify(before, after []byte) error {
	want, err := goquery.NewDocumentFromReader(bytes.NewReader(before))
	if err != nil {
		return htminl.Errorf(htminl.EPARSE, "unable to parse original markup: %v", err)
	}
	got, err := goquery.NewDocumentFromReader(bytes.NewReader(after))
	if err != nil {
		return htminl.Errorf(htminl.ESAVE, "unable to parse minified markup: %v", err)
	}

	wantNames, gotNames := elementNames(want.Selection), elementNames(got.Selection)
	for i := range min(len(wantNames), len(gotNames)) {
		if wantNames[i] != gotNames[i] {
			return htminl.Errorf(htminl.ESAVE, "element %d changed from <%s> to <%s>", i, wantNames[i], gotNames[i])
		}
	}
	if len(wantNames) != len(gotNames) {
		return htminl.Errorf(htminl.ESAVE, "element count changed from %d to %d", len(wantNames), len(gotNames))
	}

	if !bytes.Equal(stripSpace(want.Text()), stripSpace(got.Text())) {
		return htminl.Errorf(htminl.ESAVE, "text content changed")
	}
	return nil
}

// elementNames lists every element below sel in document order.
func elementNames(sel *goquery.Selection) []string {
	var names []string
	sel.Find("*").Each(func(_ int, s *goquery.Selection) {
		names = append(names, goquery.NodeName(s))
	})
	return names
}

// stripSpace returns s without ASCII whitespace.
func stripSpace(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\f', '\r':
			continue
		}
		out = append(out, s[i])
	}
	return out
}
