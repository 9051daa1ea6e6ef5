package main

import (
	"context"
	"io"

	"github.com/fwojciec/htminl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Minifier htminl.Minifier
	Runs     htminl.RunService
	Jobs     int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Paths    []string `arg:"" optional:"" help:"HTML files or directories to minify in place"`
	List     string   `short:"l" type:"path" help:"Read (absolute) file and/or directory paths from this text file, one entry per line"`
	Progress bool     `short:"p" help:"Show progress and a summary when done"`
	Jobs     int      `short:"j" env:"HTMINL_JOBS" help:"Number of documents to process at once (default: one per CPU)"`
	Cache    string   `type:"path" env:"HTMINL_CACHE" help:"SQLite database remembering already-minified documents"`
	History  bool     `help:"Show recent runs recorded in the cache database and exit"`
	Limit    int      `default:"10" help:"Number of runs shown by --history"`
	Verify   bool     `help:"Re-parse each result and refuse to save it if its elements or text changed"`
	Verbose  bool     `short:"v" help:"Log every document to stderr"`
	Version  bool     `short:"V" help:"Print version information and exit"`
}

// MinifyCmd minifies every document found under Paths and List.
type MinifyCmd struct {
	Paths    []string
	List     string
	Progress bool
}

// HistoryCmd prints recent runs.
type HistoryCmd struct {
	Limit int
}
