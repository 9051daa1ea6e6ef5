package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htminl"
	"github.com/fwojciec/htminl/fs"
	"github.com/fwojciec/htminl/goquery"
	"github.com/fwojciec/htminl/html"
	hslog "github.com/fwojciec/htminl/slog"
	"github.com/fwojciec/htminl/sqlite"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorText(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the cache, if one was configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htminl"),
		kong.Description("Fast, safe, in-place HTML minification."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Version {
		fmt.Fprintf(stdout, "htminl %s\n", version)
		return nil
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Jobs:   cli.Jobs,
	}

	minifier := fs.NewMinifier(html.NewParser())
	if cli.Verify {
		minifier.Verifier = goquery.NewVerifier()
	}

	if cli.Cache != "" {
		m.DB = sqlite.NewDB(cli.Cache)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set HTMINL_CACHE or --cache to a writable path")
			return fmt.Errorf("failed to open cache at %q: %w", cli.Cache, err)
		}
		defer m.Close()

		cache, err := sqlite.NewCacheService(ctx, m.DB)
		if err != nil {
			return fmt.Errorf("failed to load cache: %w", err)
		}
		minifier.Cache = hslog.NewLoggingCache(cache, logger)
		deps.Runs = sqlite.NewRunService(m.DB)
	}

	if cli.History {
		cmd := &HistoryCmd{Limit: cli.Limit}
		return cmd.Run(deps)
	}

	deps.Minifier = minifier
	if cli.Verbose {
		deps.Minifier = hslog.NewLoggingMinifier(minifier, logger)
	}

	cmd := &MinifyCmd{
		Paths:    cli.Paths,
		List:     cli.List,
		Progress: cli.Progress,
	}
	return cmd.Run(deps)
}

// errorText returns the message to show for err: the message of an
// application error, or the full error otherwise.
func errorText(err error) string {
	if htminl.ErrorCode(err) == htminl.EINTERNAL {
		return "error: " + err.Error()
	}
	return "error: " + htminl.ErrorMessage(err)
}
