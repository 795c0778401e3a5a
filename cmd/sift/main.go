package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/emezenwere/sift"
	"github.com/emezenwere/sift/analyze"
	"github.com/emezenwere/sift/cache"
	"github.com/emezenwere/sift/goquery"
	sifthttp "github.com/emezenwere/sift/http"
	"github.com/emezenwere/sift/prose"
	siftslog "github.com/emezenwere/sift/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP fetcher when set, for end-to-end testing.
	Fetcher sift.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sift"),
		kong.Description("Best-effort extraction of startup company information from marketing websites."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Scan.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = sifthttp.NewFetcher(
			sifthttp.WithTimeout(cli.Scan.Timeout),
			sifthttp.WithRateLimit(cli.Scan.RPS),
			sifthttp.WithRobots(sifthttp.NewRobots(sifthttp.DefaultUserAgent, cli.Scan.Timeout)),
		)
	}
	cached := cache.NewFetcher(fetcher, cache.DefaultTTL)
	defer cached.Close()

	deps.Analyzer = &analyze.Analyzer{
		Fetcher:     siftslog.NewLoggingFetcher(cached, deps.Logger),
		Parser:      goquery.NewParser(),
		Tagger:      prose.NewTagger(),
		Logger:      deps.Logger,
		Concurrency: cli.Scan.Concurrency,
	}

	return kongCtx.Run(deps)
}
