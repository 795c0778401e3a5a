package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/emezenwere/sift/analyze"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Analyzer *analyze.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan ScanCmd `cmd:"" default:"withargs" help:"Extract company information from startup websites"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Domains     []string      `arg:"" optional:"" help:"Domains to analyze (e.g. example.com)"`
	File        string        `short:"f" help:"Read domains from a file, one per line (# starts a comment)"`
	JSON        bool          `help:"Emit results as a JSON array instead of a table"`
	Concurrency int           `short:"c" default:"5" help:"Concurrent domain analyses"`
	Timeout     time.Duration `default:"10s" help:"Timeout per fetch attempt"`
	RPS         float64       `name:"rps" default:"1" help:"Max requests per second per host"`
	Verbose     bool          `short:"v" help:"Log fetches and retries to stderr"`
}
