package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/tdanford/bard"
	"github.com/tdanford/bard/archive"
	"github.com/tdanford/bard/html"
	bardhttp "github.com/tdanford/bard/http"
	bardslog "github.com/tdanford/bard/slog"
	"github.com/tdanford/bard/sqlite"
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
	// Config file path. Set before calling Run().
	ConfigPath string

	// SQLite database backing the page cache.
	DB *sqlite.DB

	// Harvester used by all commands. Left nil, Run() wires the
	// production stack; tests inject a mock-backed one.
	Harvester *archive.Harvester

	// ArchiveURL overrides the configured archive index. Used by tests.
	ArchiveURL string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: DefaultConfigPath(),
	}
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
	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config %q: %w", m.ConfigPath, err)
	}
	if m.ArchiveURL == "" {
		m.ArchiveURL = cfg.ArchiveURL
	}

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		ArchiveURL: m.ArchiveURL,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bard"),
		kong.Description("Scrape and explore a public archive of Shakespeare's plays."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bard --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Harvester == nil {
		level := slog.LevelWarn
		if cli.Verbose {
			level = slog.LevelInfo
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		var fetcher bard.Fetcher = bardslog.NewLoggingFetcher(bardhttp.NewFetcher(), logger)
		if !cli.NoCache {
			_ = os.MkdirAll(filepath.Dir(cfg.CachePath), 0755)
			m.DB = sqlite.NewDB(cfg.CachePath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set %s to use a different cache path\n", EnvCachePath)
				return fmt.Errorf("failed to open page cache at %q: %w", cfg.CachePath, err)
			}
			fetcher = &bard.CachingFetcher{
				Next:  fetcher,
				Cache: sqlite.NewPageService(m.DB),
			}
		}
		defer m.Close()

		m.Harvester = &archive.Harvester{
			Fetcher:     fetcher,
			Indexer:     html.NewIndexer(),
			Limiter:     archive.NewLimiter(cfg.RequestsPerSecond),
			Concurrency: cfg.Concurrency,
		}
	}
	deps.Harvester = m.Harvester

	return kongCtx.Run(deps)
}
