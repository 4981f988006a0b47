package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rferraz/newsimport"
	"github.com/rferraz/newsimport/firecrawl"
	"github.com/rferraz/newsimport/importer"
	nslog "github.com/rferraz/newsimport/slog"
	"github.com/rferraz/newsimport/sqlite"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Extractor overrides the Firecrawl client when set, for end-to-end
	// testing without the hosted API.
	Extractor newsimport.Extractor

	// Services for end-to-end testing.
	ArticleService newsimport.ArticleService
	ImportService  newsimport.ImportRecordService
	SourceService  newsimport.SourceService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsimport"),
		kong.Description("Import news articles as editable drafts."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsimport --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSIMPORT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ArticleService = sqlite.NewArticleService(m.DB)
	m.ImportService = sqlite.NewImportRecordService(m.DB)
	m.SourceService = sqlite.NewSourceService(m.DB)
	deps.Articles = m.ArticleService
	deps.Imports = m.ImportService
	deps.Sources = m.SourceService
	deps.Categories = sqlite.NewCategoryService(m.DB)

	// Wire the import pipeline only for commands that scrape.
	if cmd == "import" || (cmd == "sources" && len(args) > 1 && args[1] == "run") {
		extractor := m.Extractor
		if extractor == nil {
			apiKey := cli.Import.APIKey
			if cmd == "sources" {
				apiKey = cli.Sources.Run.APIKey
			}
			if apiKey == "" {
				apiKey = os.Getenv("FIRECRAWL_API_KEY")
			}
			extractor = firecrawl.NewClient(apiKey)
		}
		if cli.Verbose {
			extractor = nslog.NewLoggingExtractor(extractor, logger)
		}

		deps.Importer = &importer.Importer{
			Articles:  m.ArticleService,
			Imports:   m.ImportService,
			Extractor: extractor,
			Logger:    logger,
		}
		deps.Runner = &importer.Runner{
			Sources:  m.SourceService,
			Importer: deps.Importer,
			// One provider call per second; scrape APIs meter aggressively.
			Limiter:     rate.NewLimiter(rate.Limit(1), 1),
			Concurrency: cli.Sources.Run.Concurrency,
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSIMPORT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsimport.db"
	}
	dir := filepath.Join(home, ".newsimport")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsimport.db")
}
