package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/gemini"
	"github.com/fwojciec/pagelens/goldmark"
	"github.com/fwojciec/pagelens/goquery"
	plhtml "github.com/fwojciec/pagelens/html"
	plhttp "github.com/fwojciec/pagelens/http"
	"github.com/fwojciec/pagelens/htmltomarkdown"
	"github.com/fwojciec/pagelens/openai"
	"github.com/fwojciec/pagelens/readability"
	"github.com/fwojciec/pagelens/refresh"
	"github.com/fwojciec/pagelens/rod"
	plslog "github.com/fwojciec/pagelens/slog"
	"github.com/fwojciec/pagelens/sqlite"
	"github.com/fwojciec/pagelens/trafilatura"
	"google.golang.org/genai"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PageService   pagelens.PageService
	AnswerService pagelens.AnswerService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagelens"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagelens --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGELENS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.PageService = sqlite.NewPageService(m.DB)
	m.AnswerService = sqlite.NewAnswerService(m.DB)
	deps.DB = m.DB
	deps.Pages = m.PageService
	deps.Answers = m.AnswerService
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Metadata = goquery.NewMetadataExtractor()
	deps.Extractor = plhtml.NewExtractor()
	deps.Exporter = goldmark.NewExporter(goldmark.NewRenderer())

	// Content cleaning falls back to readability when trafilatura
	// finds nothing usable.
	deps.Cleaner = &fallbackCleaner{
		primary:   trafilatura.NewCleaner(),
		secondary: readability.NewCleaner(),
	}

	// Wire a fetcher for commands that touch the network
	if browser, ok := fetchingCommand(cmd, cli); ok {
		fetcher, err := newFetcher(browser)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start fetcher: %w", err)
		}
		defer fetcher.Close()
		deps.Fetcher = fetcher

		if os.Getenv("PAGELENS_DEBUG") != "" {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			deps.Fetcher = plslog.NewLoggingFetcher(deps.Fetcher, logger)
		}
	}

	if cmd == "ask" {
		asker, err := newAsker(ctx, cli.Ask.Provider, stderr)
		if err != nil {
			return err
		}
		deps.Asker = asker

		if os.Getenv("PAGELENS_DEBUG") != "" {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			deps.Asker = plslog.NewLoggingAsker(deps.Asker, logger)
		}
	}

	if cmd == "refresh" {
		deps.Refresher = &refresh.Refresher{
			Fetcher:     deps.Fetcher,
			Cleaner:     deps.Cleaner,
			Converter:   deps.Converter,
			Metadata:    deps.Metadata,
			Pages:       deps.Pages,
			RateLimiter: refresh.NewDomainLimiter(cli.Refresh.Rate),
			Concurrency: cli.Refresh.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// fetchingCommand reports whether the command needs a fetcher and whether
// the browser fetcher was requested.
func fetchingCommand(cmd string, cli *CLI) (browser, ok bool) {
	switch cmd {
	case "ask":
		return cli.Ask.Browser, true
	case "outline":
		return cli.Outline.Browser, true
	case "save":
		return cli.Save.Browser, true
	case "refresh":
		return cli.Refresh.Browser, true
	case "export":
		return cli.Export.Browser, true
	}
	return false, false
}

func newFetcher(browser bool) (pagelens.Fetcher, error) {
	if browser {
		return rod.NewFetcher()
	}
	return plhttp.NewFetcher(), nil
}

func newAsker(ctx context.Context, provider string, stderr io.Writer) (pagelens.Asker, error) {
	switch provider {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewAsker(client), nil

	default:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Get an API key at https://platform.openai.com/api-keys")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return openai.NewAsker(apiKey)
	}
}

// fallbackCleaner tries a primary cleaner and falls back to a secondary
// when the primary errors or yields no content.
type fallbackCleaner struct {
	primary   pagelens.Cleaner
	secondary pagelens.Cleaner
}

func (c *fallbackCleaner) Clean(html string) (*pagelens.CleanResult, error) {
	res, err := c.primary.Clean(html)
	if err == nil && res.ContentHTML != "" {
		return res, nil
	}
	return c.secondary.Clean(html)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGELENS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagelens.db"
	}
	dir := filepath.Join(home, ".pagelens")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagelens.db")
}
