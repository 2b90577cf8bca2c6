package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/palabras"
	"github.com/fwojciec/palabras/goquery"
	"github.com/fwojciec/palabras/htmltomarkdown"
	palabrashttp "github.com/fwojciec/palabras/http"
	"github.com/fwojciec/palabras/lookup"
	palabrasslog "github.com/fwojciec/palabras/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, ErrLookupFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// ErrLookupFailed is returned by Run when at least one word could not be
// resolved. The reason has already been written to the output.
var ErrLookupFailed = errors.New("lookup failed")

// Main represents the program.
type Main struct {
	// Fetcher overrides the Wiktionary HTTP fetcher. Set before calling Run().
	Fetcher palabras.Fetcher

	// RetryDelays overrides the waits between fetch attempts.
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("palabras"),
		kong.Description("Look up Spanish words on Wiktionary"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no word specified. Run 'palabras --help' for usage")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if cli.Revision < 0 {
		return fmt.Errorf("invalid revision %d", cli.Revision)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var fetcher palabras.Fetcher = m.Fetcher
	if fetcher == nil {
		fetcher = palabrashttp.NewFetcher(palabrashttp.WithTimeout(cli.Timeout))
	}
	extractor := goquery.NewExtractor()

	svc := lookup.NewService(
		palabrasslog.NewLoggingFetcher(fetcher, logger),
		palabrasslog.NewLoggingExtractor(extractor, logger),
	)
	svc.Language = cli.Language
	svc.Renderer = extractor
	svc.Converter = htmltomarkdown.NewConverter("")
	svc.RetryDelays = m.RetryDelays
	svc.Logf = func(format string, a ...any) {
		logger.Debug(fmt.Sprintf(format, a...))
	}

	deps.Words = palabrasslog.NewLoggingWordService(svc, logger)
	deps.Sections = svc

	cmd := &LookupCmd{
		Words:       cli.Words,
		Revision:    cli.Revision,
		Full:        cli.Full,
		JSON:        cli.JSON,
		Raw:         cli.Raw,
		Concurrency: cli.Concurrency,
	}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Revision    int           `short:"r" placeholder:"<n>" help:"Wiktionary revision ID (from permalink)"`
	Full        bool          `short:"f" help:"Show part-of-speech headings and headword lines"`
	JSON        bool          `name:"json" help:"Print results as JSON"`
	Raw         bool          `help:"Print the language section as Markdown"`
	Language    string        `short:"l" default:"Spanish" env:"PALABRAS_LANGUAGE" help:"Language section to read"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Concurrency int           `short:"j" default:"4" help:"Concurrent lookup limit"`
	Verbose     bool          `short:"v" help:"Log fetches and skipped sections to stderr"`
	Words       []string      `arg:"" name:"word" help:"Words to look up"`
}
