package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mwalczyk-dev/postrisk/analyze"
	"github.com/mwalczyk-dev/postrisk/file"
	posthttp "github.com/mwalczyk-dev/postrisk/http"
	"github.com/mwalczyk-dev/postrisk/openai"
	"github.com/mwalczyk-dev/postrisk/rod"
	postslog "github.com/mwalczyk-dev/postrisk/slog"
	"github.com/mwalczyk-dev/postrisk/web"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Browser tier, when one could be launched. Closed on exit.
	Browser *rod.Extractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Browser != nil {
		return m.Browser.Close()
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
		kong.Name("postrisk"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'postrisk --help' to see available commands")
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

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Analysis pipeline. The API key comes from the secrets file first,
	// then the environment.
	apiKey, err := LoadAPIKey()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: set GROQ_API_KEY or add groq_api_key to the secrets file")
		return err
	}
	chat := openai.NewClient(apiKey, clientOptions()...)
	analyzer := analyze.NewAnalyzer(chat)
	deps.Analyzer = postslog.NewLoggingAnalyzer(analyzer, logger)
	deps.Checker = analyzer

	// Extraction pipeline. The browser tier is optional: when Chrome is not
	// available, script-heavy sites degrade to the static tier.
	deps.Files = file.NewExtractor()
	webOpts := []web.Option{}
	if needsBrowser(cmd, cli) {
		if browser, err := rod.NewExtractor(); err != nil {
			logger.Warn("browser tier unavailable, using static extraction", "err", err)
		} else {
			m.Browser = browser
			webOpts = append(webOpts, web.WithBrowser(browser))
		}
	}
	extractor := web.NewExtractor(posthttp.NewFetcher(), webOpts...)
	deps.Web = postslog.NewLoggingWebExtractor(extractor, logger)

	return kongCtx.Run(deps)
}

// clientOptions reads the optional API base URL override.
func clientOptions() []openai.Option {
	if base := os.Getenv("POSTRISK_API_BASE"); base != "" {
		return []openai.Option{openai.WithBaseURL(base)}
	}
	return nil
}

// needsBrowser reports whether the command may hit a script-heavy site and
// therefore benefits from launching the browser tier up front.
func needsBrowser(cmd string, cli *CLI) bool {
	switch cmd {
	case "extract":
		return true
	case "analyze":
		return cli.Analyze.URL != ""
	}
	return false
}
