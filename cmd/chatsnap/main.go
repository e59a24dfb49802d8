package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/chatsnap"
	"github.com/fwojciec/chatsnap/extract"
	"github.com/fwojciec/chatsnap/fs"
	"github.com/fwojciec/chatsnap/goquery"
	"github.com/fwojciec/chatsnap/htmltomarkdown"
	"github.com/fwojciec/chatsnap/rod"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("chatsnap"),
		kong.Description("Extract a shared conversation into one LLM-friendly document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Soft validation: an unexpected URL gets a warning, not a refusal.
	// The operator may know the link is still valid for this use.
	if !isShareURL(cli.URL) {
		fmt.Fprintf(stderr, "warning: URL does not look like a share link (expected %s...)\n", sharePrefix)
	}

	output := cli.Output
	if output == "" {
		output = defaultOutput(cli.Format)
	}

	renderer, err := rod.NewRenderer(
		rod.WithHeadless(cli.Headless),
		rod.WithNavigationTimeout(cli.Timeout),
	)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer renderer.Close()

	workdir := fs.NewWorkdir(cli.WorkDir, fs.WithLogger(logger))

	runner := &extract.Runner{
		Renderer:     rod.NewLoggingRenderer(renderer, logger),
		Extractor:    goquery.NewExtractor(htmltomarkdown.NewConverter()),
		Confirmer:    &stdinConfirmer{in: stdin, out: stdout},
		Writer:       workdir,
		Consolidator: workdir,
		Logger:       logger,
	}

	fmt.Fprintf(stdout, "Fetching chat from: %s\n", cli.URL)
	fmt.Fprintln(stdout, "If you see a CAPTCHA or verification, please complete it.")

	res, err := runner.Run(ctx, extract.Request{
		URL:           cli.URL,
		OutputPath:    output,
		Format:        extract.Format(cli.Format),
		KeepArtifacts: cli.KeepArtifacts,
		KeepHTML:      cli.KeepHTML,
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", chatsnap.ErrorMessage(err))
		return err
	}

	if extract.Format(cli.Format) == extract.FormatPDF {
		fmt.Fprintf(stdout, "PDF saved: %s\n", res.OutputPath)
	} else {
		fmt.Fprintf(stdout, "Consolidated %d messages and %d artifacts into %s\n",
			res.Messages, res.Artifacts, res.OutputPath)
	}

	return nil
}
