package main

import (
	"strings"
	"time"
)

// sharePrefix is the expected form of a share URL. Deviations produce a
// warning only.
const sharePrefix = "https://claude.ai/share/"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output        string        `short:"o" help:"Output file path (default: consolidated_chat.md for markdown, chat.pdf for PDF)"`
	Format        string        `short:"f" enum:"markdown,pdf" default:"markdown" help:"Output format"`
	WorkDir       string        `short:"w" default:"consolidated_chat" help:"Working directory for intermediate files"`
	KeepArtifacts bool          `help:"Keep individual artifact files after consolidation"`
	KeepHTML      bool          `name:"keep-html" help:"Keep the rendered HTML snapshot"`
	Headless      bool          `help:"Run the browser without a window (no way to solve a verification challenge)"`
	Timeout       time.Duration `short:"t" default:"60s" help:"Navigation timeout"`
	Verbose       bool          `short:"v" help:"Enable debug logging"`
	URL           string        `arg:"" required:"" help:"Share URL to extract"`
}

// isShareURL reports whether the URL looks like a share link.
func isShareURL(url string) bool {
	return strings.HasPrefix(url, sharePrefix)
}

// defaultOutput returns the output path for a format when none was
// given.
func defaultOutput(format string) string {
	if format == "pdf" {
		return "chat.pdf"
	}
	return "consolidated_chat.md"
}
