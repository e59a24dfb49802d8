// Package extract orchestrates the extraction pipeline: render the
// share page, wait for the operator, scrape turns and artifacts, stage
// them in the working directory, and consolidate the result. Every
// stage is synchronous; there is no concurrency within a run.
package extract

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/fwojciec/chatsnap"
	"github.com/google/uuid"
)

// Format selects the terminal pipeline branch.
type Format string

// Supported output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

// ConfirmPrompt is shown while waiting for the operator. The wait is
// unbounded: if the page presents a verification challenge, extraction
// cannot proceed until a human has dealt with it.
const ConfirmPrompt = "Press Enter once the chat content is fully loaded..."

// Request describes a single extraction run.
type Request struct {
	URL           string
	OutputPath    string
	Format        Format
	KeepArtifacts bool
	KeepHTML      bool
}

// Result summarizes a completed run.
type Result struct {
	OutputPath string
	Messages   int
	Artifacts  int
}

// Runner wires the pipeline stages together. All fields except Logger
// and Now are required.
type Runner struct {
	Renderer     chatsnap.Renderer
	Extractor    chatsnap.Extractor
	Confirmer    chatsnap.Confirmer
	Writer       chatsnap.ExtractionWriter
	Consolidator chatsnap.Consolidator
	Logger       *slog.Logger

	// Now supplies the extraction timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Run executes one extraction. The rendered page is closed on every
// exit path; the Renderer itself is owned by the caller. PDF runs
// bypass staging and consolidation entirely.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dom, err := r.Renderer.Render(ctx, req.URL)
	if err != nil {
		return nil, chatsnap.Errorf(chatsnap.EUNAVAILABLE, "rendering %s: %v", req.URL, err)
	}
	defer dom.Close()

	if err := r.Confirmer.Confirm(ctx, ConfirmPrompt); err != nil {
		return nil, err
	}

	if req.Format == FormatPDF {
		return r.runPDF(ctx, dom, req)
	}
	return r.runMarkdown(ctx, dom, req, logger)
}

func (r *Runner) runPDF(ctx context.Context, dom chatsnap.DOM, req Request) (*Result, error) {
	data, err := dom.PDF(ctx)
	if err != nil {
		return nil, chatsnap.Errorf(chatsnap.EUNAVAILABLE, "rendering PDF: %v", err)
	}
	if err := os.WriteFile(req.OutputPath, data, 0644); err != nil {
		return nil, chatsnap.Errorf(chatsnap.EINTERNAL, "writing %s: %v", req.OutputPath, err)
	}
	return &Result{OutputPath: req.OutputPath}, nil
}

func (r *Runner) runMarkdown(ctx context.Context, dom chatsnap.DOM, req Request, logger *slog.Logger) (*Result, error) {
	html, err := dom.HTML(ctx)
	if err != nil {
		return nil, chatsnap.Errorf(chatsnap.EUNAVAILABLE, "reading rendered page: %v", err)
	}

	if err := r.Writer.WriteHTML(ctx, html); err != nil {
		return nil, err
	}

	turns, artifacts, err := r.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	logger.Info("extracted", "messages", len(turns), "artifacts", len(artifacts))

	ex := &chatsnap.Extraction{
		SourceURL:   req.URL,
		ExtractedAt: r.timestamp(),
		RunID:       uuid.NewString(),
		Turns:       turns,
		Artifacts:   artifacts,
	}
	if err := r.Writer.WriteExtraction(ctx, ex); err != nil {
		return nil, err
	}

	stats, err := r.Consolidator.Consolidate(ctx, req.OutputPath, chatsnap.ConsolidateOptions{
		KeepArtifacts: req.KeepArtifacts,
	})
	if err != nil {
		return nil, err
	}

	if !req.KeepHTML {
		// Best-effort: the output file already exists, so a failed
		// snapshot removal must not undo the run.
		if err := r.Writer.RemoveHTML(); err != nil {
			logger.Warn("snapshot cleanup failed", "err", err)
		}
	}

	return &Result{
		OutputPath: req.OutputPath,
		Messages:   stats.Messages,
		Artifacts:  stats.Artifacts,
	}, nil
}

func (r *Runner) timestamp() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
