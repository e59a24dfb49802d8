package chatsnap

import "context"

// ConsolidateOptions controls consolidation behavior.
type ConsolidateOptions struct {
	// KeepArtifacts suppresses post-consolidation removal of the
	// individual artifact files.
	KeepArtifacts bool
}

// ConsolidateStats reports what went into the final document.
type ConsolidateStats struct {
	Messages  int
	Artifacts int
	Bytes     int
}

// Consolidator merges the working-directory layout into a single output
// document: metadata header, table of contents, transcript, and every
// artifact embedded as a fenced code block. Implementations trust the
// filesystem state rather than any in-memory extraction: artifacts are
// discovered by filename convention.
type Consolidator interface {
	Consolidate(ctx context.Context, outputPath string, opts ConsolidateOptions) (*ConsolidateStats, error)
}
