package chatsnap

import "context"

// ExtractionWriter persists an extraction to the working-directory
// layout: one structured record (conversation.json), one human-readable
// transcript (conversation.md), and one file per retained artifact.
// Writes are unconditional UTF-8 overwrites; existing content is never
// read or merged.
type ExtractionWriter interface {
	WriteExtraction(ctx context.Context, ex *Extraction) error

	// WriteHTML stores the full rendered page snapshot
	// (chat_complete.html) for debugging.
	WriteHTML(ctx context.Context, html string) error

	// RemoveHTML deletes the snapshot. A missing snapshot is not an
	// error.
	RemoveHTML() error
}
