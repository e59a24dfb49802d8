// Package fs persists extractions to the working-directory layout and
// consolidates that layout into a single output document.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/chatsnap"
)

// Working-directory layout. The filenames are a stable contract shared
// between the writer, the consolidator, and anyone inspecting a run by
// hand.
const (
	RecordFile     = "conversation.json"
	TranscriptFile = "conversation.md"
	SnapshotFile   = "chat_complete.html"
)

// Ensure Workdir implements the persistence interfaces at compile time.
var (
	_ chatsnap.ExtractionWriter = (*Workdir)(nil)
	_ chatsnap.Consolidator     = (*Workdir)(nil)
)

// Workdir owns a single run's working directory. There is exactly one
// run per invocation, so no locking is needed.
type Workdir struct {
	dir    string
	logger *slog.Logger
}

// Option configures a Workdir.
type Option func(*Workdir)

// WithLogger sets the logger used for cleanup warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workdir) {
		w.logger = logger
	}
}

// NewWorkdir creates a Workdir rooted at dir. The directory is created
// on first write.
func NewWorkdir(dir string, opts ...Option) *Workdir {
	w := &Workdir{dir: dir, logger: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Dir returns the working directory path.
func (w *Workdir) Dir() string {
	return w.dir
}

// record is the conversation.json schema.
type record struct {
	SourceURL     string          `json:"source_url"`
	ExtractedAt   time.Time       `json:"extracted_at"`
	RunID         string          `json:"run_id,omitempty"`
	Turns         []chatsnap.Turn `json:"turns"`
	ArtifactCount int             `json:"artifact_count"`
	Artifacts     []artifactMeta  `json:"artifacts,omitempty"`
}

// artifactMeta describes a stored artifact for later inspection.
type artifactMeta struct {
	Index    int    `json:"index"`
	Language string `json:"language,omitempty"`
	Ext      string `json:"ext"`
	Chars    int    `json:"chars"`
	Hash     string `json:"hash"`
}

// WriteExtraction writes the structured record, the transcript, and one
// file per artifact. Existing files are overwritten, never merged.
func (w *Workdir) WriteExtraction(ctx context.Context, ex *chatsnap.Extraction) error {
	if err := ex.Validate(); err != nil {
		return err
	}
	if err := w.mkdir(); err != nil {
		return err
	}

	rec := record{
		SourceURL:     ex.SourceURL,
		ExtractedAt:   ex.ExtractedAt,
		RunID:         ex.RunID,
		Turns:         ex.Turns,
		ArtifactCount: len(ex.Artifacts),
	}
	for i := range ex.Artifacts {
		a := &ex.Artifacts[i]
		rec.Artifacts = append(rec.Artifacts, artifactMeta{
			Index:    a.Index,
			Language: a.Language,
			Ext:      a.Ext(),
			Chars:    utf8.RuneCountInString(a.Content),
			Hash:     a.Hash(),
		})
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return chatsnap.Errorf(chatsnap.EINTERNAL, "encoding %s: %v", RecordFile, err)
	}
	if err := w.write(RecordFile, append(data, '\n')); err != nil {
		return err
	}

	if err := w.write(TranscriptFile, []byte(Transcript(ex))); err != nil {
		return err
	}

	for i := range ex.Artifacts {
		a := &ex.Artifacts[i]
		if err := w.write(a.Filename(), []byte(a.Content)); err != nil {
			return err
		}
	}

	return nil
}

// WriteHTML stores the full rendered page snapshot.
func (w *Workdir) WriteHTML(ctx context.Context, html string) error {
	if err := w.mkdir(); err != nil {
		return err
	}
	return w.write(SnapshotFile, []byte(html))
}

// RemoveHTML deletes the snapshot. A missing snapshot is not an error.
func (w *Workdir) RemoveHTML() error {
	err := os.Remove(filepath.Join(w.dir, SnapshotFile))
	if err != nil && !os.IsNotExist(err) {
		return chatsnap.Errorf(chatsnap.EINTERNAL, "removing %s: %v", SnapshotFile, err)
	}
	return nil
}

func (w *Workdir) mkdir() error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return chatsnap.Errorf(chatsnap.EINTERNAL, "creating work dir %s: %v", w.dir, err)
	}
	return nil
}

func (w *Workdir) write(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0644); err != nil {
		return chatsnap.Errorf(chatsnap.EINTERNAL, "writing %s: %v", name, err)
	}
	return nil
}

// Role headings used in the transcript. The consolidator counts
// messages by matching these lines, so both sides share the constants.
const (
	userHeading      = "### User"
	assistantHeading = "### Assistant"
)

func roleHeading(role chatsnap.Role) string {
	if role == chatsnap.RoleUser {
		return userHeading
	}
	return assistantHeading
}

// Transcript renders the human-readable transcript for an extraction:
// a header block, then one role-labeled section per turn in order.
func Transcript(ex *chatsnap.Extraction) string {
	var b strings.Builder

	b.WriteString("# Chat Transcript\n\n")
	b.WriteString("**Source**: " + ex.SourceURL + "\n")
	fmt.Fprintf(&b, "**Messages**: %d\n", len(ex.Turns))
	b.WriteString("**Date**: " + ex.ExtractedAt.Format("2006-01-02 15:04:05") + "\n\n---\n\n")

	for i := range ex.Turns {
		t := &ex.Turns[i]
		b.WriteString(roleHeading(t.Role) + "\n\n")
		b.WriteString(t.Body())
		b.WriteString("\n\n---\n\n")
	}

	return b.String()
}
