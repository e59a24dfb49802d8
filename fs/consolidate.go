package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fwojciec/chatsnap"
)

// artifactNameRe matches artifact filenames and captures index and
// extension.
var artifactNameRe = regexp.MustCompile(`^artifact_code_(\d+)\.([A-Za-z0-9_]+)$`)

// artifactFile is one matched artifact file on disk.
type artifactFile struct {
	path  string
	index int
	ext   string
}

// Consolidate merges the transcript and every artifact file present in
// the working directory into a single markdown document at outputPath.
// It reads back filesystem state rather than trusting any in-memory
// extraction. After the document is written the artifact files are
// removed unless opts.KeepArtifacts is set; removal failures are logged
// and never fail the run, since the output already exists.
func (w *Workdir) Consolidate(ctx context.Context, outputPath string, opts chatsnap.ConsolidateOptions) (*chatsnap.ConsolidateStats, error) {
	transcript, err := os.ReadFile(filepath.Join(w.dir, TranscriptFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, chatsnap.Errorf(chatsnap.ENOTFOUND, "%s not found in %s", TranscriptFile, w.dir)
		}
		return nil, chatsnap.Errorf(chatsnap.EINTERNAL, "reading %s: %v", TranscriptFile, err)
	}

	files, err := w.artifactFiles()
	if err != nil {
		return nil, err
	}

	doc, err := buildDocument(string(transcript), w.readRecord(), files)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
		return nil, chatsnap.Errorf(chatsnap.EINTERNAL, "writing %s: %v", outputPath, err)
	}

	if !opts.KeepArtifacts {
		for _, f := range files {
			if err := os.Remove(f.path); err != nil {
				w.logger.Warn("artifact cleanup failed", "file", f.path, "err", err)
			}
		}
	}

	return &chatsnap.ConsolidateStats{
		Messages:  countMessages(string(transcript)),
		Artifacts: len(files),
		Bytes:     len(doc),
	}, nil
}

// artifactFiles returns the artifact files in the working directory,
// ordered by parsed numeric index. Ordering by index rather than by raw
// filename keeps 10 after 9.
func (w *Workdir) artifactFiles() ([]artifactFile, error) {
	matches, err := filepath.Glob(filepath.Join(w.dir, "artifact_code_*"))
	if err != nil {
		return nil, chatsnap.Errorf(chatsnap.EINTERNAL, "globbing artifacts: %v", err)
	}

	var files []artifactFile
	for _, path := range matches {
		m := artifactNameRe.FindStringSubmatch(filepath.Base(path))
		if m == nil {
			continue
		}
		index, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		files = append(files, artifactFile{path: path, index: index, ext: m[2]})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].index < files[j].index })
	return files, nil
}

// readRecord loads conversation.json for header metadata. Best-effort:
// a missing or malformed record degrades the header, it does not fail
// consolidation.
func (w *Workdir) readRecord() *record {
	data, err := os.ReadFile(filepath.Join(w.dir, RecordFile))
	if err != nil {
		return nil
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil
	}
	return &rec
}

func buildDocument(transcript string, rec *record, files []artifactFile) (string, error) {
	var b strings.Builder

	b.WriteString("# Chat Export - Consolidated\n\n")

	source := "Unknown"
	if rec != nil && rec.SourceURL != "" {
		source = rec.SourceURL
	}
	fmt.Fprintf(&b, "**Source**: %s\n", source)
	if rec != nil && !rec.ExtractedAt.IsZero() {
		// Reuse the recorded timestamp so re-consolidating the same
		// directory produces identical output.
		fmt.Fprintf(&b, "**Extracted**: %s\n", rec.ExtractedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(&b, "**Messages**: %d\n", countMessages(transcript))
	fmt.Fprintf(&b, "**Artifacts**: %d\n\n---\n\n", len(files))

	if len(files) > 0 {
		b.WriteString("## Code Artifacts\n\n")
		for _, f := range files {
			fmt.Fprintf(&b, "- [Artifact %d](#artifact-%d)\n", f.index, f.index)
		}
		b.WriteString("\n---\n\n")
	}

	b.WriteString("## Conversation\n\n")
	b.WriteString(transcript)
	if !strings.HasSuffix(transcript, "\n") {
		b.WriteString("\n")
	}

	if len(files) > 0 {
		b.WriteString("\n---\n\n## Code Artifacts - Full Content\n\n")
		for _, f := range files {
			content, err := os.ReadFile(f.path)
			if err != nil {
				return "", chatsnap.Errorf(chatsnap.EINTERNAL, "reading %s: %v", f.path, err)
			}
			fmt.Fprintf(&b, "### Artifact %d\n\n", f.index)
			fmt.Fprintf(&b, "```%s\n", chatsnap.FenceTag(f.ext))
			b.Write(content)
			if len(content) > 0 && content[len(content)-1] != '\n' {
				b.WriteString("\n")
			}
			b.WriteString("```\n\n")
		}
	}

	return b.String(), nil
}

// countMessages counts role headings in the transcript. The message
// count in the final header comes from the transcript itself, not from
// the structured record.
func countMessages(transcript string) int {
	n := 0
	for _, line := range strings.Split(transcript, "\n") {
		if line == userHeading || line == assistantHeading {
			n++
		}
	}
	return n
}
