package chatsnap

import (
	"fmt"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// MinArtifactRunes is the minimum content length for a code block to be
// retained as an artifact. Exactly MinArtifactRunes runes is retained.
const MinArtifactRunes = 50

// Artifact represents a block of code embedded in the conversation,
// extracted and stored as a standalone file in the working directory.
type Artifact struct {
	// Index is the 1-based position among retained artifacts. Indices
	// are contiguous regardless of how many raw code blocks were
	// skipped for being too short.
	Index int

	// Content is the verbatim code text, whitespace preserved.
	Content string

	// Language is the hint taken from the code node's class name.
	// Empty means no hint was determinable.
	Language string
}

// langExts maps language hints to file extensions. Hints not listed here
// fall back to "txt".
var langExts = map[string]string{
	"bash":       "sh",
	"c":          "c",
	"c++":        "cpp",
	"cpp":        "cpp",
	"csharp":     "cs",
	"css":        "css",
	"go":         "go",
	"golang":     "go",
	"html":       "html",
	"java":       "java",
	"javascript": "js",
	"json":       "json",
	"kotlin":     "kt",
	"markdown":   "md",
	"perl":       "pl",
	"php":        "php",
	"plaintext":  "txt",
	"python":     "py",
	"r":          "r",
	"ruby":       "rb",
	"rust":       "rs",
	"sh":         "sh",
	"shell":      "sh",
	"sql":        "sql",
	"swift":      "swift",
	"text":       "txt",
	"toml":       "toml",
	"typescript": "ts",
	"xml":        "xml",
	"yaml":       "yaml",
	"yml":        "yaml",
}

// extTags maps stored file extensions back to fenced-code-block tags.
var extTags = map[string]string{
	"c":     "c",
	"cpp":   "cpp",
	"cs":    "csharp",
	"css":   "css",
	"go":    "go",
	"html":  "html",
	"java":  "java",
	"js":    "javascript",
	"json":  "json",
	"kt":    "kotlin",
	"md":    "markdown",
	"php":   "php",
	"pl":    "perl",
	"py":    "python",
	"r":     "r",
	"rb":    "ruby",
	"rs":    "rust",
	"sh":    "bash",
	"sql":   "sql",
	"swift": "swift",
	"toml":  "toml",
	"ts":    "typescript",
	"txt":   "text",
	"xml":   "xml",
	"yaml":  "yaml",
}

// Ext returns the file extension for the artifact's language hint.
// Unknown or missing hints fall back to "txt".
func (a *Artifact) Ext() string {
	if ext, ok := langExts[a.Language]; ok {
		return ext
	}
	return "txt"
}

// Filename returns the working-directory filename for the artifact.
func (a *Artifact) Filename() string {
	return fmt.Sprintf("artifact_code_%d.%s", a.Index, a.Ext())
}

// Hash returns an xxhash digest of the artifact content. Recorded in
// the structured record so runs can be compared without diffing files.
func (a *Artifact) Hash() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(a.Content))
}

// FenceTag returns the fenced-code-block language tag for a stored
// artifact file extension. Extensions without a known tag are used
// verbatim.
func FenceTag(ext string) string {
	if tag, ok := extTags[ext]; ok {
		return tag
	}
	return ext
}

// KeepArtifact reports whether code content is long enough to retain.
func KeepArtifact(content string) bool {
	return utf8.RuneCountInString(content) >= MinArtifactRunes
}
