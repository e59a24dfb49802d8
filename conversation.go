package chatsnap

import (
	"time"
	"unicode/utf8"
)

// Role identifies the author of a conversation turn.
type Role string

// The only two roles a turn can have. A node is attributed to the user
// only when it carries a user marker; everything else is the assistant.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MinTurnRunes is the minimum trimmed text length for a message node to
// be retained as a turn. Shorter nodes are DOM noise, not content.
const MinTurnRunes = 10

// Turn represents one message in the conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`

	// Markdown is the turn body converted from the node's HTML,
	// preserving formatting for the transcript. Empty when conversion
	// was not possible; consumers fall back to Text.
	Markdown string `json:"-"`
}

// Body returns the transcript rendering of the turn.
func (t *Turn) Body() string {
	if t.Markdown != "" {
		return t.Markdown
	}
	return t.Text
}

// KeepTurn reports whether trimmed message text is long enough to
// retain. Exactly MinTurnRunes runes is retained.
func KeepTurn(text string) bool {
	return utf8.RuneCountInString(text) >= MinTurnRunes
}

// Extraction holds everything scraped from a single share page, in
// document order. It is produced once per run and immutable afterwards.
type Extraction struct {
	SourceURL   string
	ExtractedAt time.Time
	RunID       string
	Turns       []Turn
	Artifacts   []Artifact
}

// Validate returns an error if the extraction is missing provenance.
func (e *Extraction) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "extraction source URL required")
	}
	return nil
}
