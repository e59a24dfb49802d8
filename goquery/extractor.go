// Package goquery implements share-page extraction using CSS selectors
// over the rendered HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/chatsnap"
)

// Selectors matching the share page's rendered markup. If the page's
// markup drifts these stop matching and extraction degrades to empty
// results rather than failing.
const (
	messageSelector = "[data-test-render-count]"
	userClassMarker = "user"
	userDescendant  = ".font-user-message"
	codeSelector    = "pre code"
	languagePrefix  = "language-"
)

// Ensure Extractor implements chatsnap.Extractor at compile time.
var _ chatsnap.Extractor = (*Extractor)(nil)

// Extractor scrapes turns and artifacts from rendered share-page HTML.
type Extractor struct {
	converter chatsnap.Converter
}

// NewExtractor creates an Extractor. The converter renders each turn's
// HTML to markdown for the transcript; pass nil to use plain text only.
func NewExtractor(converter chatsnap.Converter) *Extractor {
	return &Extractor{converter: converter}
}

// Extract returns retained turns and artifacts in document order.
func (e *Extractor) Extract(html string) ([]chatsnap.Turn, []chatsnap.Artifact, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, chatsnap.Errorf(chatsnap.EINVALID, "failed to parse HTML: %v", err)
	}

	return e.turns(doc), artifacts(doc), nil
}

func (e *Extractor) turns(doc *goquery.Document) []chatsnap.Turn {
	var turns []chatsnap.Turn

	doc.Find(messageSelector).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if !chatsnap.KeepTurn(text) {
			return
		}

		turn := chatsnap.Turn{Role: role(sel), Text: text}
		if e.converter != nil {
			if inner, err := sel.Html(); err == nil {
				if md, err := e.converter.Convert(inner); err == nil {
					turn.Markdown = strings.TrimSpace(md)
				}
			}
		}

		turns = append(turns, turn)
	})

	return turns
}

// role classifies a message node. Two independent user markers are
// checked; either is sufficient. Absence of both means assistant.
func role(sel *goquery.Selection) chatsnap.Role {
	class, _ := sel.Attr("class")
	if strings.Contains(class, userClassMarker) || sel.Find(userDescendant).Length() > 0 {
		return chatsnap.RoleUser
	}
	return chatsnap.RoleAssistant
}

func artifacts(doc *goquery.Document) []chatsnap.Artifact {
	var out []chatsnap.Artifact

	doc.Find(codeSelector).Each(func(_ int, sel *goquery.Selection) {
		content := sel.Text()
		if !chatsnap.KeepArtifact(content) {
			return
		}

		// Index by position among retained blocks, not raw blocks.
		out = append(out, chatsnap.Artifact{
			Index:    len(out) + 1,
			Content:  content,
			Language: language(sel),
		})
	})

	return out
}

// language pulls the hint from a language-prefixed class token on the
// code node. Returns empty when no hint is determinable.
func language(sel *goquery.Selection) string {
	class, _ := sel.Attr("class")
	for _, token := range strings.Fields(class) {
		if strings.HasPrefix(token, languagePrefix) {
			return strings.TrimPrefix(token, languagePrefix)
		}
	}
	return ""
}
