package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/chatsnap"
	"github.com/fwojciec/chatsnap/goquery"
	"github.com/fwojciec/chatsnap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements chatsnap.Extractor.
var _ chatsnap.Extractor = (*goquery.Extractor)(nil)

func page(body string) string {
	return "<html><head></head><body>" + body + "</body></html>"
}

func message(class, text string) string {
	return fmt.Sprintf(`<div data-test-render-count="1" class=%q>%s</div>`, class, text)
}

func TestExtractor_Turns_RoleClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node string
		want chatsnap.Role
	}{
		{
			name: "user marker in class attribute",
			node: message("group user-turn", "hello from the human side"),
			want: chatsnap.RoleUser,
		},
		{
			name: "user marker on descendant",
			node: `<div data-test-render-count="1"><div class="font-user-message">hello from the human side</div></div>`,
			want: chatsnap.RoleUser,
		},
		{
			name: "both markers still user",
			node: `<div data-test-render-count="1" class="user"><div class="font-user-message">hello from the human side</div></div>`,
			want: chatsnap.RoleUser,
		},
		{
			name: "no marker defaults to assistant",
			node: message("group", "hello from the model side"),
			want: chatsnap.RoleAssistant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := goquery.NewExtractor(nil)
			turns, _, err := e.Extract(page(tt.node))

			require.NoError(t, err)
			require.Len(t, turns, 1)
			assert.Equal(t, tt.want, turns[0].Role)
		})
	}
}

func TestExtractor_Turns_LengthThreshold(t *testing.T) {
	t.Parallel()

	nine := strings.Repeat("a", 9)
	ten := strings.Repeat("a", 10)
	html := page(message("group", nine) + message("group", ten))

	e := goquery.NewExtractor(nil)
	turns, _, err := e.Extract(html)

	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, ten, turns[0].Text)
}

func TestExtractor_Turns_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	html := page(message("group", "\n   this message has padding   \n"))

	e := goquery.NewExtractor(nil)
	turns, _, err := e.Extract(html)

	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "this message has padding", turns[0].Text)
}

func TestExtractor_Turns_DocumentOrder(t *testing.T) {
	t.Parallel()

	html := page(
		message("user", "first message from the user") +
			message("group", "second message from the assistant") +
			message("user", "third message from the user"),
	)

	e := goquery.NewExtractor(nil)
	turns, _, err := e.Extract(html)

	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, chatsnap.RoleUser, turns[0].Role)
	assert.Equal(t, chatsnap.RoleAssistant, turns[1].Role)
	assert.Equal(t, chatsnap.RoleUser, turns[2].Role)
	assert.Contains(t, turns[0].Text, "first")
	assert.Contains(t, turns[2].Text, "third")
}

func TestExtractor_Turns_MarkdownConversion(t *testing.T) {
	t.Parallel()

	t.Run("converter output used for transcript body", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "**converted body**\n", nil
			},
		}

		e := goquery.NewExtractor(conv)
		turns, _, err := e.Extract(page(message("group", "a perfectly long message")))

		require.NoError(t, err)
		require.Len(t, turns, 1)
		assert.Equal(t, "**converted body**", turns[0].Markdown)
		assert.Equal(t, "**converted body**", turns[0].Body())
	})

	t.Run("converter failure falls back to plain text", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", chatsnap.Errorf(chatsnap.EINVALID, "empty HTML input")
			},
		}

		e := goquery.NewExtractor(conv)
		turns, _, err := e.Extract(page(message("group", "a perfectly long message")))

		require.NoError(t, err)
		require.Len(t, turns, 1)
		assert.Empty(t, turns[0].Markdown)
		assert.Equal(t, "a perfectly long message", turns[0].Body())
	})
}

func TestExtractor_Artifacts_LengthThreshold(t *testing.T) {
	t.Parallel()

	// A 49-char block alongside a 50-char block: only the 50-char one
	// is retained, with index 1.
	short := strings.Repeat("x", 49)
	long := strings.Repeat("y", 50)
	html := page(fmt.Sprintf(`<pre><code>%s</code></pre><pre><code>%s</code></pre>`, short, long))

	e := goquery.NewExtractor(nil)
	_, artifacts, err := e.Extract(html)

	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, 1, artifacts[0].Index)
	assert.Equal(t, long, artifacts[0].Content)
}

func TestExtractor_Artifacts_ContiguousIndices(t *testing.T) {
	t.Parallel()

	keep := strings.Repeat("k", 60)
	skip := "too short"
	html := page(fmt.Sprintf(
		`<pre><code>%s</code></pre><pre><code>%s</code></pre><pre><code>%s</code></pre><pre><code>%s</code></pre>`,
		keep, skip, keep, skip,
	) + fmt.Sprintf(`<pre><code>%s</code></pre>`, keep))

	e := goquery.NewExtractor(nil)
	_, artifacts, err := e.Extract(html)

	require.NoError(t, err)
	require.Len(t, artifacts, 3)
	for i, a := range artifacts {
		assert.Equal(t, i+1, a.Index)
	}
}

func TestExtractor_Artifacts_LanguageHint(t *testing.T) {
	t.Parallel()

	code := strings.Repeat("print('hi')\n", 6)
	html := page(
		fmt.Sprintf(`<pre><code class="language-python">%s</code></pre>`, code) +
			fmt.Sprintf(`<pre><code>%s</code></pre>`, code),
	)

	e := goquery.NewExtractor(nil)
	_, artifacts, err := e.Extract(html)

	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, "python", artifacts[0].Language)
	assert.Equal(t, "py", artifacts[0].Ext())
	assert.Empty(t, artifacts[1].Language)
	assert.Equal(t, "txt", artifacts[1].Ext())
}

func TestExtractor_Artifacts_PreservesWhitespace(t *testing.T) {
	t.Parallel()

	code := "def main():\n    print('indented')\n    return 0\n\n\nmain()\n"
	html := page(fmt.Sprintf(`<pre><code class="language-python">%s</code></pre>`, code))

	e := goquery.NewExtractor(nil)
	_, artifacts, err := e.Extract(html)

	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, code, artifacts[0].Content)
}

func TestExtractor_EmptyPage(t *testing.T) {
	t.Parallel()

	// Zero qualifying nodes is degradation, not an error.
	e := goquery.NewExtractor(nil)
	turns, artifacts, err := e.Extract(page("<p>nothing to see here</p>"))

	require.NoError(t, err)
	assert.Empty(t, turns)
	assert.Empty(t, artifacts)
}

func TestExtractor_SharePageScenario(t *testing.T) {
	t.Parallel()

	// Two user turns, one assistant turn, one python artifact.
	code := strings.Repeat("print('artifact content')\n", 3)
	html := page(
		message("user", "please write me a python script") +
			message("group", "here is the script you asked for") +
			fmt.Sprintf(`<pre><code class="language-python">%s</code></pre>`, code) +
			message("user", "thanks, that works perfectly"),
	)

	e := goquery.NewExtractor(nil)
	turns, artifacts, err := e.Extract(html)

	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, chatsnap.RoleUser, turns[0].Role)
	assert.Equal(t, chatsnap.RoleAssistant, turns[1].Role)
	assert.Equal(t, chatsnap.RoleUser, turns[2].Role)

	require.Len(t, artifacts, 1)
	assert.Equal(t, 1, artifacts[0].Index)
	assert.Equal(t, "artifact_code_1.py", artifacts[0].Filename())
}
