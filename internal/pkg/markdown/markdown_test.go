package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBasicMarkdown(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("# Title\n\nSome **bold** text with a [link](https://example.com).")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, `href="https://example.com"`)
}

func TestRenderGFMTable(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)

	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestRenderStripsScripts(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("hello <script>alert('xss')</script> world")
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "hello")
}

func TestSanitizeHTML(t *testing.T) {
	r := NewRenderer()

	out := r.SanitizeHTML(`<p onclick="steal()">ok</p><iframe src="https://evil.example"></iframe>`)
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "iframe")
	assert.Contains(t, out, "<p>ok</p>")
}
