// Package markdown renders user-submitted Markdown to sanitized HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown to HTML and strips anything the sanitizer
// policy does not allow. One instance is shared across requests.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer builds the shared renderer. The policy is bluemonday's UGC
// policy, which keeps formatting tags and links but drops scripts, event
// handlers and embedded content.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts Markdown source to sanitized HTML.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// SanitizeHTML strips disallowed markup from HTML that arrives already
// rendered, such as admin-entered article bodies.
func (r *Renderer) SanitizeHTML(source string) string {
	return r.policy.Sanitize(source)
}
