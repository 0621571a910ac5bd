// Package goldmark renders answer Markdown to HTML for export.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/pagelens"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Ensure Renderer implements pagelens.Renderer at compile time.
var _ pagelens.Renderer = (*Renderer)(nil)

// Renderer converts Markdown to HTML using goldmark with GFM extensions.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render transforms Markdown into HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
