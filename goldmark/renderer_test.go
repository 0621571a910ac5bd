package goldmark_test

import (
	"testing"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Renderer implements pagelens.Renderer at compile time.
var _ pagelens.Renderer = (*goldmark.Renderer)(nil)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders headings and emphasis", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer()
		out, err := r.Render("# Title\n\nSome *emphasized* text.")

		require.NoError(t, err)
		assert.Contains(t, out, "<h1")
		assert.Contains(t, out, "<em>emphasized</em>")
	})

	t.Run("renders GFM tables", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer()
		out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")

		require.NoError(t, err)
		assert.Contains(t, out, "<table>")
	})

	t.Run("renders links with fragment targets", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer()
		out, err := r.Render("[see intro](#b0)")

		require.NoError(t, err)
		assert.Contains(t, out, `<a href="#b0">see intro</a>`)
	})
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	page := &pagelens.Page{
		ID:    "p1",
		URL:   "https://example.com/docs",
		Title: "Example Docs",
	}

	ps := &pagelens.PageStructure{Blocks: []pagelens.Block{
		{ID: "b0", Kind: pagelens.KindHeading, Level: 1, Text: "Getting Started"},
		{ID: "b1", Kind: pagelens.KindParagraph, Text: "Install the package with your favorite manager."},
	}}

	t.Run("rewrites resolvable scroll links to outline anchors", func(t *testing.T) {
		t.Parallel()

		answer := &pagelens.Answer{
			PageID:   "p1",
			Question: "how do I install?",
			Text:     "See [installation](#scroll:Install the package).",
			Model:    "gpt-5-mini",
		}

		e := goldmark.NewExporter(goldmark.NewRenderer())
		out, err := e.Export(answer, page, ps)

		require.NoError(t, err)
		assert.Contains(t, out, `<a href="#b1">installation</a>`)
		assert.Contains(t, out, `id="b1"`)
		assert.Contains(t, out, "Page outline")
	})

	t.Run("leaves unresolvable scroll links untouched", func(t *testing.T) {
		t.Parallel()

		answer := &pagelens.Answer{
			PageID:   "p1",
			Question: "how do I uninstall?",
			Text:     "See [uninstalling](#scroll:Remove the package).",
			Model:    "gpt-5-mini",
		}

		e := goldmark.NewExporter(goldmark.NewRenderer())
		out, err := e.Export(answer, page, ps)

		require.NoError(t, err)
		assert.Contains(t, out, "#scroll:Remove the package")
	})

	t.Run("exports without outline when structure is missing", func(t *testing.T) {
		t.Parallel()

		answer := &pagelens.Answer{
			PageID:   "p1",
			Question: "what is this?",
			Text:     "A documentation page.",
			Model:    "gpt-5-mini",
		}

		e := goldmark.NewExporter(goldmark.NewRenderer())
		out, err := e.Export(answer, page, nil)

		require.NoError(t, err)
		assert.NotContains(t, out, "Page outline")
		assert.Contains(t, out, "A documentation page.")
	})
}
