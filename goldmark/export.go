package goldmark

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/fwojciec/pagelens"
)

// exportTemplate wraps a rendered answer in a standalone HTML document.
// The outline section carries block ids so rewritten scroll links have
// in-page targets.
var exportTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { max-width: 48rem; margin: 2rem auto; font-family: system-ui, sans-serif; line-height: 1.5; padding: 0 1rem; }
.question { color: #555; font-style: italic; }
.meta { color: #888; font-size: 0.85rem; }
.outline { border-top: 1px solid #ddd; margin-top: 2rem; padding-top: 1rem; }
.outline p { margin: 0.25rem 0; }
:target { background: #fff3b0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">{{.URL}} &middot; {{.Model}}</p>
<p class="question">{{.Question}}</p>
{{.AnswerHTML}}
{{if .Outline}}<div class="outline">
<h2>Page outline</h2>
{{.Outline}}
</div>{{end}}
</body>
</html>
`))

// Exporter builds standalone HTML documents from recorded answers.
type Exporter struct {
	renderer pagelens.Renderer
}

// NewExporter creates a new Exporter.
func NewExporter(renderer pagelens.Renderer) *Exporter {
	return &Exporter{renderer: renderer}
}

// Export renders the answer as a standalone HTML page. When a page
// structure is supplied, scroll links are rewritten to anchors on an
// embedded copy of the page outline; without one they are left as-is.
func (e *Exporter) Export(answer *pagelens.Answer, page *pagelens.Page, ps *pagelens.PageStructure) (string, error) {
	markdown := answer.Text
	if ps != nil {
		markdown = rewriteScrollLinks(markdown, ps)
	}

	answerHTML, err := e.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering answer: %w", err)
	}

	title := page.Title
	if title == "" {
		title = page.URL
	}

	var outline template.HTML
	if ps != nil {
		outline = buildOutline(ps)
	}

	var sb strings.Builder
	err = exportTemplate.Execute(&sb, struct {
		Title      string
		URL        string
		Model      string
		Question   string
		AnswerHTML template.HTML
		Outline    template.HTML
	}{
		Title:      title,
		URL:        page.URL,
		Model:      answer.Model,
		Question:   answer.Question,
		AnswerHTML: template.HTML(answerHTML),
		Outline:    outline,
	})
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return sb.String(), nil
}

// rewriteScrollLinks replaces resolvable #scroll: targets with anchors to
// outline blocks. Unresolvable phrases keep their original target so the
// reader can still see what the model meant to cite.
func rewriteScrollLinks(markdown string, ps *pagelens.PageStructure) string {
	for _, link := range pagelens.FindScrollLinks(markdown) {
		block := pagelens.ResolveScrollLink(ps, link.Phrase)
		if block == nil {
			continue
		}
		markdown = strings.ReplaceAll(markdown,
			"(#scroll:"+link.Phrase+")",
			"(#"+block.ID+")",
		)
	}
	return markdown
}

// buildOutline renders the page structure as anchored HTML paragraphs.
func buildOutline(ps *pagelens.PageStructure) template.HTML {
	var sb strings.Builder
	for _, b := range ps.Blocks {
		tag := "p"
		if b.Kind == pagelens.KindHeading {
			tag = fmt.Sprintf("h%d", b.Level+1) // shift down one level under the export's own h1/h2
			if b.Level >= 5 {
				tag = "h6"
			}
		}
		fmt.Fprintf(&sb, "<%s id=%q>%s</%s>\n", tag, b.ID, template.HTMLEscapeString(b.Text), tag)
	}
	return template.HTML(sb.String())
}
