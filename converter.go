package pagelens

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from a Cleaner).
	Convert(html string) (string, error)
}

// Renderer converts Markdown to HTML, used when exporting answers.
type Renderer interface {
	Render(markdown string) (string, error)
}
