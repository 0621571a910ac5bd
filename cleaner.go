package pagelens

// CleanResult holds the main content of an HTML page with boilerplate removed.
type CleanResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Cleaner isolates the main content of an HTML page, removing boilerplate.
// It is used when storing bookmark content; the structure Extractor always
// sees the original HTML so region classification stays meaningful.
type Cleaner interface {
	Clean(html string) (*CleanResult, error)
}
