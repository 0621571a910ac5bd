package pagelens

// PageMetadata holds document-level metadata extracted from an HTML page.
type PageMetadata struct {
	Title       string
	Description string
	Canonical   string
}

// MetadataExtractor extracts document-level metadata from HTML.
type MetadataExtractor interface {
	ExtractMetadata(html string) (*PageMetadata, error)
}
