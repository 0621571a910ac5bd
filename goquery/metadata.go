// Package goquery extracts document-level metadata from HTML pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
)

// Ensure MetadataExtractor implements pagelens.MetadataExtractor at compile time.
var _ pagelens.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor extracts title, description, and canonical URL from
// page metadata. It prefers explicit metadata (og: tags, link rel) over
// inferred values so the prompt describes the page the way its author did.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata parses the HTML and returns document-level metadata.
// Missing fields are returned empty, not as errors.
func (e *MetadataExtractor) ExtractMetadata(html string) (*pagelens.PageMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "failed to parse HTML: %v", err)
	}

	return &pagelens.PageMetadata{
		Title:       extractTitle(doc),
		Description: extractDescription(doc),
		Canonical:   extractCanonical(doc),
	}, nil
}

// extractTitle prefers og:title, falling back to the title element.
func extractTitle(doc *goquery.Document) string {
	if content := metaContent(doc, "meta[property='og:title']"); content != "" {
		return content
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractDescription prefers og:description, falling back to the
// description meta tag.
func extractDescription(doc *goquery.Document) string {
	if content := metaContent(doc, "meta[property='og:description']"); content != "" {
		return content
	}
	return metaContent(doc, "meta[name='description']")
}

// extractCanonical prefers the canonical link, falling back to og:url.
func extractCanonical(doc *goquery.Document) string {
	if href, exists := doc.Find("link[rel='canonical']").First().Attr("href"); exists {
		if trimmed := strings.TrimSpace(href); trimmed != "" {
			return trimmed
		}
	}
	return metaContent(doc, "meta[property='og:url']")
}

// metaContent returns the trimmed content attribute of the first element
// matching the selector.
func metaContent(doc *goquery.Document, selector string) string {
	content, exists := doc.Find(selector).First().Attr("content")
	if !exists {
		return ""
	}
	return strings.TrimSpace(content)
}
