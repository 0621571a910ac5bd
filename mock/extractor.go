package mock

import (
	"github.com/fwojciec/pagelens"
)

// Compile-time interface verification.
var (
	_ pagelens.Extractor         = (*Extractor)(nil)
	_ pagelens.Cleaner           = (*Cleaner)(nil)
	_ pagelens.Converter         = (*Converter)(nil)
	_ pagelens.Renderer          = (*Renderer)(nil)
	_ pagelens.MetadataExtractor = (*MetadataExtractor)(nil)
)

// Extractor is a mock implementation of pagelens.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagelens.PageStructure, error)
}

func (e *Extractor) Extract(html string) (*pagelens.PageStructure, error) {
	return e.ExtractFn(html)
}

// Cleaner is a mock implementation of pagelens.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (*pagelens.CleanResult, error)
}

func (c *Cleaner) Clean(html string) (*pagelens.CleanResult, error) {
	return c.CleanFn(html)
}

// Converter is a mock implementation of pagelens.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// Renderer is a mock implementation of pagelens.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}

// MetadataExtractor is a mock implementation of pagelens.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*pagelens.PageMetadata, error)
}

func (m *MetadataExtractor) ExtractMetadata(html string) (*pagelens.PageMetadata, error) {
	return m.ExtractMetadataFn(html)
}
