package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure MetadataExtractor implements pagelens.MetadataExtractor at compile time.
var _ pagelens.MetadataExtractor = (*goquery.MetadataExtractor)(nil)

func TestMetadataExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("extracts title description and canonical", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Example Docs</title>
<meta name="description" content="A page about examples.">
<link rel="canonical" href="https://example.com/docs">
</head>
<body></body>
</html>`

		e := goquery.NewMetadataExtractor()
		md, err := e.ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "Example Docs", md.Title)
		assert.Equal(t, "A page about examples.", md.Description)
		assert.Equal(t, "https://example.com/docs", md.Canonical)
	})

	t.Run("prefers open graph metadata", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<title>Fallback Title</title>
<meta property="og:title" content="OG Title">
<meta name="description" content="fallback description">
<meta property="og:description" content="og description">
<meta property="og:url" content="https://example.com/og">
</head><body></body></html>`

		e := goquery.NewMetadataExtractor()
		md, err := e.ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "OG Title", md.Title)
		assert.Equal(t, "og description", md.Description)
		assert.Equal(t, "https://example.com/og", md.Canonical)
	})

	t.Run("returns empty fields for pages without metadata", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewMetadataExtractor()
		md, err := e.ExtractMetadata("<html><body><p>bare page</p></body></html>")

		require.NoError(t, err)
		assert.Empty(t, md.Title)
		assert.Empty(t, md.Description)
		assert.Empty(t, md.Canonical)
	})

	t.Run("trims whitespace around title", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewMetadataExtractor()
		md, err := e.ExtractMetadata("<html><head><title>\n  Spaced Title  \n</title></head><body></body></html>")

		require.NoError(t, err)
		assert.Equal(t, "Spaced Title", md.Title)
	})
}
