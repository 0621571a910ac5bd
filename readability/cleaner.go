// Package readability isolates main page content using go-readability.
// It is faster than the trafilatura-based cleaner but less thorough on
// unusual layouts.
package readability

import (
	"strings"

	"github.com/fwojciec/pagelens"
	"github.com/go-shiori/go-readability"
)

// Ensure Cleaner implements pagelens.Cleaner at compile time.
var _ pagelens.Cleaner = (*Cleaner)(nil)

// Cleaner wraps go-readability to strip boilerplate from HTML pages.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean processes raw HTML and returns the main content.
func (c *Cleaner) Clean(rawHTML string) (*pagelens.CleanResult, error) {
	if rawHTML == "" {
		return nil, pagelens.Errorf(pagelens.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pagelens.CleanResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
