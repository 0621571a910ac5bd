package main

import (
	"fmt"

	"github.com/fwojciec/pagelens"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	cleaned, err := deps.Cleaner.Clean(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	markdown, err := deps.Converter.Convert(cleaned.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	page := &pagelens.Page{
		URL:     c.URL,
		Title:   cleaned.Title,
		Content: markdown,
	}

	if meta, err := deps.Metadata.ExtractMetadata(html); err == nil {
		if meta.Title != "" {
			page.Title = meta.Title
		}
		page.Description = meta.Description
	}

	if err := deps.Pages.CreatePage(deps.Ctx, page); err != nil {
		if pagelens.ErrorCode(err) == pagelens.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "error: page already saved. Use 'pagelens refresh' to update it.\n")
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		}
		return err
	}

	title := page.Title
	if title == "" {
		title = page.URL
	}
	fmt.Fprintf(deps.Stdout, "Saved %s  %s\n", page.ID, title)
	return nil
}
