package main

import (
	"fmt"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/refresh"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.FindPages(deps.Ctx, pagelens.PageFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages saved. Use 'pagelens save <url>' to save one.")
		return nil
	}

	for _, p := range pages {
		title := p.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			p.ID, p.FetchedAt.Format("2006-01-02"), title, refresh.TruncateURL(p.URL, 60))
	}

	return nil
}
