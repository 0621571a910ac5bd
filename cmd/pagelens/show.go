package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/refresh"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.FindPageByID(deps.Ctx, c.ID)
	if err != nil {
		if pagelens.ErrorCode(err) == pagelens.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'pagelens list' to see saved pages.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		}
		return err
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, page.Content)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "ID:          %s\n", page.ID)
	fmt.Fprintf(deps.Stdout, "URL:         %s\n", page.URL)
	fmt.Fprintf(deps.Stdout, "Title:       %s\n", page.Title)
	if page.Description != "" {
		fmt.Fprintf(deps.Stdout, "Description: %s\n", page.Description)
	}
	fmt.Fprintf(deps.Stdout, "Fetched:     %s\n", page.FetchedAt.Format(time.RFC3339))
	fmt.Fprintf(deps.Stdout, "Content:     %s\n", refresh.FormatBytes(len(page.Content)))
	return nil
}
