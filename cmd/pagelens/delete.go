package main

import (
	"fmt"

	"github.com/fwojciec/pagelens"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagelens.Errorf(pagelens.EINVALID, "use --force to confirm deletion")
	}

	page, err := deps.Pages.FindPageByID(deps.Ctx, c.ID)
	if err != nil {
		if pagelens.ErrorCode(err) == pagelens.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'pagelens list' to see saved pages.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Pages.DeletePage(deps.Ctx, page.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted page %s (%s)\n", page.ID, page.URL)
	return nil
}
