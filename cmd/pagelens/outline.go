package main

import (
	"fmt"

	"github.com/fwojciec/pagelens"
)

// Run executes the outline command.
func (c *OutlineCmd) Run(deps *Dependencies) error {
	_, pageURL, err := resolvePage(deps, c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, pageURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	structure, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	overview := pagelens.SerializeStructure(structure)
	if overview == "" {
		fmt.Fprintln(deps.Stderr, "No extractable structure found.")
		return nil
	}

	fmt.Fprint(deps.Stdout, overview)
	return nil
}
