package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/pagelens"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	answer, err := deps.Answers.FindAnswerByID(deps.Ctx, c.AnswerID)
	if err != nil {
		if pagelens.ErrorCode(err) == pagelens.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: answer %q not found. Use 'pagelens answers <page>' to see recorded answers.\n", c.AnswerID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		}
		return err
	}

	page, err := deps.Pages.FindPageByID(deps.Ctx, answer.PageID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	// Re-fetch the page to rebuild its structure so scroll links can be
	// rewritten to outline anchors. Best-effort: without a structure the
	// links are left as written.
	var structure *pagelens.PageStructure
	if deps.Fetcher != nil {
		if html, err := deps.Fetcher.Fetch(deps.Ctx, page.URL); err == nil {
			if ps, err := deps.Extractor.Extract(html); err == nil {
				structure = ps
			}
		} else {
			fmt.Fprintf(deps.Stderr, "warning: could not re-fetch page, exporting without outline: %s\n", pagelens.ErrorMessage(err))
		}
	}

	doc, err := deps.Exporter.Export(answer, page, structure)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		fmt.Fprint(deps.Stdout, doc)
		return nil
	}

	if err := os.WriteFile(c.Output, []byte(doc), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported answer to %s\n", c.Output)
	return nil
}
