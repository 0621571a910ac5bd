package main

import (
	"fmt"

	"github.com/fwojciec/pagelens"
)

// Run executes the answers command.
func (c *AnswersCmd) Run(deps *Dependencies) error {
	page, _, err := resolvePage(deps, c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}
	if page == nil {
		fmt.Fprintf(deps.Stderr, "error: page %q is not saved. Use 'pagelens save' first.\n", c.Target)
		return pagelens.Errorf(pagelens.ENOTFOUND, "page %q not saved", c.Target)
	}

	answers, err := deps.Answers.FindAnswers(deps.Ctx, pagelens.AnswerFilter{PageID: &page.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if len(answers) == 0 {
		fmt.Fprintln(deps.Stdout, "No answers recorded for this page.")
		return nil
	}

	for _, a := range answers {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  $%.4f\n  %s\n",
			a.ID, a.CreatedAt.Format("2006-01-02 15:04"), a.Model, a.CostUSD, a.Question)
		if c.Full {
			fmt.Fprintf(deps.Stdout, "\n%s\n\n", a.Text)
		}
	}

	return nil
}
