package main

import (
	"fmt"

	"github.com/fwojciec/pagelens/refresh"
)

// Run executes the refresh command.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	progress := func(event refresh.ProgressEvent) {
		switch event.Type {
		case refresh.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Refreshing %d pages\n", event.Total)
		case refresh.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", refresh.TruncateURL(event.URL, 60), event.Error)
		}
	}

	result, err := deps.Refresher.RefreshAll(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error refreshing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated %d, unchanged %d, failed %d (%s)\n",
		result.Updated, result.Unchanged, result.Failed, refresh.FormatBytes(result.Bytes))
	return nil
}
