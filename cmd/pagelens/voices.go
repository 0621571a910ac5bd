package main

import (
	"fmt"

	"github.com/fwojciec/pagelens"
)

// Run executes the voices command.
func (c *VoicesCmd) Run(deps *Dependencies) error {
	for _, name := range pagelens.VoiceNames() {
		v, err := pagelens.LookupVoice(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%-10s %s\n", v.Name, v.Instructions)
	}
	return nil
}
