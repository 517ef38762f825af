package main

import (
	"fmt"

	"github.com/tdanford/bard"
	"github.com/tdanford/bard/gopretty"
)

// Run executes the cast command.
func (c *CastCmd) Run(deps *Dependencies) error {
	play, err := findPlay(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bard.ErrorMessage(err))
		return err
	}

	if err := deps.Harvester.HarvestPlay(deps.Ctx, play); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bard.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, gopretty.CastTable(play))
	return nil
}
