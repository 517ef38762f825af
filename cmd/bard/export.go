package main

import (
	"encoding/json"
	"fmt"

	"github.com/tdanford/bard"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	play, err := findPlay(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bard.ErrorMessage(err))
		return err
	}

	if err := deps.Harvester.HarvestPlay(deps.Ctx, play); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bard.ErrorMessage(err))
		return err
	}

	raw, err := json.MarshalIndent(play.Serialize(), "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, string(raw))
	return nil
}
