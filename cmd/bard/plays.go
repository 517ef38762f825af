package main

import (
	"fmt"

	"github.com/tdanford/bard"
)

// Run executes the plays command.
func (c *PlaysCmd) Run(deps *Dependencies) error {
	plays, err := deps.Harvester.DiscoverPlays(deps.Ctx, deps.ArchiveURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bard.ErrorMessage(err))
		return err
	}

	if len(plays) == 0 {
		fmt.Fprintln(deps.Stdout, "No plays found in the catalog.")
		return nil
	}

	for _, p := range plays {
		fmt.Fprintf(deps.Stdout, "%-36s %s\n", p.Title, p.URL)
	}

	return nil
}
