package main

import (
	"fmt"

	"github.com/tdanford/bard"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	play, err := findPlay(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bard.ErrorMessage(err))
		return err
	}

	text, err := deps.Harvester.PlainText(deps.Ctx, play)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bard.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
