package main

import (
	"context"
	"io"
	"strings"

	"github.com/tdanford/bard"
	"github.com/tdanford/bard/archive"
)

// Dependencies holds the services and configuration commands run against.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	ArchiveURL string
	Harvester  *archive.Harvester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	NoCache bool `help:"Bypass the page cache and always fetch."`
	Verbose bool `short:"v" help:"Log every fetch."`

	Plays  PlaysCmd  `cmd:"" help:"List the plays in the archive catalog"`
	Tree   TreeCmd   `cmd:"" help:"Print a play as a nested outline"`
	Cast   CastCmd   `cmd:"" help:"Print a play's cast ordered by speech count"`
	Export ExportCmd `cmd:"" help:"Export a play's structure as JSON"`
	Text   TextCmd   `cmd:"" help:"Print a play's plain reading text"`
}

// PlaysCmd is the "plays" subcommand.
type PlaysCmd struct{}

// TreeCmd is the "tree" subcommand.
type TreeCmd struct {
	Name string `arg:"" help:"Play title, e.g. \"Hamlet\""`
}

// CastCmd is the "cast" subcommand.
type CastCmd struct {
	Name string `arg:"" help:"Play title"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Play title"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	Name string `arg:"" help:"Play title"`
}

// findPlay looks the named play up in the archive catalog,
// case-insensitively. Returns ENOTFOUND if the catalog has no such play.
func findPlay(deps *Dependencies, name string) (*bard.Play, error) {
	plays, err := deps.Harvester.DiscoverPlays(deps.Ctx, deps.ArchiveURL)
	if err != nil {
		return nil, err
	}
	for _, play := range plays {
		if strings.EqualFold(play.Title, strings.TrimSpace(name)) {
			return play, nil
		}
	}
	return nil, bard.Errorf(bard.ENOTFOUND, "play %q not found in the catalog", name)
}
