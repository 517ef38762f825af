package gopretty

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tdanford/bard"
)

// CastTable renders the play's cast as a table, ordered by descending
// speech count.
func CastTable(play *bard.Play) string {
	counts := play.SpeakerCounts()

	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"Speaker", "Speeches"})
	for _, speaker := range play.Cast() {
		w.AppendRow(table.Row{speaker, counts[speaker]})
	}

	return w.Render()
}
