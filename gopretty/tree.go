// Package gopretty renders plays for the console: a nested outline of the
// entity tree and a tabular cast listing.
package gopretty

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/tdanford/bard"
)

// PlayTree renders the play as a nested outline, one line per entity,
// indented by depth. Each scene lists its opening stage direction (if any)
// and how many times each speaker speaks.
func PlayTree(play *bard.Play) string {
	w := list.NewWriter()
	w.SetStyle(list.StyleConnectedRounded)

	w.AppendItem(play.String())
	w.Indent()
	for _, act := range play.Acts {
		w.AppendItem(act.String())
		w.Indent()
		for _, scene := range act.Scenes {
			appendScene(w, scene)
		}
		w.UnIndent()
	}
	w.UnIndent()

	return w.Render()
}

func appendScene(w list.Writer, scene *bard.Scene) {
	w.AppendItem(scene.String())
	w.Indent()
	for d := range scene.Directions() {
		w.AppendItem(fmt.Sprintf("%q", d.Text))
		break // only the opening direction
	}
	counts := scene.SpeakerCounts()
	speakers := make([]string, 0, len(counts))
	for speaker := range counts {
		speakers = append(speakers, speaker)
	}
	sort.Strings(speakers)
	for _, speaker := range speakers {
		w.AppendItem(fmt.Sprintf("%s speaks %d times", speaker, counts[speaker]))
	}
	w.UnIndent()
}
