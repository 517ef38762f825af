package bard

import (
	"fmt"
	"iter"
	"regexp"
	"sort"
	"strings"
)

// sceneTitleRe matches the roman-numeral scene marker the archive prefixes
// to scene headers, e.g. "SCENE II. A churchyard.".
var sceneTitleRe = regexp.MustCompile(`^SCENE ([IVX]+)\.(.*)`)

// Scene is a division within an Act holding an ordered list of dramatic
// events (stage directions and speeches). Scenes are created via
// Act.AddScene, which assigns the 1-based scene number.
type Scene struct {
	Title   string
	ActNo   int
	SceneNo int
	Events  []DramaticEvent
}

// NewScene creates a Scene. A leading "SCENE <roman-numerals>." marker is
// stripped from the title if present; otherwise the title passes through
// unchanged.
func NewScene(title string, actNo, sceneNo int) *Scene {
	if m := sceneTitleRe.FindStringSubmatch(title); m != nil {
		title = strings.TrimSpace(m[2])
	}
	return &Scene{
		Title:   title,
		ActNo:   actNo,
		SceneNo: sceneNo,
	}
}

func (s *Scene) String() string {
	return fmt.Sprintf("Scene %d: %s", s.SceneNo, s.Title)
}

// AddLine appends a spoken line at the given play line number. If the last
// event is a Speech the line continues it; otherwise a new Speech
// attributed to the "Unknown" speaker is opened carrying the line.
//
// Returns EINVALID if the scene has no events yet: a line before any
// speech or direction means the document did not match the expected
// structure.
func (s *Scene) AddLine(line Line, lineNo int) error {
	if len(s.Events) == 0 {
		return Errorf(EINVALID, "line added to empty scene %d.%d", s.ActNo, s.SceneNo)
	}
	if last, ok := s.Events[len(s.Events)-1].(*Speech); ok {
		last.Lines = append(last.Lines, line)
		return nil
	}
	s.Events = append(s.Events, NewSpeech("Unknown", []Line{line}, s.ActNo, s.SceneNo, lineNo))
	return nil
}

// AddDirection appends a stage direction. If the scene is empty or the last
// event is already a Direction, the direction becomes a new top-level
// event; otherwise it is embedded in the open Speech's line sequence.
func (s *Scene) AddDirection(text string) {
	if len(s.Events) == 0 {
		s.Events = append(s.Events, NewDirection(text))
		return
	}
	switch last := s.Events[len(s.Events)-1].(type) {
	case *Direction:
		s.Events = append(s.Events, NewDirection(text))
	case *Speech:
		last.Lines = append(last.Lines, NewDirection(text))
	}
}

// AddSpeech opens a new Speech with the given speaker and first line.
func (s *Scene) AddSpeech(speaker string, lineNo int, firstLine Line) {
	s.Events = append(s.Events, NewSpeech(speaker, []Line{firstLine}, s.ActNo, s.SceneNo, lineNo))
}

// Speeches yields the scene's speeches in document order.
func (s *Scene) Speeches() iter.Seq[*Speech] {
	return func(yield func(*Speech) bool) {
		for _, event := range s.Events {
			if sp, ok := event.(*Speech); ok {
				if !yield(sp) {
					return
				}
			}
		}
	}
}

// Directions yields every stage direction in the scene in document order:
// top-level directions as well as those embedded within speeches. The
// traversal is recomputed on every call.
func (s *Scene) Directions() iter.Seq[*Direction] {
	return func(yield func(*Direction) bool) {
		for _, event := range s.Events {
			switch event := event.(type) {
			case *Direction:
				if !yield(event) {
					return
				}
			case *Speech:
				for d := range event.Directions() {
					if !yield(d) {
						return
					}
				}
			}
		}
	}
}

// SpeakerCounts returns the number of speeches per speaker in this scene.
func (s *Scene) SpeakerCounts() map[string]int {
	counts := make(map[string]int)
	for speech := range s.Speeches() {
		counts[speech.Speaker]++
	}
	return counts
}

// Act is a top-level structural division of a play, holding an ordered
// list of Scenes. Acts are created via Play.AddAct, which assigns the
// 1-based act number.
type Act struct {
	ActNo  int
	Scenes []*Scene
}

func (a *Act) String() string {
	return fmt.Sprintf("Act %d", a.ActNo)
}

// AddScene appends a new Scene, assigning the next scene number.
func (a *Act) AddScene(title string) *Scene {
	sceneNo := 1
	if n := len(a.Scenes); n > 0 {
		sceneNo = a.Scenes[n-1].SceneNo + 1
	}
	scene := NewScene(title, a.ActNo, sceneNo)
	a.Scenes = append(a.Scenes, scene)
	return scene
}

// SpeakerCounts merges the per-scene speech counts for the whole act.
func (a *Act) SpeakerCounts() map[string]int {
	counts := make(map[string]int)
	for _, scene := range a.Scenes {
		counts = MergeSpeakerCounts(counts, scene.SpeakerCounts())
	}
	return counts
}

// Play is the root of the entity tree: a titled play from the archive and
// its ordered acts. URL is the play's catalog page; the full-text URL is
// resolved lazily (see FullTextURL).
type Play struct {
	Title string
	URL   string
	Acts  []*Act

	fullTextURL string
}

// NewPlay creates an empty Play for the given catalog entry.
func NewPlay(title, url string) *Play {
	return &Play{Title: title, URL: url}
}

func (p *Play) String() string {
	return fmt.Sprintf("%q", p.Title)
}

// AddAct appends a new Act, assigning the next act number.
func (p *Play) AddAct() *Act {
	actNo := 1
	if n := len(p.Acts); n > 0 {
		actNo = p.Acts[n-1].ActNo + 1
	}
	act := &Act{ActNo: actNo}
	p.Acts = append(p.Acts, act)
	return act
}

// FullTextURL returns the resolved "entire play" URL, if known. The zero
// state is unresolved; callers resolve it explicitly (the archive package
// does this by following the catalog page's "Entire play" link) and record
// the result with SetFullTextURL.
func (p *Play) FullTextURL() (string, bool) {
	return p.fullTextURL, p.fullTextURL != ""
}

// SetFullTextURL records the resolved full-text URL.
func (p *Play) SetFullTextURL(url string) {
	p.fullTextURL = url
}

// SpeakerCounts merges the per-act speech counts for the whole play.
func (p *Play) SpeakerCounts() map[string]int {
	counts := make(map[string]int)
	for _, act := range p.Acts {
		counts = MergeSpeakerCounts(counts, act.SpeakerCounts())
	}
	return counts
}

// Cast returns speaker names ordered by descending speech count. Ties
// order by descending name; callers must not rely on the tie order.
func (p *Play) Cast() []string {
	counts := p.SpeakerCounts()
	type entry struct {
		count int
		name  string
	}
	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{count, name})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name > entries[j].name
	})
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// MergeSpeakerCounts combines two speaker-count maps by summing per-speaker
// totals (absent key = 0). The merge is associative and commutative.
func MergeSpeakerCounts(a, b map[string]int) map[string]int {
	merged := make(map[string]int, len(a)+len(b))
	for k, v := range a {
		merged[k] += v
	}
	for k, v := range b {
		merged[k] += v
	}
	return merged
}
