package bard

import "sort"

// eventKinds is the fixed set of element kinds that drive the parser.
var eventKinds = []ElementKind{ElementHeader, ElementItalic, ElementAnchor}

// EventStream merges the markup elements of every kind the parser consumes
// into a single sequence sorted ascending by source position (line, then
// offset). The indexer returns each kind separately; the position sort
// reconstructs document order across kinds.
//
// Identical positions are not expected from well-formed archive markup; if
// they occur the stable sort keeps them in kind order (header, italic,
// anchor), an accepted non-determinism of the source format.
func EventStream(idx Indexer, markup string) ([]Element, error) {
	var events []Element
	for _, kind := range eventKinds {
		elements, err := idx.FindElements(markup, kind)
		if err != nil {
			return nil, err
		}
		events = append(events, elements...)
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Line != events[j].Line {
			return events[i].Line < events[j].Line
		}
		return events[i].Offset < events[j].Offset
	})
	return events, nil
}
