package mock

import "github.com/tdanford/bard"

var _ bard.Indexer = (*Indexer)(nil)

// Indexer is a mock implementation of bard.Indexer.
type Indexer struct {
	FindElementsFn func(markup string, kind bard.ElementKind) ([]bard.Element, error)
}

func (i *Indexer) FindElements(markup string, kind bard.ElementKind) ([]bard.Element, error) {
	return i.FindElementsFn(markup, kind)
}

// StaticIndexer returns a mock Indexer that serves the given elements,
// filtered by the requested kind. Handy for driving EventStream in tests.
func StaticIndexer(elements ...bard.Element) *Indexer {
	return &Indexer{
		FindElementsFn: func(markup string, kind bard.ElementKind) ([]bard.Element, error) {
			var out []bard.Element
			for _, e := range elements {
				if e.Kind == kind {
					out = append(out, e)
				}
			}
			return out, nil
		},
	}
}
