package bard

// ElementKind identifies the markup elements the parser cares about.
type ElementKind string

// Element kinds extracted from archive markup.
const (
	ElementHeader ElementKind = "header" // act and scene headers
	ElementItalic ElementKind = "italic" // stage directions
	ElementAnchor ElementKind = "anchor" // speakers and spoken lines
)

// Element is a markup element of interest, tagged with its position in the
// source document so that elements of different kinds can be merged back
// into document order.
type Element struct {
	Kind  ElementKind
	Text  string // stripped text content, nested inline markup included
	Attrs map[string]string

	Line   int // 1-based source line of the opening tag
	Offset int // 0-based column of the opening tag within its line
}

// Attr returns the named attribute and whether it is present.
func (e Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// Indexer extracts all elements of one kind from raw markup, in document
// order. It is a collaborator interface: the html package provides the
// production implementation.
type Indexer interface {
	FindElements(markup string, kind ElementKind) ([]Element, error)
}
