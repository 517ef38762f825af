// Package html provides a position-aware implementation of bard.Indexer on
// top of golang.org/x/net/html's tokenizer. The archive's markup predates
// strict HTML, so elements are extracted from the token stream directly
// rather than from a parsed tree: this keeps exact source positions, which
// the event stream builder needs to restore document order across kinds.
package html

import (
	"io"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/tdanford/bard"
)

// Ensure Indexer implements bard.Indexer at compile time.
var _ bard.Indexer = (*Indexer)(nil)

// kindTags maps element kinds to the archive's tag names.
var kindTags = map[bard.ElementKind]string{
	bard.ElementHeader: "h3",
	bard.ElementItalic: "i",
	bard.ElementAnchor: "a",
}

// Indexer extracts positioned elements from raw markup.
type Indexer struct{}

// NewIndexer creates a new Indexer.
func NewIndexer() *Indexer {
	return &Indexer{}
}

// FindElements returns all elements of the given kind in document order,
// each tagged with the 1-based line and 0-based column of its opening tag.
// Element text is the trimmed concatenation of all text inside the
// element, nested inline tags included.
func (ix *Indexer) FindElements(markup string, kind bard.ElementKind) ([]bard.Element, error) {
	tag, ok := kindTags[kind]
	if !ok {
		return nil, bard.Errorf(bard.EINVALID, "unknown element kind %q", kind)
	}

	z := xhtml.NewTokenizer(strings.NewReader(markup))

	var (
		elements []bard.Element
		open     *bard.Element
		text     strings.Builder
		depth    int
	)
	pos := position{line: 1}

	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, bard.Errorf(bard.EINVALID, "tokenize markup: %v", err)
			}
			break
		}

		tokenPos := pos
		pos = pos.advance(z.Raw())

		switch tt {
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != tag {
				continue
			}
			if open != nil {
				// Same tag nested inside an open element; the archive
				// does not produce this, but keep the depth balanced.
				if tt == xhtml.StartTagToken {
					depth++
				}
				continue
			}
			attrs := make(map[string]string)
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = z.TagAttr()
				attrs[string(k)] = string(v)
			}
			el := bard.Element{
				Kind:   kind,
				Attrs:  attrs,
				Line:   tokenPos.line,
				Offset: tokenPos.col,
			}
			if tt == xhtml.SelfClosingTagToken {
				elements = append(elements, el)
				continue
			}
			open = &el
			text.Reset()
			depth = 1

		case xhtml.EndTagToken:
			name, _ := z.TagName()
			if open == nil || string(name) != tag {
				continue
			}
			depth--
			if depth == 0 {
				open.Text = strings.TrimSpace(text.String())
				elements = append(elements, *open)
				open = nil
			}

		case xhtml.TextToken:
			if open != nil {
				text.Write(z.Text())
			}
		}
	}

	// An element left open at EOF (missing close tag) still counts.
	if open != nil {
		open.Text = strings.TrimSpace(text.String())
		elements = append(elements, *open)
	}

	return elements, nil
}

// position tracks a location in the source: 1-based line, 0-based column.
type position struct {
	line int
	col  int
}

// advance moves the position past the given raw token bytes.
func (p position) advance(raw []byte) position {
	for _, b := range raw {
		if b == '\n' {
			p.line++
			p.col = 0
		} else {
			p.col++
		}
	}
	return p
}
