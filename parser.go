package bard

import (
	"regexp"
	"strconv"
	"strings"
)

// speechAnchorRe matches anchor names of the form "act.scene.line", e.g.
// "3.1.56". Only the line number is used; act and scene numbers are
// tracked by the insertion point.
var speechAnchorRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)`)

// parser tracks the insertion point while consuming an event stream: the
// play being built, the act and scene currently open, and a speaker that
// has been named but has not yet spoken.
type parser struct {
	play  *Play
	act   *Act
	scene *Scene

	// pendingSpeaker holds the most recent speaker-name anchor until a
	// line anchor consumes it. A later speaker anchor overwrites an
	// unconsumed one (last wins), and a value left over at the end of the
	// stream is discarded.
	pendingSpeaker string
	hasPending     bool
}

// ParseEvents consumes a position-ordered element stream (see EventStream)
// and populates the play. An EINVALID error means the document did not
// match the expected archive structure and aborts the parse of this play.
func ParseEvents(play *Play, events []Element) error {
	p := &parser{play: play}
	for _, event := range events {
		if err := p.consume(event); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) consume(event Element) error {
	text := strings.TrimSpace(event.Text)
	switch event.Kind {
	case ElementHeader:
		return p.consumeHeader(text)
	case ElementItalic:
		if p.scene == nil {
			return Errorf(EINVALID, "stage direction %q before any scene", text)
		}
		p.scene.AddDirection(text)
	case ElementAnchor:
		return p.consumeAnchor(event, text)
	}
	return nil
}

// consumeHeader handles act and scene headers. Headers matching neither
// prefix (dramatis personae, prologue labels) are ignored.
func (p *parser) consumeHeader(text string) error {
	switch {
	case strings.HasPrefix(text, "ACT"):
		p.act = p.play.AddAct()
		p.scene = nil
	case strings.HasPrefix(text, "SCENE"):
		if p.act == nil {
			return Errorf(EINVALID, "scene header %q before any act", text)
		}
		p.scene = p.act.AddScene(text)
	}
	return nil
}

// consumeAnchor handles the two anchor roles: a name attribute of the form
// act.scene.line marks a spoken line, any other name marks the next
// speaker. Anchors without a name attribute are ignored.
func (p *parser) consumeAnchor(event Element, text string) error {
	name, ok := event.Attr("name")
	if !ok {
		return nil
	}

	m := speechAnchorRe.FindStringSubmatch(name)
	if m == nil {
		p.pendingSpeaker = text
		p.hasPending = true
		return nil
	}

	lineNo, err := strconv.Atoi(m[3])
	if err != nil {
		return Errorf(EINVALID, "line number in anchor %q: %v", name, err)
	}
	if p.scene == nil {
		return Errorf(EINVALID, "line anchor %q before any scene", name)
	}

	if p.hasPending {
		p.scene.AddSpeech(p.pendingSpeaker, lineNo, Text(text))
		p.pendingSpeaker = ""
		p.hasPending = false
		return nil
	}
	return p.scene.AddLine(Text(text), lineNo)
}
