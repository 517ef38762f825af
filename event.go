package bard

import (
	"iter"
	"strings"
)

// DramaticEvent is the closed set of things that can occur in a Scene:
// a stage Direction or a Speech. New variants must be handled by every
// switch over the interface (serialization, traversal, rendering).
type DramaticEvent interface {
	dramaticEvent()
}

// Line is the closed set of things that make up a Speech body: a spoken
// Text line or an embedded *Direction.
type Line interface {
	speechLine()
}

// Text is a single spoken line within a Speech.
type Text string

func (Text) speechLine() {}

// Direction is a stage direction ("Enter Hamlet", "Exeunt all but
// Hamlet"), either standalone in a Scene or embedded within a Speech.
type Direction struct {
	Text string
}

func (*Direction) dramaticEvent() {}
func (*Direction) speechLine()    {}

// NewDirection creates a Direction with the given text.
func NewDirection(text string) *Direction {
	return &Direction{Text: text}
}

// Contains reports whether the direction mentions word, case-insensitively.
func (d *Direction) Contains(word string) bool {
	return strings.Contains(strings.ToLower(d.Text), strings.ToLower(word))
}

// IsEntrance reports whether the direction is an entrance cue.
func (d *Direction) IsEntrance() bool {
	return d.Contains("enter")
}

// IsExit reports whether the direction is an exit cue ("exit" or "exeunt").
func (d *Direction) IsExit() bool {
	return d.Contains("exit") || d.Contains("exeunt")
}

func (d *Direction) String() string {
	return d.Text
}

// Speech is a contiguous block of lines spoken by one character, possibly
// interleaved with embedded stage directions. ActNo, SceneNo and LineNo
// locate the first line within the play.
type Speech struct {
	Speaker string
	Lines   []Line
	ActNo   int
	SceneNo int
	LineNo  int
}

func (*Speech) dramaticEvent() {}

// NewSpeech creates a Speech positioned at (actNo, sceneNo, lineNo) whose
// body starts with the given lines.
func NewSpeech(speaker string, lines []Line, actNo, sceneNo, lineNo int) *Speech {
	return &Speech{
		Speaker: speaker,
		Lines:   lines,
		ActNo:   actNo,
		SceneNo: sceneNo,
		LineNo:  lineNo,
	}
}

func (s *Speech) String() string {
	return s.Speaker + " speaks"
}

// Equal reports structural equality: speaker, line sequence, and all
// position numbers must match. Used for deduplication and testing.
func (s *Speech) Equal(other *Speech) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Speaker != other.Speaker ||
		s.ActNo != other.ActNo ||
		s.SceneNo != other.SceneNo ||
		s.LineNo != other.LineNo ||
		len(s.Lines) != len(other.Lines) {
		return false
	}
	for i := range s.Lines {
		if !linesEqual(s.Lines[i], other.Lines[i]) {
			return false
		}
	}
	return true
}

func linesEqual(a, b Line) bool {
	switch a := a.(type) {
	case Text:
		other, ok := b.(Text)
		return ok && a == other
	case *Direction:
		other, ok := b.(*Direction)
		return ok && a.Text == other.Text
	}
	return false
}

// Compare orders speeches by (act, scene, line, speaker) ascending. This is
// the canonical ordering for any sorted presentation of speeches.
func (s *Speech) Compare(other *Speech) int {
	if s.ActNo != other.ActNo {
		return s.ActNo - other.ActNo
	}
	if s.SceneNo != other.SceneNo {
		return s.SceneNo - other.SceneNo
	}
	if s.LineNo != other.LineNo {
		return s.LineNo - other.LineNo
	}
	return strings.Compare(s.Speaker, other.Speaker)
}

// Directions yields the stage directions embedded in the speech body, in
// order. The sequence is recomputed on every call.
func (s *Speech) Directions() iter.Seq[*Direction] {
	return func(yield func(*Direction) bool) {
		for _, line := range s.Lines {
			if d, ok := line.(*Direction); ok {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// Format renders the speech as readable text: the speaker in capitals
// followed by the indented body, with embedded directions set off on their
// own lines.
func (s *Speech) Format() string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(s.Speaker))
	b.WriteString(":\n\n")
	for i, line := range s.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch line := line.(type) {
		case Text:
			b.WriteString("   ")
			b.WriteString(string(line))
		case *Direction:
			b.WriteString("\n   ")
			b.WriteString(line.Text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
