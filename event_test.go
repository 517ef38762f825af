package bard_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdanford/bard"
)

func TestSpeech_Equal(t *testing.T) {
	t.Parallel()

	speech := func(speaker string, lines ...bard.Line) *bard.Speech {
		return bard.NewSpeech(speaker, lines, 1, 1, 1)
	}

	t.Run("equal when all fields match", func(t *testing.T) {
		t.Parallel()

		s1 := speech("John", bard.Text("Hi, my name is"), bard.Text("John"))
		s2 := speech("John", bard.Text("Hi, my name is"), bard.Text("John"))

		assert.True(t, s1.Equal(s2))
		assert.True(t, s1.Equal(s1))
	})

	t.Run("unequal when one line is split in two", func(t *testing.T) {
		t.Parallel()

		s1 := speech("John", bard.Text("Hi, my name is"), bard.Text("John"))
		s2 := speech("John", bard.Text("Hi, my name is John"))

		assert.False(t, s1.Equal(s2))
	})

	t.Run("unequal when lines differ by a trailing empty string", func(t *testing.T) {
		t.Parallel()

		s1 := speech("John", bard.Text("Hi, my name is John"))
		s2 := speech("John", bard.Text("Hi, my name is John"), bard.Text(""))

		assert.False(t, s1.Equal(s2))
	})

	t.Run("unequal when speakers differ", func(t *testing.T) {
		t.Parallel()

		s1 := speech("John", bard.Text("Hi, my name is"), bard.Text("John"))
		s2 := speech("Bill", bard.Text("Hi, my name is"), bard.Text("John"))

		assert.False(t, s1.Equal(s2))
	})

	t.Run("unequal when positions differ", func(t *testing.T) {
		t.Parallel()

		s1 := bard.NewSpeech("John", []bard.Line{bard.Text("hello")}, 1, 1, 1)
		s2 := bard.NewSpeech("John", []bard.Line{bard.Text("hello")}, 1, 2, 1)

		assert.False(t, s1.Equal(s2))
	})

	t.Run("text line never equals a direction", func(t *testing.T) {
		t.Parallel()

		s1 := speech("John", bard.Text("Exit"))
		s2 := speech("John", bard.NewDirection("Exit"))

		assert.False(t, s1.Equal(s2))
	})
}

func TestSpeech_Compare(t *testing.T) {
	t.Parallel()

	speeches := []*bard.Speech{
		bard.NewSpeech("B", []bard.Line{bard.Text("x")}, 2, 1, 1),
		bard.NewSpeech("A", []bard.Line{bard.Text("x")}, 1, 2, 5),
		bard.NewSpeech("B", []bard.Line{bard.Text("x")}, 1, 2, 5),
		bard.NewSpeech("A", []bard.Line{bard.Text("x")}, 1, 1, 10),
	}

	slices.SortFunc(speeches, (*bard.Speech).Compare)

	got := make([][4]any, len(speeches))
	for i, s := range speeches {
		got[i] = [4]any{s.ActNo, s.SceneNo, s.LineNo, s.Speaker}
	}
	want := [][4]any{
		{1, 1, 10, "A"},
		{1, 2, 5, "A"},
		{1, 2, 5, "B"},
		{2, 1, 1, "B"},
	}
	assert.Equal(t, want, got)
}

func TestDirection_Classification(t *testing.T) {
	t.Parallel()

	t.Run("entrance cues", func(t *testing.T) {
		t.Parallel()

		assert.True(t, bard.NewDirection("Enter Hamlet").IsEntrance())
		assert.True(t, bard.NewDirection("Re-enter Ghost").IsEntrance())
		assert.False(t, bard.NewDirection("Alarum within").IsEntrance())
	})

	t.Run("exit cues match exit and exeunt", func(t *testing.T) {
		t.Parallel()

		assert.True(t, bard.NewDirection("Exit").IsExit())
		assert.True(t, bard.NewDirection("Exeunt all but Hamlet").IsExit())
		assert.True(t, bard.NewDirection("exeunt").IsExit())
		assert.False(t, bard.NewDirection("Enter Hamlet").IsExit())
	})
}

func TestSpeech_Directions(t *testing.T) {
	t.Parallel()

	speech := bard.NewSpeech("HAMLET", []bard.Line{
		bard.Text("To be, or not to be"),
		bard.NewDirection("Draws"),
		bard.Text("that is the question"),
		bard.NewDirection("Sheathes"),
	}, 3, 1, 56)

	// Recomputed on every call: collect twice.
	for range 2 {
		var texts []string
		for d := range speech.Directions() {
			texts = append(texts, d.Text)
		}
		assert.Equal(t, []string{"Draws", "Sheathes"}, texts)
	}
}

func TestSpeech_Format(t *testing.T) {
	t.Parallel()

	speech := bard.NewSpeech("Hamlet", []bard.Line{
		bard.Text("To be, or not to be"),
		bard.NewDirection("Draws"),
	}, 3, 1, 56)

	got := speech.Format()

	assert.Contains(t, got, "HAMLET:\n\n")
	assert.Contains(t, got, "   To be, or not to be")
	assert.Contains(t, got, "   Draws")
}
