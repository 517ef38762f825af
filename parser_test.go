package bard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdanford/bard"
)

func header(text string) bard.Element {
	return bard.Element{Kind: bard.ElementHeader, Text: text}
}

func italic(text string) bard.Element {
	return bard.Element{Kind: bard.ElementItalic, Text: text}
}

func anchor(name, text string) bard.Element {
	e := bard.Element{Kind: bard.ElementAnchor, Text: text}
	if name != "" {
		e.Attrs = map[string]string{"name": name}
	}
	return e
}

func TestParseEvents(t *testing.T) {
	t.Parallel()

	t.Run("builds a speech from a pending speaker and a line anchor", func(t *testing.T) {
		t.Parallel()

		play := bard.NewPlay("Hamlet", "http://example.com/hamlet")
		err := bard.ParseEvents(play, []bard.Element{
			header("ACT I"),
			header("SCENE I. A room."),
			anchor("", "HAMLET"), // no name attribute: ignored
			anchor("speech1", "HAMLET"),
			anchor("1.1.1", "To be or not to be"),
		})
		require.NoError(t, err)

		require.Len(t, play.Acts, 1)
		require.Len(t, play.Acts[0].Scenes, 1)
		scene := play.Acts[0].Scenes[0]
		assert.Equal(t, "A room.", scene.Title)

		require.Len(t, scene.Events, 1)
		speech, ok := scene.Events[0].(*bard.Speech)
		require.True(t, ok)
		assert.True(t, speech.Equal(bard.NewSpeech("HAMLET", []bard.Line{bard.Text("To be or not to be")}, 1, 1, 1)))
	})

	t.Run("line anchors without a pending speaker continue the speech", func(t *testing.T) {
		t.Parallel()

		play := bard.NewPlay("Hamlet", "http://example.com/hamlet")
		err := bard.ParseEvents(play, []bard.Element{
			header("ACT I"),
			header("SCENE I. A platform."),
			anchor("speech1", "BERNARDO"),
			anchor("1.1.1", "Who's there?"),
			anchor("1.1.2", "Nay, answer me: stand, and unfold yourself."),
		})
		require.NoError(t, err)

		scene := play.Acts[0].Scenes[0]
		require.Len(t, scene.Events, 1)
		speech := scene.Events[0].(*bard.Speech)
		assert.Equal(t, "BERNARDO", speech.Speaker)
		assert.Len(t, speech.Lines, 2)
	})

	t.Run("italics become directions embedded in the open speech", func(t *testing.T) {
		t.Parallel()

		play := bard.NewPlay("Hamlet", "http://example.com/hamlet")
		err := bard.ParseEvents(play, []bard.Element{
			header("ACT I"),
			header("SCENE I. A platform."),
			italic("Enter BERNARDO"),
			anchor("speech1", "BERNARDO"),
			anchor("1.1.1", "Who's there?"),
			italic("Exit"),
		})
		require.NoError(t, err)

		scene := play.Acts[0].Scenes[0]
		require.Len(t, scene.Events, 2)
		_, ok := scene.Events[0].(*bard.Direction)
		assert.True(t, ok)
		speech := scene.Events[1].(*bard.Speech)
		require.Len(t, speech.Lines, 2)
		d, ok := speech.Lines[1].(*bard.Direction)
		require.True(t, ok)
		assert.Equal(t, "Exit", d.Text)
	})

	t.Run("unmatched headers are ignored", func(t *testing.T) {
		t.Parallel()

		play := bard.NewPlay("Hamlet", "http://example.com/hamlet")
		err := bard.ParseEvents(play, []bard.Element{
			header("Dramatis Personae"),
			header("ACT I"),
			header("PROLOGUE"),
			header("SCENE I. A platform."),
		})
		require.NoError(t, err)

		require.Len(t, play.Acts, 1)
		assert.Len(t, play.Acts[0].Scenes, 1)
	})

	t.Run("unconsumed pending speaker is overwritten by the next one", func(t *testing.T) {
		t.Parallel()

		play := bard.NewPlay("Hamlet", "http://example.com/hamlet")
		err := bard.ParseEvents(play, []bard.Element{
			header("ACT I"),
			header("SCENE I. A platform."),
			anchor("speech1", "FRANCISCO"),
			anchor("speech2", "BERNARDO"), // last one wins
			anchor("1.1.1", "Who's there?"),
		})
		require.NoError(t, err)

		scene := play.Acts[0].Scenes[0]
		require.Len(t, scene.Events, 1)
		assert.Equal(t, "BERNARDO", scene.Events[0].(*bard.Speech).Speaker)
	})

	t.Run("pending speaker left at end of stream is discarded", func(t *testing.T) {
		t.Parallel()

		play := bard.NewPlay("Hamlet", "http://example.com/hamlet")
		err := bard.ParseEvents(play, []bard.Element{
			header("ACT I"),
			header("SCENE I. A platform."),
			anchor("speech1", "BERNARDO"),
			anchor("1.1.1", "Who's there?"),
			anchor("speech2", "FRANCISCO"),
		})
		require.NoError(t, err)

		scene := play.Acts[0].Scenes[0]
		require.Len(t, scene.Events, 1)
		assert.Equal(t, "BERNARDO", scene.Events[0].(*bard.Speech).Speaker)
	})

	t.Run("line anchor in an empty scene is a structural error", func(t *testing.T) {
		t.Parallel()

		play := bard.NewPlay("Hamlet", "http://example.com/hamlet")
		err := bard.ParseEvents(play, []bard.Element{
			header("ACT I"),
			header("SCENE I. A platform."),
			anchor("1.1.1", "Who's there?"),
		})
		require.Error(t, err)
		assert.Equal(t, bard.EINVALID, bard.ErrorCode(err))
	})

	t.Run("scene header before any act is a structural error", func(t *testing.T) {
		t.Parallel()

		play := bard.NewPlay("Hamlet", "http://example.com/hamlet")
		err := bard.ParseEvents(play, []bard.Element{
			header("SCENE I. A platform."),
		})
		require.Error(t, err)
		assert.Equal(t, bard.EINVALID, bard.ErrorCode(err))
	})

	t.Run("direction before any scene is a structural error", func(t *testing.T) {
		t.Parallel()

		play := bard.NewPlay("Hamlet", "http://example.com/hamlet")
		err := bard.ParseEvents(play, []bard.Element{
			header("ACT I"),
			italic("Enter BERNARDO"),
		})
		require.Error(t, err)
		assert.Equal(t, bard.EINVALID, bard.ErrorCode(err))
	})

	t.Run("whitespace around element text is stripped", func(t *testing.T) {
		t.Parallel()

		play := bard.NewPlay("Hamlet", "http://example.com/hamlet")
		err := bard.ParseEvents(play, []bard.Element{
			header("  ACT I  "),
			header(" SCENE I. A platform. "),
			anchor("speech1", "\nBERNARDO\n"),
			anchor("1.1.1", "  Who's there?  "),
		})
		require.NoError(t, err)

		scene := play.Acts[0].Scenes[0]
		speech := scene.Events[0].(*bard.Speech)
		assert.Equal(t, "BERNARDO", speech.Speaker)
		assert.Equal(t, []bard.Line{bard.Text("Who's there?")}, speech.Lines)
	})
}
