package analysis

import (
	"bytes"
	"testing"

	"github.com/jsphweid/midiscale/model"
	"github.com/stretchr/testify/assert"
)

func notes(pitches ...uint8) []model.Note {
	var res []model.Note
	for i, p := range pitches {
		res = append(res, model.Note{Pitch: p, Velocity: 100, StartTime: float64(i) * 0.5, Duration: 0.5})
	}
	return res
}

func TestAnalyzeSingleTrack(t *testing.T) {
	f := &model.MidiFile{Tracks: []model.Track{
		{Index: 0, Name: "Tempo"},
		{Index: 1, Name: "Lead", Notes: notes(60, 62, 64, 65, 67, 69, 71, 72)},
	}}

	r := Analyze(f)

	assert := assert.New(t)
	assert.Len(r.Tracks, 1)
	assert.Nil(r.Combined)
	tr := r.Tracks[0]
	assert.Equal(1, tr.Index)
	assert.Equal("Lead", tr.Name)
	assert.Equal(8, tr.NoteCount)
	assert.Equal([]int{0, 2, 4, 5, 7, 9, 11}, tr.PitchClasses)
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B"}, tr.NoteNames)

	best, ok := BestMatch(r)
	assert.True(ok)
	assert.Equal(model.ScaleMatch{ScaleName: "Major (Ionian)", Root: "C", Score: 100}, best)
}

func TestAnalyzeCombinesTracks(t *testing.T) {
	tracks := []model.Track{
		{Index: 0, Notes: notes(57, 60, 64)},
		{Index: 1, Notes: notes(62, 65, 67, 71)},
	}

	r := AnalyzeTracks(tracks)

	assert := assert.New(t)
	assert.Len(r.Tracks, 2)
	if assert.NotNil(r.Combined) {
		assert.Equal(-1, r.Combined.Index)
		assert.Equal(7, r.Combined.NoteCount)
		assert.Equal([]int{0, 2, 4, 5, 7, 9, 11}, r.Combined.PitchClasses)
	}

	best, ok := BestMatch(r)
	assert.True(ok)
	assert.Equal("Major (Ionian)", best.ScaleName)
}

func TestAnalyzeNoNotes(t *testing.T) {
	r := AnalyzeTracks([]model.Track{{Index: 0}})

	assert := assert.New(t)
	assert.Empty(r.Tracks)
	_, ok := BestMatch(r)
	assert.False(ok)
}

func TestWrite(t *testing.T) {
	r := AnalyzeTracks([]model.Track{
		{Index: 0, Name: "Piano", Notes: notes(60, 62, 64, 67, 69)},
		{Index: 2, Notes: notes(60)},
	})

	var buf bytes.Buffer
	assert := assert.New(t)
	assert.NoError(Write(&buf, r))

	out := buf.String()
	assert.Contains(out, "MIDI Scale Analysis:\n")
	assert.Contains(out, "Track 0: Piano\nNotes used: 5/12\nNotes: C D E G A\n")
	assert.Contains(out, "- Major Pentatonic (C, 100%)\n")
	assert.Contains(out, "Track 2: Unnamed\n")
	assert.Contains(out, "All Tracks Combined:\n")
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, AnalyzeTracks(nil)))
	assert.Contains(t, buf.String(), "No notes found.")
}
