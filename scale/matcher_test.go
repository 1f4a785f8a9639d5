package scale

import (
	"testing"

	"github.com/jsphweid/midiscale/model"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestMatchCMajor(t *testing.T) {
	matches := Match(NewSet(0, 2, 4, 5, 7, 9, 11))

	assert := assert.New(t)
	assert.Len(matches, 5)
	assert.Equal(model.ScaleMatch{ScaleName: "Major (Ionian)", Root: "C", Score: 100}, matches[0])
	assert.Contains(matches, model.ScaleMatch{ScaleName: "Natural Minor (Aeolian)", Root: "A", Score: 100})
	assert.Contains(matches, model.ScaleMatch{ScaleName: "Dorian", Root: "D", Score: 100})
	for _, m := range matches {
		assert.Equal(100.0, m.Score)
	}
}

func TestMatchPentatonic(t *testing.T) {
	matches := Match(NewSet(0, 2, 4, 7, 9))

	assert := assert.New(t)
	assert.Equal(model.ScaleMatch{ScaleName: "Major Pentatonic", Root: "C", Score: 100}, matches[0])
	assert.Equal(model.ScaleMatch{ScaleName: "Minor Pentatonic", Root: "A", Score: 100}, matches[1])
	assert.Equal(model.ScaleMatch{ScaleName: "Blues", Root: "A", Score: 92}, matches[2])
	assert.Equal(model.ScaleMatch{ScaleName: "Major (Ionian)", Root: "C", Score: 86}, matches[3])
}

func TestMatchChromatic(t *testing.T) {
	all := NewSet(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
	matches := Match(all)

	assert := assert.New(t)
	assert.Len(matches, 5)
	for i, m := range matches {
		assert.Equal("Chromatic", m.ScaleName)
		assert.Equal(PitchClassName(i), m.Root)
	}
}

func TestMatchSingleNote(t *testing.T) {
	matches := Match(NewSet(0))

	assert := assert.New(t)
	assert.Len(matches, 5)
	for _, m := range matches {
		assert.Equal(60.0, m.Score)
	}
}

func TestMatchEmpty(t *testing.T) {
	matches := Match(0)

	assert := assert.New(t)
	assert.NotNil(matches)
	assert.Empty(matches)
}

func TestScoresAreInRange(t *testing.T) {
	for _, s := range []Set{NewSet(1), NewSet(0, 6), NewSet(0, 1, 2, 3), NewSet(0, 3, 6, 9)} {
		for _, m := range Match(s) {
			assert.GreaterOrEqual(t, m.Score, 50.0)
			assert.LessOrEqual(t, m.Score, 100.0)
		}
	}
}

func TestMatchAgainstCustomLibrary(t *testing.T) {
	defs := []model.ScaleDefinition{{Name: "Power", Pattern: []int{0, 7}}}
	matches := MatchAgainst(NewSet(2, 9), defs)

	assert := assert.New(t)
	assert.Equal([]model.ScaleMatch{{ScaleName: "Power", Root: "D", Score: 100}}, matches[:1])
}

func TestTranspositionConsistencyProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("score(S, r) == score(S-k, r-k)", prop.ForAll(
		func(bits uint16, k, root, scaleIdx int) bool {
			s := Set(bits & 0x0FFF)
			def := library[scaleIdx]
			return Score(s, def, root) == Score(s.Transpose(-k), def, root-k)
		},
		gen.UInt16(),
		gen.IntRange(0, 11),
		gen.IntRange(0, 11),
		gen.IntRange(0, len(library)-1),
	))

	properties.Property("transposing the input keeps the ranked scores", prop.ForAll(
		func(bits uint16, k int) bool {
			a := Match(Set(bits & 0x0FFF))
			b := Match(Set(bits & 0x0FFF).Transpose(k))
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i].Score != b[i].Score {
					return false
				}
			}
			return true
		},
		gen.UInt16(),
		gen.IntRange(0, 11),
	))

	properties.TestingRun(t)
}
