package cmd

import (
	"testing"

	"github.com/jsphweid/midiscale/model"
	"github.com/jsphweid/midiscale/sample"
	"github.com/stretchr/testify/require"
)

func melody(pitches ...uint8) []model.Note {
	var res []model.Note
	for i, p := range pitches {
		res = append(res, model.Note{Pitch: p, Velocity: 100, StartTime: float64(i) * 0.5, Duration: 0.5})
	}
	return res
}

func smfBytes(t *testing.T, tracks ...model.Track) []byte {
	s, err := sample.Create(tracks, 96, 0.5)
	require.NoError(t, err)
	data, err := sample.Bytes(s)
	require.NoError(t, err)
	return data
}
