package sample

import (
	"bytes"
	"math"

	"github.com/jsphweid/midiscale/model"
	"github.com/jsphweid/midiscale/scale"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

const DefaultVelocity = 100

type event struct {
	tick  uint32
	off   bool
	pitch uint8
	vel   uint8
}

// Create builds an SMF holding the given tracks. Note times are converted
// to ticks at secondsPerQuarter; notes of one pitch must not overlap.
func Create(tracks []model.Track, ticksPerQuarter uint16, secondsPerQuarter float64) (*smf.SMF, error) {
	if ticksPerQuarter == 0 || secondsPerQuarter <= 0 {
		return nil, errors.New("ticks per quarter and seconds per quarter must be positive")
	}
	toTicks := func(sec float64) uint32 {
		return uint32(math.Round(sec / secondsPerQuarter * float64(ticksPerQuarter)))
	}

	res := smf.New()
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	for _, t := range tracks {
		var events []event
		for _, n := range t.Notes {
			if n.Pitch > 127 || n.Velocity == 0 || n.Velocity > 127 {
				return nil, errors.Errorf("note %d with velocity %d cannot be written", n.Pitch, n.Velocity)
			}
			events = append(events,
				event{tick: toTicks(n.StartTime), pitch: n.Pitch, vel: n.Velocity},
				event{tick: toTicks(n.End()), off: true, pitch: n.Pitch},
			)
		}
		// offs first so back to back notes of one pitch stay separate
		slices.SortStableFunc(events, func(a, b event) bool {
			if a.tick != b.tick {
				return a.tick < b.tick
			}
			return a.off && !b.off
		})

		var tr smf.Track
		if t.Name != "" {
			tr.Add(0, smf.MetaTrackSequenceName(t.Name))
		}
		var last uint32
		for _, e := range events {
			msg := midi.NoteOn(0, e.pitch, e.vel)
			if e.off {
				msg = midi.NoteOff(0, e.pitch)
			}
			tr.Add(e.tick-last, msg)
			last = e.tick
		}
		tr.Close(0)

		if err := res.Add(tr); err != nil {
			return nil, errors.Wrapf(err, "adding track %d", t.Index)
		}
	}

	return res, nil
}

// Scale builds a single-track SMF that plays def upward from root in the
// given octave, one quarter note per degree, ending on the octave.
func Scale(def model.ScaleDefinition, root, octave int, ticksPerQuarter uint16) (*smf.SMF, error) {
	base := (octave+1)*12 + root
	var notes []model.Note
	pitches := append(append([]int(nil), def.Pattern...), 12)
	for i, offset := range pitches {
		p := base + offset
		if p < 0 || p > 127 {
			return nil, errors.Errorf("%s from %s%d leaves the midi note range", def.Name, scale.PitchClassName(root), octave)
		}
		notes = append(notes, model.Note{
			Pitch:     uint8(p),
			Velocity:  DefaultVelocity,
			StartTime: float64(i) * 0.5,
			Duration:  0.5,
		})
	}

	track := model.Track{
		Name:  scale.PitchClassName(root) + " " + def.Name,
		Notes: notes,
	}
	return Create([]model.Track{track}, ticksPerQuarter, 0.5)
}

func Bytes(s *smf.SMF) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "writing smf")
	}
	return buf.Bytes(), nil
}
