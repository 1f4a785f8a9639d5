package midi

import "github.com/pkg/errors"

// Options controls how a file is decoded. The zero value is not usable;
// start from DefaultOptions.
//
// By default a note-on with velocity 0 ends the open note and appends it,
// the same as a note-off. Older tooling closed such notes without keeping
// them; set DropZeroVelocityOffs for that behavior.
type Options struct {
	// SecondsPerQuarterNote is the fixed tempo used to turn ticks into
	// seconds. Tempo meta events are not honored.
	SecondsPerQuarterNote float64

	// DropZeroVelocityOffs closes notes ended by a velocity-0 note-on
	// without appending them to the track, matching older tooling that
	// only emitted notes for explicit note-off events.
	DropZeroVelocityOffs bool

	// NameEncoding is one of the names accepted by ValidNameEncoding.
	NameEncoding string
}

func DefaultOptions() Options {
	return Options{
		SecondsPerQuarterNote: SecondsPerQuarterNote(120),
		NameEncoding:          EncodingAuto,
	}
}

// SecondsPerQuarterNote converts a tempo in beats per minute.
func SecondsPerQuarterNote(bpm float64) float64 {
	return 60 / bpm
}

func (o Options) validate() error {
	if o.SecondsPerQuarterNote <= 0 {
		return errors.Errorf("seconds per quarter note must be positive, got %v", o.SecondsPerQuarterNote)
	}
	if !ValidNameEncoding(o.NameEncoding) {
		return errors.Errorf("unknown name encoding %q", o.NameEncoding)
	}
	return nil
}
