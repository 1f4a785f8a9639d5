package midi

import (
	"os"

	"github.com/jsphweid/midiscale/model"
	"github.com/pkg/errors"
)

func ReadMidiFile(path string, opts Options) (*model.MidiFile, error) {
	p, err := NewParser(opts)
	if err != nil {
		return nil, err
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}

	res, err := p.Parse(dat)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing midi file %s", path)
	}
	return res, nil
}
