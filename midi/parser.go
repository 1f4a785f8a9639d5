package midi

import (
	"io"

	"github.com/jsphweid/midiscale/logger"
	"github.com/jsphweid/midiscale/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Parser decodes Standard MIDI Files. It keeps no state between calls and
// may be shared.
type Parser struct {
	opts Options
	log  logrus.FieldLogger
}

func NewParser(opts Options) (*Parser, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Parser{
		opts: opts,
		log:  logger.GetLogger().WithField("component", "midi"),
	}, nil
}

// Parse decodes data with DefaultOptions.
func Parse(data []byte) (*model.MidiFile, error) {
	p, err := NewParser(DefaultOptions())
	if err != nil {
		return nil, err
	}
	return p.Parse(data)
}

func (p *Parser) ParseReader(r io.Reader) (*model.MidiFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi data")
	}
	return p.Parse(data)
}

// Parse decodes a whole file. Chunks that are not MTrk are skipped and
// listed in Skipped; any other error aborts the parse and no partial result
// is returned.
func (p *Parser) Parse(data []byte) (*model.MidiFile, error) {
	c := &cursor{data: data}

	id, err := c.readBytes(4)
	if err != nil {
		return nil, errors.Wrap(err, "header chunk id")
	}
	if string(id) != headerChunkID {
		return nil, errors.Wrapf(ErrInvalidFormat, "header chunk id %q", id)
	}

	headerLen, err := c.readInt32()
	if err != nil {
		return nil, errors.Wrap(err, "header length")
	}
	var f model.MidiFile
	if f.Format, err = c.readInt16(); err != nil {
		return nil, errors.Wrap(err, "format")
	}
	if f.TrackCount, err = c.readInt16(); err != nil {
		return nil, errors.Wrap(err, "track count")
	}
	if f.TimeDivision, err = c.readInt16(); err != nil {
		return nil, errors.Wrap(err, "time division")
	}
	if extra := int(uint32(headerLen)) - 6; extra > 0 {
		if err := c.skip(extra); err != nil {
			return nil, errors.Wrap(err, "header padding")
		}
	}

	clk, err := newClock(f.TimeDivision, p.opts.SecondsPerQuarterNote)
	if err != nil {
		return nil, err
	}

	p.log.WithFields(logrus.Fields{
		"format":        f.Format,
		"track_count":   f.TrackCount,
		"time_division": f.TimeDivision,
	}).Debug("parsed header")

	count := int(uint16(f.TrackCount))
	for i := 0; i < count; i++ {
		t, skipped, err := parseTrackChunk(c, i, clk, p.opts, p.log)
		if err != nil {
			return nil, err
		}
		if skipped != nil {
			f.Skipped = append(f.Skipped, *skipped)
			continue
		}
		f.Tracks = append(f.Tracks, t)
	}

	return &f, nil
}
