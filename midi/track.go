package midi

import (
	"github.com/jsphweid/midiscale/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	headerChunkID = "MThd"
	trackChunkID  = "MTrk"
)

// parseTrackChunk reads one chunk at the cursor. A chunk whose id is not
// MTrk has its body skipped and is returned as a SkippedChunk instead of a
// track.
func parseTrackChunk(c *cursor, index int, clk clock, opts Options, log logrus.FieldLogger) (model.Track, *model.SkippedChunk, error) {
	id, err := c.readBytes(4)
	if err != nil {
		return model.Track{}, nil, errors.Wrapf(err, "track %d chunk id", index)
	}
	length, err := c.readInt32()
	if err != nil {
		return model.Track{}, nil, errors.Wrapf(err, "track %d chunk length", index)
	}
	bodyLen := int(uint32(length))

	if string(id) != trackChunkID {
		if err := c.skip(bodyLen); err != nil {
			return model.Track{}, nil, errors.Wrapf(err, "skipping chunk %q", id)
		}
		log.WithFields(logrus.Fields{
			"track": index,
			"id":    string(id),
		}).WithError(ErrMalformedTrackChunk).Warn("skipping chunk")
		return model.Track{}, &model.SkippedChunk{Index: index, ID: string(id)}, nil
	}

	end := c.pos + bodyLen
	log = log.WithField("track", index)
	d := &trackDecoder{
		c:       c,
		clock:   clk,
		opts:    opts,
		tracker: newNoteTracker(log),
	}

	// an event may run past the declared end; the next chunk then starts
	// wherever that event stopped
	for c.pos < end {
		delta, err := readVarLen(c)
		if err != nil {
			return model.Track{}, nil, errors.Wrapf(err, "track %d delta time", index)
		}
		d.ticks += uint64(delta)
		if err := d.decodeEvent(); err != nil {
			return model.Track{}, nil, errors.Wrapf(err, "track %d event at tick %d", index, d.ticks)
		}
	}

	open := d.tracker.openCount()
	d.tracker.closeAll(d.now())

	t := d.track(index)
	log.WithFields(logrus.Fields{
		"name":       t.Name,
		"notes":      len(t.Notes),
		"force_open": open,
	}).Debug("parsed track")
	return t, nil, nil
}
