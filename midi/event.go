package midi

import (
	"github.com/jsphweid/midiscale/model"
	"github.com/pkg/errors"
)

const (
	statusNoteOff       = 0x80
	statusNoteOn        = 0x90
	statusProgramChange = 0xC0
	statusChannelPress  = 0xD0
	statusSysEx         = 0xF0
	statusSysExEscape   = 0xF7
	statusMeta          = 0xFF

	metaTrackName = 0x03
)

// trackDecoder holds the state carried between events of one track chunk.
type trackDecoder struct {
	c       *cursor
	clock   clock
	opts    Options
	ticks   uint64
	status  byte // running status, 0 when none
	name    string
	tracker *noteTracker
}

func (d *trackDecoder) now() float64 {
	return d.clock.seconds(d.ticks)
}

// decodeEvent reads one event at the cursor, including its status byte.
// A data byte in status position reuses the last channel status.
func (d *trackDecoder) decodeEvent() error {
	offset := d.c.pos
	status, err := d.c.readByte()
	if err != nil {
		return err
	}
	if status < 0x80 {
		if d.status == 0 {
			return errors.Wrapf(ErrMalformedEvent, "data byte 0x%02X at offset %d with no running status", status, offset)
		}
		d.c.unreadByte()
		status = d.status
	}

	switch {
	case status == statusMeta:
		d.status = 0
		return d.decodeMeta()
	case status == statusSysEx || status == statusSysExEscape:
		d.status = 0
		length, err := readVarLen(d.c)
		if err != nil {
			return err
		}
		return d.c.skip(int(length))
	case status&0xF0 == statusNoteOn:
		d.status = status
		pitch, velocity, err := d.readPair()
		if err != nil {
			return err
		}
		if velocity == 0 {
			d.tracker.noteOff(pitch, d.now(), !d.opts.DropZeroVelocityOffs)
			return nil
		}
		d.tracker.noteOn(pitch, velocity, d.now())
		return nil
	case status&0xF0 == statusNoteOff:
		d.status = status
		pitch, _, err := d.readPair()
		if err != nil {
			return err
		}
		d.tracker.noteOff(pitch, d.now(), true)
		return nil
	}

	// remaining channel messages and stray system bytes
	if status < 0xF0 {
		d.status = status
	}
	n := 2
	if hi := status & 0xF0; hi == statusProgramChange || hi == statusChannelPress {
		n = 1
	}
	for i := 0; i < n; i++ {
		if _, err := d.readData(); err != nil {
			return err
		}
	}
	return nil
}

func (d *trackDecoder) decodeMeta() error {
	metaType, err := d.c.readByte()
	if err != nil {
		return err
	}
	length, err := readVarLen(d.c)
	if err != nil {
		return err
	}
	data, err := d.c.readBytes(int(length))
	if err != nil {
		return err
	}
	if metaType == metaTrackName {
		d.name = decodeText(data, d.opts.NameEncoding)
	}
	return nil
}

func (d *trackDecoder) readData() (uint8, error) {
	b, err := d.c.readByte()
	if err != nil {
		return 0, err
	}
	if b&0x80 != 0 {
		return 0, errors.Wrapf(ErrMalformedEvent, "data byte 0x%02X at offset %d has high bit set", b, d.c.pos-1)
	}
	return b, nil
}

func (d *trackDecoder) readPair() (uint8, uint8, error) {
	first, err := d.readData()
	if err != nil {
		return 0, 0, err
	}
	second, err := d.readData()
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

func (d *trackDecoder) track(index int) model.Track {
	return model.Track{
		Index: index,
		Name:  d.name,
		Notes: d.tracker.notes,
	}
}
