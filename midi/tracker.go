package midi

import (
	"github.com/jsphweid/midiscale/model"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// noteTracker pairs note-on and note-off events for a single track. Only
// one note per pitch can be open: a second note-on for a sounding pitch
// replaces the first, which is dropped without ever being emitted.
type noteTracker struct {
	active map[uint8]model.Note
	notes  []model.Note
	log    logrus.FieldLogger
}

func newNoteTracker(log logrus.FieldLogger) *noteTracker {
	return &noteTracker{
		active: make(map[uint8]model.Note),
		notes:  []model.Note{},
		log:    log,
	}
}

func (t *noteTracker) noteOn(pitch, velocity uint8, at float64) {
	if prev, ok := t.active[pitch]; ok {
		t.log.WithFields(logrus.Fields{
			"pitch": pitch,
			"start": prev.StartTime,
		}).Debug("note retriggered before note off, dropping earlier note")
	}
	t.active[pitch] = model.Note{
		Pitch:     pitch,
		Velocity:  velocity,
		StartTime: at,
	}
}

// noteOff closes the open note for pitch, if any. The completed note is
// appended only when emit is set.
func (t *noteTracker) noteOff(pitch uint8, at float64, emit bool) {
	n, ok := t.active[pitch]
	if !ok {
		t.log.WithField("pitch", pitch).Debug("note off without matching note on")
		return
	}
	delete(t.active, pitch)
	n.Duration = at - n.StartTime
	if emit {
		t.notes = append(t.notes, n)
	}
}

// closeAll ends every open note at the given time in ascending pitch order.
func (t *noteTracker) closeAll(at float64) {
	pitches := maps.Keys(t.active)
	slices.Sort(pitches)
	for _, p := range pitches {
		t.noteOff(p, at, true)
	}
}

func (t *noteTracker) openCount() int {
	return len(t.active)
}
