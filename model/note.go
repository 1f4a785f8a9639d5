package model

// Note is a completed note interval. Times are in seconds.
type Note struct {
	Pitch     uint8   `json:"pitch"`
	Velocity  uint8   `json:"velocity"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration"`
}

// End returns the time the note stops sounding.
func (n Note) End() float64 {
	return n.StartTime + n.Duration
}

// NOTE: Notes are in completion order, not start order
type Track struct {
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	Notes []Note `json:"notes"`
}

type SkippedChunk struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
}

type MidiFile struct {
	Format       int16          `json:"format"`
	TrackCount   int16          `json:"track_count"`
	TimeDivision int16          `json:"time_division"`
	Tracks       []Track        `json:"tracks"`
	Skipped      []SkippedChunk `json:"skipped,omitempty"`
}
