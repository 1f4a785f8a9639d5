package model

type TrackReport struct {
	Index        int          `json:"index"`
	Name         string       `json:"name,omitempty"`
	NoteCount    int          `json:"note_count"`
	PitchClasses []int        `json:"pitch_classes"`
	NoteNames    []string     `json:"note_names"`
	Matches      []ScaleMatch `json:"matches"`
}

type Report struct {
	Tracks []TrackReport `json:"tracks"`

	// only set when more than one track has notes
	Combined *TrackReport `json:"combined,omitempty"`
}

type FileReport struct {
	FileNum uint32 `json:"file_num"`
	Path    string `json:"path"`
	Report  Report `json:"report"`
	Error   string `json:"error,omitempty"`
}

type FileNumToMidiPath = map[uint32]string

// scale key ("C Major (Ionian)") to file numbers
type BucketIndex = map[string][]uint32
