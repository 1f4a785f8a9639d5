package model

type ScalesRequestBody struct {
	PitchClasses []int `json:"pitch_classes"`
}

type ScalesResponse struct {
	Matches []ScaleMatch `json:"matches"`
}

type AnalyzeResponse struct {
	ID           string         `json:"id"`
	Format       int16          `json:"format"`
	TimeDivision int16          `json:"time_division"`
	Tracks       []TrackSummary `json:"tracks"`
	Skipped      []SkippedChunk `json:"skipped,omitempty"`
	Report       Report         `json:"report"`
}

type TrackSummary struct {
	Index     int     `json:"index"`
	Name      string  `json:"name,omitempty"`
	NoteCount int     `json:"note_count"`
	Length    float64 `json:"length"`
}

type BucketResponse struct {
	Key   string   `json:"key"`
	Files []string `json:"files"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
