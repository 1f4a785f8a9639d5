package model

type ScaleDefinition struct {
	Name    string
	Pattern []int
}

type ScaleMatch struct {
	ScaleName string  `json:"scale_name"`
	Root      string  `json:"root"`
	Score     float64 `json:"score"`
}

// Key identifies a (root, scale) pair, e.g. "D Dorian".
func (m ScaleMatch) Key() string {
	return m.Root + " " + m.ScaleName
}
