package scale

import "github.com/jsphweid/midiscale/model"

var library = []model.ScaleDefinition{
	{Name: "Major (Ionian)", Pattern: []int{0, 2, 4, 5, 7, 9, 11}},
	{Name: "Natural Minor (Aeolian)", Pattern: []int{0, 2, 3, 5, 7, 8, 10}},
	{Name: "Harmonic Minor", Pattern: []int{0, 2, 3, 5, 7, 8, 11}},
	{Name: "Melodic Minor", Pattern: []int{0, 2, 3, 5, 7, 9, 11}},
	{Name: "Dorian", Pattern: []int{0, 2, 3, 5, 7, 9, 10}},
	{Name: "Phrygian", Pattern: []int{0, 1, 3, 5, 7, 8, 10}},
	{Name: "Lydian", Pattern: []int{0, 2, 4, 6, 7, 9, 11}},
	{Name: "Mixolydian", Pattern: []int{0, 2, 4, 5, 7, 9, 10}},
	{Name: "Locrian", Pattern: []int{0, 1, 3, 5, 6, 8, 10}},
	{Name: "Major Pentatonic", Pattern: []int{0, 2, 4, 7, 9}},
	{Name: "Minor Pentatonic", Pattern: []int{0, 3, 5, 7, 10}},
	{Name: "Blues", Pattern: []int{0, 3, 5, 6, 7, 10}},
	{Name: "Whole Tone", Pattern: []int{0, 2, 4, 6, 8, 10}},
	{Name: "Diminished (Half-Whole)", Pattern: []int{0, 1, 3, 4, 6, 7, 9, 10}},
	{Name: "Augmented", Pattern: []int{0, 3, 4, 7, 8, 11}},
	{Name: "Chromatic", Pattern: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
}

// Library returns a copy of the built-in scale definitions.
func Library() []model.ScaleDefinition {
	res := make([]model.ScaleDefinition, len(library))
	for i, def := range library {
		res[i] = model.ScaleDefinition{
			Name:    def.Name,
			Pattern: append([]int(nil), def.Pattern...),
		}
	}
	return res
}

// Lookup finds a scale by name, case-sensitively.
func Lookup(name string) (model.ScaleDefinition, bool) {
	for _, def := range library {
		if def.Name == name {
			return def, true
		}
	}
	return model.ScaleDefinition{}, false
}
