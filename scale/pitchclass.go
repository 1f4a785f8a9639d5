package scale

import (
	"strconv"
	"strings"

	"github.com/jsphweid/midiscale/model"
	"github.com/pkg/errors"
)

var pitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Set is a set of pitch classes, bit i set for pitch class i.
type Set uint16

func NewSet(pcs ...int) Set {
	var s Set
	for _, pc := range pcs {
		s = s.Add(pc)
	}
	return s
}

// FromNotes reduces every note to its pitch class.
func FromNotes(notes []model.Note) Set {
	var s Set
	for _, n := range notes {
		s = s.Add(int(n.Pitch))
	}
	return s
}

func (s Set) Add(pc int) Set {
	return s | 1<<uint(mod12(pc))
}

func (s Set) Has(pc int) bool {
	return s&(1<<uint(mod12(pc))) != 0
}

func (s Set) Union(o Set) Set {
	return s | o
}

func (s Set) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Transpose shifts every member up by k semitones.
func (s Set) Transpose(k int) Set {
	var res Set
	for pc := 0; pc < 12; pc++ {
		if s.Has(pc) {
			res = res.Add(pc + k)
		}
	}
	return res
}

// Slice lists members in ascending order.
func (s Set) Slice() []int {
	res := []int{}
	for pc := 0; pc < 12; pc++ {
		if s.Has(pc) {
			res = append(res, pc)
		}
	}
	return res
}

func (s Set) Names() []string {
	res := []string{}
	for _, pc := range s.Slice() {
		res = append(res, PitchClassName(pc))
	}
	return res
}

func PitchClassName(pc int) string {
	return pitchClassNames[mod12(pc)]
}

// NoteName names a midi note with its octave, 60 being C4.
func NoteName(pitch uint8) string {
	return pitchClassNames[pitch%12] + strconv.Itoa(int(pitch)/12-1)
}

// ParsePitchClass accepts names like "C", "c#", "Db" or "Bb".
func ParsePitchClass(name string) (int, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return 0, errors.New("empty pitch class name")
	}
	base := strings.ToUpper(n[:1])
	pc := -1
	for i, pn := range pitchClassNames {
		if pn == base {
			pc = i
			break
		}
	}
	if pc < 0 {
		return 0, errors.Errorf("unknown pitch class %q", name)
	}
	for _, r := range n[1:] {
		switch r {
		case '#':
			pc++
		case 'b':
			pc--
		default:
			return 0, errors.Errorf("unknown pitch class %q", name)
		}
	}
	return mod12(pc), nil
}

func mod12(v int) int {
	return ((v % 12) + 12) % 12
}
