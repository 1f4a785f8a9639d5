package scale

import (
	"math"

	"github.com/jsphweid/midiscale/constants"
	"github.com/jsphweid/midiscale/model"
	"golang.org/x/exp/slices"
)

// Match scores pcs against every scale of the library at all 12 roots and
// returns the best matches, highest score first.
func Match(pcs Set) []model.ScaleMatch {
	return MatchAgainst(pcs, library)
}

// MatchAgainst is Match with a caller-supplied scale library.
//
// A pair's score is the mean of how much of the scale is used and how much
// of what is used fits the scale. Pairs under constants.MinMatchScore are
// dropped before rounding (half to even) and at most constants.MaxMatches
// are returned. Equal scores keep library order, then root order.
func MatchAgainst(pcs Set, defs []model.ScaleDefinition) []model.ScaleMatch {
	res := []model.ScaleMatch{}
	if pcs.Len() == 0 {
		return res
	}

	for _, def := range defs {
		for root := 0; root < 12; root++ {
			combined := Score(pcs, def, root)
			if combined < constants.MinMatchScore {
				continue
			}
			res = append(res, model.ScaleMatch{
				ScaleName: def.Name,
				Root:      PitchClassName(root),
				Score:     math.RoundToEven(combined),
			})
		}
	}

	slices.SortStableFunc(res, func(a, b model.ScaleMatch) bool {
		return a.Score > b.Score
	})
	if len(res) > constants.MaxMatches {
		res = res[:constants.MaxMatches]
	}
	return res
}

// Score is the unrounded score of def at root against pcs, or 0 when
// either side is empty.
func Score(pcs Set, def model.ScaleDefinition, root int) float64 {
	used := pcs.Len()
	if used == 0 || len(def.Pattern) == 0 {
		return 0
	}
	matched := (pcs & NewSet(def.Pattern...).Transpose(root)).Len()
	completeness := float64(matched) / float64(len(def.Pattern)) * 100
	fit := float64(matched) / float64(used) * 100
	return (completeness + fit) / 2
}
