package analysis

import (
	"github.com/jsphweid/midiscale/model"
	"github.com/jsphweid/midiscale/scale"
)

// Analyze reports pitch-class usage and candidate scales for every track
// that has notes. When more than one track has notes, a combined section
// covers their union.
func Analyze(f *model.MidiFile) model.Report {
	return AnalyzeTracks(f.Tracks)
}

func AnalyzeTracks(tracks []model.Track) model.Report {
	res := model.Report{Tracks: []model.TrackReport{}}

	var all scale.Set
	var total int
	for _, t := range tracks {
		if len(t.Notes) == 0 {
			continue
		}
		pcs := scale.FromNotes(t.Notes)
		res.Tracks = append(res.Tracks, trackReport(t.Index, t.Name, len(t.Notes), pcs))
		all = all.Union(pcs)
		total += len(t.Notes)
	}

	if len(res.Tracks) > 1 {
		combined := trackReport(-1, "All Tracks Combined", total, all)
		res.Combined = &combined
	}
	return res
}

func trackReport(index int, name string, noteCount int, pcs scale.Set) model.TrackReport {
	return model.TrackReport{
		Index:        index,
		Name:         name,
		NoteCount:    noteCount,
		PitchClasses: pcs.Slice(),
		NoteNames:    pcs.Names(),
		Matches:      scale.Match(pcs),
	}
}

// BestMatch is the top match of the combined section, or of the only
// analyzed track.
func BestMatch(r model.Report) (model.ScaleMatch, bool) {
	var matches []model.ScaleMatch
	switch {
	case r.Combined != nil:
		matches = r.Combined.Matches
	case len(r.Tracks) == 1:
		matches = r.Tracks[0].Matches
	}
	if len(matches) == 0 {
		return model.ScaleMatch{}, false
	}
	return matches[0], true
}
