package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/midiscale/model"
)

// Write renders a report as plain text.
func Write(w io.Writer, r model.Report) error {
	var b strings.Builder
	b.WriteString("MIDI Scale Analysis:\n")

	if len(r.Tracks) == 0 {
		b.WriteString("\nNo notes found.\n")
	}
	for _, t := range r.Tracks {
		name := t.Name
		if name == "" {
			name = "Unnamed"
		}
		fmt.Fprintf(&b, "\nTrack %d: %s\n", t.Index, name)
		writeSection(&b, t)
	}
	if r.Combined != nil {
		b.WriteString("\nAll Tracks Combined:\n")
		writeSection(&b, *r.Combined)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, t model.TrackReport) {
	fmt.Fprintf(b, "Notes used: %d/12\n", len(t.PitchClasses))
	fmt.Fprintf(b, "Notes: %s\n", strings.Join(t.NoteNames, " "))
	b.WriteString("Possible scales:\n")
	if len(t.Matches) == 0 {
		b.WriteString("- none\n")
	}
	for _, m := range t.Matches {
		fmt.Fprintf(b, "- %s (%s, %g%%)\n", m.ScaleName, m.Root, m.Score)
	}
}
