package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/midiscale/constants"
	"github.com/jsphweid/midiscale/midi"
	"github.com/jsphweid/midiscale/model"
	"github.com/jsphweid/midiscale/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Lists the tracks and first notes of a MIDI file",
	Long:  `Lists the tracks and first notes of a MIDI file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := parseOptions()
		if err != nil {
			return err
		}
		f, err := midi.ReadMidiFile(args[0], opts)
		if err != nil {
			return err
		}
		inspect(cmd.OutOrStdout(), f)
		return nil
	},
}

func trackLength(t model.Track) float64 {
	var res float64
	for _, n := range t.Notes {
		if n.End() > res {
			res = n.End()
		}
	}
	return res
}

func inspect(w io.Writer, f *model.MidiFile) {
	fmt.Fprintf(w, "Format: %d\n", f.Format)
	fmt.Fprintf(w, "Declared tracks: %d\n", f.TrackCount)
	fmt.Fprintf(w, "Time division: %d\n", f.TimeDivision)
	for _, s := range f.Skipped {
		fmt.Fprintf(w, "Skipped chunk %d (%q)\n", s.Index, s.ID)
	}

	for _, t := range f.Tracks {
		name := t.Name
		if name == "" {
			name = "Unnamed"
		}
		fmt.Fprintf(w, "\nTrack %d: %s (%d notes, %.3fs)\n", t.Index, name, len(t.Notes), trackLength(t))

		preview := t.Notes
		if len(preview) > constants.PreviewNoteCount {
			preview = preview[:constants.PreviewNoteCount]
		}
		for _, n := range preview {
			fmt.Fprintf(w, "  %-4s vel %3d  start %8.3fs  dur %7.3fs\n",
				scale.NoteName(n.Pitch), n.Velocity, n.StartTime, n.Duration)
		}
		if rest := len(t.Notes) - len(preview); rest > 0 {
			fmt.Fprintf(w, "  ... %d more\n", rest)
		}
	}
}
