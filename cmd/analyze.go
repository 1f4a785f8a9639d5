package cmd

import (
	"encoding/json"

	"github.com/jsphweid/midiscale/analysis"
	"github.com/jsphweid/midiscale/midi"
	"github.com/spf13/cobra"
)

var analyzeJSON bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Prints the likely scales of each track",
	Long:  `Prints the likely scales of each track`,
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

		r := analysis.Analyze(f)
		if analyzeJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		}
		return analysis.Write(cmd.OutOrStdout(), r)
	},
}
