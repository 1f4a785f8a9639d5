package cmd

import (
	"github.com/jsphweid/midiscale/constants"
	"github.com/jsphweid/midiscale/logger"
	"github.com/jsphweid/midiscale/midi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	logLevel           string
	bpm                float64
	nameEncoding       string
	strictZeroVelocity bool
)

var rootCmd = &cobra.Command{
	Use:   "midiscale",
	Short: "Parses MIDI files and guesses their scales",
	Long: `midiscale decodes Standard MIDI Files into per-track notes and ranks
the scales that best explain the pitch classes each track uses.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.InitLogger(logLevel)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
	flags.Float64Var(&bpm, "bpm", constants.GetBPM(), "fixed tempo used to convert ticks to seconds")
	flags.StringVar(&nameEncoding, "encoding", midi.EncodingAuto, "track name encoding: auto, utf-8, shift-jis or latin1")
	flags.BoolVar(&strictZeroVelocity, "strict-zero-velocity", false, "drop notes ended by a velocity-0 note-on")
}

func parseOptions() (midi.Options, error) {
	if bpm <= 0 {
		return midi.Options{}, errors.Errorf("bpm must be positive, got %v", bpm)
	}
	opts := midi.DefaultOptions()
	opts.SecondsPerQuarterNote = midi.SecondsPerQuarterNote(bpm)
	opts.NameEncoding = nameEncoding
	opts.DropZeroVelocityOffs = strictZeroVelocity
	return opts, nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
