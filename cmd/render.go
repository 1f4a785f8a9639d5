package cmd

import (
	"os"
	"strings"

	"github.com/jsphweid/midiscale/logger"
	"github.com/jsphweid/midiscale/model"
	"github.com/jsphweid/midiscale/sample"
	"github.com/jsphweid/midiscale/scale"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	renderOctave int
	renderTPQ    uint16
)

func init() {
	renderCmd.Flags().IntVar(&renderOctave, "octave", 4, "octave of the root note, C4 is middle C")
	renderCmd.Flags().Uint16Var(&renderTPQ, "ticks", 480, "ticks per quarter note")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render SCALE ROOT OUT.mid",
	Short: "Writes a MIDI file playing a scale",
	Long:  `Writes a MIDI file playing a scale, e.g. render "Dorian" D dorian.mid`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := findScale(args[0])
		if err != nil {
			return err
		}
		root, err := scale.ParsePitchClass(args[1])
		if err != nil {
			return err
		}
		return render(def, root, args[2])
	},
}

func findScale(name string) (model.ScaleDefinition, error) {
	if def, ok := scale.Lookup(name); ok {
		return def, nil
	}
	for _, def := range scale.Library() {
		if strings.EqualFold(def.Name, name) {
			return def, nil
		}
	}
	return model.ScaleDefinition{}, errors.Errorf("unknown scale %q", name)
}

func render(def model.ScaleDefinition, root int, out string) error {
	s, err := sample.Scale(def, root, renderOctave, renderTPQ)
	if err != nil {
		return err
	}
	data, err := sample.Bytes(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0666); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	logger.GetLogger().WithFields(logrus.Fields{
		"scale": def.Name,
		"root":  scale.PitchClassName(root),
		"file":  out,
	}).Info("rendered scale")
	return nil
}
