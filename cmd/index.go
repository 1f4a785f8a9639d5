package cmd

import (
	"strconv"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/midiscale/bucket"
	"github.com/jsphweid/midiscale/constants"
	"github.com/jsphweid/midiscale/db"
	"github.com/jsphweid/midiscale/file"
	"github.com/jsphweid/midiscale/logger"
	"github.com/jsphweid/midiscale/midi"
	"github.com/jsphweid/midiscale/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [max]",
	Short: "Analyzes every MIDI file under MEDIA_PATH",
	Long: `Analyzes every MIDI file under MEDIA_PATH and writes the reports,
the file numbers and the scale buckets to INDEX_PATH. Reports are also
stored in DynamoDB when DYNAMO_ENDPOINT is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return errors.Errorf("max must be a non-negative number, got %q", args[0])
			}
			maxNum = n
		}
		opts, err := parseOptions()
		if err != nil {
			return err
		}
		return Index(maxNum, opts)
	},
}

// Index rebuilds the index directory from MEDIA_PATH. A maxNum of 0
// indexes every file.
func Index(maxNum int, opts midi.Options) error {
	log := logger.GetLogger().WithField("run", uuid.New().String())

	root, err := constants.GetMediaDir()
	if err != nil {
		return err
	}
	if err := util.RecreateOutputDir(); err != nil {
		return err
	}

	paths, err := util.GatherAllMidiPaths(root, maxNum)
	if err != nil {
		return err
	}
	log.WithField("files", len(paths)).Info("indexing")

	fileNumMap := file.CreateFileNumMap(root, paths)
	progress, finish := newProgress(log, time.Second)
	reports := bucket.ProcessAllMidiFiles(root, fileNumMap, opts, progress)
	finish(len(reports), len(paths))

	buckets := bucket.Build(reports)
	var failed int
	for _, r := range reports {
		if r.Error != "" {
			failed++
		}
	}

	if err := util.CreateBinary(util.GetReportsPath(), reports); err != nil {
		return err
	}
	if err := util.CreateBinary(util.GetFileNumsPath(), fileNumMap); err != nil {
		return err
	}
	if err := bucket.Save(util.GetBucketsPath(), buckets); err != nil {
		return err
	}

	if endpoint := constants.GetDynamoEndpoint(); endpoint != "" {
		store, err := db.New(endpoint, constants.GetDynamoTable())
		if err != nil {
			return err
		}
		if err := store.PutReports(reports); err != nil {
			return err
		}
		log.WithField("table", constants.GetDynamoTable()).Info("stored reports in DynamoDB")
	}

	log.WithFields(logrus.Fields{
		"files":   len(reports),
		"failed":  failed,
		"buckets": len(buckets),
	}).Info("index complete")
	return nil
}

// newProgress logs progress at most once per quiet period. finish drops any
// pending line and logs the final count, so nothing is logged after it.
func newProgress(log logrus.FieldLogger, after time.Duration) (bucket.Progress, func(done, total int)) {
	debounced := debounce.New(after)
	logProgress := func(done, total int) {
		log.WithFields(logrus.Fields{"done": done, "total": total}).Info("progress")
	}
	progress := func(done, total int) {
		debounced(func() { logProgress(done, total) })
	}
	finish := func(done, total int) {
		debounced(func() {})
		logProgress(done, total)
	}
	return progress, finish
}
