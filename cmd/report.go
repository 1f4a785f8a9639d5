package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/midiscale/bucket"
	"github.com/jsphweid/midiscale/model"
	"github.com/jsphweid/midiscale/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarizes the index on disk",
	Long:  `Summarizes the index on disk`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, err := util.ReadBinary[[]model.FileReport](util.GetReportsPath())
		if err != nil {
			return err
		}
		buckets, err := bucket.Load(util.GetBucketsPath())
		if err != nil {
			return err
		}
		report(cmd.OutOrStdout(), reports, buckets)
		return nil
	},
}

type indexSummary struct {
	numFiles    int
	numFailed   int
	numNotes    []int
	numUnbucket int
}

func summarize(reports []model.FileReport, buckets model.BucketIndex) indexSummary {
	var s indexSummary
	s.numFiles = len(reports)
	for _, r := range reports {
		if r.Error != "" {
			s.numFailed++
			continue
		}
		var notes int
		for _, t := range r.Report.Tracks {
			notes += t.NoteCount
		}
		s.numNotes = append(s.numNotes, notes)
	}

	var bucketed int
	for _, nums := range buckets {
		bucketed += len(nums)
	}
	s.numUnbucket = s.numFiles - s.numFailed - bucketed
	return s
}

func report(w io.Writer, reports []model.FileReport, buckets model.BucketIndex) {
	s := summarize(reports, buckets)
	fmt.Fprintf(w, "files: %v\n", s.numFiles)
	fmt.Fprintf(w, "failed: %v\n", s.numFailed)
	fmt.Fprintf(w, "notes: %v\n", util.Sum(s.numNotes))
	fmt.Fprintf(w, "files without a scale: %v\n", s.numUnbucket)
	fmt.Fprintf(w, "buckets: %v\n", len(buckets))
	for _, key := range util.SortedKeys(buckets) {
		fmt.Fprintf(w, "  %v: %v\n", key, len(buckets[key]))
	}
}
