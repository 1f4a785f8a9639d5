package bucket

import (
	"path/filepath"
	"strings"

	"github.com/jsphweid/midiscale/analysis"
	"github.com/jsphweid/midiscale/logger"
	"github.com/jsphweid/midiscale/midi"
	"github.com/jsphweid/midiscale/model"
	"github.com/jsphweid/midiscale/util"
	"github.com/sirupsen/logrus"
)

// Progress is called after each file with the 1-based count done.
type Progress func(done, total int)

func processMidiFile(root string, fileNum uint32, filename string, opts midi.Options) model.FileReport {
	res := model.FileReport{FileNum: fileNum, Path: filename}
	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, filename)
	}

	parsed, err := midi.ReadMidiFile(path, opts)
	if err != nil {
		logger.GetLogger().WithFields(logrus.Fields{
			"file": filename,
		}).WithError(err).Warn("skipping file")
		res.Error = err.Error()
		return res
	}

	res.Report = analysis.Analyze(parsed)
	return res
}

// ProcessAllMidiFiles parses and analyzes every file in m, in file number
// order. Files that fail to parse keep their error on the report.
func ProcessAllMidiFiles(root string, m model.FileNumToMidiPath, opts midi.Options, progress Progress) []model.FileReport {
	keys := util.SortedKeys(m)
	res := make([]model.FileReport, 0, len(keys))
	for i, num := range keys {
		res = append(res, processMidiFile(root, num, m[num], opts))
		if progress != nil {
			progress(i+1, len(keys))
		}
	}
	return res
}

// Key normalizes a scale key for lookups, so "c  major (ionian)" finds
// "C Major (Ionian)".
func Key(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Build groups files by their best scale match. Failed files and files
// without a match are left out.
func Build(reports []model.FileReport) model.BucketIndex {
	res := make(model.BucketIndex)
	for _, r := range reports {
		if r.Error != "" {
			continue
		}
		best, ok := analysis.BestMatch(r.Report)
		if !ok {
			continue
		}
		k := Key(best.Key())
		res[k] = append(res[k], r.FileNum)
	}
	return res
}

func Lookup(index model.BucketIndex, key string) []uint32 {
	return index[Key(key)]
}

func Save(path string, index model.BucketIndex) error {
	return util.CreateBinary(path, index)
}

func Load(path string) (model.BucketIndex, error) {
	return util.ReadBinary[model.BucketIndex](path)
}
