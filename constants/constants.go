package constants

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

func GetIndexDir() string {
	path := os.Getenv("INDEX_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetMediaDir() (string, error) {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path, nil
	}
	return "", errors.New("MEDIA_PATH environment variable is not set")
}

// GetBPM returns the tempo used for tick-to-seconds conversion. Tempo
// meta events in files are not honored.
func GetBPM() float64 {
	if v := os.Getenv("MIDISCALE_BPM"); v != "" {
		if bpm, err := strconv.ParseFloat(v, 64); err == nil && bpm > 0 {
			return bpm
		}
	}
	return DefaultBPM
}

func GetLogLevel() string {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		return v
	}
	return "info"
}

// empty means dynamo is disabled
func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}

func GetDynamoTable() string {
	if v := os.Getenv("DYNAMO_TABLE"); v != "" {
		return v
	}
	return "midiscale-reports"
}

const DefaultBPM = 120.0

const (
	MinMatchScore = 50
	MaxMatches    = 5
)

// number of notes shown per track by inspect
const PreviewNoteCount = 10

const (
	ReportsFilename  = "reports.dat"
	FileNumsFilename = "files.dat"
	BucketsFilename  = "buckets.dat"
)
