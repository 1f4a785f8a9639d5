package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/midiscale/analysis"
	"github.com/jsphweid/midiscale/bucket"
	"github.com/jsphweid/midiscale/logger"
	"github.com/jsphweid/midiscale/midi"
	"github.com/jsphweid/midiscale/model"
	"github.com/jsphweid/midiscale/scale"
	"github.com/jsphweid/midiscale/util"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// largest SMF accepted by POST /analyze
const maxUploadBytes = 16 << 20

var (
	serveAddr   string
	serveOpts   = midi.DefaultOptions()
	fileNumMap  model.FileNumToMidiPath
	bucketIndex model.BucketIndex
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves analysis and the scale index over HTTP",
	Long:  `Serves analysis and the scale index over HTTP`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := parseOptions()
		if err != nil {
			return err
		}
		serveOpts = opts
		if err := LoadServeFiles(); err != nil {
			logger.GetLogger().WithError(err).Warn("no index loaded, /buckets will be empty")
		}
		logger.GetLogger().WithField("addr", serveAddr).Info("listening")
		return http.ListenAndServe(serveAddr, NewRouter())
	},
}

// LoadServeFiles reads the file numbers and buckets written by index.
func LoadServeFiles() error {
	nums, err := util.ReadBinary[model.FileNumToMidiPath](util.GetFileNumsPath())
	if err != nil {
		return err
	}
	buckets, err := bucket.Load(util.GetBucketsPath())
	if err != nil {
		return err
	}
	fileNumMap, bucketIndex = nums, buckets
	return nil
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods(http.MethodPost)
	router.HandleFunc("/scales", HandleScales).Methods(http.MethodPost)
	router.HandleFunc("/buckets/{key}", HandleBuckets).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.GetLogger().WithError(err).Warn("could not write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// HandleAnalyze takes a raw SMF body and responds with its tracks and
// scale report.
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	log := logger.GetLogger().WithField("request", id)

	p, err := midi.NewParser(serveOpts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	f, err := p.ParseReader(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		log.WithError(err).Debug("rejected upload")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := model.AnalyzeResponse{
		ID:           id,
		Format:       f.Format,
		TimeDivision: f.TimeDivision,
		Tracks:       make([]model.TrackSummary, 0, len(f.Tracks)),
		Skipped:      f.Skipped,
		Report:       analysis.Analyze(f),
	}
	for _, t := range f.Tracks {
		res.Tracks = append(res.Tracks, model.TrackSummary{
			Index:     t.Index,
			Name:      t.Name,
			NoteCount: len(t.Notes),
			Length:    trackLength(t),
		})
	}
	log.WithFields(logrus.Fields{"tracks": len(f.Tracks)}).Debug("analyzed upload")
	writeJSON(w, http.StatusOK, res)
}

func HandleScales(w http.ResponseWriter, r *http.Request) {
	var input model.ScalesRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	for _, pc := range input.PitchClasses {
		if pc < 0 || pc > 11 {
			writeError(w, http.StatusBadRequest, "pitch classes must be between 0 and 11")
			return
		}
	}
	writeJSON(w, http.StatusOK, model.ScalesResponse{
		Matches: scale.Match(scale.NewSet(input.PitchClasses...)),
	})
}

// HandleBuckets lists the indexed files whose best match is the key, e.g.
// /buckets/C%20Major%20(Ionian).
func HandleBuckets(w http.ResponseWriter, r *http.Request) {
	key := bucket.Key(mux.Vars(r)["key"])
	nums, ok := bucketIndex[key]
	if !ok {
		writeError(w, http.StatusNotFound, "no files for "+key)
		return
	}
	res := model.BucketResponse{Key: key, Files: make([]string, 0, len(nums))}
	for _, n := range nums {
		res.Files = append(res.Files, fileNumMap[n])
	}
	writeJSON(w, http.StatusOK, res)
}
