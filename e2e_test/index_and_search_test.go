//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/midiscale/cmd"
	"github.com/jsphweid/midiscale/midi"
	"github.com/jsphweid/midiscale/model"
	"github.com/jsphweid/midiscale/sample"
	"github.com/jsphweid/midiscale/scale"
	"github.com/stretchr/testify/assert"
)

func writeScale(dir, name, scaleName string, root int) {
	def, ok := scale.Lookup(scaleName)
	if !ok {
		panic("unknown scale " + scaleName)
	}
	s, err := sample.Scale(def, root, 4, 480)
	if err != nil {
		panic(err)
	}
	data, err := sample.Bytes(s)
	if err != nil {
		panic(err)
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	media, err := os.MkdirTemp("", "midiscale-media")
	if err != nil {
		panic(err)
	}
	index, err := os.MkdirTemp("", "midiscale-index")
	if err != nil {
		panic(err)
	}
	os.Setenv("MEDIA_PATH", media)
	os.Setenv("INDEX_PATH", index)

	writeScale(media, "a.mid", "Major (Ionian)", 0)
	writeScale(media, "nested/b.mid", "Major (Ionian)", 0)
	writeScale(media, "c.MID", "Blues", 9)
	if err := os.WriteFile(filepath.Join(media, "broken.mid"), []byte("MThd"), 0666); err != nil {
		panic(err)
	}

	if err := cmd.Index(0, midi.DefaultOptions()); err != nil {
		panic(err)
	}
	if err := cmd.LoadServeFiles(); err != nil {
		panic(err)
	}

	exitVal := m.Run()

	os.RemoveAll(media)
	os.RemoveAll(index)
	os.Exit(exitVal)
}

func getBucket(t *testing.T, key string) (int, model.BucketResponse) {
	req := httptest.NewRequest(http.MethodGet, "/buckets/"+strings.ReplaceAll(key, " ", "%20"), nil)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	var res model.BucketResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.Unmarshal(respBody, &res); err != nil {
			t.Fatal(err)
		}
	}
	return resp.StatusCode, res
}

func TestMajorBucketE2E(t *testing.T) {
	status, res := getBucket(t, "C Major (Ionian)")

	assert := assert.New(t)
	assert.Equal(http.StatusOK, status)
	assert.Equal(model.BucketResponse{
		Key:   "c major (ionian)",
		Files: []string{"a.mid", filepath.Join("nested", "b.mid")},
	}, res)
}

func TestBluesBucketE2E(t *testing.T) {
	status, res := getBucket(t, "a blues")

	assert := assert.New(t)
	assert.Equal(http.StatusOK, status)
	assert.Equal([]string{"c.MID"}, res.Files)
}

func TestMissingBucketE2E(t *testing.T) {
	status, _ := getBucket(t, "F Dorian")
	assert.Equal(t, http.StatusNotFound, status)
}
