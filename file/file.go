package file

import (
	"path/filepath"

	"github.com/jsphweid/midiscale/model"
)

// CreateFileNumMap numbers paths in order, storing them relative to root
// when possible so an index survives moving the media directory.
func CreateFileNumMap(root string, paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		if rel, err := filepath.Rel(root, v); err == nil {
			v = rel
		}
		res[uint32(i)] = v
	}
	return res
}
