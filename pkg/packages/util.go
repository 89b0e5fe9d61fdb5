package packages

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sbchaos/cake/pkg/image"
	"github.com/sbchaos/cake/pkg/ofs"
)

// lastLiveLayer returns the id of the layer holding path's live content:
// the file's base layer if it was never rewritten, or the layer of its
// last non-deleted version otherwise. It returns "", false when every
// version is a deletion.
func lastLiveLayer(o *ofs.OverlayFs, path string) (string, bool) {
	f := o.GetFile(path)
	if f == nil {
		return "", false
	}

	if len(f.Versions) == 0 {
		return f.LayerID, true
	}
	for i := len(f.Versions) - 1; i >= 0; i-- {
		if !f.Versions[i].Deleted {
			return f.Versions[i].LayerID, true
		}
	}
	return "", false
}

// GetFileFromImage reads path's content out of the layer tar that
// lastLiveLayer picks. It returns false if path is not in o, if every
// version record of path is a deletion, if that layer is not registered,
// or if the layer tar has no such entry.
func GetFileFromImage(o *ofs.OverlayFs, path string) (string, bool) {
	layerID, ok := lastLiveLayer(o, path)
	if !ok {
		return "", false
	}

	layer, ok := o.GetLayer(layerID)
	if !ok {
		return "", false
	}
	logrus.Tracef("layer with file %s: %s", path, layerID)

	tarPath := strings.TrimPrefix(path, "/")
	return image.GetFileFromLayer(layer.Path, tarPath)
}

// GetSingleVersionInDir sums the live size of every file under path: a
// file's base size if it was never rewritten, or its last version's size
// otherwise. It is the standard shape of "current cache directory size"
// used by every package manager's waste accounting.
func GetSingleVersionInDir(o *ofs.OverlayFs, path string) uint64 {
	dir := o.GetDir(path)
	if dir == nil {
		return 0
	}

	var wasted uint64
	for _, f := range dir.GetEntries() {
		if len(f.Versions) == 0 {
			wasted += f.Size
			continue
		}
		wasted += f.Versions[len(f.Versions)-1].Size
	}
	return wasted
}
