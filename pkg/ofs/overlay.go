package ofs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Whiteout is the tar basename prefix that marks a lower-layer path as
// deleted. Only this basic ".wh.<name>" form is understood; opaque
// directory markers (".wh..wh..opq") and xattr-based whiteouts are not.
const Whiteout = ".wh."

// OverlayFs owns the reconstructed root directory and the registry of
// layers that contributed to it. It is built up during ingestion by a
// single owner, then frozen and handed to read-only borrowers (the
// efficiency analyzer, the package inspectors, the report serializer).
type OverlayFs struct {
	Root   *Directory        `json:"root"`
	Layers map[string]Layer  `json:"layers"`
}

// New returns an empty overlay filesystem, ready for ingestion.
func New() *OverlayFs {
	return &OverlayFs{
		Root:   NewDirectory("/"),
		Layers: map[string]Layer{},
	}
}

// AddLayer registers a layer. The orchestrator calls this once per
// manifest entry, independent of entry ingestion.
func (o *OverlayFs) AddLayer(layer Layer) {
	o.Layers[layer.LayerID] = layer
}

// GetLayer looks up a registered layer by id.
func (o *OverlayFs) GetLayer(layerID string) (Layer, bool) {
	l, ok := o.Layers[layerID]
	return l, ok
}

// Size returns the root directory's rolled-up size. Only meaningful after
// UpdateSizes has run.
func (o *OverlayFs) Size() uint64 {
	return o.Root.Size
}

// AddFile ingests one tar entry. Whiteout entries (basenames starting
// with Whiteout) are translated into a deletion of the path they shadow
// instead of being inserted as files; their tar size is discarded.
func (o *OverlayFs) AddFile(path string, size uint64, layerID string) {
	parent, name := SplitLast(path)
	if strings.HasPrefix(name, Whiteout) {
		target := parent + strings.TrimPrefix(name, Whiteout)
		logrus.Tracef("received deleted file %s, removing %s", path, target)
		o.Root.MarkForDelete(target, layerID)
		return
	}
	o.Root.AddFile(path, size, layerID)
}

// AddDir ingests a directory-kind tar entry.
func (o *OverlayFs) AddDir(path string) {
	o.Root.AddDirPath(path)
}

// ShowAsTree prints the whole reconstructed filesystem.
func (o *OverlayFs) ShowAsTree() {
	fmt.Println("/")
	o.Root.ShowDir(0)
}

// UpdateSizes rolls up directory sizes bottom-up. Called exactly once,
// after the last layer has been ingested.
func (o *OverlayFs) UpdateSizes() {
	o.Root.UpdateSizes()
}

// Entries flattens every file in the tree.
func (o *OverlayFs) Entries() []*FileInfo {
	return o.Root.GetEntries()
}

// GetDir looks up a directory by path.
func (o *OverlayFs) GetDir(path string) *Directory {
	return o.Root.GetDir(path)
}

// GetFile looks up a file by path.
func (o *OverlayFs) GetFile(path string) *FileInfo {
	return o.Root.GetFile(path)
}

// SaveTreeToJSON serializes the overlay to "<image>.json". Sizes are
// written verbatim; reloading trusts them rather than recomputing.
func (o *OverlayFs) SaveTreeToJSON(image string) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal overlay tree: %w", err)
	}
	return os.WriteFile(image+".json", data, 0o644)
}

// CreateFsFromJSON deserializes an overlay from "<image>.json". A
// malformed or missing document is reported as an error; callers treat it
// as "no cached tree" and fall through to the next ingestion option.
func CreateFsFromJSON(image string) (*OverlayFs, error) {
	data, err := os.ReadFile(image + ".json")
	if err != nil {
		return nil, err
	}
	var ofs OverlayFs
	if err := json.Unmarshal(data, &ofs); err != nil {
		return nil, err
	}
	return &ofs, nil
}
