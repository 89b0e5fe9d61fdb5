package image

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is one entry of a "docker save" tar's manifest.json. A saved
// image's manifest is always an array; cake only ever deals with a single
// image per tar, so it reads the first element and ignores the rest.
type Manifest struct {
	Config   string   `json:"Config"`
	RepoTags []string `json:"RepoTags,omitempty"`
	Layers   []string `json:"Layers"`
}

// ManifestFromBytes parses the first manifest entry out of raw
// manifest.json bytes.
func ManifestFromBytes(data []byte) (*Manifest, error) {
	var manifests []Manifest
	if err := json.Unmarshal(data, &manifests); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(manifests) == 0 {
		return nil, fmt.Errorf("manifest.json has no entries")
	}
	return &manifests[0], nil
}

// ManifestForImage reads and parses the manifest.json inside img's
// extracted directory.
func ManifestForImage(img *Image) (*Manifest, error) {
	data, err := os.ReadFile(img.ManifestPath())
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ManifestFromBytes(data)
}
