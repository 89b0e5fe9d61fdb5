package image

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the subset of an OCI image config's runtime settings cake
// surfaces; the rest (ExposedPorts, Volumes, Labels, ...) is not read.
type Config struct {
	Env        []string `json:"Env,omitempty"`
	User       *string  `json:"User,omitempty"`
	Cmd        []string `json:"Cmd,omitempty"`
	WorkingDir *string  `json:"WorkingDir,omitempty"`
}

// History is one build-history entry from an image config.
type History struct {
	Created     string  `json:"created"`
	Author      *string `json:"author,omitempty"`
	CreatedBy   string  `json:"created_by"`
	EmptyLayer  *bool   `json:"empty_layer,omitempty"`
	Comment     *string `json:"comment,omitempty"`
}

// ImageConfig is the parsed contents of the config blob named by a
// manifest's "Config" field.
type ImageConfig struct {
	Config  Config    `json:"config"`
	Created string    `json:"created"`
	History []History `json:"history"`
}

// ImageConfigForImage reads and parses the config blob the manifest
// points at, inside img's extracted directory.
func ImageConfigForImage(img *Image, manifest *Manifest) (*ImageConfig, error) {
	path := img.DirPath() + "/" + manifest.Config
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image config: %w", err)
	}
	var cfg ImageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse image config: %w", err)
	}
	return &cfg, nil
}
