package image

import "encoding/json"

// ImageMetadata mirrors the small slice of "docker inspect" metadata cake
// reads off a live image.
type ImageMetadata struct {
	LastTagTime string `json:"LastTagTime,omitempty"`
}

// RootFS is the rootfs section of a "docker inspect" document: the
// overlay type and the diff ids of the layers that compose it.
type RootFS struct {
	Type      string   `json:"Type"`
	Layers    []string `json:"Layers"`
	BaseLayer *string  `json:"BaseLayer,omitempty"`
}

// ImageInspect is the subset of "docker image inspect" cake parses. It is
// hand-rolled rather than imported from a Docker client SDK: cake only
// ever reads it, one field at a time, and a local type keeps that
// contract pinned regardless of which engine's CLI produced the JSON.
type ImageInspect struct {
	ID          string        `json:"Id"`
	RepoTags    []string      `json:"RepoTags"`
	RepoDigests []string      `json:"RepoDigests"`
	Size        int64         `json:"Size"`
	Metadata    ImageMetadata `json:"Metadata"`
	Config      Config        `json:"Config"`
	RootFS      RootFS        `json:"RootFS"`
}

// ParseInspect parses the output of "docker image inspect <ref>", which
// docker always returns as a single-element JSON array.
func ParseInspect(data []byte) (*ImageInspect, error) {
	var results []ImageInspect
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errNoInspectResult
	}
	return &results[0], nil
}

var errNoInspectResult = inspectError("docker inspect returned no results")

type inspectError string

func (e inspectError) Error() string { return string(e) }
