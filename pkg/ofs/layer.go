package ofs

// Layer is an opaque, manifest-ordered layer identifier paired with the
// filesystem path to the tar that produced it.
type Layer struct {
	LayerID string `json:"layer_id"`
	Path    string `json:"path"`
}

// NewLayer constructs a Layer.
func NewLayer(layerID, path string) Layer {
	return Layer{LayerID: layerID, Path: path}
}
