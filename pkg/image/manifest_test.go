package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestManifestFromBytesReadsFirstEntry is a function.
func TestManifestFromBytesReadsFirstEntry(t *testing.T) {
	raw := []byte(`[{"Config":"config.json","RepoTags":["alpine:latest"],"Layers":["a.tar","b.tar"]}]`)

	m, err := ManifestFromBytes(raw)

	assert.NoError(t, err)
	assert.Equal(t, "config.json", m.Config)
	assert.Equal(t, []string{"alpine:latest"}, m.RepoTags)
	assert.Equal(t, []string{"a.tar", "b.tar"}, m.Layers)
}

// TestManifestFromBytesRejectsEmptyArray is a function.
func TestManifestFromBytesRejectsEmptyArray(t *testing.T) {
	_, err := ManifestFromBytes([]byte(`[]`))
	assert.Error(t, err)
}

// TestManifestFromBytesRejectsMalformedJSON is a function.
func TestManifestFromBytesRejectsMalformedJSON(t *testing.T) {
	_, err := ManifestFromBytes([]byte(`not json`))
	assert.Error(t, err)
}
