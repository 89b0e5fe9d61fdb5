package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseInspectReadsFirstResult is a function.
func TestParseInspectReadsFirstResult(t *testing.T) {
	raw := []byte(`[{"Id":"sha256:abc","RepoTags":["alpine:latest"],"Size":123,"RootFS":{"Type":"layers","Layers":["sha256:l1","sha256:l2"]}}]`)

	inspect, err := ParseInspect(raw)

	assert.NoError(t, err)
	assert.Equal(t, "sha256:abc", inspect.ID)
	assert.Equal(t, []string{"alpine:latest"}, inspect.RepoTags)
	assert.EqualValues(t, 123, inspect.Size)
	assert.Equal(t, "layers", inspect.RootFS.Type)
	assert.Len(t, inspect.RootFS.Layers, 2)
}

// TestParseInspectRejectsEmptyArray is a function.
func TestParseInspectRejectsEmptyArray(t *testing.T) {
	_, err := ParseInspect([]byte(`[]`))
	assert.Error(t, err)
}
