package packages

import (
	"archive/tar"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbchaos/cake/pkg/ofs"
)

func writeLayerTar(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layer.tar")
	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()

	tw := tar.NewWriter(f)
	defer tw.Close()

	for name, content := range entries {
		hdr := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(content))}
		assert.NoError(t, tw.WriteHeader(hdr))
		_, err := tw.Write([]byte(content))
		assert.NoError(t, err)
	}
	return path
}

// TestGetFileFromImageReadsLiveVersion is a function.
func TestGetFileFromImageReadsLiveVersion(t *testing.T) {
	path := writeLayerTar(t, map[string]string{
		"etc/os-release": "NAME=alpine",
	})

	o := ofs.New()
	o.AddLayer(ofs.NewLayer("L1", path))
	o.AddFile("/etc/os-release", 11, "L1")

	content, ok := GetFileFromImage(o, "/etc/os-release")

	assert.True(t, ok)
	assert.Equal(t, "NAME=alpine", content)
}

// TestGetFileFromImageReturnsFalseWhenDeleted is a function.
func TestGetFileFromImageReturnsFalseWhenDeleted(t *testing.T) {
	o := ofs.New()
	o.AddFile("/a/b", 10, "L1")
	o.AddFile("/a/.wh.b", 0, "L2")

	_, ok := GetFileFromImage(o, "/a/b")

	assert.False(t, ok)
}

// TestGetSingleVersionInDirSumsLiveSizes is a function.
func TestGetSingleVersionInDirSumsLiveSizes(t *testing.T) {
	o := ofs.New()
	o.AddFile("/var/cache/apk/a", 100, "L1")
	o.AddFile("/var/cache/apk/b", 200, "L1")
	o.AddFile("/var/cache/apk/a", 50, "L2")

	wasted := GetSingleVersionInDir(o, "/var/cache/apk/")

	assert.EqualValues(t, 250, wasted)
}
