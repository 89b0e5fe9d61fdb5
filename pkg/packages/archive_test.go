package packages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbchaos/cake/pkg/ofs"
)

// TestListArchivesFindsSupportedExtensions is a function.
func TestListArchivesFindsSupportedExtensions(t *testing.T) {
	fileNames := []string{
		"abc",
		"arch.zip",
		"kern.7z",
		"files.rar",
		"hosts",
		"java.tar.gz",
		"python.tar.bz",
		"bin",
		"image.tar",
		"foo",
	}

	o := ofs.New()
	for _, n := range fileNames {
		o.AddFile(n, 10, "abc")
	}

	archives := ListArchives(o)

	assert.Len(t, archives, 4)

	var names []string
	for _, f := range archives {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "arch.zip")
	assert.Contains(t, names, "java.tar.gz")
	assert.Contains(t, names, "python.tar.bz")
	assert.Contains(t, names, "image.tar")
}
