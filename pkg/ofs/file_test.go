package ofs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAddVersionForAFile is a function.
func TestAddVersionForAFile(t *testing.T) {
	file := NewFileInfo("name", 10, "", "")

	file.AddVersion(20, "lay2")
	assert.Len(t, file.Versions, 1)
	assert.EqualValues(t, 30, file.TotalSize)
}

// TestMarksFileForDelete is a function.
func TestMarksFileForDelete(t *testing.T) {
	file := NewFileInfo("name", 10, "", "")

	file.Delete("lay2")
	assert.Len(t, file.Versions, 1)
	assert.EqualValues(t, 10, file.TotalSize)
	assert.True(t, file.IsDeleted())
}

// TestGetsTheSizeOfFiles is a function.
func TestGetsTheSizeOfFiles(t *testing.T) {
	multi := NewFileInfo("/", 200, "", "/")
	multi.AddVersion(200, "lay2")
	multi.AddVersion(50, "lay3")

	assert.EqualValues(t, 450, multi.TotalSize)
	assert.False(t, multi.IsDeleted())
}

// TestTipSize is a function.
func TestTipSize(t *testing.T) {
	versionLess := NewFileInfo("a", 100, "lay1", "/")
	assert.EqualValues(t, 100, versionLess.TipSize())

	withVersions := NewFileInfo("b", 100, "lay1", "/")
	withVersions.AddVersion(40, "lay2")
	assert.EqualValues(t, 40, withVersions.TipSize())
}
