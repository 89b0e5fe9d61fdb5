package analysis

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbchaos/cake/pkg/image"
	"github.com/sbchaos/cake/pkg/ofs"
)

// TestCreateReportComputesScore is a function.
func TestCreateReportComputesScore(t *testing.T) {
	o := ofs.New()
	o.AddFile("/a", 900, "L1")
	o.AddFile("/b", 100, "L1")
	o.AddFile("/a", 0, "L2")
	o.UpdateSizes()

	img := image.NewImage("myimage", "abc123")
	report := CreateReport(o, img, nil)

	assert.EqualValues(t, 1000, report.TotalSpace)
	assert.EqualValues(t, 900, report.WastedSpace)
	assert.EqualValues(t, 10, report.Score)
}

// TestCreateReportZeroSizeFilesystemScoresHundred is a function.
func TestCreateReportZeroSizeFilesystemScoresHundred(t *testing.T) {
	o := ofs.New()
	o.UpdateSizes()

	img := image.NewImage("empty", "zzz")
	report := CreateReport(o, img, nil)

	assert.EqualValues(t, 100, report.Score)
}

// TestSaveAndLoadReportRoundTrips is a function.
func TestSaveAndLoadReportRoundTrips(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	assert.NoError(t, os.Chdir(dir))

	o := ofs.New()
	o.AddFile("/a", 100, "L1")
	o.UpdateSizes()

	img := image.NewImage("myimage", "abc123")
	report := CreateReport(o, img, nil)

	assert.NoError(t, report.SaveAsJSON())

	loaded, err := LoadReport(img)
	assert.NoError(t, err)
	assert.Equal(t, report.Score, loaded.Score)
	assert.Equal(t, report.TotalSpace, loaded.TotalSpace)
}
