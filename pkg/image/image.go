// Package image resolves a user-supplied image reference to a concrete
// on-disk source (a cached report, a cached tree, an extracted directory,
// a saved tar, or the docker CLI itself) and carries the path helpers the
// rest of cake uses to locate an image's files.
package image

import (
	"fmt"
	"os"
)

// Source names where an image's filesystem was, or will be, read from.
type Source int

const (
	// SourceNone means no cached artifact exists yet; the image must be
	// fetched through the external tool.
	SourceNone Source = iota
	// SourceReport is a previously saved "<id>_report.json" analysis.
	SourceReport
	// SourceTree is a previously saved "<id>.json" overlay tree.
	SourceTree
	// SourceDir is a previously extracted "<id>/" directory.
	SourceDir
	// SourceTar is a previously saved "<id>.tar" image export.
	SourceTar
	// SourceDocker means nothing is cached; the image is reachable
	// through the external tool and must be fetched before anything
	// else can run.
	SourceDocker
)

func (s Source) String() string {
	switch s {
	case SourceReport:
		return "report"
	case SourceTree:
		return "tree"
	case SourceDir:
		return "dir"
	case SourceTar:
		return "tar"
	case SourceDocker:
		return "docker"
	default:
		return "none"
	}
}

// Image identifies one container image under analysis: the reference the
// user passed in, the resolved image id used to name cached artifacts,
// and the source that produced (or will produce) its filesystem.
type Image struct {
	Name    string
	ImageID string
	Source  Source
}

// NewImage wraps a resolved id with no cached source yet.
func NewImage(name, imageID string) *Image {
	return &Image{Name: name, ImageID: imageID, Source: SourceNone}
}

// ReportPath is where a saved analysis report lives.
func (i *Image) ReportPath() string {
	return i.ImageID + "_report.json"
}

// TreePath is where a saved overlay tree lives.
func (i *Image) TreePath() string {
	return i.ImageID + ".json"
}

// DirPath is where an extracted image lives.
func (i *Image) DirPath() string {
	return i.ImageID
}

// TarPath is where a saved image export lives.
func (i *Image) TarPath() string {
	return i.ImageID + ".tar"
}

// ManifestPath is the manifest.json inside an extracted image directory.
func (i *Image) ManifestPath() string {
	return i.DirPath() + "/manifest.json"
}

// ResolveSource probes the filesystem in cache-precedence order - report,
// tree, dir, tar - and sets Source to the first one found. It leaves
// Source at SourceNone, without error, when nothing is cached; the
// caller falls through to fetching the image with the external tool.
func (i *Image) ResolveSource() {
	switch {
	case exists(i.ReportPath()):
		i.Source = SourceReport
	case exists(i.TreePath()):
		i.Source = SourceTree
	case isDir(i.DirPath()):
		i.Source = SourceDir
	case exists(i.TarPath()):
		i.Source = SourceTar
	default:
		i.Source = SourceNone
	}
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ErrNoSource is returned when an image has no cached artifact and no
// external tool was able to produce one.
type ErrNoSource struct {
	Name string
}

func (e *ErrNoSource) Error() string {
	return fmt.Sprintf("no cached artifact for image %q and no fetch succeeded", e.Name)
}
