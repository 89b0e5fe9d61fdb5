package packages

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sbchaos/cake/pkg/ofs"
)

var archiveExtensions = []string{".zip", ".tar", ".tar.gz", ".tar.bz", ".tar.xz"}

const archiveTempCacheDir = "/tmp"

// ListArchives returns every file in o whose name ends in one of
// archiveExtensions.
func ListArchives(o *ofs.OverlayFs) []*ofs.FileInfo {
	var archives []*ofs.FileInfo
	for _, f := range o.Entries() {
		for _, ext := range archiveExtensions {
			if strings.HasSuffix(f.Name, ext) {
				archives = append(archives, f)
				break
			}
		}
	}
	return archives
}

// Archive treats every zip/tar file baked into an image as a "package":
// duplicated or superseded archives are exactly the kind of bloat the
// other managers can't see because no package database tracks them.
type Archive struct {
	ofs      *ofs.OverlayFs
	packages []Package
}

// NewArchive wraps o for archive inspection.
func NewArchive(o *ofs.OverlayFs) *Archive {
	return &Archive{ofs: o, packages: loadArchivePackages(o)}
}

func loadArchivePackages(o *ofs.OverlayFs) []Package {
	var pkgs []Package
	for _, f := range ListArchives(o) {
		pkgs = append(pkgs, Package{
			Name:    f.Path + f.Name,
			Version: strconv.Itoa(len(f.Versions) + 1),
			Size:    f.TotalSize,
		})
	}
	sort.Sort(BySizeDesc(pkgs))
	logrus.Tracef("found %d archives", len(pkgs))
	return pkgs
}

func (a *Archive) Name() string { return "Archives - zip/tar" }

func (a *Archive) GetInstalledPackages() []Package { return a.packages }

func (a *Archive) GetCache() *Cache {
	dir := a.ofs.GetDir(archiveTempCacheDir)
	if dir == nil {
		return nil
	}
	return &Cache{Path: archiveTempCacheDir, Size: dir.Size}
}

// GetWastedBytes sums /tmp's live size with every single-version
// archive's full size: an archive that was only ever written once is, by
// definition, still sitting around uninstalled.
func (a *Archive) GetWastedBytes() uint64 {
	cacheSize := GetSingleVersionInDir(a.ofs, archiveTempCacheDir)

	var pkgSize uint64
	for _, p := range a.packages {
		if p.Version == "1" {
			pkgSize += p.Size
		}
	}

	logrus.Tracef("single cache: %d, pkg: %d", cacheSize, pkgSize)
	return cacheSize + pkgSize
}
