package packages

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sbchaos/cake/pkg/ofs"
)

const (
	// aptCacheDir is typically empty on well-built images: the Dockerfile
	// best-practices guide has images clean apt's download cache after
	// install. GetCache then reports the lists directory instead;
	// GetWastedBytes counts only aptCacheDir, never the lists directory.
	aptCacheDir   = "/var/cache/apt/"
	aptListsDir   = "/var/lib/apt/lists/"
	dpkgStatusFile = "/var/lib/dpkg/status"
)

// Debian inspects a dpkg/apt-managed image.
type Debian struct {
	ofs      *ofs.OverlayFs
	packages []Package
}

// NewDebian wraps o for apt inspection, parsing dpkg's status file once.
func NewDebian(o *ofs.OverlayFs) *Debian {
	return &Debian{ofs: o, packages: loadDpkgPackages(o)}
}

func loadDpkgPackages(o *ofs.OverlayFs) []Package {
	content, ok := GetFileFromImage(o, dpkgStatusFile)
	if !ok {
		return nil
	}
	logrus.Trace("received dpkg status file")

	pkgs := parseDpkgStatus(content)
	sort.Sort(BySizeDesc(pkgs))
	return pkgs
}

// parseDpkgStatus parses dpkg's "/var/lib/dpkg/status" format: records
// separated by a blank line, each a set of "Key: value" lines.
// Installed-Size is reported in KiB and converted to bytes.
func parseDpkgStatus(status string) []Package {
	var pkgs []Package

	var name, version string
	var size uint64
	var optional bool
	inRecord := false

	flush := func() {
		if inRecord {
			pkgs = append(pkgs, Package{Name: name, Version: version, Size: size, Optional: optional})
		}
		name, version = "", ""
		size = 0
		optional = false
		inRecord = false
	}

	for _, line := range strings.Split(status, "\n") {
		if line == "" {
			flush()
			continue
		}
		inRecord = true
		switch {
		case strings.HasPrefix(line, "Package: "):
			name = strings.TrimPrefix(line, "Package: ")
		case strings.HasPrefix(line, "Version: "):
			version = strings.TrimPrefix(line, "Version: ")
		case strings.HasPrefix(line, "Installed-Size: "):
			if kb, err := strconv.ParseUint(strings.TrimPrefix(line, "Installed-Size: "), 10, 64); err == nil {
				size = kb * 1024
			}
		case strings.HasPrefix(line, "Priority: optional"):
			optional = true
		}
	}
	flush()

	return pkgs
}

func (d *Debian) Name() string { return "APT - apt-get/aptitude" }

func (d *Debian) GetInstalledPackages() []Package { return d.packages }

func (d *Debian) GetCache() *Cache {
	dir := d.ofs.GetDir(aptCacheDir)
	if dir != nil && dir.Size > 1024 {
		return &Cache{Path: aptCacheDir, Size: dir.Size}
	}
	if lists := d.ofs.GetDir(aptListsDir); lists != nil {
		return &Cache{Path: aptListsDir, Size: lists.Size}
	}
	return nil
}

func (d *Debian) GetWastedBytes() uint64 {
	cacheSize := GetSingleVersionInDir(d.ofs, aptCacheDir)

	var optionalSize uint64
	for _, p := range d.packages {
		if p.Optional {
			optionalSize += p.Size
		}
	}
	return cacheSize + optionalSize
}
