package packages

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sbchaos/cake/pkg/ofs"
)

const (
	alpineCacheDir     = "/var/cache/apk/"
	alpineInstalledDB  = "/lib/apk/db/installed"
)

// Alpine inspects an apk-managed image: its installed package database
// and download cache.
type Alpine struct {
	ofs *ofs.OverlayFs
}

// NewAlpine wraps o for apk inspection.
func NewAlpine(o *ofs.OverlayFs) *Alpine {
	return &Alpine{ofs: o}
}

func (a *Alpine) Name() string { return "alpine - apk" }

// parseInstalledDB parses apk's "/lib/apk/db/installed" format: records
// separated by a blank line, each line a single-letter tag followed by
// ":" and a value. Only P (name), V (version) and I (installed size) are
// read; anything else is ignored.
func parseInstalledDB(status string) []Package {
	var pkgs []Package

	var name, version string
	var size uint64
	inRecord := false

	flush := func() {
		if inRecord {
			pkgs = append(pkgs, Package{Name: name, Version: version, Size: size})
		}
		name, version = "", ""
		size = 0
		inRecord = false
	}

	for _, line := range strings.Split(status, "\n") {
		if line == "" {
			flush()
			continue
		}
		inRecord = true
		switch {
		case strings.HasPrefix(line, "P:"):
			name = strings.TrimPrefix(line, "P:")
		case strings.HasPrefix(line, "V:"):
			version = strings.TrimPrefix(line, "V:")
		case strings.HasPrefix(line, "I:"):
			if v, err := strconv.ParseUint(strings.TrimPrefix(line, "I:"), 10, 64); err == nil {
				size = v
			}
		}
	}
	flush()

	return pkgs
}

func (a *Alpine) GetInstalledPackages() []Package {
	content, ok := GetFileFromImage(a.ofs, alpineInstalledDB)
	if !ok {
		return nil
	}
	logrus.Trace("received apk status file")

	pkgs := parseInstalledDB(content)
	sort.Sort(BySizeDesc(pkgs))
	return pkgs
}

func (a *Alpine) GetCache() *Cache {
	dir := a.ofs.GetDir(alpineCacheDir)
	if dir == nil {
		return nil
	}
	return &Cache{Path: alpineCacheDir, Size: dir.Size}
}

func (a *Alpine) GetWastedBytes() uint64 {
	return GetSingleVersionInDir(a.ofs, alpineCacheDir)
}
