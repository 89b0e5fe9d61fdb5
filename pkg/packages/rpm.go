package packages

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sbchaos/cake/pkg/dockercli"
	"github.com/sbchaos/cake/pkg/ofs"
)

const rpmCacheDir = "/var/cache/yum/"

// rpmQueryCmd asks rpm for name, version-release and size of every
// installed package, tab-separated, one per line.
var rpmQueryCmd = []string{
	"/usr/bin/rpm",
	"--nodigest",
	"--nosignature",
	"-qa",
	"--qf",
	"%{NAME}\t%{VERSION}-%{RELEASE}\t%{SIZE}\n",
}

// RPM inspects an rpm-managed image. Unlike the other managers it cannot
// read its package database straight out of the overlay filesystem: it
// has to run rpm itself inside a throwaway container against the real
// image reference.
type RPM struct {
	ofs   *ofs.OverlayFs
	cli   *dockercli.CLI
	image string
}

// NewRPM wraps o for rpm inspection, querying image (a reference the
// configured CLI can run) on demand.
func NewRPM(o *ofs.OverlayFs, cli *dockercli.CLI, image string) *RPM {
	return &RPM{ofs: o, cli: cli, image: image}
}

func (r *RPM) Name() string { return "RPM - yum/dnf/microdnf" }

// GetInstalledPackages returns nil immediately if the image carries no
// rpm database at all, to avoid spawning a container for images that
// plainly never used rpm. A failed or errored docker run yields an empty
// list rather than an error: the external query is best-effort, not a
// fatal precondition for the rest of the analysis.
func (r *RPM) GetInstalledPackages() []Package {
	if r.ofs.GetDir("/usr/lib/rpm/") == nil {
		return nil
	}

	out, err := r.cli.Run(r.image, rpmQueryCmd)
	if err != nil {
		logrus.Warnf("rpm query failed, skipping rpm package list: %v", err)
		return nil
	}
	logrus.Trace("received rpm query output")

	pkgs := parseRPMQuery(out)
	sort.Sort(BySizeDesc(pkgs))
	return pkgs
}

func parseRPMQuery(out string) []Package {
	var pkgs []Package
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		pkg := Package{}
		if len(fields) > 0 {
			pkg.Name = fields[0]
		}
		if len(fields) > 1 {
			pkg.Version = fields[1]
		}
		if len(fields) > 2 {
			if size, err := strconv.ParseUint(fields[2], 10, 64); err == nil {
				pkg.Size = size
			}
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs
}

func (r *RPM) GetCache() *Cache {
	dir := r.ofs.GetDir(rpmCacheDir)
	if dir == nil {
		return nil
	}
	return &Cache{Path: rpmCacheDir, Size: dir.Size}
}

func (r *RPM) GetWastedBytes() uint64 {
	return GetSingleVersionInDir(r.ofs, rpmCacheDir)
}
