// Package packages locates and parses package-manager metadata inside a
// reconstructed overlay filesystem, classifying cache and optional-package
// waste for each manager it understands.
package packages

import (
	"fmt"

	"github.com/sbchaos/cake/pkg/ofs"
)

// Package is one installed package as reported by a manager's database.
type Package struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Size     uint64 `json:"size"`
	Optional bool   `json:"optional"`
}

// ShowInfo renders a package for the "-p/--packages" listing.
func (p Package) ShowInfo() string {
	return fmt.Sprintf("%10s\t%-20s\t%s", ofs.SizeHuman(p.Size), p.Version, p.Name)
}

// BySizeDesc sorts packages by size, largest first. Callers sort with
// sort.Sort, which is not stable, so the order of equal sizes is not
// defined.
type BySizeDesc []Package

func (p BySizeDesc) Len() int           { return len(p) }
func (p BySizeDesc) Less(i, j int) bool { return p[i].Size > p[j].Size }
func (p BySizeDesc) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// Cache is a package-manager cache directory and its rolled-up size.
type Cache struct {
	Path string `json:"path"`
	Size uint64 `json:"size"`
}

// Manager is the capability set shared by every package-manager inspector:
// Alpine/apk, Debian/apt, RPM, and the archive heuristic.
type Manager interface {
	Name() string
	GetInstalledPackages() []Package
	GetCache() *Cache
	GetWastedBytes() uint64
}
