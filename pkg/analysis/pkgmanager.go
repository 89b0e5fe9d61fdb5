package analysis

import (
	"fmt"

	"github.com/sbchaos/cake/pkg/ofs"
	"github.com/sbchaos/cake/pkg/packages"
)

// ManagerReport is a package manager's findings, captured in the shape
// the report JSON and the CLI printers both need: the package list, the
// cache directory it claimed (if any), and the bytes it judged wasted.
type ManagerReport struct {
	Name       string             `json:"name"`
	Packages   []packages.Package `json:"packages"`
	Cache      *packages.Cache    `json:"cache"`
	WasteSize  uint64             `json:"waste_size"`
}

// NewManagerReport snapshots a Manager's output.
func NewManagerReport(m packages.Manager) ManagerReport {
	return ManagerReport{
		Name:      m.Name(),
		Packages:  m.GetInstalledPackages(),
		Cache:     m.GetCache(),
		WasteSize: m.GetWastedBytes(),
	}
}

// ShowReport prints the manager's section of the full analysis report. A
// manager whose packages total zero bytes (including one that found no
// packages at all) is skipped entirely rather than printing an empty,
// misleading section.
func (r ManagerReport) ShowReport() {
	var totalPkgSize, optionalPkgSize uint64
	for _, p := range r.Packages {
		totalPkgSize += p.Size
		if p.Optional {
			optionalPkgSize += p.Size
		}
	}

	if totalPkgSize == 0 {
		return
	}

	fmt.Println(r.Name)
	fmt.Printf("All packages:  %10s\n", ofs.SizeHuman(totalPkgSize))
	if optionalPkgSize > 0 {
		fmt.Printf("Optional pkgs: %10s\n", ofs.SizeHuman(optionalPkgSize))
	}
	if r.Cache != nil {
		fmt.Printf("Cache:         %10s (%s)\n", ofs.SizeHuman(r.Cache.Size), r.Cache.Path)
	}
	fmt.Println()
}

// ShowPackages prints every package the manager found.
func (r ManagerReport) ShowPackages() {
	for _, p := range r.Packages {
		fmt.Println(p.ShowInfo())
	}
}
