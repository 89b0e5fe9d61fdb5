// Package analysis turns a reconstructed overlay filesystem into the
// wasted-byte accounting and scored report cake presents to the user.
package analysis

import (
	"sort"

	"github.com/sbchaos/cake/pkg/ofs"
)

// Info describes one multi-version file: how many versions it went
// through and how many of its bytes are unreachable at the image's tip.
type Info struct {
	Path       string `json:"path"`
	Count      int    `json:"count"`
	WastedSize uint64 `json:"wasted_size"`
}

// ListMultipleVersions enumerates every file in ofs that has more than
// one version and reports the bytes wasted by its earlier versions. A
// file whose terminal state is deleted wastes its whole history; one that
// survives only wastes everything but its final, live size. The result
// is sorted by WastedSize, largest first.
func ListMultipleVersions(o *ofs.OverlayFs) []Info {
	var infos []Info

	for _, file := range o.Entries() {
		if len(file.Versions) == 0 {
			continue
		}

		last := file.Versions[len(file.Versions)-1]
		var wasted uint64
		if last.Deleted {
			wasted = file.TotalSize
		} else {
			wasted = file.TotalSize - last.Size
		}

		infos = append(infos, Info{
			Path:       file.Path + file.Name,
			Count:      len(file.Versions) + 1,
			WastedSize: wasted,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].WastedSize > infos[j].WastedSize
	})
	return infos
}

// Efficiency wraps an overlay filesystem with the duplicate-file analysis
// computed from it.
type Efficiency struct {
	duplicates []Info
}

// NewEfficiency runs ListMultipleVersions against o and captures the
// result.
func NewEfficiency(o *ofs.OverlayFs) *Efficiency {
	return &Efficiency{duplicates: ListMultipleVersions(o)}
}

// WastedBytes sums WastedSize across every duplicate file found.
func (e *Efficiency) WastedBytes() uint64 {
	var total uint64
	for _, i := range e.duplicates {
		total += i.WastedSize
	}
	return total
}

// Duplicates returns the sorted duplicate-file list.
func (e *Efficiency) Duplicates() []Info {
	return e.duplicates
}
