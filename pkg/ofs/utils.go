// Package ofs implements the layered, overlay-style filesystem model that
// the rest of cake is built on: directory trees, per-path version history,
// and the whiteout semantics used by container image layers.
package ofs

import (
	"fmt"
	"strings"
)

// Glyphs for rendering an ASCII tree. Directory.ShowDir uses branchSpace
// and middleItem; noBranchSpace and lastItem are not used by it.
const (
	noBranchSpace = "    "
	branchSpace   = "│   "
	middleItem    = "├─"
	lastItem      = "└─"
)

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// SizeHuman renders a byte count as a single-decimal value with the
// smallest unit in sizeUnits that keeps the number at or below 1024.
func SizeHuman(size uint64) string {
	sizef := float64(size)
	index := 0
	for sizef > 1024 && index < len(sizeUnits)-1 {
		sizef /= 1024
		index++
	}
	return fmt.Sprintf("%.1f %s", sizef, sizeUnits[index])
}

// Leading returns the first non-empty segment of a slash-separated path.
// A single leading slash is stripped before looking for the segment.
func Leading(path string) string {
	rest := path
	if strings.HasPrefix(rest, "/") {
		rest = rest[1:]
	}
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		return rest[:idx]
	}
	return rest
}

// Remaining returns what is left of path after its leading segment,
// preserving the slash that introduces the next segment. It returns ""
// when there is no further segment.
func Remaining(path string) string {
	rest := path
	if strings.HasPrefix(rest, "/") {
		rest = rest[1:]
	}
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		return rest[idx:]
	}
	return ""
}

// SplitLast splits path into (parent, final segment). A single trailing
// slash is stripped before splitting. parent retains its trailing slash;
// it is empty when path has no further separator.
func SplitLast(path string) (string, string) {
	rest := path
	if strings.HasSuffix(rest, "/") {
		rest = rest[:len(rest)-1]
		if idx := strings.LastIndexByte(rest, '/'); idx >= 0 {
			return rest[:idx+1], rest[idx+1:]
		}
		return "", rest
	}

	if idx := strings.LastIndexByte(rest, '/'); idx >= 0 {
		return rest[:idx+1], rest[idx+1:]
	}
	return "", rest
}
