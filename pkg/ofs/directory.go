package ofs

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Directory is a recursive container of files and subdirectories. It owns
// its children outright; descent for mutation is by nested map lookup, so
// no parent back-pointers are needed. Size is a computed roll-up, valid
// only after UpdateSizes has run.
type Directory struct {
	Name        string                 `json:"name"`
	Size        uint64                 `json:"size"`
	Files       map[string]*FileInfo   `json:"files"`
	Directories map[string]*Directory  `json:"directories"`
}

// NewDirectory returns an empty directory node named name.
func NewDirectory(name string) *Directory {
	return &Directory{
		Name:        name,
		Files:       map[string]*FileInfo{},
		Directories: map[string]*Directory{},
	}
}

// GetDirAtPath descends to the directory at path for mutation. "" and "/"
// return d itself. A missing segment returns nil.
func (d *Directory) GetDirAtPath(path string) *Directory {
	if path == "" || path == "/" {
		return d
	}
	child, ok := d.Directories[Leading(path)]
	if !ok {
		return nil
	}
	return child.GetDirAtPath(Remaining(path))
}

// GetDir is the read-only counterpart of GetDirAtPath.
func (d *Directory) GetDir(path string) *Directory {
	return d.GetDirAtPath(path)
}

// AddDir inserts a directory child, replacing any existing child with the
// same name.
func (d *Directory) AddDir(child *Directory) {
	d.Directories[child.Name] = child
}

// AddDirPath ensures every segment of path exists as a nested directory.
func (d *Directory) AddDirPath(path string) {
	if path == "" || path == "/" {
		return
	}
	name := Leading(path)
	child, ok := d.Directories[name]
	if !ok {
		child = NewDirectory(name)
		d.AddDir(child)
	}
	child.AddDirPath(Remaining(path))
}

// AddFile records a write at path. If a file already lives at that name,
// a new version is appended; otherwise a base version is inserted. Any
// missing parent directories are created along the way. Calling AddFile
// twice for the same path is not idempotent: it yields a two-version
// file, mirroring what two writes across layers actually mean.
func (d *Directory) AddFile(path string, size uint64, layerID string) {
	parent, name := SplitLast(path)

	dir := d.GetDirAtPath(parent)
	if dir == nil {
		d.AddDirPath(parent)
		dir = d.GetDirAtPath(parent)
	}

	if existing, ok := dir.Files[name]; ok {
		existing.AddVersion(size, layerID)
		return
	}
	dir.Files[name] = NewFileInfo(name, size, layerID, parent)
}

// markChildrenDelete appends a deletion record, stamped with layerID, to
// every file in the subtree rooted at d. Directory nodes are never
// removed; their deletion is implied once all descendants are terminal.
func (d *Directory) markChildrenDelete(layerID string) {
	for _, f := range d.Files {
		f.Delete(layerID)
	}
	for _, sub := range d.Directories {
		sub.markChildrenDelete(layerID)
	}
}

// MarkForDelete marks path as deleted as of layerID. If path names a
// directory, every file beneath it is recursively marked deleted. If it
// names a file, a deletion record is appended to that file. A path that
// resolves to neither is silently ignored: overlayfs allows whiteouts for
// entries that never existed in a lower layer.
func (d *Directory) MarkForDelete(path string, layerID string) {
	parent, name := SplitLast(path)

	dir := d.GetDirAtPath(parent)
	if dir == nil {
		return
	}

	if sub, ok := dir.Directories[name]; ok {
		logrus.Tracef("marking children for delete at %s", sub.Name)
		sub.markChildrenDelete(layerID)
		return
	}
	if f, ok := dir.Files[name]; ok {
		f.Delete(layerID)
	}
}

// UpdateSizes recomputes Size bottom-up: the sum of every file's
// TotalSize plus every subdirectory's rolled-up size. It returns the
// computed size so callers can roll it into their own total.
func (d *Directory) UpdateSizes() uint64 {
	var size uint64
	for _, f := range d.Files {
		size += f.TotalSize
	}
	for _, sub := range d.Directories {
		size += sub.UpdateSizes()
	}
	d.Size = size
	return size
}

// GetEntries flattens every file in the subtree into one slice. Order is
// unspecified; each file appears exactly once.
func (d *Directory) GetEntries() []*FileInfo {
	entries := make([]*FileInfo, 0, len(d.Files))
	for _, f := range d.Files {
		entries = append(entries, f)
	}
	for _, sub := range d.Directories {
		entries = append(entries, sub.GetEntries()...)
	}
	return entries
}

// GetFile looks up the file record at path, or nil if it is absent.
func (d *Directory) GetFile(path string) *FileInfo {
	parent, name := SplitLast(path)
	dir := d.GetDir(parent)
	if dir == nil {
		return nil
	}
	return dir.Files[name]
}

// ShowDir prints an ASCII tree of the subtree, indented level deep.
func (d *Directory) ShowDir(level int) {
	padding := strings.Repeat(branchSpace, level)
	for _, name := range d.dirNames() {
		sub := d.Directories[name]
		fmt.Printf("%s%s %s - %s\n", padding, middleItem, name, SizeHuman(sub.Size))
		sub.ShowDir(level + 1)
	}
	for _, name := range d.fileNames() {
		fmt.Printf("%s%s %s\n", padding, middleItem, d.Files[name].ShowFile())
	}
}

// dirNames returns subdirectory names in the natural (unordered) iteration
// order of the underlying map.
func (d *Directory) dirNames() []string {
	names := make([]string, 0, len(d.Directories))
	for name := range d.Directories {
		names = append(names, name)
	}
	return names
}

// fileNames returns file names in the natural (unordered) iteration order
// of the underlying map.
func (d *Directory) fileNames() []string {
	names := make([]string, 0, len(d.Files))
	for name := range d.Files {
		names = append(names, name)
	}
	return names
}
