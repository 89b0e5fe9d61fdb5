package ofs

// VersionFile records one mutation of a path beyond its base version:
// either a later write (deleted=false) or a whiteout-driven deletion
// (deleted=true, size=0).
type VersionFile struct {
	Deleted bool   `json:"deleted"`
	Size    uint64 `json:"size"`
	LayerID string `json:"layer_id"`
}

// FileInfo is the per-path history kept by a Directory: the base version
// the path was first introduced with, plus every later version or
// deletion appended in layer order.
type FileInfo struct {
	Name      string        `json:"name"`
	Size      uint64        `json:"size"`
	LayerID   string        `json:"layer_id"`
	Path      string        `json:"path"`
	TotalSize uint64        `json:"total_size"`
	Versions  []VersionFile `json:"versions"`
}

// NewFileInfo constructs a file's base version. TotalSize starts equal to
// size and Versions starts empty.
func NewFileInfo(name string, size uint64, layerID, path string) *FileInfo {
	return &FileInfo{
		Name:      name,
		Size:      size,
		LayerID:   layerID,
		Path:      path,
		TotalSize: size,
		Versions:  nil,
	}
}

// AddVersion appends a later write to the file's history. TotalSize only
// ever grows: it tracks historically consumed bytes, not bytes live at
// the tip, so the efficiency analyzer can tell "shadowed" from "absent".
func (f *FileInfo) AddVersion(size uint64, layerID string) {
	f.Versions = append(f.Versions, VersionFile{
		Deleted: false,
		Size:    size,
		LayerID: layerID,
	})
	f.TotalSize += size
}

// Delete appends a deletion record. TotalSize is left untouched since the
// shadowed bytes are still part of the file's history.
func (f *FileInfo) Delete(layerID string) {
	f.Versions = append(f.Versions, VersionFile{
		Deleted: true,
		Size:    0,
		LayerID: layerID,
	})
}

// ShowFile renders the file for the ASCII tree view.
func (f *FileInfo) ShowFile() string {
	return f.Name + " - " + SizeHuman(f.TotalSize)
}

// IsDeleted reports whether the file's terminal state is deleted, i.e. the
// last version record (if any) marks a deletion.
func (f *FileInfo) IsDeleted() bool {
	if len(f.Versions) == 0 {
		return false
	}
	return f.Versions[len(f.Versions)-1].Deleted
}

// TipSize returns the size of the file as it stands at the most recent
// version, or its base size if it has never been overwritten.
func (f *FileInfo) TipSize() uint64 {
	if len(f.Versions) == 0 {
		return f.Size
	}
	return f.Versions[len(f.Versions)-1].Size
}
