package image

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sbchaos/cake/pkg/ofs"
)

// newTarReader wraps r in a *tar.Reader, transparently unwrapping gzip
// compression when the stream's magic bytes call for it.
func newTarReader(r io.Reader) (*tar.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		return tar.NewReader(gz), nil
	}
	return tar.NewReader(br), nil
}

// ExtractImageTar unpacks "<id>.tar" into the "<id>/" directory.
func ExtractImageTar(img *Image) error {
	f, err := os.Open(img.TarPath())
	if err != nil {
		return fmt.Errorf("open %s: %w", img.TarPath(), err)
	}
	defer f.Close()

	tr, err := newTarReader(f)
	if err != nil {
		return err
	}

	destDir := img.DirPath()
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read tar entry: %w", err)
		}

		cleanName := filepath.Clean(header.Name)
		if strings.HasPrefix(cleanName, "..") || filepath.IsAbs(cleanName) {
			return fmt.Errorf("invalid path in image tar: %s", header.Name)
		}
		target := filepath.Join(destDir, cleanName)

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg, tar.TypeRegA:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
			if err != nil {
				return err
			}
			_, copyErr := io.Copy(out, tr)
			closeErr := out.Close()
			if copyErr != nil {
				return copyErr
			}
			if closeErr != nil {
				return closeErr
			}
		default:
			// symlinks, hardlinks and device nodes carry no content cake
			// cares about; skip them.
			continue
		}
	}
}

// ReadTarLayer streams one layer's tar entries into ofs, routing
// directories and regular files to the overlay's whiteout-aware AddFile
// / AddDir. Any other entry kind is ignored.
func ReadTarLayer(o *ofs.OverlayFs, path, layerID string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open layer %s: %w", path, err)
	}
	defer f.Close()

	tr, err := newTarReader(f)
	if err != nil {
		return err
	}

	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read tar entry in %s: %w", path, err)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			o.AddDir(header.Name)
		case tar.TypeReg, tar.TypeRegA:
			o.AddFile(header.Name, uint64(header.Size), layerID)
		default:
			continue
		}
	}
}

// GetFileFromLayer streams osPath's tar looking for filePath, returning
// its contents as a string. Whiteout entries are ordinary tar entries at
// this layer and so are returned like any other file; callers are
// expected to have already resolved which layer actually holds the live
// version of filePath.
func GetFileFromLayer(osPath, filePath string) (string, bool) {
	logrus.Tracef("searching file %s in layer %s", filePath, osPath)

	f, err := os.Open(osPath)
	if err != nil {
		return "", false
	}
	defer f.Close()

	tr, err := newTarReader(f)
	if err != nil {
		return "", false
	}

	for {
		header, err := tr.Next()
		if err == io.EOF {
			return "", false
		}
		if err != nil {
			return "", false
		}
		if header.Name != filePath {
			continue
		}
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, tr); err != nil {
			return "", false
		}
		return buf.String(), true
	}
}
