// Package scanner finds merge candidates: for each immediate subdirectory
// of a root, the sorted list of image files it holds.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/picmrg/internal/naming"
)

// Supported image file extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// Result maps subdirectory name to its image files, sorted lexicographically.
// Directories without any image are absent.
type Result struct {
	Root string
	Dirs map[string][]string
}

// Names returns the directory names in sorted order, the order in which
// they are merged.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Dirs))
	for name := range r.Dirs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path returns the filesystem path of the named subdirectory.
func (r *Result) Path(name string) string {
	return filepath.Join(r.Root, name)
}

// Scan lists the immediate subdirectories of root and collects the image
// files in each one. Nested directories are not descended into. Any read
// error, on root or on a subdirectory, fails the whole scan.
func Scan(root string) (*Result, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	res := &Result{Root: root, Dirs: make(map[string][]string)}
	for _, e := range entries {
		if !isKind(root, e, fs.ModeDir) {
			continue
		}
		dir := filepath.Join(root, e.Name())
		files, err := ImageFiles(dir)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
		if len(files) > 0 {
			res.Dirs[e.Name()] = files
		}
	}
	return res, nil
}

// ImageFiles returns the regular files in dir with an image extension,
// excluding composite outputs from earlier runs, sorted lexicographically.
func ImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !IsRegularFile(dir, e) {
			continue
		}
		if naming.IsCompositeOutput(e.Name()) || !IsImageFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// IsImageFile reports whether name has a supported image extension
// (case-insensitive).
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// IsRegularFile reports whether the entry in parent is a regular file,
// following symlinks. The merge engine uses it too, so a file the scanner
// treats as a composite output is also one the engine deletes.
func IsRegularFile(parent string, e fs.DirEntry) bool {
	return isKind(parent, e, 0)
}

// isKind reports whether the entry is a directory (kind == fs.ModeDir) or a
// regular file (kind == 0). Symlinks are followed; broken links match
// neither.
func isKind(parent string, e fs.DirEntry, kind fs.FileMode) bool {
	mode := e.Type()
	if mode&fs.ModeSymlink != 0 {
		fi, err := os.Stat(filepath.Join(parent, e.Name()))
		if err != nil {
			return false
		}
		mode = fi.Mode()
	}
	if kind == fs.ModeDir {
		return mode.IsDir()
	}
	return mode.IsRegular()
}
