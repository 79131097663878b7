package merge

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/backmassage/picmrg/internal/naming"
	"github.com/backmassage/picmrg/internal/scanner"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// RemoveStaleOutputs deletes every composite output in dir and returns the
// removed file names. A symlink to a regular file counts as an output and
// the link itself is removed. Other files are never touched.
func RemoveStaleOutputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var removed []string
	for _, e := range entries {
		if !naming.IsCompositeOutput(e.Name()) || !scanner.IsRegularFile(dir, e) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return removed, err
		}
		removed = append(removed, e.Name())
	}
	return removed, nil
}

// writeComposite encodes img as PNG into a hidden temp file beside path,
// syncs it and renames it into place. On failure the temp file is removed
// and path is left untouched. It returns the number of bytes written.
func writeComposite(path string, img image.Image) (int64, error) {
	tmp := filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, err
	}
	fail := func(err error) (int64, error) {
		_ = f.Close()
		_ = os.Remove(tmp)
		return 0, err
	}

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		return fail(fmt.Errorf("encode: %w", err))
	}
	if err := f.Sync(); err != nil {
		return fail(err)
	}
	fi, err := f.Stat()
	if err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return 0, err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return 0, err
	}
	return fi.Size(), nil
}
