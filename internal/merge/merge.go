package merge

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/backmassage/picmrg/internal/naming"
	"github.com/disintegration/imaging"

	// Registers the WebP decoder with image.Decode. imaging itself
	// registers BMP and TIFF alongside the stdlib PNG/JPEG/GIF.
	_ "golang.org/x/image/webp"
)

// Logger is the subset of logging.Logger the engine needs.
type Logger interface {
	Warn(format string, args ...interface{})
	Debug(verbose bool, format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})        {}
func (nopLogger) Debug(bool, string, ...interface{}) {}

// Engine merges one directory at a time. It is safe to reuse across
// directories but not concurrently within one.
type Engine struct {
	log     Logger
	verbose bool
}

// NewEngine returns an engine reporting warnings and debug lines to log.
// A nil log discards them.
func NewEngine(log Logger, verbose bool) *Engine {
	if log == nil {
		log = nopLogger{}
	}
	return &Engine{log: log, verbose: verbose}
}

// Result describes a composite that was written, or would be written when
// DryRun is set.
type Result struct {
	Dir        string
	OutputPath string
	Latest     time.Time
	Layout     Layout
	Width      int
	Height     int
	Sources    int      // Images placed on the canvas.
	Excluded   []string // Files that failed to decode.
	Removed    []string // Stale composites deleted before writing.
	Bytes      int64    // Size of the written PNG; zero for a dry run.
	DryRun     bool
}

// Merge converges dir to exactly one composite built from files, which
// must be the directory's image files in the order they should appear.
// Every non-success outcome is a *Error.
func (e *Engine) Merge(dir string, files []string) (*Result, error) {
	return e.run(dir, files, false)
}

// Plan performs the same validation, naming, decoding and layout
// selection as Merge but neither deletes nor writes anything.
func (e *Engine) Plan(dir string, files []string) (*Result, error) {
	return e.run(dir, files, true)
}

func (e *Engine) run(dir string, files []string, dryRun bool) (*Result, error) {
	switch len(files) {
	case 0:
		return nil, newError(KindEmptyInput, dir, nil)
	case 1:
		return nil, newError(KindSingleImage, dir, nil)
	}

	latest, err := LatestTimestamp(files)
	if err != nil {
		return nil, newError(KindTimestampUnavailable, dir, nil)
	}
	res := &Result{
		Dir:        dir,
		OutputPath: naming.OutputPath(dir, latest),
		Latest:     latest,
		DryRun:     dryRun,
	}
	e.log.Debug(e.verbose, "%s: output %s", dir, filepath.Base(res.OutputPath))

	if !dryRun {
		removed, err := RemoveStaleOutputs(dir)
		if err != nil {
			return nil, newError(KindFilesystem, dir, err)
		}
		for _, name := range removed {
			e.log.Debug(e.verbose, "%s: removed stale output %s", dir, name)
		}
		res.Removed = removed
	}

	images := e.load(files, res)
	if len(images) == 0 {
		return nil, newError(KindNoValidImages, dir, nil)
	}
	res.Sources = len(images)

	t := Tally(images)
	res.Layout = t.Layout()
	e.log.Debug(e.verbose, "%s: %d vertical, %d other, layout %s",
		dir, t.Vertical, t.NonVertical, res.Layout)

	if dryRun {
		res.Width, res.Height = canvasSize(images, res.Layout)
		return res, nil
	}

	canvas := Composite(images, res.Layout)
	res.Width, res.Height = canvas.Rect.Dx(), canvas.Rect.Dy()

	n, err := writeComposite(res.OutputPath, canvas)
	if err != nil {
		return nil, newError(KindPersistFailed, dir, err)
	}
	res.Bytes = n
	return res, nil
}

// load decodes files in order. Undecodable files are reported and
// recorded in res.Excluded; they never abort the merge.
func (e *Engine) load(files []string, res *Result) []SourceImage {
	images := make([]SourceImage, 0, len(files))
	for _, path := range files {
		img, err := decode(path)
		if err != nil {
			e.log.Warn("Warning: Failed to load image %s: %v", path, err)
			res.Excluded = append(res.Excluded, path)
			continue
		}
		images = append(images, SourceImage{Path: path, Image: img})
	}
	return images
}

var errEmptyImage = errors.New("image has no pixels")

func decode(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", errEmptyImage, b.Dx(), b.Dy())
	}
	return img, nil
}
