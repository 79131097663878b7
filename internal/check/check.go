// Package check provides the --check diagnostics: root directory access and
// an image codec self-test.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/backmassage/picmrg/internal/config"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp"
)

// Sentinel errors returned by CheckRoot and CheckCodec.
var (
	ErrRootNotFound      = errors.New("root path does not exist")
	ErrRootNotDirectory  = errors.New("root path is not a directory")
	ErrRootNotAccessible = errors.New("root directory is not readable, writable and searchable")
	ErrCodecMismatch     = errors.New("decoded image differs from the encoded one")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// encodable lists the formats round-tripped by the codec test.
var encodable = []imaging.Format{imaging.PNG, imaging.JPEG, imaging.GIF, imaging.BMP, imaging.TIFF}

// RunCheck runs every diagnostic and reports whether all of them passed.
// It never stops at the first failure.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	ok := true

	if err := CheckRoot(cfg.RootDir); err != nil {
		log.Error("Root %s: %v", cfg.RootDir, err)
		ok = false
	} else {
		log.Success("Root %s: readable and writable", cfg.RootDir)
	}

	for _, f := range encodable {
		if err := CheckCodec(f); err != nil {
			log.Error("%s codec: %v", f, err)
			ok = false
			continue
		}
		log.Debug(cfg.Verbose, "%s: round trip ok", f)
		log.Success("%s codec works", f)
	}

	if WebPRegistered() {
		log.Success("WebP decoder registered")
	} else {
		log.Error("WebP decoder not registered")
		ok = false
	}
	return ok
}

// CheckRoot verifies that path is an existing directory the process may
// list, create files in and delete files from.
func CheckRoot(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrRootNotFound
		}
		return err
	}
	if !fi.IsDir() {
		return ErrRootNotDirectory
	}
	if err := accessRW(path); err != nil {
		return fmt.Errorf("%w: %v", ErrRootNotAccessible, err)
	}
	return nil
}

// CheckCodec encodes a small two-color image in format f and decodes it
// back, comparing dimensions and a sample pixel.
func CheckCodec(f imaging.Format) error {
	src := imaging.New(4, 2, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(3, 1, color.NRGBA{B: 255, A: 255})

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, src, f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	got, err := imaging.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if got.Bounds() != src.Bounds() {
		return fmt.Errorf("%w: bounds %v, want %v", ErrCodecMismatch, got.Bounds(), src.Bounds())
	}
	if f == imaging.JPEG || f == imaging.GIF {
		return nil // Lossy or palettized; only dimensions survive exactly.
	}
	r, _, b, _ := got.At(3, 1).RGBA()
	if r>>8 > 16 || b>>8 < 240 {
		return fmt.Errorf("%w: pixel (3,1)", ErrCodecMismatch)
	}
	return nil
}

// webpProbe carries a WebP container header with no payload: enough for
// format sniffing, not for decoding.
var webpProbe = []byte("RIFF\x00\x00\x00\x00WEBPVP8L\x00\x00\x00\x00")

// WebPRegistered reports whether a WebP decoder is registered with the
// image package.
func WebPRegistered() bool {
	_, _, err := image.DecodeConfig(bytes.NewReader(webpProbe))
	return !errors.Is(err, image.ErrFormat)
}
