package vecdraw

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned by SaveImage for a file extension with
// no registered encoder.
var ErrUnsupportedFormat = errors.New("vecdraw: unsupported image format")

// SavePNG saves the canvas to a PNG file. The in-memory canvas is
// unaffected by a failed save.
func (c *Canvas) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// SaveImage saves the canvas to an image file, selecting the codec from the
// file extension: .png, .jpg/.jpeg, .bmp, or .tiff/.tif. The in-memory
// canvas is unaffected by a failed save.
func (c *Canvas) SaveImage(path string) error {
	return c.pixmap.SaveImage(path)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return p.save(path, func(w io.Writer, img image.Image) error {
		return png.Encode(w, img)
	})
}

// SaveImage saves the pixmap to an image file, selecting the codec from the
// file extension.
func (p *Pixmap) SaveImage(path string) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	return p.save(path, encode)
}

// encoderFor maps a file extension to an encoder.
func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return func(w io.Writer, img image.Image) error {
			return png.Encode(w, img)
		}, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, nil)
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tiff", ".tif":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func (p *Pixmap) save(path string, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("vecdraw: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			Logger().Warn("close image file", "path", path, "error", cerr)
		}
	}()

	if err := encode(f, p.ToImage()); err != nil {
		return fmt.Errorf("vecdraw: encode %s: %w", path, err)
	}
	return nil
}
