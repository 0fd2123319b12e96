// Package imageio converts rendered color buffers to 8-bit images and
// writes them to disk.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/willbeason/mandelbrot/pkg/colors"
)

// Format is an output image encoding.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ErrUnknownFormat is returned for encodings other than PNG, BMP and TIFF.
var ErrUnknownFormat = errors.New("unknown image format")

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{PNG, BMP, TIFF}
}

// ParseFormat accepts a format name or a file extension, with or without
// the leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFor infers the format from a file name, defaulting to PNG when the
// extension is missing.
func FormatFor(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return PNG, nil
	}
	return ParseFormat(ext)
}

// ByteColor is the 8-bit, RGBA ordered color images are built from.
type ByteColor = colors.Color[uint8, colors.RGBA]

// ToByte clamps each channel of c to [0, 1] and scales it to [0, 255],
// truncating.
func ToByte[T ~float32 | ~float64, O colors.Order](c colors.Color[T, O]) ByteColor {
	return colors.New[uint8, colors.RGBA](
		toByte(c.Red()),
		toByte(c.Green()),
		toByte(c.Blue()),
		toByte(c.Alpha()),
	)
}

func toByte[T ~float32 | ~float64](v T) uint8 {
	f := float64(v)
	switch {
	case f < 0:
		f = 0
	case f > 1:
		f = 1
	}
	return uint8(f * 255.0)
}

// NewImage converts a row-major width*height buffer of float colors into a
// non-premultiplied image with a stride of width*4 bytes.
func NewImage[T ~float32 | ~float64, O colors.Order](pixels []colors.Color[T, O], width, height int) *image.NRGBA {
	if len(pixels) < width*height {
		panic(fmt.Sprintf("buffer holds %d pixels, need %d", len(pixels), width*height))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, c := range pixels[:width*height] {
		b := ToByte(c)
		copy(img.Pix[i*4:i*4+4], b[:])
	}

	return img
}

// Encode writes img to w.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteFile encodes img into a new file at path, creating parent
// directories as needed.
func WriteFile(path string, img image.Image, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = Encode(f, img, format)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	return f.Close()
}
