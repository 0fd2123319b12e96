package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/willbeason/mandelbrot/pkg/colors"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		name string
		c    colors.Color[float32, colors.RGBA]
		want ByteColor
	}{
		{name: "black", c: colors.Black[float32, colors.RGBA](1), want: ByteColor{0, 0, 0, 255}},
		{name: "truncates", c: colors.New[float32, colors.RGBA](0.5, 0.25, 0.1, 1), want: ByteColor{127, 63, 25, 255}},
		{name: "clamps high", c: colors.New[float32, colors.RGBA](1.5, 2, 1, 3), want: ByteColor{255, 255, 255, 255}},
		{name: "clamps low", c: colors.New[float32, colors.RGBA](-0.5, 0, -2, 0), want: ByteColor{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToByte(tt.c); got != tt.want {
				t.Errorf("ToByte(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestToByte_ReordersChannels(t *testing.T) {
	c := colors.New[float64, colors.ABGR](1, 0, 0.5, 1)

	if got := ToByte(c); got != (ByteColor{255, 0, 127, 255}) {
		t.Errorf("ToByte(%v) = %v, want [255 0 127 255]", c, got)
	}
}

func testPixels() []colors.Color[float32, colors.RGBA] {
	return []colors.Color[float32, colors.RGBA]{
		colors.New[float32, colors.RGBA](1, 0, 0, 1),
		colors.New[float32, colors.RGBA](0, 1, 0, 1),
		colors.New[float32, colors.RGBA](0, 0, 1, 1),
		colors.New[float32, colors.RGBA](0.5, 0.5, 0.5, 1),
		colors.New[float32, colors.RGBA](2, -1, 0.25, 1),
		colors.Black[float32, colors.RGBA](1),
	}
}

func TestNewImage(t *testing.T) {
	img := NewImage(testPixels(), 3, 2)

	if img.Stride != 3*4 {
		t.Errorf("Stride = %d, want %d", img.Stride, 3*4)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(3,2)", img.Bounds())
	}

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{R: 255, A: 255}},
		{2, 0, color.NRGBA{B: 255, A: 255}},
		{0, 1, color.NRGBA{R: 127, G: 127, B: 127, A: 255}},
		{1, 1, color.NRGBA{R: 255, G: 0, B: 63, A: 255}},
		{2, 1, color.NRGBA{A: 255}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("NRGBAAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNewImage_ShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewImage() with a short buffer did not panic")
		}
	}()

	NewImage(testPixels(), 4, 2)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "png", want: PNG},
		{in: ".PNG", want: PNG},
		{in: "bmp", want: BMP},
		{in: ".tif", want: TIFF},
		{in: "tiff", want: TIFF},
		{in: "jpeg", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"mandelbrot.png":     PNG,
		"out/mandelbrot.bmp": BMP,
		"mandelbrot.tiff":    TIFF,
		"mandelbrot":         PNG,
	}

	for path, want := range tests {
		got, err := FormatFor(path)
		if err != nil || got != want {
			t.Errorf("FormatFor(%q) = %q, %v, want %q", path, got, err, want)
		}
	}

	if _, err := FormatFor("mandelbrot.gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("FormatFor(gif) error = %v, want ErrUnknownFormat", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	img := NewImage(testPixels(), 3, 2)

	decoders := map[Format]func(io.Reader) (image.Image, error){
		PNG:  png.Decode,
		BMP:  bmp.Decode,
		TIFF: tiff.Decode,
	}

	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, format); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			decoded, err := decoders[format](&buf)
			if err != nil {
				t.Fatalf("decode error = %v", err)
			}
			assertSameImage(t, decoded, img)
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := Encode(io.Discard, NewImage(testPixels(), 3, 2), Format("gif"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(gif) error = %v, want ErrUnknownFormat", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mandelbrot.png")
	img := NewImage(testPixels(), 3, 2)

	if err := WriteFile(path, img, PNG); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	assertSameImage(t, decoded, img)
}

func assertSameImage(t *testing.T, got image.Image, want *image.NRGBA) {
	t.Helper()

	if got.Bounds() != want.Bounds() {
		t.Fatalf("Bounds() = %v, want %v", got.Bounds(), want.Bounds())
	}
	for y := 0; y < want.Bounds().Dy(); y++ {
		for x := 0; x < want.Bounds().Dx(); x++ {
			g := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
			if w := want.NRGBAAt(x, y); g != w {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, g, w)
			}
		}
	}
}
