package mandelbrot

import "github.com/willbeason/mandelbrot/pkg/colors"

// A Buffer receives rendered pixels by linear offset x + y*width.
//
// Render writes disjoint offsets from several goroutines when more than one
// worker is requested, so implementations must tolerate that.
type Buffer[C any] interface {
	Set(i int, c C)
	Len() int
}

// Pixels is a row-major slice of colors.
type Pixels[T colors.Channel, O colors.Order] []colors.Color[T, O]

// NewPixels allocates a buffer for a width*height image.
func NewPixels[T colors.Channel, O colors.Order](width, height int) Pixels[T, O] {
	return make(Pixels[T, O], width*height)
}

func (p Pixels[T, O]) Set(i int, c colors.Color[T, O]) { p[i] = c }

func (p Pixels[T, O]) Len() int { return len(p) }

var _ Buffer[FloatColor] = Pixels[float32, colors.RGBA]{}
