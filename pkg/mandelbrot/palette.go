package mandelbrot

import "github.com/willbeason/mandelbrot/pkg/colors"

// A Palette colors escape times. Colors must not be empty.
type Palette[T colors.Channel, O colors.Order] struct {
	Colors []colors.Color[T, O]

	// Background is used for points which never escape.
	Background colors.Color[T, O]
}

// Color maps an escape time to a color. Escape times past the end of the
// palette wrap around, which produces the banding.
func (p Palette[T, O]) Color(iterations, maxIterations int) colors.Color[T, O] {
	if iterations < maxIterations {
		return p.Colors[iterations%len(p.Colors)]
	}
	return p.Background
}

// FloatColor is the working color of the default renderer.
type FloatColor = colors.Color[float32, colors.RGBA]

func rgb(r, g, b float32) FloatColor {
	return colors.New[float32, colors.RGBA](r, g, b, 1.0)
}

// DefaultPalette sweeps blue to red to green and back to blue in thirty
// steps, over an opaque black background.
func DefaultPalette() Palette[float32, colors.RGBA] {
	return Palette[float32, colors.RGBA]{
		Colors: []FloatColor{
			rgb(0.1, 0.0, 0.9),
			rgb(0.2, 0.0, 0.8),
			rgb(0.3, 0.0, 0.7),
			rgb(0.4, 0.0, 0.6),
			rgb(0.5, 0.0, 0.5),
			rgb(0.6, 0.0, 0.4),
			rgb(0.7, 0.0, 0.3),
			rgb(0.8, 0.0, 0.2),
			rgb(0.9, 0.0, 0.1),
			rgb(1.0, 0.0, 0.0),
			rgb(0.9, 0.1, 0.0),
			rgb(0.8, 0.2, 0.0),
			rgb(0.7, 0.3, 0.0),
			rgb(0.6, 0.4, 0.0),
			rgb(0.5, 0.5, 0.0),
			rgb(0.4, 0.6, 0.0),
			rgb(0.3, 0.7, 0.0),
			rgb(0.2, 0.8, 0.0),
			rgb(0.1, 0.9, 0.0),
			rgb(0.0, 1.0, 0.0),
			rgb(0.0, 0.9, 0.1),
			rgb(0.0, 0.8, 0.2),
			rgb(0.0, 0.7, 0.3),
			rgb(0.0, 0.6, 0.4),
			rgb(0.0, 0.5, 0.5),
			rgb(0.0, 0.4, 0.6),
			rgb(0.0, 0.3, 0.7),
			rgb(0.0, 0.2, 0.8),
			rgb(0.0, 0.1, 0.9),
			rgb(0.0, 0.0, 1.0),
		},
		Background: colors.Black[float32, colors.RGBA](1.0),
	}
}
