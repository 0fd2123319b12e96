package transforms

// A Window is the rectangle of the complex plane mapped onto an image.
type Window struct {
	MinReal, MaxReal           float64
	MinImaginary, MaxImaginary float64
}

// Classic frames the whole set: real in [-2, 1], imaginary in [-1, 1].
var Classic = Window{
	MinReal:      -2.0,
	MaxReal:      1.0,
	MinImaginary: -1.0,
	MaxImaginary: 1.0,
}

// At maps the pixel (x, y) of a width*height image into the window.
// Pixel coordinates may be fractional to address sub-pixel samples.
//
// width and height must be positive.
func (w Window) At(x, y float64, width, height int) Complex {
	// The conversions keep the compiler from fusing into an FMA, so results
	// are identical across architectures.
	return Complex{
		Real:      float64((x/float64(width))*(w.MaxReal-w.MinReal)) + w.MinReal,
		Imaginary: float64((y/float64(height))*(w.MaxImaginary-w.MinImaginary)) + w.MinImaginary,
	}
}
