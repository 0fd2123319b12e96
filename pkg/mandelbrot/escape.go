package mandelbrot

import "github.com/willbeason/mandelbrot/pkg/transforms"

const (
	// EscapeRadius is the magnitude past which a point is known to diverge.
	EscapeRadius = 1000.0

	escapeThreshold = EscapeRadius * EscapeRadius
)

// Iterations returns the escape time of the pixel (x, y) of a width*height
// image framed on transforms.Classic. Coordinates may be fractional.
//
// The result is maxIterations for points that do not escape in time.
func Iterations(x, y float64, width, height, maxIterations int) int {
	return EscapeTime(transforms.Classic.At(x, y, width, height), maxIterations)
}

// EscapeTime iterates z <- z*z + c from z = 0 and returns the number of steps
// taken before |z| reaches EscapeRadius, capped at maxIterations. The
// magnitude is checked before each step, so a point with |c| >= EscapeRadius
// escapes after exactly one.
func EscapeTime(c transforms.Complex, maxIterations int) int {
	m := transforms.Mandelbrot{C: c}
	var z transforms.Complex

	i := 0
	for ; i < maxIterations && z.MagnitudeSquared() < escapeThreshold; i++ {
		m.Next(&z)
	}

	return i
}
