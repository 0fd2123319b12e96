package transforms

// Mandelbrot is the quadratic recurrence z <- z*z + C.
type Mandelbrot struct {
	C Complex
}

func (m Mandelbrot) Next(z *Complex) *Complex {
	return z.Multiply(*z).Add(m.C)
}

var _ Transform = Mandelbrot{}
