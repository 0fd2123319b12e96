package transforms

// Complex is the iteration state of an escape-time recurrence.
//
// Operations mutate the receiver and return it so they can be chained, as in
// z.Multiply(z).Add(c).
type Complex struct {
	Real      float64
	Imaginary float64
}

// MagnitudeSquared avoids the square root of cmplx.Abs for escape tests.
func (z *Complex) MagnitudeSquared() float64 {
	return z.Real*z.Real + z.Imaginary*z.Imaginary
}

func (z *Complex) Add(o Complex) *Complex {
	z.Real += o.Real
	z.Imaginary += o.Imaginary
	return z
}

// Multiply computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (z *Complex) Multiply(o Complex) *Complex {
	re := z.Real*o.Real - z.Imaginary*o.Imaginary
	im := z.Real*o.Imaginary + o.Real*z.Imaginary
	z.Real, z.Imaginary = re, im
	return z
}

func (z Complex) Complex128() complex128 {
	return complex(z.Real, z.Imaginary)
}
