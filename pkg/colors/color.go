// Package colors implements a four channel color value whose arithmetic
// is independent of the order the channels are stored in.
package colors

// Channel is the numeric type of a single color channel.
type Channel interface {
	~uint8 | ~uint16 | ~float32 | ~float64
}

// Channels reads a color by semantic channel.
type Channels[T Channel] interface {
	Red() T
	Green() T
	Blue() T
	Alpha() T
}

// Color holds exactly four channels laid out as O dictates.
type Color[T Channel, O Order] [4]T

// New builds a color from semantic channel values.
func New[T Channel, O Order](r, g, b, a T) Color[T, O] {
	var c Color[T, O]
	c.SetRed(r)
	c.SetGreen(g)
	c.SetBlue(b)
	c.SetAlpha(a)
	return c
}

// Transparent has every channel at zero.
func Transparent[T Channel, O Order]() Color[T, O] {
	return Color[T, O]{}
}

// Black is opaque black for a channel type whose full intensity is maxValue,
// e.g. 1.0 for floats or 255 for bytes.
func Black[T Channel, O Order](maxValue T) Color[T, O] {
	return New[T, O](0, 0, 0, maxValue)
}

func layout[O Order]() Layout {
	var o O
	return o.Layout()
}

func (c Color[T, O]) Red() T   { return c[layout[O]().Red] }
func (c Color[T, O]) Green() T { return c[layout[O]().Green] }
func (c Color[T, O]) Blue() T  { return c[layout[O]().Blue] }
func (c Color[T, O]) Alpha() T { return c[layout[O]().Alpha] }

func (c *Color[T, O]) SetRed(v T)   { c[layout[O]().Red] = v }
func (c *Color[T, O]) SetGreen(v T) { c[layout[O]().Green] = v }
func (c *Color[T, O]) SetBlue(v T)  { c[layout[O]().Blue] = v }
func (c *Color[T, O]) SetAlpha(v T) { c[layout[O]().Alpha] = v }

// Accumulate adds o channel by channel, matching channels by meaning rather
// than by position, so colors of different orders can be combined.
// Channel values are not clamped.
func (c *Color[T, O]) Accumulate(o Channels[T]) *Color[T, O] {
	c.SetRed(c.Red() + o.Red())
	c.SetGreen(c.Green() + o.Green())
	c.SetBlue(c.Blue() + o.Blue())
	c.SetAlpha(c.Alpha() + o.Alpha())
	return c
}

// ScaleBy multiplies every channel by f. The result is converted back to T,
// which truncates toward zero for integer channels.
func (c *Color[T, O]) ScaleBy(f float64) *Color[T, O] {
	for i, v := range c {
		c[i] = T(float64(v) * f)
	}
	return c
}

// Add returns c + o without modifying c.
func (c Color[T, O]) Add(o Channels[T]) Color[T, O] {
	return *c.Accumulate(o)
}

// Scale returns c * f without modifying c.
func (c Color[T, O]) Scale(f float64) Color[T, O] {
	return *c.ScaleBy(f)
}

// Reorder copies c into the channel order To.
func Reorder[To Order, T Channel, From Order](c Color[T, From]) Color[T, To] {
	return New[T, To](c.Red(), c.Green(), c.Blue(), c.Alpha())
}
