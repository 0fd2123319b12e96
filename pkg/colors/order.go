package colors

// Layout gives the storage position of each semantic channel.
type Layout struct {
	Red, Green, Blue, Alpha int
}

// An Order fixes the channel layout of a Color at compile time.
// Implementations are zero-sized so they add nothing to a pixel.
type Order interface {
	Layout() Layout
}

type (
	RGBA struct{}
	BGRA struct{}
	ARGB struct{}
	ABGR struct{}
)

func (RGBA) Layout() Layout { return Layout{Red: 0, Green: 1, Blue: 2, Alpha: 3} }
func (BGRA) Layout() Layout { return Layout{Red: 2, Green: 1, Blue: 0, Alpha: 3} }
func (ARGB) Layout() Layout { return Layout{Red: 1, Green: 2, Blue: 3, Alpha: 0} }
func (ABGR) Layout() Layout { return Layout{Red: 3, Green: 2, Blue: 1, Alpha: 0} }
