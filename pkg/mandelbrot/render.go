package mandelbrot

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/willbeason/mandelbrot/pkg/colors"
)

const (
	// DefaultMaxIterations bounds the escape time when Options leaves it unset.
	DefaultMaxIterations = 128

	// diagonal is sin(pi/4)/2, the half pixel offset of a sample grid
	// rotated by 45 degrees.
	diagonal = 0.35355339059327376220042218105242
)

// samples are the sub-pixel offsets blended around each pixel center when
// anti-aliasing.
var samples = [8][2]float64{
	{0.5, 0},
	{-0.5, 0},
	{0, 0.5},
	{0, -0.5},
	{diagonal, diagonal},
	{-diagonal, diagonal},
	{diagonal, -diagonal},
	{-diagonal, -diagonal},
}

// Options describe a single render.
type Options struct {
	// Width and Height are the image size in pixels. Both must be positive.
	Width, Height int

	// MaxIterations bounds the escape time. Zero selects DefaultMaxIterations.
	MaxIterations int

	// AntiAliased blends nine samples per pixel. The center sample carries
	// half of the weight and the eight around it share the other half.
	AntiAliased bool

	// Workers is the number of goroutines rendering rows. Values below two
	// render on the calling goroutine.
	Workers int
}

// DefaultOptions returns anti-aliased, sequential options for a width*height image.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:         width,
		Height:        height,
		MaxIterations: DefaultMaxIterations,
		AntiAliased:   true,
		Workers:       1,
	}
}

// A Renderer fills buffers with the Mandelbrot set colored by its palette.
type Renderer[T colors.Channel, O colors.Order] struct {
	palette Palette[T, O]
}

func NewRenderer[T colors.Channel, O colors.Order](palette Palette[T, O]) *Renderer[T, O] {
	return &Renderer[T, O]{palette: palette}
}

// Pixel computes the color of the pixel (x, y).
func (r *Renderer[T, O]) Pixel(x, y int, opts Options) colors.Color[T, O] {
	fx, fy := float64(x), float64(y)
	if !opts.AntiAliased {
		return r.sample(fx, fy, opts)
	}

	around := r.sample(fx+samples[0][0], fy+samples[0][1], opts)
	for _, s := range samples[1:] {
		around.Accumulate(r.sample(fx+s[0], fy+s[1], opts))
	}
	around.ScaleBy(0.125)

	c := r.sample(fx, fy, opts)
	c.Accumulate(around).ScaleBy(0.5)
	return c
}

func (r *Renderer[T, O]) sample(x, y float64, opts Options) colors.Color[T, O] {
	return r.palette.Color(Iterations(x, y, opts.Width, opts.Height, opts.MaxIterations), opts.MaxIterations)
}

func (r *Renderer[T, O]) row(buf Buffer[colors.Color[T, O]], y int, opts Options) {
	for x := 0; x < opts.Width; x++ {
		buf.Set(x+y*opts.Width, r.Pixel(x, y, opts))
	}
}

// Render writes every pixel of the image into buf at offset x + y*Width.
//
// buf must hold at least Width*Height colors.
func (r *Renderer[T, O]) Render(buf Buffer[colors.Color[T, O]], opts Options) {
	if opts.MaxIterations == 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if buf.Len() < opts.Width*opts.Height {
		panic(fmt.Sprintf("buffer holds %d pixels, need %d", buf.Len(), opts.Width*opts.Height))
	}

	logger := Logger()
	start := time.Now()
	logger.Debug("render started",
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height),
		slog.Int("max_iterations", opts.MaxIterations),
		slog.Bool("anti_aliased", opts.AntiAliased),
		slog.Int("workers", opts.Workers))

	if opts.Workers < 2 {
		for y := 0; y < opts.Height; y++ {
			r.row(buf, y, opts)
		}
	} else {
		r.renderParallel(buf, opts)
	}

	logger.Debug("render finished", slog.Duration("elapsed", time.Since(start)))
}

// renderParallel hands rows to opts.Workers goroutines. Rows are disjoint,
// so workers share nothing but the read-only palette.
func (r *Renderer[T, O]) renderParallel(buf Buffer[colors.Color[T, O]], opts Options) {
	rows := make(chan int)

	go func() {
		for y := 0; y < opts.Height; y++ {
			rows <- y
		}
		close(rows)
	}()

	wg := sync.WaitGroup{}
	wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go func() {
			for y := range rows {
				r.row(buf, y, opts)
			}
			wg.Done()
		}()
	}

	wg.Wait()
}
