package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/colors"
	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/imageio"
	"github.com/willbeason/mandelbrot/pkg/mandelbrot"
)

type flags struct {
	envFile string
	verbose bool

	width, height int
	iterations    int
	antiAlias     bool
	workers       int
	output        string
	format        string
}

func mainCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render the Mandelbrot set to an image",
		Long: `Render the Mandelbrot set over real [-2, 1] and imaginary [-1, 1].

Settings are read from MANDELBROT_* environment variables and an optional
dotenv file; flags take precedence over both.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, f)
		},
	}

	defaults := config.Default()
	fs := cmd.Flags()
	fs.StringVar(&f.envFile, "env", "", "dotenv file with MANDELBROT_* settings (default ./"+config.DefaultEnvFile+" if present)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log render progress")
	fs.IntVarP(&f.width, "width", "W", defaults.Width, "image width in pixels")
	fs.IntVarP(&f.height, "height", "H", defaults.Height, "image height in pixels")
	fs.IntVarP(&f.iterations, "iterations", "i", defaults.MaxIterations, "maximum iterations per sample")
	fs.BoolVar(&f.antiAlias, "antialias", defaults.AntiAliased, "blend nine samples per pixel")
	fs.IntVarP(&f.workers, "workers", "j", defaults.Workers, "goroutines rendering rows")
	fs.StringVarP(&f.output, "out", "o", defaults.Output, "output image path")
	fs.StringVarP(&f.format, "format", "f", "", "output format: png, bmp or tiff (default from the output extension)")

	return cmd
}

// apply overrides cfg with the flags given explicitly on the command line.
func (f *flags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("iterations") {
		cfg.MaxIterations = f.iterations
	}
	if fs.Changed("antialias") {
		cfg.AntiAliased = f.antiAlias
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("out") {
		cfg.Output = f.output
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func runCmd(cmd *cobra.Command, f *flags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := newLogger(cmd, f.verbose)
	mandelbrot.SetLogger(logger)
	defer mandelbrot.SetLogger(nil)

	cfg, err := config.Load(f.envFile)
	if err != nil {
		return err
	}
	f.apply(cmd, &cfg)

	err = cfg.Validate()
	if err != nil {
		return err
	}
	format, err := cfg.ImageFormat()
	if err != nil {
		return err
	}

	start := time.Now()
	pixels := mandelbrot.NewPixels[float32, colors.RGBA](cfg.Width, cfg.Height)
	mandelbrot.NewRenderer(mandelbrot.DefaultPalette()).Render(pixels, cfg.RenderOptions())

	img := imageio.NewImage(pixels, cfg.Width, cfg.Height)
	err = imageio.WriteFile(cfg.Output, img, format)
	if err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}

	logger.Info("image written",
		slog.String("path", cfg.Output),
		slog.String("format", string(format)),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
