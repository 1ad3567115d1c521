package gifplot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/fogleman/gg"
)

const (
	DefaultWidth  = 6.4
	DefaultHeight = 4.8
	DefaultDPI    = 100.0
)

// ErrNoChartRenderer is returned when a Chart is captured on a
// Capturer that was built without WithCharts.
var ErrNoChartRenderer = errors.New(
	"chart capture needs a renderer: gifplot.WithCharts(chartimg.Renderer{})")

// Capturer renders plots to decoded in-memory images.
type Capturer struct {
	width      float64
	height     float64
	dpi        float64
	background color.Color
	charts     ChartRenderer
}

type Option func(*Capturer)

// Size sets the figure size in inches.
func Size(w, h float64) Option {
	return func(c *Capturer) {
		c.width = w
		c.height = h
	}
}

// DPI sets the raster resolution in pixels per inch.
func DPI(dpi float64) Option {
	return func(c *Capturer) { c.dpi = dpi }
}

// Background sets the canvas color painted before each Raster capture.
func Background(col color.Color) Option {
	return func(c *Capturer) { c.background = col }
}

// WithCharts installs the chart-to-raster capability.
func WithCharts(r ChartRenderer) Option {
	return func(c *Capturer) { c.charts = r }
}

func NewCapturer(opts ...Option) *Capturer {
	c := &Capturer{
		width:      DefaultWidth,
		height:     DefaultHeight,
		dpi:        DefaultDPI,
		background: color.White,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PixelSize is the frame size in pixels implied by the configured
// figure size and DPI.
func (c *Capturer) PixelSize() (w, h int) {
	w = int(math.Round(c.width * c.dpi))
	h = int(math.Round(c.height * c.dpi))
	return
}

// Capture renders one plot to PNG in memory and returns the decoded
// image. Raster plots draw onto a fresh context; Chart plots go
// through the installed ChartRenderer and fail with ErrNoChartRenderer
// when there is none. Encoder and renderer errors are returned as-is.
func (c *Capturer) Capture(p Plot) (image.Image, error) {
	var buf bytes.Buffer

	switch p := p.(type) {
	case Raster:
		w, h := c.PixelSize()
		dc := gg.NewContext(w, h)
		dc.SetColor(c.background)
		dc.Clear()
		p(dc)
		if err := dc.EncodePNG(&buf); err != nil {
			return nil, err
		}
	case Chart:
		if c.charts == nil {
			return nil, ErrNoChartRenderer
		}
		o := RenderOptions{Width: c.width, Height: c.height, DPI: c.dpi}
		if err := c.charts.RenderPNG(p, &buf, o); err != nil {
			return nil, err
		}
	case nil:
		return nil, errors.New("capture: nil plot")
	default:
		return nil, fmt.Errorf("capture: unknown plot variant %T", p)
	}

	return png.Decode(&buf)
}

// Frame wraps a per-step plotting function into one that returns the
// captured frame, keeping the original calling convention.
func Frame[T any](c *Capturer, fn func(T) Plot) func(T) (image.Image, error) {
	return func(arg T) (image.Image, error) {
		return c.Capture(fn(arg))
	}
}
