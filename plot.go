package gifplot

import (
	"io"

	"github.com/fogleman/gg"
	"gonum.org/v1/plot"
)

// Plot is the value a plotting function produces: either a Raster
// drawing or a Chart. The two variants have nothing in common beyond
// being renderable to a frame, so this is a closed union rather than a
// behavioral interface.
type Plot interface {
	plotVariant()
}

// Raster is the imperative variant: a callback that draws onto the
// drawing context it is given. The context is created fresh for every
// capture, so drawings never leak from one frame into the next.
type Raster func(dc *gg.Context)

func (Raster) plotVariant() {}

// Chart is the declarative variant: a fully built gonum plot.
// Capturing one requires a ChartRenderer, see WithCharts.
type Chart struct {
	Plot *plot.Plot
}

func (Chart) plotVariant() {}

// RenderOptions carries the capture configuration down to a
// ChartRenderer. Width and Height are in inches.
type RenderOptions struct {
	Width  float64
	Height float64
	DPI    float64
}

// ChartRenderer renders a chart to PNG bytes. The chartimg subpackage
// provides the vgimg-backed implementation; keeping it behind an
// interface means the raster backend and its font dependencies stay
// opt-in.
type ChartRenderer interface {
	RenderPNG(ch Chart, w io.Writer, o RenderOptions) error
}
