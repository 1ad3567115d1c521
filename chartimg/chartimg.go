// Package chartimg renders gifplot charts to PNG through gonum's vgimg
// raster backend. It is a separate package so that chart support, and
// the font stack it drags in, stays an opt-in dependency:
//
//	c := gifplot.NewCapturer(gifplot.WithCharts(chartimg.Renderer{}))
package chartimg

import (
	"errors"
	"io"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/nvlled/gifplot"
)

// Renderer implements gifplot.ChartRenderer.
type Renderer struct{}

func (Renderer) RenderPNG(ch gifplot.Chart, w io.Writer, o gifplot.RenderOptions) error {
	if ch.Plot == nil {
		return errors.New("chartimg: nil chart plot")
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(o.Width)*vg.Inch, vg.Length(o.Height)*vg.Inch),
		vgimg.UseDPI(int(o.DPI)),
	)
	ch.Plot.Draw(draw.New(canvas))

	png := vgimg.PngCanvas{Canvas: canvas}
	_, err := png.WriteTo(w)
	return err
}
