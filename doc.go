// Package gifplot turns a sequence of plots into a looping animated GIF.
//
// A Capturer renders one plot per call into a decoded in-memory image.
// Collect the images in order, then hand them to Save:
//
//	c := gifplot.NewCapturer(gifplot.Size(3.2, 3.2))
//
//	var frames []image.Image
//	for i := 0; i < 30; i++ {
//		frame, err := c.Capture(gifplot.Raster(func(dc *gg.Context) {
//			dc.DrawCircle(x[i], y[i], 4)
//			dc.Fill()
//		}))
//		if err != nil {
//			log.Fatal(err)
//		}
//		frames = append(frames, frame)
//	}
//
//	err := gifplot.Save(frames, "out.gif", 100*time.Millisecond)
//
// Plots come in two variants: Raster draws onto an explicit gg context,
// Chart wraps a declarative gonum plot. Chart capture needs a renderer
// from the chartimg subpackage:
//
//	c := gifplot.NewCapturer(gifplot.WithCharts(chartimg.Renderer{}))
package gifplot
