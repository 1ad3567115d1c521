package gifplot

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Scaled resamples every frame to w by h pixels with Catmull-Rom
// interpolation, for callers mixing frames captured at different
// sizes. Frames already at the target size are passed through.
func Scaled(frames []image.Image, w, h int) []image.Image {
	out := make([]image.Image, len(frames))
	for i, frame := range frames {
		bounds := frame.Bounds()
		if bounds.Dx() == w && bounds.Dy() == h {
			out[i] = frame
			continue
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), frame, bounds, xdraw.Src, nil)
		out[i] = dst
	}
	return out
}
