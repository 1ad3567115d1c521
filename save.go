package gifplot

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/xyproto/palgen"
)

// DefaultDelay is the per-frame display time used when Save or Encode
// is given a zero duration.
const DefaultDelay = 100 * time.Millisecond

// ErrNoFrames is returned when saving an empty frame sequence.
var ErrNoFrames = errors.New("no frames to save")

// PaletteFunc derives a palette of at most 256 colors for one frame.
type PaletteFunc func(image.Image) (color.Palette, error)

// MedianCut is the default PaletteFunc, a median-cut quantization of
// the frame's own colors.
func MedianCut(img image.Image) (color.Palette, error) {
	quantizer := quantize.MedianCutQuantizer{}
	return quantizer.Quantize(make([]color.Color, 0, 256), img), nil
}

// Uniform returns a PaletteFunc that reduces each frame to a generated
// palette of size colors.
func Uniform(size int) PaletteFunc {
	return func(img image.Image) (color.Palette, error) {
		return palgen.Generate(img, size)
	}
}

type saveConfig struct {
	palette PaletteFunc
}

type SaveOption func(*saveConfig)

// Palette overrides the per-frame palette strategy.
func Palette(fn PaletteFunc) SaveOption {
	return func(cfg *saveConfig) { cfg.palette = fn }
}

// Encode writes frames as a looping animated GIF. Every frame is shown
// for duration (0 means DefaultDelay) and the animation loops forever.
// Frame order is playback order; the sequence must be non-empty.
func Encode(w io.Writer, frames []image.Image, duration time.Duration, opts ...SaveOption) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if duration <= 0 {
		duration = DefaultDelay
	}
	cfg := saveConfig{palette: MedianCut}
	for _, opt := range opts {
		opt(&cfg)
	}

	// GIF delays are centiseconds; keep short positive durations representable
	csDelay := int(duration.Milliseconds() / 10)
	if csDelay < 1 {
		csDelay = 1
	}
	anim := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		paletted, err := palettize(frame, cfg.palette)
		if err != nil {
			return err
		}
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, csDelay)
	}
	return gif.EncodeAll(w, anim)
}

func palettize(img image.Image, fn PaletteFunc) (*image.Paletted, error) {
	if paletted, ok := img.(*image.Paletted); ok {
		return paletted, nil
	}
	pal, err := fn(img)
	if err != nil {
		return nil, err
	}
	paletted := image.NewPaletted(img.Bounds(), pal)
	draw.Src.Draw(paletted, img.Bounds(), img, img.Bounds().Min)
	return paletted, nil
}

// Save encodes frames to an animated GIF at path, overwriting any
// existing file. Filesystem errors are returned as-is.
func Save(frames []image.Image, path string, duration time.Duration, opts ...SaveOption) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := Encode(file, frames, duration, opts...); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// SaveNext is Save with an incremented filename: given "plot.gif" it
// writes plot-1.gif, then plot-2.gif the next run, and so on, and
// returns the name it wrote to.
func SaveNext(frames []image.Image, path string, duration time.Duration, opts ...SaveOption) (string, error) {
	next, _, err := NextIncrementedFilename(path)
	if err != nil {
		return "", err
	}
	if err := Save(frames, next, duration, opts...); err != nil {
		return "", err
	}
	return next, nil
}
