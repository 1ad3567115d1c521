package gifplot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func solidFrame(c color.RGBA, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func rgbFrames(size int) []image.Image {
	return []image.Image{
		solidFrame(color.RGBA{255, 0, 0, 255}, size),
		solidFrame(color.RGBA{0, 255, 0, 255}, size),
		solidFrame(color.RGBA{0, 0, 255, 255}, size),
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, rgbFrames(20), 200*time.Millisecond); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Fatalf("wrong frame count, expected=%v, got=%v", 3, len(anim.Image))
	}
	if anim.LoopCount != 0 {
		t.Errorf("expected infinite loop, got=%v", anim.LoopCount)
	}
	for i, delay := range anim.Delay {
		if delay != 20 {
			t.Errorf("frame %v: wrong delay, expected=%v, got=%v", i, 20, delay)
		}
	}

	r, g, b, _ := anim.Image[0].At(5, 5).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("first frame is not red: %v", anim.Image[0].At(5, 5))
	}
}

func TestEncodeDefaultDelay(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, rgbFrames(10), 0); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for i, delay := range anim.Delay {
		if delay != 10 {
			t.Errorf("frame %v: wrong delay, expected=%v, got=%v", i, 10, delay)
		}
	}
}

func TestEncodeShortDelay(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, rgbFrames(10), 5*time.Millisecond); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for i, delay := range anim.Delay {
		if delay != 1 {
			t.Errorf("frame %v: wrong delay, expected=%v, got=%v", i, 1, delay)
		}
	}
}

func TestEncodeSingleFrame(t *testing.T) {
	var buf bytes.Buffer
	frames := []image.Image{solidFrame(color.RGBA{255, 0, 0, 255}, 10)}
	if err := Encode(&buf, frames, 0); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 1 {
		t.Errorf("wrong frame count, expected=%v, got=%v", 1, len(anim.Image))
	}
	if anim.LoopCount != 0 {
		t.Errorf("expected infinite loop, got=%v", anim.LoopCount)
	}
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, nil, 0)
	if !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on error, got %v bytes", buf.Len())
	}
}

func TestEncodePalettedPassThrough(t *testing.T) {
	pal := color.Palette{color.Black, color.White}
	paletted := image.NewPaletted(image.Rect(0, 0, 10, 10), pal)

	var buf bytes.Buffer
	err := Encode(&buf, []image.Image{paletted, paletted}, 0,
		Palette(func(image.Image) (color.Palette, error) {
			t.Error("palette function must not run for paletted frames")
			return pal, nil
		}))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if _, err := gif.DecodeAll(&buf); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
}

func gradientFrame(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / size),
				G: uint8(y * 255 / size),
				B: 100,
				A: 255,
			})
		}
	}
	return img
}

func TestEncodeUniformPalette(t *testing.T) {
	var buf bytes.Buffer
	frames := []image.Image{gradientFrame(32), gradientFrame(32), gradientFrame(32)}
	if err := Encode(&buf, frames, 0, Palette(Uniform(16))); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Errorf("wrong frame count, expected=%v, got=%v", 3, len(anim.Image))
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")

	if err := Save(rgbFrames(10), path, 0); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	frames := []image.Image{solidFrame(color.RGBA{0, 0, 255, 255}, 10)}
	if err := Save(frames, path, 0); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	anim, err := gif.DecodeAll(file)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 1 {
		t.Errorf("file was not overwritten, frame count=%v", len(anim.Image))
	}
}

func TestSaveNext(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "plot.gif")

	for i := 1; i <= 3; i++ {
		name, err := SaveNext(rgbFrames(10), base, 0)
		if err != nil {
			t.Fatalf("save failed: %v", err)
		}
		expected := filepath.Join(dir, fmt.Sprintf("plot-%v.gif", i))
		if name != expected {
			t.Errorf("wrong filename, expected=%v, got=%v", expected, name)
		}
		if _, err := os.Stat(name); err != nil {
			t.Errorf("missing output file: %v", err)
		}
	}
}
