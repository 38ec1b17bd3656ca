package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/midbel/canvaschart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func series(values ...float64) canvaschart.Series {
	var s canvaschart.Series
	for _, v := range values {
		s = append(s, canvaschart.NewDataPoint("", v))
	}
	return s
}

func config(kind canvaschart.Kind) canvaschart.Config {
	cfg := canvaschart.DefaultConfig()
	cfg.Type = kind
	return cfg
}

func TestSurfaceFlatLine(t *testing.T) {
	s := New(600, 300)
	canvaschart.Render(s, config(canvaschart.KindLine), series(5, 5, 5))

	img := s.Image()
	assert.NotZero(t, alphaAt(img, 170, 260))
	assert.NotZero(t, alphaAt(img, 300, 260))
	assert.Zero(t, alphaAt(img, 300, 120))
}

func TestSurfaceClear(t *testing.T) {
	s := New(600, 300)
	canvaschart.Render(s, config(canvaschart.KindBar), series(100))
	assert.NotZero(t, alphaAt(s.Image(), 170, 180))

	canvaschart.Render(s, config(canvaschart.KindBar), nil)
	assert.Zero(t, alphaAt(s.Image(), 170, 180))
}

func TestSurfaceGlow(t *testing.T) {
	s := New(600, 300)
	canvaschart.Render(s, config(canvaschart.KindBar), series(100))
	assert.NotZero(t, alphaAt(s.Image(), 42, 180))

	cfg := config(canvaschart.KindBar)
	cfg.Style.Bar.Blur = 0
	canvaschart.Render(s, cfg, series(100))
	assert.Zero(t, alphaAt(s.Image(), 42, 180))
}

func TestSurfaceZeroHeightBar(t *testing.T) {
	s := New(600, 300)
	assert.NotPanics(t, func() {
		canvaschart.Render(s, config(canvaschart.KindBar), series(0, 10, -4))
	})
}

func TestSurfaceClearRectOutOfBounds(t *testing.T) {
	s := New(10, 10)
	s.SetFillStyle(canvaschart.SolidColor(color.NRGBA{R: 255, A: 255}))
	s.BeginPath()
	s.Rect(0, 0, 10, 10)
	s.Fill()
	require.NotZero(t, alphaAt(s.Image(), 5, 5))

	s.ClearRect(-5, -5, 100, 100)
	assert.Zero(t, alphaAt(s.Image(), 5, 5))
}

func TestEncodePNG(t *testing.T) {
	s := New(60, 30)
	canvaschart.Render(s, config(canvaschart.KindLine), series(1, 3, 2))

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestBlurMask(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 21, 21))
	img.SetRGBA(10, 10, color.RGBA{A: 255})

	out := blurMask(img, 4)
	assert.Equal(t, img.Bounds(), out.Bounds())
	_, _, _, a := out.At(11, 10).RGBA()
	assert.NotZero(t, a)
	_, _, _, a = out.At(10, 10).RGBA()
	assert.Less(t, a, uint32(0xffff))
	_, _, _, a = out.At(0, 0).RGBA()
	assert.Zero(t, a)
	assert.Same(t, img, blurMask(img, 0))
}

func TestTypedNilSurface(t *testing.T) {
	var s *Surface
	assert.NotPanics(t, func() {
		canvaschart.Render(s, config(canvaschart.KindBar), series(1, 2))
	})
	m := canvaschart.NewManager(func() (canvaschart.Surface, error) {
		return s, nil
	})
	assert.ErrorIs(t, m.Draw(config(canvaschart.KindLine), series(1, 2)), canvaschart.ErrUnavailable)
	assert.Equal(t, canvaschart.Uninitialized, m.State())
}
