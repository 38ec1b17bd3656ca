package canvaschart

import (
	"image/color"
)

type Style struct {
	Line struct {
		Color color.NRGBA
		Width float64
	}
	Area struct {
		Color color.NRGBA
	}
	Marker struct {
		Color      color.NRGBA
		Radius     float64
		Halo       color.NRGBA
		HaloRadius float64
		HaloWidth  float64
	}
	Grid struct {
		Color color.NRGBA
		Width float64
		Lines int
	}
	Bar struct {
		Top    color.NRGBA
		Bottom color.NRGBA
		Glow   color.NRGBA
		Blur   float64
	}
	Text struct {
		Color color.NRGBA
	}
}

func DefaultStyle() Style {
	var s Style
	s.Line.Color = Indigo
	s.Line.Width = 3
	s.Area.Color = WithAlpha(Indigo, 0.3)

	s.Marker.Color = Indigo
	s.Marker.Radius = 4
	s.Marker.Halo = WithAlpha(Indigo, 0.3)
	s.Marker.HaloRadius = 7
	s.Marker.HaloWidth = 2

	s.Grid.Color = WithAlpha(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 0.05)
	s.Grid.Width = 1
	s.Grid.Lines = 5

	s.Bar.Top = Violet
	s.Bar.Bottom = Indigo
	s.Bar.Glow = WithAlpha(Indigo, 0.5)
	s.Bar.Blur = 10

	s.Text.Color = color.NRGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
	return s
}

// StyleFrom derives a style from a single accent color.
func StyleFrom(c color.NRGBA) Style {
	s := DefaultStyle()
	s.Line.Color = c
	s.Area.Color = WithAlpha(c, 0.3)
	s.Marker.Color = c
	s.Marker.Halo = WithAlpha(c, 0.3)
	s.Bar.Top = c
	s.Bar.Bottom = c
	s.Bar.Glow = WithAlpha(c, 0.5)
	return s
}
