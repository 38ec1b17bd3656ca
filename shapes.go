package canvaschart

import (
	"math"
)

const fullcircle = 2 * math.Pi

func drawMarker(s Surface, pos Point, style Style) {
	s.SetFillStyle(SolidColor(style.Marker.Color))
	s.BeginPath()
	s.Arc(pos.X, pos.Y, style.Marker.Radius, 0, fullcircle)
	s.Fill()

	s.SetStrokeStyle(SolidColor(style.Marker.Halo))
	s.SetLineWidth(style.Marker.HaloWidth)
	s.BeginPath()
	s.Arc(pos.X, pos.Y, style.Marker.HaloRadius, 0, fullcircle)
	s.Stroke()
}

func fillRect(s Surface, bar Bar) {
	s.BeginPath()
	s.Rect(bar.X, bar.Y, bar.Width, bar.Height)
	s.Fill()
}
