package canvaschart

import (
	"github.com/midbel/slices"
)

type Renderer interface {
	Render(Surface, Frame, Series)
}

type GridRenderer struct {
	Lines int
	Style Style
}

func (r GridRenderer) Render(s Surface, f Frame, _ Series) {
	lines := r.Lines
	if lines <= 0 {
		return
	}
	var step float64
	if lines > 1 {
		step = f.ChartHeight() / float64(lines-1)
	}
	s.SetStrokeStyle(SolidColor(r.Style.Grid.Color))
	s.SetLineWidth(r.Style.Grid.Width)
	for i := 0; i < lines; i++ {
		y := f.Top() + step*float64(i)
		s.BeginPath()
		s.MoveTo(f.Left(), y)
		s.LineTo(f.Right(), y)
		s.Stroke()
	}
}

type LineRenderer struct {
	Range ValueRange
	Style Style
}

func (r LineRenderer) Render(s Surface, f Frame, series Series) {
	if len(series) == 0 {
		return
	}
	var (
		points = r.project(f, series)
		top    = topmost(points)
	)
	s.SetStrokeStyle(SolidColor(r.Style.Line.Color))
	s.SetLineWidth(r.Style.Line.Width)
	s.SetLineCap(CapRound)
	s.SetLineJoin(JoinRound)

	s.BeginPath()
	for i, pos := range points {
		if i == 0 {
			s.MoveTo(pos.X, pos.Y)
		} else {
			s.LineTo(pos.X, pos.Y)
		}
	}
	s.Stroke()

	s.LineTo(slices.Lst(points).X, f.Baseline())
	s.LineTo(slices.Fst(points).X, f.Baseline())
	s.ClosePath()

	grad := NewLinearGradient(0, top, 0, f.Baseline())
	grad.AddColorStop(0, r.Style.Area.Color)
	grad.AddColorStop(1, WithAlpha(r.Style.Area.Color, 0))
	s.SetFillStyle(grad)
	s.Fill()

	for _, pos := range points {
		drawMarker(s, pos, r.Style)
	}
}

func (r LineRenderer) project(f Frame, series Series) []Point {
	points := make([]Point, len(series))
	for i, pt := range series {
		points[i] = MapLine(f, i, len(series), pt.Value, r.Range)
	}
	return points
}

type BarRenderer struct {
	Range ValueRange
	Scale ScaleMode
	Style Style
}

func (r BarRenderer) Render(s Surface, f Frame, series Series) {
	if len(series) == 0 {
		return
	}
	if r.Range.Max <= 0 {
		return
	}
	glow := Shadow{
		Color: r.Style.Bar.Glow,
		Blur:  r.Style.Bar.Blur,
	}
	for i, pt := range series {
		var bar Bar
		if r.Scale == ScaleUnified {
			bar = mapUnifiedBar(f, i, len(series), pt.Value, r.Range)
		} else {
			bar = MapBar(f, i, len(series), pt.Value, r.Range.Max)
		}
		grad := NewLinearGradient(0, bar.Y, 0, f.Baseline())
		grad.AddColorStop(0, r.Style.Bar.Top)
		grad.AddColorStop(1, r.Style.Bar.Bottom)
		s.SetFillStyle(grad)

		fillRect(s, bar)
		withShadow(s, glow, func() {
			fillRect(s, bar)
		})
	}
}

func topmost(points []Point) float64 {
	top := slices.Fst(points).Y
	for _, p := range slices.Rest(points) {
		if p.Y < top {
			top = p.Y
		}
	}
	return top
}
