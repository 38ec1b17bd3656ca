package vector

import (
	"bufio"
	"image/color"
	"io"
	"math"

	"github.com/midbel/canvaschart"
	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const FontSize = 13.0

// Surface records drawing commands as SVG elements.
//
// Gradients are rendered with the color of their first stop and the mean
// opacity of all stops. Shadows become a wide translucent stroke beneath
// the filled shape.
type Surface struct {
	width  float64
	height float64
	elems  []svg.Element

	path    svg.Path
	current bool

	fill   canvaschart.Paint
	stroke canvaschart.Paint
	line   float64
	shadow canvaschart.Shadow
}

func New(width, height int) *Surface {
	black := canvaschart.SolidColor(color.NRGBA{A: 0xff})
	return &Surface{
		width:  float64(width),
		height: float64(height),
		fill:   black,
		stroke: black,
		line:   1,
	}
}

func (s *Surface) Len() int {
	return len(s.elems)
}

func (s *Surface) Render(w io.Writer) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(s.width, s.height)
	el.OmitProlog = true
	for i := range s.elems {
		el.Append(s.elems[i])
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

// ClearRect drops every element when the region covers the whole surface.
// Partial clears have no SVG equivalent and are ignored.
func (s *Surface) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		s.elems = s.elems[:0]
	}
}

func (s *Surface) BeginPath() {
	s.path = svg.Path{}
	s.path.Rendering = "geometricPrecision"
	s.current = false
}

func (s *Surface) MoveTo(x, y float64) {
	s.path.AbsMoveTo(svg.NewPos(x, y))
	s.current = true
}

func (s *Surface) LineTo(x, y float64) {
	if !s.current {
		s.MoveTo(x, y)
		return
	}
	s.path.AbsLineTo(svg.NewPos(x, y))
}

func (s *Surface) Arc(x, y, radius, start, end float64) {
	var (
		sweep = end - start
		fst   = arcPos(x, y, radius, start)
	)
	s.LineTo(fst.X, fst.Y)
	if sweep >= 2*math.Pi {
		mid := arcPos(x, y, radius, start+math.Pi)
		s.path.AbsArcTo(mid, radius, radius, 0, false, true)
		s.path.AbsArcTo(fst, radius, radius, 0, false, true)
		return
	}
	lst := arcPos(x, y, radius, end)
	s.path.AbsArcTo(lst, radius, radius, 0, sweep > math.Pi, true)
}

func (s *Surface) Rect(x, y, w, h float64) {
	s.MoveTo(x, y)
	s.path.AbsLineTo(svg.NewPos(x+w, y))
	s.path.AbsLineTo(svg.NewPos(x+w, y+h))
	s.path.AbsLineTo(svg.NewPos(x, y+h))
	s.path.ClosePath()
}

func (s *Surface) ClosePath() {
	s.path.ClosePath()
}

func (s *Surface) SetFillStyle(p canvaschart.Paint) {
	s.fill = p
}

func (s *Surface) SetStrokeStyle(p canvaschart.Paint) {
	s.stroke = p
}

func (s *Surface) SetLineWidth(w float64) {
	s.line = w
}

func (s *Surface) SetLineCap(canvaschart.LineCap) {}

func (s *Surface) SetLineJoin(canvaschart.LineJoin) {}

func (s *Surface) SetShadow(sh canvaschart.Shadow) {
	s.shadow = sh
}

func (s *Surface) Fill() {
	if !s.current {
		return
	}
	if s.shadow.Enabled() {
		glow := s.path
		glow.Fill = svg.NewFill("none")
		glow.Stroke = svg.NewStroke(canvaschart.HexColor(s.shadow.Color), s.shadow.Blur)
		glow.Stroke.Opacity = opacity(s.shadow.Color.A) / 2
		s.elems = append(s.elems, glow.AsElement())
	}
	pat := s.path
	col, alpha := paint(s.fill)
	pat.Fill = svg.NewFill(col)
	pat.Fill.Opacity = alpha
	s.elems = append(s.elems, pat.AsElement())
}

func (s *Surface) Stroke() {
	if !s.current {
		return
	}
	pat := s.path
	col, alpha := paint(s.stroke)
	pat.Fill = svg.NewFill("none")
	pat.Stroke = svg.NewStroke(col, s.line)
	pat.Stroke.Opacity = alpha
	s.elems = append(s.elems, pat.AsElement())
}

func (s *Surface) FillText(str string, x, y float64) {
	col, alpha := paint(s.fill)

	var grp svg.Group
	grp.Fill = svg.NewFill(col)
	grp.Fill.Opacity = alpha

	txt := svg.NewText(str)
	txt.Pos = svg.NewPos(x, y)
	txt.Font = svg.NewFont(FontSize)
	grp.Append(txt.AsElement())

	s.elems = append(s.elems, grp.AsElement())
}

func paint(p canvaschart.Paint) (string, float64) {
	switch p := p.(type) {
	case canvaschart.Solid:
		return canvaschart.HexColor(p.NRGBA), opacity(p.A)
	case *canvaschart.Gradient:
		if len(p.Stops) == 0 {
			return "none", 0
		}
		var sum float64
		for _, s := range p.Stops {
			sum += opacity(s.Color.A)
		}
		fst := slices.Fst(p.Stops)
		return canvaschart.HexColor(fst.Color), sum / float64(len(p.Stops))
	default:
		return "none", 0
	}
}

func opacity(a uint8) float64 {
	return float64(a) / 255
}

func arcPos(x, y, radius, angle float64) svg.Pos {
	return svg.NewPos(x+radius*math.Cos(angle), y+radius*math.Sin(angle))
}
