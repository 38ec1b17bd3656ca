package raster

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/midbel/canvaschart"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	opMove = iota
	opLine
	opArc
	opRect
	opClose
)

type segment struct {
	op   int
	args [5]float64
}

// Surface draws into an RGBA image through gg. The current path is kept
// until BeginPath so that it can be filled and stroked more than once.
type Surface struct {
	img *image.RGBA
	ctx *gg.Context

	path   []segment
	fill   canvaschart.Paint
	stroke canvaschart.Paint
	width  float64
	cap    canvaschart.LineCap
	join   canvaschart.LineJoin
	shadow canvaschart.Shadow
	face   font.Face
}

func New(width, height int) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Surface{
		img:    img,
		ctx:    gg.NewContextForRGBA(img),
		fill:   canvaschart.SolidColor(color.NRGBA{A: 0xff}),
		stroke: canvaschart.SolidColor(color.NRGBA{A: 0xff}),
		width:  1,
		face:   basicfont.Face7x13,
	}
}

func (s *Surface) Image() image.Image {
	return s.img
}

func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return s.ctx.EncodePNG(w)
}

func (s *Surface) SavePNG(file string) error {
	return s.ctx.SavePNG(file)
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)),
		int(math.Floor(y)),
		int(math.Ceil(x+w)),
		int(math.Ceil(y+h)),
	)
	r = r.Intersect(s.img.Bounds())
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

func (s *Surface) BeginPath() {
	s.path = s.path[:0]
}

func (s *Surface) MoveTo(x, y float64) {
	s.push(opMove, x, y)
}

func (s *Surface) LineTo(x, y float64) {
	s.push(opLine, x, y)
}

func (s *Surface) Arc(x, y, radius, start, end float64) {
	s.push(opArc, x, y, radius, start, end)
}

func (s *Surface) Rect(x, y, w, h float64) {
	s.push(opRect, x, y, w, h)
}

func (s *Surface) ClosePath() {
	s.push(opClose)
}

func (s *Surface) SetFillStyle(p canvaschart.Paint) {
	s.fill = p
}

func (s *Surface) SetStrokeStyle(p canvaschart.Paint) {
	s.stroke = p
}

func (s *Surface) SetLineWidth(w float64) {
	s.width = w
}

func (s *Surface) SetLineCap(c canvaschart.LineCap) {
	s.cap = c
}

func (s *Surface) SetLineJoin(j canvaschart.LineJoin) {
	s.join = j
}

func (s *Surface) SetShadow(sh canvaschart.Shadow) {
	s.shadow = sh
}

func (s *Surface) Fill() {
	if len(s.path) == 0 {
		return
	}
	if s.shadow.Enabled() {
		s.drawShadow()
	}
	s.replay(s.ctx)
	s.ctx.SetFillStyle(pattern(s.fill))
	s.ctx.Fill()
}

func (s *Surface) Stroke() {
	if len(s.path) == 0 {
		return
	}
	s.replay(s.ctx)
	s.ctx.SetStrokeStyle(pattern(s.stroke))
	s.ctx.SetLineWidth(s.width)
	s.ctx.SetLineCap(lineCap(s.cap))
	s.ctx.SetLineJoin(lineJoin(s.join))
	s.ctx.Stroke()
}

func (s *Surface) FillText(str string, x, y float64) {
	s.ctx.SetFontFace(s.face)
	s.ctx.SetColor(firstColor(s.fill))
	s.ctx.DrawString(str, x, y)
}

func (s *Surface) drawShadow() {
	mask := image.NewRGBA(s.img.Bounds())
	dc := gg.NewContextForRGBA(mask)
	s.replay(dc)
	dc.SetColor(s.shadow.Color)
	dc.Fill()

	s.ctx.DrawImage(blurMask(mask, s.shadow.Blur), 0, 0)
}

// blurMask spreads mask like a canvas shadow of the given blur, whose
// gaussian deviation is half the blur.
func blurMask(mask image.Image, blur float64) image.Image {
	if blur <= 0 {
		return mask
	}
	return imaging.Blur(mask, blur/2)
}

func (s *Surface) replay(dc *gg.Context) {
	dc.ClearPath()
	for _, g := range s.path {
		a := g.args
		switch g.op {
		case opMove:
			dc.MoveTo(a[0], a[1])
		case opLine:
			dc.LineTo(a[0], a[1])
		case opArc:
			dc.DrawArc(a[0], a[1], a[2], a[3], a[4])
		case opRect:
			dc.DrawRectangle(a[0], a[1], a[2], a[3])
		case opClose:
			dc.ClosePath()
		}
	}
}

func (s *Surface) push(op int, args ...float64) {
	var g segment
	g.op = op
	copy(g.args[:], args)
	s.path = append(s.path, g)
}

func pattern(p canvaschart.Paint) gg.Pattern {
	switch p := p.(type) {
	case canvaschart.Solid:
		return gg.NewSolidPattern(p.NRGBA)
	case *canvaschart.Gradient:
		if len(p.Stops) == 0 {
			return gg.NewSolidPattern(color.Transparent)
		}
		if p.Degenerate() {
			return gg.NewSolidPattern(p.Stops[0].Color)
		}
		grad := gg.NewLinearGradient(p.X0, p.Y0, p.X1, p.Y1)
		for _, s := range p.Stops {
			grad.AddColorStop(s.Offset, s.Color)
		}
		return grad
	default:
		return gg.NewSolidPattern(color.Black)
	}
}

func firstColor(p canvaschart.Paint) color.Color {
	switch p := p.(type) {
	case canvaschart.Solid:
		return p.NRGBA
	case *canvaschart.Gradient:
		if len(p.Stops) > 0 {
			return p.Stops[0].Color
		}
	}
	return color.Black
}

func lineCap(c canvaschart.LineCap) gg.LineCap {
	switch c {
	case canvaschart.CapRound:
		return gg.LineCapRound
	case canvaschart.CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func lineJoin(j canvaschart.LineJoin) gg.LineJoin {
	if j == canvaschart.JoinRound {
		return gg.LineJoinRound
	}
	return gg.LineJoinBevel
}
