package canvaschart

import (
	"fmt"
	"image/color"
	"reflect"
	"strings"
)

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Surface is a 2D raster destination. It is owned by the host and borrowed
// by Render for the duration of one call.
//
// Path commands accumulate into the current path until BeginPath is called
// again; Fill and Stroke do not consume it.
type Surface interface {
	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, start, end float64)
	Rect(x, y, w, h float64)
	ClosePath()

	SetFillStyle(Paint)
	SetStrokeStyle(Paint)
	SetLineWidth(float64)
	SetLineCap(LineCap)
	SetLineJoin(LineJoin)
	SetShadow(Shadow)

	Fill()
	Stroke()
}

// TextSurface is implemented by surfaces able to draw text.
type TextSurface interface {
	Surface
	FillText(str string, x, y float64)
}

type Paint interface {
	fmt.Stringer
	paint()
}

type Solid struct {
	color.NRGBA
}

func SolidColor(c color.NRGBA) Solid {
	return Solid{NRGBA: c}
}

func (s Solid) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", s.R, s.G, s.B, s.A)
}

func (Solid) paint() {}

type Stop struct {
	Offset float64
	Color  color.NRGBA
}

type Gradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []Stop
}

func NewLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return &Gradient{
		X0: x0,
		Y0: y0,
		X1: x1,
		Y1: y1,
	}
}

func (g *Gradient) AddColorStop(offset float64, c color.NRGBA) {
	g.Stops = append(g.Stops, Stop{
		Offset: clamp(offset, 0, 1),
		Color:  c,
	})
}

// Degenerate reports whether the gradient has no direction.
func (g *Gradient) Degenerate() bool {
	return g.X0 == g.X1 && g.Y0 == g.Y1
}

func (g *Gradient) String() string {
	var str strings.Builder
	fmt.Fprintf(&str, "linear(%g,%g,%g,%g", g.X0, g.Y0, g.X1, g.Y1)
	for _, s := range g.Stops {
		fmt.Fprintf(&str, ";%g:%s", s.Offset, SolidColor(s.Color))
	}
	str.WriteString(")")
	return str.String()
}

func (*Gradient) paint() {}

// Shadow is drawn beneath filled shapes. The zero value disables it.
type Shadow struct {
	Color color.NRGBA
	Blur  float64
}

func (s Shadow) Enabled() bool {
	return s.Blur > 0 && s.Color.A > 0
}

func (s Shadow) String() string {
	if !s.Enabled() {
		return "none"
	}
	return fmt.Sprintf("%s/%g", SolidColor(s.Color), s.Blur)
}

// withShadow enables sh on s for the duration of fn and always resets it.
func withShadow(s Surface, sh Shadow, fn func()) {
	s.SetShadow(sh)
	defer s.SetShadow(Shadow{})
	fn()
}

// isNil reports whether s is nil or holds a nil pointer.
func isNil(s Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
