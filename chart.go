package canvaschart

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultWidth   = 600
	DefaultHeight  = 300
	DefaultPadding = 40
)

var ErrKind = errors.New("unknown chart type")

type Kind int

const (
	KindLine Kind = iota
	KindBar
)

func ParseKind(str string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "", "line":
		return KindLine, nil
	case "bar":
		return KindBar, nil
	default:
		return KindLine, fmt.Errorf("%s: %w", str, ErrKind)
	}
}

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindBar:
		return "bar"
	default:
		return "unknown"
	}
}

type Config struct {
	Title   string
	Type    Kind
	Width   int
	Height  int
	Padding int
	Scale   ScaleMode
	Style   Style
}

func DefaultConfig() Config {
	return Config{
		Type:    KindLine,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: DefaultPadding,
		Scale:   ScaleCompat,
		Style:   DefaultStyle(),
	}
}

func (c Config) Frame() Frame {
	return Frame{
		Width:   float64(c.Width),
		Height:  float64(c.Height),
		Padding: float64(c.Padding),
	}
}

// Frame is the pixel geometry of a chart: the surface size and the inset
// area where data is plotted.
type Frame struct {
	Width   float64
	Height  float64
	Padding float64
}

func (f Frame) ChartWidth() float64 {
	return f.Width - 2*f.Padding
}

func (f Frame) ChartHeight() float64 {
	return f.Height - 2*f.Padding
}

func (f Frame) Baseline() float64 {
	return f.Height - f.Padding
}

func (f Frame) Top() float64 {
	return f.Padding
}

func (f Frame) Left() float64 {
	return f.Padding
}

func (f Frame) Right() float64 {
	return f.Width - f.Padding
}

// Render clears the surface and draws the series as described by cfg. A nil
// surface is a no-op. Nothing is retained between calls.
func Render(s Surface, cfg Config, series Series) {
	if isNil(s) {
		return
	}
	var (
		frame = cfg.Frame()
		style = cfg.Style
	)
	if style == (Style{}) {
		style = DefaultStyle()
	}
	s.SetShadow(Shadow{})
	s.ClearRect(0, 0, frame.Width, frame.Height)

	if ts, ok := s.(TextSurface); ok && cfg.Title != "" {
		ts.SetFillStyle(SolidColor(style.Text.Color))
		ts.FillText(cfg.Title, frame.Left(), frame.Top()/2)
	}

	grid := GridRenderer{
		Lines: style.Grid.Lines,
		Style: style,
	}
	grid.Render(s, frame, series)

	rg, ok := Normalize(series)
	if !ok {
		return
	}
	var rdr Renderer
	switch cfg.Type {
	case KindBar:
		rdr = BarRenderer{
			Range: rg,
			Scale: cfg.Scale,
			Style: style,
		}
	default:
		rdr = LineRenderer{
			Range: rg,
			Style: style,
		}
	}
	rdr.Render(s, frame, series)
}
