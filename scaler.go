package canvaschart

import (
	"fmt"
	"math"
)

const barGap = 10.0

type ScaleMode int

const (
	// ScaleCompat scales lines by the [min, max] span and bars by max alone.
	ScaleCompat ScaleMode = iota
	// ScaleUnified scales bars with the same range as lines.
	ScaleUnified
)

func (m ScaleMode) String() string {
	if m == ScaleUnified {
		return "unified"
	}
	return "compat"
}

type ValueRange struct {
	Min  float64
	Max  float64
	Span float64
}

// Normalize computes the range of the series. It reports false when the
// series is empty. A flat series gets a span of 1.
func Normalize(series Series) (ValueRange, bool) {
	var rg ValueRange
	if len(series) == 0 {
		return rg, false
	}
	rg.Min = series[0].Value
	rg.Max = series[0].Value
	for _, pt := range series[1:] {
		rg.Min = math.Min(rg.Min, pt.Value)
		rg.Max = math.Max(rg.Max, pt.Value)
	}
	rg.Span = rg.Max - rg.Min
	if rg.Span == 0 {
		rg.Span = 1
	}
	return rg, true
}

func (r ValueRange) Ratio(v float64) float64 {
	return (v - r.Min) / r.Span
}

func MapLine(f Frame, index, n int, value float64, rg ValueRange) Point {
	var (
		width  = f.ChartWidth()
		height = f.ChartHeight()
		pos    Point
	)
	if n > 1 {
		pos.X = f.Padding + (width/float64(n-1))*float64(index)
	} else {
		pos.X = f.Padding + width/2
	}
	pos.Y = f.Height - f.Padding - rg.Ratio(value)*height
	return pos
}

func MapBar(f Frame, index, n int, value, max float64) Bar {
	var (
		space = f.ChartWidth() / float64(n)
		bar   Bar
	)
	bar.Width = space - barGap
	bar.X = f.Padding + space*float64(index) + barGap/2
	if max > 0 {
		bar.Height = clamp((value/max)*f.ChartHeight(), 0, f.ChartHeight())
	}
	bar.Y = f.Baseline() - bar.Height
	return bar
}

func mapUnifiedBar(f Frame, index, n int, value float64, rg ValueRange) Bar {
	bar := MapBar(f, index, n, 0, 1)
	bar.Height = clamp(rg.Ratio(value)*f.ChartHeight(), 0, f.ChartHeight())
	bar.Y = f.Baseline() - bar.Height
	return bar
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ParseScale(str string) (ScaleMode, error) {
	switch str {
	case "", "compat":
		return ScaleCompat, nil
	case "unified":
		return ScaleUnified, nil
	default:
		return ScaleCompat, fmt.Errorf("%s: unknown scale mode", str)
	}
}
