package canvaschart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFrame = Frame{
	Width:   600,
	Height:  300,
	Padding: 40,
}

func makeSeries(values ...float64) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = NewDataPoint("", v)
	}
	return s
}

func TestNormalize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, ok := Normalize(nil)
		assert.False(t, ok)
	})
	t.Run("range", func(t *testing.T) {
		rg, ok := Normalize(makeSeries(12, -3, 40, 7))
		require.True(t, ok)
		assert.Equal(t, ValueRange{Min: -3, Max: 40, Span: 43}, rg)
	})
	t.Run("flat", func(t *testing.T) {
		rg, ok := Normalize(makeSeries(5, 5, 5))
		require.True(t, ok)
		assert.Equal(t, ValueRange{Min: 5, Max: 5, Span: 1}, rg)
	})
}

func TestMapLine(t *testing.T) {
	series := makeSeries(20, 80)
	rg, ok := Normalize(series)
	require.True(t, ok)

	assert.Equal(t, 520.0, testFrame.ChartWidth())
	assert.Equal(t, 220.0, testFrame.ChartHeight())

	p0 := MapLine(testFrame, 0, len(series), 20, rg)
	p1 := MapLine(testFrame, 1, len(series), 80, rg)
	assert.Equal(t, NewPoint(40, 260), p0)
	assert.Equal(t, NewPoint(560, 40), p1)
}

func TestMapLineSingleSample(t *testing.T) {
	for _, v := range []float64{-10, 0, 3.5, 1e6} {
		rg, _ := Normalize(makeSeries(v))
		pos := MapLine(testFrame, 0, 1, v, rg)
		assert.Equal(t, testFrame.Padding+testFrame.ChartWidth()/2, pos.X)
		assert.Equal(t, testFrame.Baseline(), pos.Y)
	}
}

func TestMapBar(t *testing.T) {
	b0 := MapBar(testFrame, 0, 2, 50, 100)
	b1 := MapBar(testFrame, 1, 2, 100, 100)

	assert.Equal(t, 250.0, b0.Width)
	assert.Equal(t, 45.0, b0.X)
	assert.Equal(t, 0.5*testFrame.ChartHeight(), b0.Height)
	assert.Equal(t, testFrame.Baseline()-b0.Height, b0.Y)

	assert.Equal(t, 305.0, b1.X)
	assert.Equal(t, testFrame.ChartHeight(), b1.Height)
	assert.Equal(t, testFrame.Top(), b1.Y)
}

func TestMapBarClamp(t *testing.T) {
	tests := []struct {
		Value float64
		Max   float64
		Want  float64
	}{
		{Value: -20, Max: 100, Want: 0},
		{Value: 0, Max: 100, Want: 0},
		{Value: 150, Max: 100, Want: 220},
		{Value: 10, Max: 0, Want: 0},
		{Value: 10, Max: -5, Want: 0},
	}
	for _, c := range tests {
		bar := MapBar(testFrame, 0, 3, c.Value, c.Max)
		assert.GreaterOrEqual(t, bar.Height, 0.0)
		assert.Equal(t, c.Want, bar.Height, "value %g, max %g", c.Value, c.Max)
		assert.Equal(t, testFrame.Baseline()-bar.Height, bar.Y)
	}
}

func TestMapUnifiedBar(t *testing.T) {
	rg, _ := Normalize(makeSeries(50, 100))
	b0 := mapUnifiedBar(testFrame, 0, 2, 50, rg)
	b1 := mapUnifiedBar(testFrame, 1, 2, 100, rg)

	assert.Equal(t, 0.0, b0.Height)
	assert.Equal(t, testFrame.ChartHeight(), b1.Height)
	assert.Equal(t, MapBar(testFrame, 1, 2, 0, 1).X, b1.X)
}
