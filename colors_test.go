package canvaschart

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		Input string
		Want  color.NRGBA
	}{
		{Input: "#6366f1", Want: color.NRGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff}},
		{Input: "8b5cf680", Want: color.NRGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 0x80}},
		{Input: "#fff", Want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
	for _, c := range tests {
		got, err := ParseColor(c.Input)
		require.NoError(t, err, c.Input)
		assert.Equal(t, c.Want, got, c.Input)
	}
	for _, str := range []string{"", "#12345", "#gggggg"} {
		_, err := ParseColor(str)
		assert.Error(t, err, str)
	}
}

func TestPalette(t *testing.T) {
	assert.Len(t, Dashboard, 6)
	assert.Equal(t, Indigo, Dashboard.At(0))
	assert.Equal(t, Violet, Dashboard.At(7))
	assert.Equal(t, Indigo, Palette(nil).At(3))
	assert.Equal(t, "#6366f1", HexColor(Indigo))
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, uint8(77), WithAlpha(Indigo, 0.3).A)
	assert.Equal(t, uint8(0), WithAlpha(Indigo, -1).A)
	assert.Equal(t, uint8(255), WithAlpha(Indigo, 2).A)
}
