package canvaschart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	Indigo    = mustColor("#6366f1")
	Violet    = mustColor("#8b5cf6")
	Dashboard Palette
)

func init() {
	Dashboard = splitColorString("6366f18b5cf6ef4444f59e0b10b98106b6d4")
}

type Palette []color.NRGBA

func (p Palette) At(i int) color.NRGBA {
	if len(p) == 0 {
		return Indigo
	}
	return p[i%len(p)]
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseColor(str string) (color.NRGBA, error) {
	var (
		c   color.NRGBA
		hex = strings.TrimPrefix(strings.TrimSpace(str), "#")
	)
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return c, fmt.Errorf("%s: invalid color", str)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return c, fmt.Errorf("%s: invalid color", str)
	}
	c.R = uint8(v >> 24)
	c.G = uint8(v >> 16)
	c.B = uint8(v >> 8)
	c.A = uint8(v)
	return c, nil
}

// WithAlpha returns c with its opacity set to a (0 to 1).
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp(a, 0, 1)*255 + 0.5)
	return c
}

func HexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func mustColor(str string) color.NRGBA {
	c, err := ParseColor(str)
	if err != nil {
		panic(err)
	}
	return c
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, mustColor(str[i:i+6]))
	}
	return arr
}
