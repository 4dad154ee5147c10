package canvas

import (
	"math"
	"strconv"
	"strings"
)

// Color is an RGB color with 0-255 channels.
type Color struct {
	R, G, B int
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGB builds a color from 0-1 channel intensities.
func RGB(r, g, b float64) Color {
	return Color{R: channel(r), G: channel(g), B: channel(b)}
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Hex parses "#rrggbb" or "#rgb". Invalid input yields black.
func Hex(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")

	var c Color
	switch len(hex) {
	case 6:
		c.R = parseHexByte(hex[0:2])
		c.G = parseHexByte(hex[2:4])
		c.B = parseHexByte(hex[4:6])
	case 3:
		c.R = parseHexByte(strings.Repeat(hex[0:1], 2))
		c.G = parseHexByte(strings.Repeat(hex[1:2], 2))
		c.B = parseHexByte(strings.Repeat(hex[2:3], 2))
	}
	return c
}

func parseHexByte(s string) int {
	val, err := strconv.ParseInt(s, 16, 0)
	if err != nil {
		return 0
	}
	return int(val)
}
