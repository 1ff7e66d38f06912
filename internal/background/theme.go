package background

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// FallbackColor is painted when the theme offers no usable foreground colour.
var FallbackColor = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

// ForegroundColor resolves the theme colour, falling back to FallbackColor.
// A lookup that panics is treated as unavailable.
func ForegroundColor(theme ThemeFunc) color.NRGBA {
	if theme == nil {
		return FallbackColor
	}
	raw, err := lookupTheme(theme)
	if err != nil {
		Logger().Debug("theme lookup failed", "err", err)
		return FallbackColor
	}
	c, ok := ResolveColor(raw)
	if !ok {
		if raw != "" {
			Logger().Debug("unparseable theme colour", "value", raw)
		}
		return FallbackColor
	}
	return c
}

func lookupTheme(theme ThemeFunc) (raw string, err error) {
	defer func() {
		if r := recover(); r != nil {
			raw, err = "", fmt.Errorf("theme lookup: %v", r)
		}
	}()
	return theme(), nil
}

// ResolveColor parses a theme colour. It accepts hex ("#rgb", "#rgba",
// "#rrggbb", "#rrggbbaa") and OKLCH, either bare ("0.145 0 0") or wrapped
// ("oklch(0.145 0 0 / 0.5)"). Lightness may be a percentage.
func ResolveColor(raw string) (color.NRGBA, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return color.NRGBA{}, false
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "oklch(") {
		if !strings.HasSuffix(lower, ")") {
			return color.NRGBA{}, false
		}
		s = s[len("oklch(") : len(s)-1]
	}
	return parseOKLCH(s)
}

// parseHex splits off an optional alpha digit pair and hands the colour
// part to colorful.Hex.
func parseHex(s string) (color.NRGBA, bool) {
	rgb, alpha := s, "ff"
	switch len(s) {
	case 5:
		rgb, alpha = s[:4], strings.Repeat(s[4:], 2)
	case 9:
		rgb, alpha = s[:7], s[7:]
	}
	a, err := strconv.ParseUint(alpha, 16, 8)
	if err != nil {
		return color.NRGBA{}, false
	}
	c, err := colorful.Hex(strings.ToLower(rgb))
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a)}, true
}

func parseOKLCH(s string) (color.NRGBA, bool) {
	alpha := 1.0
	if i := strings.Index(s, "/"); i >= 0 {
		a, ok := parseNumber(strings.TrimSpace(s[i+1:]), 1)
		if !ok {
			return color.NRGBA{}, false
		}
		alpha = clamp01(a)
		s = s[:i]
	}
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return color.NRGBA{}, false
	}
	l, ok1 := parseNumber(fields[0], 1)
	c, ok2 := parseNumber(fields[1], 0.4)
	h, ok3 := parseNumber(strings.TrimSuffix(fields[2], "deg"), 360)
	if !ok1 || !ok2 || !ok3 {
		return color.NRGBA{}, false
	}
	r, g, b := colorful.OkLch(l, c, h).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}, true
}

// parseNumber reads a float, treating a trailing '%' as a fraction of full.
func parseNumber(s string, full float64) (float64, bool) {
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		scale = full / 100
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v * scale, true
}
