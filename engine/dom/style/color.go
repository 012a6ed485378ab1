package style

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Color interprets a property as a color. Recognized are the CSS/SVG color
// keywords and hex notation `#rgb` / `#rrggbb`. The leading '#' may be missing,
// as HTML 4 user agents accepted `color="ff0000"`.
func (p Property) Color() (color.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	m := hexColorPattern.FindStringSubmatch(s)
	if m == nil {
		return color.Black, false
	}
	hex := m[1]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil { // cannot happen
		return color.Black, false
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, true
}

// HexColor formats a color as CSS hex notation `#rrggbb`.
func HexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// NormalizeColor returns a color property in canonical CSS form: color
// keywords in lower case, anything else recognized as a color in hex notation.
// Unrecognized values are returned unchanged.
func (p Property) NormalizeColor() Property {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	if _, ok := colornames.Map[s]; ok {
		return Property(s)
	}
	if c, ok := p.Color(); ok {
		return Property(HexColor(c))
	}
	return p
}
