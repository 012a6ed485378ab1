package shorthand

import (
	"fmt"
	"strings"

	"github.com/npillmayer/htmlstyle/engine/dom/style"
	"github.com/npillmayer/htmlstyle/engine/dom/style/css"
)

var sides = []string{"top", "right", "bottom", "left"}

// boxRule expands 1–4 values onto the four sides (top, right, bottom, left),
// following the usual CSS clockwise notation. format receives the side name.
func boxRule(format string) Rule {
	return func(value string) []Longhand {
		parts := fields(value)
		var t, r, b, l string
		switch len(parts) {
		case 1:
			t, r, b, l = parts[0], parts[0], parts[0], parts[0]
		case 2:
			t, r, b, l = parts[0], parts[1], parts[0], parts[1]
		case 3:
			t, r, b, l = parts[0], parts[1], parts[2], parts[1]
		case 4:
			t, r, b, l = parts[0], parts[1], parts[2], parts[3]
		default:
			return nil
		}
		return []Longhand{
			{fmt.Sprintf(format, "top"), t},
			{fmt.Sprintf(format, "right"), r},
			{fmt.Sprintf(format, "bottom"), b},
			{fmt.Sprintf(format, "left"), l},
		}
	}
}

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

var borderWidths = map[string]bool{
	"thin": true, "medium": true, "thick": true,
}

// borderRule classifies the tokens of a border value into width, style and
// color, and writes them for each of the given sides.
func borderRule(onSides ...string) Rule {
	return func(value string) []Longhand {
		var width, bstyle, color string
		for _, part := range fields(value) {
			lower := strings.ToLower(part)
			switch {
			case borderWidths[lower] || isLength(part):
				width = part
			case borderStyles[lower]:
				bstyle = lower
			default:
				color = part
			}
		}
		var lh []Longhand
		for _, side := range onSides {
			if width != "" {
				lh = append(lh, Longhand{"border-" + side + "-width", width})
			}
			if bstyle != "" {
				lh = append(lh, Longhand{"border-" + side + "-style", bstyle})
			}
			if color != "" {
				lh = append(lh, Longhand{"border-" + side + "-color", color})
			}
		}
		return lh
	}
}

var fontStyles = map[string]bool{"normal": true, "italic": true, "oblique": true}

var fontWeights = map[string]bool{
	"bold": true, "bolder": true, "lighter": true, "100": true, "200": true, "300": true,
	"400": true, "500": true, "600": true, "700": true, "800": true, "900": true,
}

var fontSizes = map[string]bool{
	"xx-small": true, "x-small": true, "small": true, "medium": true, "large": true,
	"x-large": true, "xx-large": true, "smaller": true, "larger": true,
}

// fontRule expands
//
//     [style] [variant] [weight] size[/line-height] family[, family…]
//
// System font keywords (caption, menu, …) are not interpreted.
func fontRule(value string) []Longhand {
	parts := fields(value)
	var lh []Longhand
	i := 0
	for ; i < len(parts); i++ {
		lower := strings.ToLower(parts[i])
		if lower == "normal" {
			continue
		} else if fontStyles[lower] {
			lh = append(lh, Longhand{"font-style", lower})
		} else if lower == "small-caps" {
			lh = append(lh, Longhand{"font-variant", lower})
		} else if fontWeights[lower] {
			lh = append(lh, Longhand{"font-weight", lower})
		} else {
			break
		}
	}
	if i >= len(parts) {
		return nil
	}
	size, lineHeight := parts[i], ""
	if k := strings.IndexByte(size, '/'); k >= 0 {
		size, lineHeight = size[:k], size[k+1:]
	}
	if !fontSizes[strings.ToLower(size)] && !isLength(size) {
		return nil
	}
	lh = append(lh, Longhand{"font-size", size})
	if lineHeight != "" {
		lh = append(lh, Longhand{"line-height", lineHeight})
	}
	i++
	if i < len(parts) {
		lh = append(lh, Longhand{"font-family", strings.Join(parts[i:], " ")})
	}
	return lh
}

var repeats = map[string]bool{
	"repeat": true, "repeat-x": true, "repeat-y": true, "no-repeat": true,
}

var attachments = map[string]bool{"scroll": true, "fixed": true, "local": true}

var positions = map[string]bool{
	"left": true, "right": true, "top": true, "bottom": true, "center": true,
}

// backgroundRule expands image, repeat, attachment, position and color.
func backgroundRule(value string) []Longhand {
	if strings.EqualFold(strings.TrimSpace(value), "none") {
		return []Longhand{{"background-image", "none"}}
	}
	var image, repeat, attach, color string
	var pos []string
	for _, part := range fields(value) {
		lower := strings.ToLower(part)
		switch {
		case strings.HasPrefix(lower, "url("):
			image = part
		case lower == "none":
			image = lower
		case repeats[lower]:
			repeat = lower
		case attachments[lower]:
			attach = lower
		case positions[lower] || isLength(part):
			pos = append(pos, part)
		case isColor(part):
			color = part
		default:
			tracer().Debugf("background: unknown token %q", part)
			return nil
		}
	}
	var lh []Longhand
	if color != "" {
		lh = append(lh, Longhand{"background-color", color})
	}
	if image != "" {
		lh = append(lh, Longhand{"background-image", image})
	}
	if repeat != "" {
		lh = append(lh, Longhand{"background-repeat", repeat})
	}
	if attach != "" {
		lh = append(lh, Longhand{"background-attachment", attach})
	}
	if len(pos) > 0 {
		lh = append(lh, Longhand{"background-position", strings.Join(pos, " ")})
	}
	return lh
}

var listStyleTypes = map[string]bool{
	"disc": true, "circle": true, "square": true, "decimal": true,
	"decimal-leading-zero": true, "lower-roman": true, "upper-roman": true,
	"lower-greek": true, "lower-alpha": true, "lower-latin": true,
	"upper-alpha": true, "upper-latin": true, "none": true,
}

// listStyleRule expands type, position and image.
func listStyleRule(value string) []Longhand {
	var lh []Longhand
	for _, part := range fields(value) {
		lower := strings.ToLower(part)
		switch {
		case strings.HasPrefix(lower, "url("):
			lh = append(lh, Longhand{"list-style-image", part})
		case lower == "inside" || lower == "outside":
			lh = append(lh, Longhand{"list-style-position", lower})
		case listStyleTypes[lower]:
			lh = append(lh, Longhand{"list-style-type", lower})
		default:
			return nil
		}
	}
	return lh
}

// --- Helpers ---------------------------------------------------------------

func isLength(s string) bool {
	_, err := css.ParseDimen(s)
	return err == nil
}

func isColor(s string) bool {
	lower := strings.ToLower(s)
	if lower == "transparent" || lower == "currentcolor" {
		return true
	}
	for _, fn := range []string{"rgb(", "rgba(", "hsl(", "hsla("} {
		if strings.HasPrefix(lower, fn) {
			return true
		}
	}
	_, ok := style.Property(s).Color()
	return ok && !isLength(s)
}

// fields splits a property value at white space, keeping parenthesized
// groups (`url(…)`, `rgb(…)`) and quoted strings together.
func fields(value string) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	var quote rune
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	for _, r := range value {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return parts
}
