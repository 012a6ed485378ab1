package html4

import (
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/htmlstyle/engine/dom/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ReplaceElement substitutes a new element with the given tag name for old,
// at the same position in the tree. Attributes are copied, children are
// moved over in order, and old is detached. The new element is returned.
func ReplaceElement(old *html.Node, tag string) *html.Node {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  atom.Lookup([]byte(tag)),
		Namespace: old.Namespace,
	}
	n.Attr = make([]html.Attribute, len(old.Attr))
	copy(n.Attr, old.Attr)
	// a node may have one parent only: always move the current first child
	for c := old.FirstChild; c != nil; c = old.FirstChild {
		old.RemoveChild(c)
		n.AppendChild(c)
	}
	if parent := old.Parent; parent != nil {
		parent.InsertBefore(n, old)
		parent.RemoveChild(old)
	}
	return n
}

// --- Deprecated elements ---------------------------------------------------

var deprecatedElements = cascadia.MustCompile("font, basefont, center, u, s, strike")

// ConvertDeprecated rewrites deprecated presentational elements and
// attributes below root into inline style, which is prepended to an
// element's existing style attribute. Authored inline style therefore wins
// over converted presentation. A deprecated root element without a parent is
// converted in place, so root stays valid for the caller. Returns the number
// of converted elements and attributes.
//
//     <font color="red" face="Arial">  →  <span style="color:red;font-family:Arial;">
//     <center>                         →  <div style="text-align:center;">
//     <td bgcolor="#eee" valign="top"> →  <td style="background-color:#eee;vertical-align:top;">
//
func (p *Processor) ConvertDeprecated(root *html.Node) int {
	if root == nil {
		return 0
	}
	cnt := 0
	for _, n := range deprecatedElements.MatchAll(root) {
		var buf strings.Builder
		tag := "span"
		switch n.DataAtom {
		case atom.Font, atom.Basefont:
			fontAttributes(&buf, n)
		case atom.Center:
			tag = "div"
			appendStyle(&buf, "text-align", "center")
		case atom.U:
			appendStyle(&buf, "text-decoration", "underline")
		case atom.S, atom.Strike:
			appendStyle(&buf, "text-decoration", "line-through")
		}
		tracer().Debugf("converting <%s> to <%s>", n.Data, tag)
		if n.Parent == nil {
			// detached root: the caller holds n, so it is retagged in place
			n.Data, n.DataAtom = tag, atom.Lookup([]byte(tag))
		} else {
			n = ReplaceElement(n, tag)
		}
		prependStyle(n, buf.String())
		cnt++
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			cnt += convertAttributes(n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return cnt
}

// fontSizes maps HTML font sizes 1…7 to CSS.
var fontSizes = [...]string{"x-small", "small", "medium", "large", "x-large", "xx-large", "xxx-large"}

func fontSize(size string) (string, bool) {
	size = strings.TrimSpace(size)
	n, err := strconv.Atoi(size)
	if err != nil {
		return "", false
	}
	if strings.HasPrefix(size, "+") || strings.HasPrefix(size, "-") {
		n += 3 // relative to the default size
	}
	if n < 1 {
		n = 1
	} else if n > len(fontSizes) {
		n = len(fontSizes)
	}
	return fontSizes[n-1], true
}

func fontAttributes(buf *strings.Builder, n *html.Node) {
	if c, ok := attr(n, "color"); ok {
		appendStyle(buf, "color", string(style.Property(c).NormalizeColor()))
		removeAttr(n, "color")
	}
	if face, ok := attr(n, "face"); ok {
		appendStyle(buf, "font-family", face)
		removeAttr(n, "face")
	}
	if size, ok := attr(n, "size"); ok {
		if css, ok := fontSize(size); ok {
			appendStyle(buf, "font-size", css)
		}
		removeAttr(n, "size")
	}
}

// --- Deprecated attributes -------------------------------------------------

// sizedElements may carry width and height attributes meant as presentation.
var sizedElements = map[atom.Atom]bool{
	atom.Img: true, atom.Table: true, atom.Td: true, atom.Th: true,
	atom.Hr: true, atom.Pre: true, atom.Col: true, atom.Colgroup: true,
}

// convertAttributes converts the presentational attributes of a single
// element and returns how many have been converted.
func convertAttributes(n *html.Node) int {
	var buf strings.Builder
	cnt := 0
	take := func(key string) (string, bool) {
		v, ok := attr(n, key)
		if !ok {
			return "", false
		}
		removeAttr(n, key)
		v = strings.TrimSpace(v)
		if v != "" {
			cnt++
		}
		return v, v != ""
	}
	if align, ok := take("align"); ok {
		align = strings.ToLower(align)
		switch n.DataAtom {
		case atom.Img, atom.Object, atom.Iframe:
			if align == "left" || align == "right" {
				appendStyle(&buf, "float", align)
			} else {
				appendStyle(&buf, "vertical-align", align)
			}
		case atom.Table:
			if align == "center" {
				appendStyle(&buf, "margin-left", "auto")
				appendStyle(&buf, "margin-right", "auto")
			} else {
				appendStyle(&buf, "float", align)
			}
		default:
			appendStyle(&buf, "text-align", align)
		}
	}
	if valign, ok := take("valign"); ok {
		appendStyle(&buf, "vertical-align", strings.ToLower(valign))
	}
	if bg, ok := take("bgcolor"); ok {
		appendStyle(&buf, "background-color", string(style.Property(bg).NormalizeColor()))
	}
	if img, ok := take("background"); ok {
		appendStyle(&buf, "background-image", "url("+img+")")
	}
	colorAttr := "color"
	if n.DataAtom == atom.Body {
		colorAttr = "text"
	}
	if c, ok := take(colorAttr); ok {
		appendStyle(&buf, "color", string(style.Property(c).NormalizeColor()))
	}
	if n.DataAtom == atom.Img || n.DataAtom == atom.Table {
		if b, ok := take("border"); ok {
			if w, ok := pixels(b); ok {
				appendStyle(&buf, "border-width", w)
				appendStyle(&buf, "border-style", "solid")
			}
		}
	}
	for _, key := range []string{"width", "height"} {
		if !sizedElements[n.DataAtom] {
			break
		}
		if v, ok := attr(n, key); ok {
			if d, ok := pixels(v); ok {
				take(key)
				appendStyle(&buf, key, d)
			}
		}
	}
	prependStyle(n, buf.String())
	return cnt
}

// pixels converts an HTML length attribute (a number of pixels or a
// percentage) to CSS.
func pixels(v string) (string, bool) {
	v = strings.TrimSpace(v)
	num := strings.TrimSuffix(v, "%")
	if _, err := strconv.ParseFloat(num, 64); err != nil {
		return "", false
	}
	if num != v {
		return v, true
	}
	return v + "px", true
}

func appendStyle(buf *strings.Builder, name, value string) {
	if name == "" || value == "" {
		return
	}
	buf.WriteString(name)
	buf.WriteByte(':')
	buf.WriteString(value)
	buf.WriteByte(';')
}

func prependStyle(n *html.Node, decl string) {
	if decl == "" {
		return
	}
	if inline, ok := attr(n, "style"); ok && strings.TrimSpace(inline) != "" {
		decl += inline
	}
	setAttr(n, "style", decl)
}
