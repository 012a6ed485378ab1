package html4

import (
	"regexp"
	"strings"

	"github.com/npillmayer/htmlstyle/core"
	"github.com/npillmayer/htmlstyle/core/locate/resources"
	"github.com/npillmayer/htmlstyle/engine/dom/style"
	"github.com/npillmayer/htmlstyle/engine/dom/style/css"
	"github.com/npillmayer/htmlstyle/engine/dom/style/shorthand"
	"github.com/npillmayer/htmlstyle/engine/dom/styledtree"
	"golang.org/x/net/html"
)

// Processor converts deprecated markup and inline style of an element tree
// into entries of a style side table.
type Processor struct {
	locator resources.Locator
	engine  style.Parser
}

// NewProcessor creates a style processor. Both collaborators are optional:
// without a locator, background images are left untouched; without a CSS
// engine, inline properties are recorded unparsed.
func NewProcessor(locator resources.Locator, engine style.Parser) *Processor {
	return &Processor{
		locator: locator,
		engine:  engine,
	}
}

// Normalize converts deprecated elements and attributes below root, then
// processes inline style (see ConvertDeprecated and Execute).
func (p *Processor) Normalize(root *html.Node, styles styledtree.Table, ctx resources.Context) {
	cnt := p.ConvertDeprecated(root)
	tracer().Debugf("converted %d deprecated elements and attributes", cnt)
	p.Execute(root, styles, ctx)
}

// Execute parses the style attribute of n and of every element below n, in
// pre-order. Declarations are merged into the side table entries of the
// elements, and style attributes are removed. Non-element nodes are never
// visited; for a document node, Execute descends into its elements.
func (p *Processor) Execute(n *html.Node, styles styledtree.Table, ctx resources.Context) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		sp := styles.For(n)
		if text, ok := attr(n, "style"); ok && strings.TrimSpace(text) != "" {
			if err := p.parseInlineStyle(sp, text); err != nil {
				tracer().Errorf("<%s>: cannot process style %q: %v", n.Data, text, err)
			}
		}
		removeAttr(n, "style")
		p.processBackgroundImage(sp.Style(), ctx)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			p.Execute(c, styles, ctx)
		}
	}
}

// parseInlineStyle expands the pairs of an inline style text into a
// declaration buffer, records typed width and height, and merges the parsed
// buffer into sp. Panics of the CSS engine are turned into errors.
func (p *Processor) parseInlineStyle(sp *styledtree.StyleProperties, text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.Error(core.EINTERNAL, "CSS engine failed: %v", r)
		}
	}()
	var buf strings.Builder
	var longhands []shorthand.Longhand
	for _, pair := range Tokenize(text) {
		shorthand.Expand(&buf, pair.Name, pair.Value)
		if p.engine == nil {
			longhands = append(longhands, shorthand.Longhands(pair.Name, pair.Value)...)
		}
		switch key := strings.ToLower(pair.Name); key {
		case styledtree.Width, styledtree.Height:
			v, _ := shorthand.SplitImportant(pair.Value)
			d, err := css.ParseDimen(v)
			if err != nil {
				tracer().Debugf("dropping %s: %q is not a dimension", key, pair.Value)
				continue
			}
			sp.AddDimen(key, d)
		}
	}
	if buf.Len() == 0 {
		return nil
	}
	if p.engine == nil {
		for _, lh := range longhands {
			if lh.Name == "" || lh.Value == "" {
				continue
			}
			if v, important := shorthand.SplitImportant(lh.Value); important {
				sp.Style().SetImportant(lh.Name, style.Property(v))
			} else {
				sp.Style().Set(lh.Name, style.Property(v))
			}
		}
		return nil
	}
	decl, err := p.engine.ParseDeclaration(buf.String())
	if err != nil {
		return err
	}
	sp.Style().Merge(decl)
	return nil
}

// processBackgroundImage resolves a background image reference of the form
// url(…). Local references are resolved with the locator and replaced by
// the resolved path, or removed if they cannot be found. External
// references are kept as url(…).
func (p *Processor) processBackgroundImage(decl *style.Declaration, ctx resources.Context) {
	const bgi = "background-image"
	if p.locator == nil {
		return
	}
	value, ok := decl.Get(bgi)
	if !ok {
		return
	}
	uri, ok := value.URI()
	if !ok {
		return
	}
	set := decl.Set
	if decl.IsImportant(bgi) {
		set = decl.SetImportant
	}
	if !resources.IsLocalResource(uri) {
		set(bgi, style.Property("url("+uri+")"))
		return
	}
	u, err := p.locator.Resolve(uri, resources.Image, ctx)
	if err != nil || u == nil {
		tracer().Debugf("background image %q: %v", uri, err)
		decl.Remove(bgi)
		return
	}
	resolved := u.String()
	if u.Scheme == "" || u.Scheme == "file" {
		resolved = u.Path
	}
	tracer().Debugf("background image %q resolved to %s", uri, resolved)
	set(bgi, style.Property(resolved))
}

// --- Tokenizing ------------------------------------------------------------

// Pair is a property name and value, as written in an inline style.
type Pair struct {
	Name, Value string
}

var pairPattern = regexp.MustCompile(`\s*([^:;]*):([^;]*);*`)

// Tokenize splits inline style text into name/value pairs. It tolerates
// surrounding white space and missing or repeated semicolons. Pairs with an
// empty name or value are dropped.
func Tokenize(text string) []Pair {
	var pairs []Pair
	for _, m := range pairPattern.FindAllStringSubmatch(text, -1) {
		name, value := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if name == "" || value == "" {
			continue
		}
		pairs = append(pairs, Pair{Name: name, Value: value})
	}
	return pairs
}

// --- Attribute helpers -----------------------------------------------------

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func removeAttr(n *html.Node, key string) bool {
	for i, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
