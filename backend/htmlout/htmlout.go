/*
Package htmlout emits HTML documents after style normalization.

Rendering writes the normalized declarations of a style side table back into
style attributes, so the output is plain HTML with inline CSS and no
deprecated presentational markup. A client-initialize script, if given, is
appended to the document body:

	opts := htmlout.Options{ClientInitialize: "init();", Encoding: "utf-8"}
	err := htmlout.RenderFile("report.html", root, styles, opts)

The source tree is never modified.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlout

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/htmlstyle/core"
	"github.com/npillmayer/htmlstyle/engine/dom/styledtree"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// tracer traces with key 'htmlstyle.output'.
func tracer() tracing.Trace {
	return tracing.Select("htmlstyle.output")
}

// Options control rendering.
type Options struct {
	ClientInitialize string // JavaScript to run on the client, may be empty
	Encoding         string // output character set, defaults to UTF-8
}

// OptionsFromConfig reads rendering defaults from configuration key
// 'output-encoding'. conf may be nil.
func OptionsFromConfig(conf schuko.Configuration) Options {
	opts := Options{}
	if conf != nil {
		opts.Encoding = conf.GetString("output-encoding")
	}
	return opts
}

// Render writes doc to w, with styles taken from the side table.
func Render(w io.Writer, doc *html.Node, styles styledtree.Table, opts Options) error {
	if doc == nil {
		return core.Error(core.EMISSING, "no document to render")
	}
	out, err := encoder(w, opts.Encoding)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	root := Prepare(doc, styles, opts)
	if err = html.Render(bw, root); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot render HTML")
	}
	if err = bw.Flush(); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write HTML")
	}
	return nil
}

// RenderFile renders doc to a file, which is created or truncated.
func RenderFile(path string, doc *html.Node, styles styledtree.Table, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create output file %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = core.WrapError(cerr, core.EINTERNAL, "cannot close output file %s", path)
		}
	}()
	tracer().Infof("writing HTML to %s", path)
	return Render(f, doc, styles, opts)
}

// Prepare returns a copy of doc ready for output: the declarations of the
// side table are written back as style attributes, and the client-initialize
// script is appended to the body.
func Prepare(doc *html.Node, styles styledtree.Table, opts Options) *html.Node {
	root := clone(doc, styles)
	if strings.TrimSpace(opts.ClientInitialize) != "" {
		appendScript(root, opts.ClientInitialize)
	}
	return root
}

// clone copies the tree below n. Each element with a non-empty entry in
// styles gets a style attribute holding the normalized declaration.
func clone(n *html.Node, styles styledtree.Table) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	c.Attr = make([]html.Attribute, 0, len(n.Attr)+1)
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, "style") && hasStyle(n, styles) {
			continue
		}
		c.Attr = append(c.Attr, a)
	}
	if hasStyle(n, styles) {
		c.Attr = append(c.Attr, html.Attribute{Key: "style", Val: styles[n].Style().String()})
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.AppendChild(clone(ch, styles))
	}
	return c
}

func hasStyle(n *html.Node, styles styledtree.Table) bool {
	if n.Type != html.ElementNode {
		return false
	}
	sp, ok := styles.Lookup(n)
	return ok && sp.Style().Len() > 0
}

var bodySelector = cascadia.MustCompile("body")

// appendScript appends a script element as the last child of the body, or
// of the root if there is no body.
func appendScript(root *html.Node, js string) {
	parent := bodySelector.MatchFirst(root)
	if parent == nil {
		parent = root
	}
	script := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Script,
		Data:     "script",
		Attr:     []html.Attribute{{Key: "type", Val: "text/javascript"}},
	}
	script.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: "\n" + strings.Trim(js, "\n") + "\n",
	})
	parent.AppendChild(script)
}

// encoder wraps w to encode into a character set known to the HTML standard.
// Characters without a representation are written as character references.
func encoder(w io.Writer, name string) (io.Writer, error) {
	if name == "" {
		return w, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "unknown output encoding %q", name)
	}
	if enc == encoding.Nop {
		return w, nil
	}
	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
		return w, nil
	}
	tracer().Debugf("encoding output as %s", name)
	return encoding.HTMLEscapeUnsupported(enc.NewEncoder()).Writer(w), nil
}
