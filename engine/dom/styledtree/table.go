/*
Package styledtree holds the style side table for an HTML element tree.

Styles are not stored on the HTML nodes themselves. Instead, a Table maps
each element to its StyleProperties: a structured CSS declaration plus the
typed dimensions width and height, which layout consumers want to have
without re-parsing CSS text.

A table is created by the client, populated by one pass of a style
normalizer and discarded afterwards. Within a pass, entries are only ever
extended.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/htmlstyle/engine/dom/style"
	"github.com/npillmayer/htmlstyle/engine/dom/style/css"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'htmlstyle.style'.
func tracer() tracing.Trace {
	return tracing.Select("htmlstyle.style")
}

// Keys for typed dimensions.
const (
	Width  = "width"
	Height = "height"
)

// StyleProperties is the side table entry for an element.
type StyleProperties struct {
	style  *style.Declaration
	width  css.DimenT
	height css.DimenT
}

// NewStyleProperties creates an empty entry.
func NewStyleProperties() *StyleProperties {
	return &StyleProperties{
		style:  style.NewDeclaration(),
		width:  css.Dimen(),
		height: css.Dimen(),
	}
}

// Style returns the structured declaration of an entry. It is never nil.
func (sp *StyleProperties) Style() *style.Declaration {
	if sp.style == nil {
		sp.style = style.NewDeclaration()
	}
	return sp.style
}

// AddDimen records a typed dimension. Keys other than Width and Height are
// ignored, as are unset dimensions.
func (sp *StyleProperties) AddDimen(key string, d css.DimenT) {
	if d.IsNone() {
		return
	}
	switch key {
	case Width:
		sp.width = d
	case Height:
		sp.height = d
	default:
		tracer().Debugf("style table: no typed dimension %q", key)
	}
}

// Dimen returns a typed dimension, which may be unset.
func (sp *StyleProperties) Dimen(key string) css.DimenT {
	switch key {
	case Width:
		return sp.width
	case Height:
		return sp.height
	}
	return css.Dimen()
}

// Width returns the typed width.
func (sp *StyleProperties) Width() css.DimenT { return sp.width }

// Height returns the typed height.
func (sp *StyleProperties) Height() css.DimenT { return sp.height }

// --- Table -----------------------------------------------------------------

// Table is the style side table, keyed by element.
type Table map[*html.Node]*StyleProperties

// NewTable creates an empty side table.
func NewTable() Table {
	return make(Table)
}

// For fetches the entry for n, creating it on first access.
func (t Table) For(n *html.Node) *StyleProperties {
	if sp, ok := t[n]; ok {
		return sp
	}
	sp := NewStyleProperties()
	t[n] = sp
	return sp
}

// Lookup returns the entry for n, if present.
func (t Table) Lookup(n *html.Node) (*StyleProperties, bool) {
	sp, ok := t[n]
	return sp, ok
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t)
}
