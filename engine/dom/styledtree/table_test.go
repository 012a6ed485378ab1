package styledtree

import (
	"testing"

	"github.com/npillmayer/htmlstyle/core/dimen"
	"github.com/npillmayer/htmlstyle/engine/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestTableForCreatesOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	n := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
	table := NewTable()
	_, ok := table.Lookup(n)
	assert.False(t, ok)
	sp := table.For(n)
	sp.Style().Set("color", "red")
	assert.Same(t, sp, table.For(n))
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, "color: red", table.For(n).Style().String())
}

func TestTypedDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	sp := NewStyleProperties()
	assert.True(t, sp.Width().IsNone())
	sp.AddDimen(Width, css.SomeDimen(10*dimen.PX))
	sp.AddDimen(Height, css.Dimen())
	sp.AddDimen("depth", css.SomeDimen(1))
	assert.True(t, sp.Width().Equals(10*dimen.PX))
	assert.True(t, sp.Height().IsNone())
	assert.Equal(t, sp.Width(), sp.Dimen(Width))
	assert.True(t, sp.Dimen("depth").IsNone())
	//
	var zero StyleProperties
	assert.NotNil(t, zero.Style())
}
