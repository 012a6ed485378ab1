package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/htmlstyle/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationOrderAndMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	d := NewDeclaration()
	d.Set("Color", "red")
	d.Set("width", "10px")
	d.Set("margin-top", "")
	assert.Equal(t, []string{"color", "width"}, d.Names())
	assert.Equal(t, Property("red"), d.GetProperty("COLOR"))
	//
	other := NewDeclaration()
	other.Set("width", "20px")
	other.SetImportant("height", "5px")
	d.Merge(other)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, Property("20px"), d.GetProperty("width"))
	assert.True(t, d.IsImportant("height"))
	assert.Equal(t, "color: red; width: 20px; height: 5px !important", d.String())
	//
	assert.Equal(t, Property("red"), d.Remove("color"))
	_, ok := d.Get("color")
	assert.False(t, ok)
}

func TestZeroDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	var d Declaration
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, NullStyle, d.Remove("x"))
	d.Merge(nil)
	d.Set("x", "y")
	assert.Equal(t, "x: y", d.String())
}

func TestCSSEngine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	d, err := NewCSSEngine().ParseDeclaration("color:red;width:10px;font-weight:bold !important;")
	require.NoError(t, err)
	assert.Equal(t, []string{"color", "width", "font-weight"}, d.Names())
	assert.Equal(t, Property("10px"), d.GetProperty("width"))
	assert.True(t, d.IsImportant("font-weight"))
	assert.Equal(t, Property("bold"), d.GetProperty("font-weight"))
}

func TestCSSEngineError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	_, err := NewCSSEngine().ParseDeclaration("color: red; {")
	if err != nil {
		assert.Equal(t, core.EINVALID, core.Code(err))
	}
}

func TestPropertyURI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	for in, out := range map[Property]string{
		"url(a.png)":                     "a.png",
		"URL( 'images/b.png' )":          "images/b.png",
		`url("http://example.com/a.png")`: "http://example.com/a.png",
	} {
		uri, ok := in.URI()
		assert.True(t, ok, in)
		assert.Equal(t, out, uri)
	}
	for _, in := range []Property{"none", "url()", `url("a.png)`, "a.png"} {
		_, ok := in.URI()
		assert.False(t, ok, in)
	}
}

func TestColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	c, ok := Property("Red").Color()
	assert.True(t, ok)
	assert.Equal(t, "#ff0000", HexColor(c))
	c, ok = Property("#0f0").Color()
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0, 0xff, 0, 0xff}, c)
	_, ok = Property("nocolor").Color()
	assert.False(t, ok)
	//
	assert.Equal(t, Property("navy"), Property(" NAVY ").NormalizeColor())
	assert.Equal(t, Property("#336699"), Property("336699").NormalizeColor())
	assert.Equal(t, Property("rgb(1,2,3)"), Property("rgb(1,2,3)").NormalizeColor())
}
