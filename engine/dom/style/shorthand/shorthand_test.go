package shorthand

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBoxShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	var buf strings.Builder
	Expand(&buf, "margin", "1px 2px")
	assert.Equal(t, "margin-top:1px;margin-right:2px;margin-bottom:1px;margin-left:2px;", buf.String())
	//
	lh := Longhands("padding", "1px 2px 3px")
	assert.Equal(t, []Longhand{
		{"padding-top", "1px"}, {"padding-right", "2px"},
		{"padding-bottom", "3px"}, {"padding-left", "2px"},
	}, lh)
	lh = Longhands("border-color", "red green blue black")
	assert.Equal(t, Longhand{"border-left-color", "black"}, lh[3])
	//
	lh = Longhands("margin", "1px 2px 3px 4px 5px")
	assert.Equal(t, []Longhand{{"margin", "1px 2px 3px 4px 5px"}}, lh)
}

func TestBorderShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	lh := Longhands("border-top", "1px solid red")
	assert.Equal(t, []Longhand{
		{"border-top-width", "1px"},
		{"border-top-style", "solid"},
		{"border-top-color", "red"},
	}, lh)
	lh = Longhands("border", "thick dashed")
	assert.Len(t, lh, 8)
	assert.Contains(t, lh, Longhand{"border-left-style", "dashed"})
	assert.Contains(t, lh, Longhand{"border-bottom-width", "thick"})
}

func TestImportantShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	lh := Longhands("margin", "1px !important")
	assert.Equal(t, []Longhand{
		{"margin-top", "1px !important"}, {"margin-right", "1px !important"},
		{"margin-bottom", "1px !important"}, {"margin-left", "1px !important"},
	}, lh)
	lh = Longhands("border-top", "1px solid red ! IMPORTANT")
	assert.Equal(t, Longhand{"border-top-color", "red !important"}, lh[2])
	lh = Longhands("font", "bold 12px serif !important")
	assert.Contains(t, lh, Longhand{"font-family", "serif !important"})
	assert.Contains(t, lh, Longhand{"font-weight", "bold !important"})
	// pass-through keeps the value as written
	lh = Longhands("color", "red !important")
	assert.Equal(t, []Longhand{{"color", "red !important"}}, lh)
	//
	v, ok := SplitImportant("  1px 2px!important ")
	assert.True(t, ok)
	assert.Equal(t, "1px 2px", v)
	v, ok = SplitImportant("important")
	assert.False(t, ok)
	assert.Equal(t, "important", v)
}

func TestFontShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	lh := Longhands("font", "italic bold 12px/14px 'Times New Roman', serif")
	assert.Equal(t, []Longhand{
		{"font-style", "italic"},
		{"font-weight", "bold"},
		{"font-size", "12px"},
		{"line-height", "14px"},
		{"font-family", "'Times New Roman', serif"},
	}, lh)
	// no size: left as it is
	lh = Longhands("font", "bold Arial")
	assert.Equal(t, []Longhand{{"font", "bold Arial"}}, lh)
}

func TestBackgroundShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	lh := Longhands("background", "url( 'images/a b.png' ) no-repeat #fff left top")
	assert.Equal(t, []Longhand{
		{"background-color", "#fff"},
		{"background-image", "url( 'images/a b.png' )"},
		{"background-repeat", "no-repeat"},
		{"background-position", "left top"},
	}, lh)
	lh = Longhands("background", "none")
	assert.Equal(t, []Longhand{{"background-image", "none"}}, lh)
	lh = Longhands("background", "linear-gradient(red, blue)")
	assert.Equal(t, []Longhand{{"background", "linear-gradient(red, blue)"}}, lh)
}

func TestListStyleShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	lh := Longhands("list-style", "square inside")
	assert.Equal(t, []Longhand{
		{"list-style-type", "square"},
		{"list-style-position", "inside"},
	}, lh)
}

func TestPassThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	_, ok := Lookup("color")
	assert.False(t, ok)
	var buf strings.Builder
	Expand(&buf, " color ", " red ")
	Expand(&buf, "width", "")
	assert.Equal(t, "color:red;", buf.String())
}

func TestNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	assert.Equal(t, []string{
		"border", "border-bottom", "border-color", "border-left",
		"border-right", "border-style", "border-top", "border-width",
	}, Names("border"))
	assert.Len(t, Names(""), 13)
	_, ok := Lookup("MARGIN")
	assert.True(t, ok)
}

func TestFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.style")
	defer teardown()
	//
	assert.Equal(t, []string{"url(a b.png)", `"x y"`, "rgb(1, 2, 3)"},
		fields(`  url(a b.png)  "x y" rgb(1, 2, 3) `))
}
