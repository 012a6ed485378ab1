package htmlout

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/htmlstyle/core"
	"github.com/npillmayer/htmlstyle/engine/dom/html4"
	"github.com/npillmayer/htmlstyle/engine/dom/style"
	"github.com/npillmayer/htmlstyle/engine/dom/styledtree"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const clientInitialize = `var chart = document.getElementById("chart");
    chart.style.display = "block";
alert( "initialized" );`

func normalized(t *testing.T, doc string) (*html.Node, styledtree.Table) {
	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	styles := styledtree.NewTable()
	html4.NewProcessor(nil, style.NewCSSEngine()).Normalize(root, styles, nil)
	return root, styles
}

func TestClientInitializeLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.output")
	defer teardown()
	//
	root, styles := normalized(t, `<html><body><center><p style="color:red">Report</p></center>
		<div id="chart"></div></body></html>`)
	htmlFileName := filepath.Join(t.TempDir(), "htmlClientInitializeTest.html")
	err := RenderFile(htmlFileName, root, styles, Options{ClientInitialize: clientInitialize})
	require.NoError(t, err)
	defer func() {
		os.Remove(htmlFileName)
		_, err := os.Stat(htmlFileName)
		assert.True(t, os.IsNotExist(err))
	}()
	f, err := os.Open(htmlFileName)
	require.NoError(t, err)
	defer f.Close()
	found, err := ContainsScriptLines(f, clientInitialize)
	require.NoError(t, err)
	assert.True(t, found, "expected client-initialize script in rendered output")
}

func TestRenderWritesStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.output")
	defer teardown()
	//
	root, styles := normalized(t, `<p style="color:red; margin: 0 1px"><font color="blue">x</font></p>`)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, root, styles, Options{}))
	out := buf.String()
	assert.Contains(t, out, `<p style="color: red; margin-top: 0; margin-right: 1px; margin-bottom: 0; margin-left: 1px">`)
	assert.Contains(t, out, `<span style="color: blue">x</span>`)
	assert.NotContains(t, out, "<script")
	// source tree is left alone
	assert.Nil(t, cascadia.MustCompile("[style]").MatchFirst(root))
}

func TestRenderEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.output")
	defer teardown()
	//
	root, styles := normalized(t, `<p>Grüße</p>`)
	conf := testconfig.Conf{"output-encoding": "iso-8859-1"}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, root, styles, OptionsFromConfig(conf)))
	assert.True(t, bytes.Contains(buf.Bytes(), []byte("Gr\xfc\xdfe")))
	//
	buf.Reset()
	require.NoError(t, Render(&buf, root, styles, Options{Encoding: "UTF-8"}))
	assert.Contains(t, buf.String(), "Grüße")
	//
	err := Render(&buf, root, styles, Options{Encoding: "klingon"})
	assert.Equal(t, core.EINVALID, core.Code(err))
	err = Render(&buf, nil, styles, Options{})
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestScriptWithoutBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.output")
	defer teardown()
	//
	frag := &html.Node{Type: html.ElementNode, Data: "div"}
	root := Prepare(frag, styledtree.NewTable(), Options{ClientInitialize: "init();"})
	require.NotNil(t, root.LastChild)
	assert.Equal(t, "script", root.LastChild.Data)
	assert.Nil(t, frag.FirstChild)
}

func TestContainsScriptLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.output")
	defer teardown()
	//
	rendered := "<script>\n  a();\n  x = 1;\n  b();\n</script>\n"
	found, err := ContainsScriptLines(strings.NewReader(rendered), "a();\nb();")
	require.NoError(t, err)
	assert.True(t, found)
	found, err = ContainsScriptLines(strings.NewReader(rendered), "b();\na();")
	require.NoError(t, err)
	assert.False(t, found)
}
