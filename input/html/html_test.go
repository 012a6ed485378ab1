package html

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/htmlstyle/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLatin1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.html")
	defer teardown()
	//
	doc := []byte("<html><body><p>Gr\xfc\xdfe</p></body></html>")
	root, err := Parse(bytes.NewReader(doc), "text/html; charset=iso-8859-1")
	require.NoError(t, err)
	p := cascadia.MustCompile("p").MatchFirst(root)
	require.NotNil(t, p)
	assert.Equal(t, "Grüße", p.FirstChild.Data)
}

func TestParseMetaCharset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.html")
	defer teardown()
	//
	doc := []byte("<html><head><meta charset=\"windows-1252\"></head><body><p>caf\xe9</p></body></html>")
	root, err := Parse(bytes.NewReader(doc), "")
	require.NoError(t, err)
	p := cascadia.MustCompile("p").MatchFirst(root)
	require.NotNil(t, p)
	assert.Equal(t, "café", p.FirstChild.Data)
}

func TestParseFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.html")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "test.html")
	require.NoError(t, os.WriteFile(path, []byte("<p style='color:red'>x"), 0644))
	root, err := ParseFile(path)
	require.NoError(t, err)
	assert.NotNil(t, cascadia.MustCompile("body > p").MatchFirst(root))
	//
	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.html"))
	assert.Equal(t, core.EMISSING, core.Code(err))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParseReadError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlstyle.html")
	defer teardown()
	//
	_, err := Parse(failingReader{}, "")
	require.Error(t, err)
	assert.Equal(t, core.EMARKUP, core.Code(err))
	assert.ErrorContains(t, err, "disk on fire")
}
