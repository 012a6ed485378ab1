/*
Package html reads HTML documents into an element tree.

Input is converted to UTF-8 according to the character set given by a
content type, a byte order mark or a <meta> declaration in the document.
Parsing itself follows the HTML5 algorithm of

	golang.org/x/net/html

and therefore never fails on malformed markup; errors stem from reading
the input only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"io"
	"os"

	"github.com/npillmayer/htmlstyle/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// tracer traces with key 'htmlstyle.html'.
func tracer() tracing.Trace {
	return tracing.Select("htmlstyle.html")
}

// Parse reads an HTML document. contentType may be empty or a MIME type like
// "text/html; charset=iso-8859-1".
func Parse(r io.Reader, contentType string) (*html.Node, error) {
	utf8, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, core.WrapError(err, core.EMARKUP, "cannot determine character set of HTML input")
	}
	root, err := html.Parse(utf8)
	if err != nil {
		return nil, core.WrapError(err, core.EMARKUP, "cannot read HTML input")
	}
	return root, nil
}

// ParseFile reads an HTML document from a file.
func ParseFile(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open HTML file %s", path)
	}
	defer f.Close()
	tracer().Infof("reading HTML from %s", path)
	return Parse(f, "")
}
