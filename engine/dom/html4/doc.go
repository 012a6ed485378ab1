/*
Package html4 normalizes the styling of HTML 4 documents.

Older HTML carries its presentation in two places: in deprecated elements and
attributes (<font>, <center>, bgcolor, align, …) and in inline style
attributes. A Processor converts both into structured CSS declarations, kept
in a side table (package styledtree) keyed by element:

	styles := styledtree.NewTable()
	p := html4.NewProcessor(locator, style.NewCSSEngine())
	p.Normalize(root, styles, resources.Context{resources.BaseKey: "/reports"})

After a pass, no element carries a style attribute any more. Shorthand
properties are expanded to longhands, width and height are additionally kept
as typed dimensions, and background images are resolved with a resource
locator.

Malformed inline style never aborts a pass: the offending element is traced
at error level and keeps whatever could be recorded before the failure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html4

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlstyle.html'.
func tracer() tracing.Trace {
	return tracing.Select("htmlstyle.html")
}
