/*
Package style holds structured CSS style declarations.

A Declaration is an ordered set of CSS properties, as found in an element's
style attribute. Declarations are produced by a CSS engine (interface Parser)
and may be merged into one another, where later properties override earlier
ones with the same name.

The default CSS engine builds on

	github.com/aymerick/douceur

for tokenizing declaration text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlstyle.style'.
func tracer() tracing.Trace {
	return tracing.Select("htmlstyle.style")
}
