/*
Package resources resolves resources referenced from report markup.

HTML fragments of a report may reference images, e.g. as a CSS
background-image. References are either local (relative paths, file URIs)
or external (http, data, …). Local references are resolved by a Locator
against a resolution context, which carries hints like the base directory
of the report design. External references are left to the client.

Resolution is a fast, synchronous lookup on the local file system or in an
in-memory table; it never touches the network.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'htmlstyle.resources'.
func tracer() tracing.Trace {
	return tracing.Select("htmlstyle.resources")
}
