/*
Package option holds option types for under-specified configuration values.

A build query may leave a dimension unset, give a single value, or give a
list of values. Values captures these three shapes and normalizes them into
a plain list as early as possible, so that downstream code does not branch on
the shape of its input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontpack.loader'.
func tracer() tracing.Trace {
	return tracing.Select("fontpack.loader")
}
