/*
Package resources resolves font files for a build.

As resource loading may be a time-consuming task, functions in this package
work in an async/await fashion by returning a promise. Loading starts when a
client awaits a promise for the first time, and the result is kept: every
further call returns the same data without touching the file system again.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontpack.resources'.
func tracer() tracing.Trace {
	return tracing.Select("fontpack.resources")
}
