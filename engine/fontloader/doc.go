/*
Package fontloader expands a font family description into web font assets.

A family is described by a metadata document, listing the source font files
of the family, each tagged with weight, style and format:

	{ "name": "Gentium",
	  "files": [
	    { "file": "GentiumPlus-R.ttf", "weight": 400, "style": "normal" },
	    { "file": "GentiumPlus-I.ttf", "weight": 400, "style": "italic" }
	  ]
	}

Together with a query for the desired weights, styles and formats, a
Pipeline computes every (weight, style, format) target, finds the source for
each target, converts the source's binary data to the target format and
groups the results into font faces, one per (weight, style). The faces are
rendered into @font-face rules by a Renderer.

Reading files, naming and writing assets, and rendering the stylesheet are
done by collaborators: DataLoader, Emitter and Renderer.

A run either succeeds as a whole or fails with the first error encountered.
No asset is emitted for a failing run.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontloader

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpack.loader'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.loader")
}
