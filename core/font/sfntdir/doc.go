/*
Package sfntdir gives raw access to the tables of an sfnt font file
(TrueType or OpenType).

Web font containers like WOFF and EOT wrap the tables of an sfnt font, and
need some fields from the 'head' and 'OS/2' tables. Package sfntdir reads the
table directory and these fields, nothing more. Clients who need glyph or
layout information should use a full parser.

Code comments often cite passages from the OpenType specification version 1.8.4;
see https://docs.microsoft.com/en-us/typography/opentype/spec/.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package sfntdir

import (
	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpack.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.fonts")
}

func errFontFormat(x string) error {
	return core.Error(core.EINVALID, "sfnt font format: %s", x)
}
