/*
Package emit names font assets and writes them to an output location.

Asset names are built from a template with placeholders:

	[name]       base name of the family's metadata resource, without extension
	[ext]        file extension of the font's format, without dot
	[hash]       hex MD5 digest of the font data
	[hash:N]     the first N characters of the digest
	[weight]     font weight
	[style]      font style
	[format]     format identifier, e.g. "woff"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package emit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontpack.emit'.
func tracer() tracing.Trace {
	return tracing.Select("fontpack.emit")
}
