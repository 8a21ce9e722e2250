/*
Package convert dispatches binary font transcodings between web font formats.

Only sfnt fonts (TrueType and OpenType) are usable as conversion sources.
Web containers like WOFF and EOT, as well as SVG fonts, are targets only.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package convert

import (
	"fmt"
	"sort"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/font/eot"
	"github.com/npillmayer/fontpack/core/font/format"
	"github.com/npillmayer/fontpack/core/font/woff"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpack.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.fonts")
}

// Converter transcodes font data from one format to another.
type Converter func(data []byte) ([]byte, error)

// UnsupportedConversionError is returned for a pair of formats without a
// conversion path.
type UnsupportedConversionError struct {
	From, To format.ID
}

func (e UnsupportedConversionError) Error() string {
	return fmt.Sprintf("[%d] no conversion path from %s to %s", core.EUNSUPPORTED, e.From, e.To)
}

// ErrorCode is part of interface core.AppError.
func (e UnsupportedConversionError) ErrorCode() int {
	return core.EUNSUPPORTED
}

// UserMessage is part of interface core.AppError.
func (e UnsupportedConversionError) UserMessage() string {
	return fmt.Sprintf("cannot convert font from %s to %s", e.From, e.To)
}

var _ core.AppError = UnsupportedConversionError{}

// Matrix is a directed table of converters, keyed by (source, target).
type Matrix struct {
	converters map[format.ID]map[format.ID]Converter
}

// NewMatrix creates an empty conversion matrix. Only identity conversions are
// possible with an empty matrix.
func NewMatrix() *Matrix {
	return &Matrix{converters: make(map[format.ID]map[format.ID]Converter)}
}

// Default returns a matrix with the supported web font transcodings:
//
//	truetype → woff, embedded-opentype, opentype
//	opentype → woff, embedded-opentype, truetype
//
// Conversions between truetype and opentype pass the data through unchanged.
func Default() *Matrix {
	m := NewMatrix()
	for _, sfnt := range []format.ID{format.TrueType, format.OpenType} {
		m.Register(sfnt, format.WOFF, woff.Encode)
		m.Register(sfnt, format.EmbeddedOpenType, eot.Encode)
	}
	m.Register(format.TrueType, format.OpenType, passthrough)
	m.Register(format.OpenType, format.TrueType, passthrough)
	return m
}

// Register sets the converter for a pair of formats, replacing an existing one.
func (m *Matrix) Register(from, to format.ID, conv Converter) {
	if m.converters[from] == nil {
		m.converters[from] = make(map[format.ID]Converter)
	}
	m.converters[from][to] = conv
}

// Supports is a predicate: is there a conversion path from one format to another?
func (m *Matrix) Supports(from, to format.ID) bool {
	if from == to {
		return true
	}
	_, ok := m.converters[from][to]
	return ok
}

// Convert transcodes data from one format to another. If the formats are
// equal, data is returned unchanged (not copied). If the matrix has no
// converter for the pair, an UnsupportedConversionError is returned.
func (m *Matrix) Convert(from, to format.ID, data []byte) ([]byte, error) {
	if from == to {
		return data, nil
	}
	conv, ok := m.converters[from][to]
	if !ok {
		return nil, UnsupportedConversionError{From: from, To: to}
	}
	tracer().Debugf("converting %d bytes from %s to %s", len(data), from, to)
	out, err := conv(data)
	if err != nil {
		return nil, core.WrapError(err, core.Code(err), "conversion from %s to %s failed", from, to)
	}
	return out, nil
}

// Pair is a (source, target) entry of a matrix.
type Pair struct {
	From, To format.ID
}

// Pairs lists the non-identity conversions of m, sorted.
func (m *Matrix) Pairs() []Pair {
	var pairs []Pair
	for from, row := range m.converters {
		for to := range row {
			pairs = append(pairs, Pair{From: from, To: to})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	return pairs
}

func passthrough(data []byte) ([]byte, error) {
	return data, nil
}
