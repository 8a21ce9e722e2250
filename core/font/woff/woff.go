/*
Package woff wraps sfnt fonts into WOFF 1.0 containers.

WOFF (https://www.w3.org/TR/WOFF/) stores the tables of a TrueType or
OpenType font, each table compressed with zlib. The font data itself is not
changed, so decoding a WOFF file yields the original tables bit for bit.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package woff

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/font/sfntdir"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpack.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.fonts")
}

// Signature is the magic number at the start of every WOFF file ('wOFF').
const Signature uint32 = 0x774F4646

// Header is the WOFF file header, 44 bytes.
type Header struct {
	Signature      uint32
	Flavor         uint32 // sfnt version of the wrapped font
	Length         uint32 // total size of the WOFF file
	NumTables      uint16
	Reserved       uint16
	TotalSfntSize  uint32 // size of the uncompressed sfnt font
	MajorVersion   uint16
	MinorVersion   uint16
	MetaOffset     uint32
	MetaLength     uint32
	MetaOrigLength uint32
	PrivOffset     uint32
	PrivLength     uint32
}

// TableEntry is an entry of the WOFF table directory, 20 bytes.
type TableEntry struct {
	Tag          uint32
	Offset       uint32
	CompLength   uint32
	OrigLength   uint32
	OrigChecksum uint32
}

const (
	headerSize     = 44
	tableEntrySize = 20
)

// Encode wraps the sfnt font data into a WOFF container.
// Tables are stored compressed if compression makes them smaller, and
// uncompressed otherwise.
func Encode(font []byte) ([]byte, error) {
	dir, err := sfntdir.Parse(font)
	if err != nil {
		return nil, err
	}
	major, minor, err := dir.Version()
	if err != nil {
		return nil, err
	}
	n := len(dir.Records)
	entries := make([]TableEntry, n)
	blobs := make([][]byte, n)
	offset := headerSize + tableEntrySize*n
	for i, rec := range dir.Records {
		table, _ := dir.Table(rec.Tag)
		blob, err := compress(table)
		if err != nil {
			return nil, core.WrapError(err, core.EINTERNAL, "compressing table %s", rec.Tag)
		}
		checksum := rec.CheckSum
		if rec.Tag != sfntdir.T("head") {
			checksum = sfntdir.Checksum(table)
		}
		entries[i] = TableEntry{
			Tag:          uint32(rec.Tag),
			Offset:       uint32(offset),
			CompLength:   uint32(len(blob)),
			OrigLength:   uint32(len(table)),
			OrigChecksum: checksum,
		}
		blobs[i] = blob
		offset += sfntdir.Pad4(len(blob))
	}
	header := Header{
		Signature:     Signature,
		Flavor:        dir.Flavor,
		Length:        uint32(offset),
		NumTables:     uint16(n),
		TotalSfntSize: uint32(dir.Size()),
		MajorVersion:  major,
		MinorVersion:  minor,
	}
	buf := bytes.NewBuffer(make([]byte, 0, offset))
	if err := binary.Write(buf, binary.BigEndian, header); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, entries); err != nil {
		return nil, err
	}
	var pad [3]byte
	for _, blob := range blobs {
		buf.Write(blob)
		if k := len(blob) % 4; k != 0 {
			buf.Write(pad[:4-k])
		}
	}
	tracer().Debugf("WOFF: %d tables, %d bytes sfnt -> %d bytes woff", n, len(font), buf.Len())
	return buf.Bytes(), nil
}

// compress returns the zlib-compressed table, or the table itself if
// compression does not save space.
func compress(table []byte) ([]byte, error) {
	var z bytes.Buffer
	w, err := zlib.NewWriterLevel(&z, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(table); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}
	if z.Len() >= len(table) {
		return table, nil
	}
	return z.Bytes(), nil
}
