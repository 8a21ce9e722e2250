/*
Package eot wraps sfnt fonts into Embedded OpenType containers.

EOT (https://www.w3.org/Submission/EOT/) is the legacy web font format of
Internet Explorer. We write version 0x00020001 without compression or
XOR-obfuscation: a header holding a digest of the font's 'OS/2', 'head' and
'name' tables, followed by the unchanged font data.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package eot

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/font/sfntdir"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

// tracer writes to trace with key 'fontpack.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.fonts")
}

// Version is the EOT version we write.
const Version uint32 = 0x00020001

// MagicNumber is fixed for all EOT files.
const MagicNumber uint16 = 0x504C

// Header is the fixed-size part of an EOT header. All fields are little-endian.
type Header struct {
	EOTSize            uint32
	FontDataSize       uint32
	Version            uint32
	Flags              uint32
	FontPANOSE         [10]byte
	Charset            uint8
	Italic             uint8
	Weight             uint32
	FsType             uint16
	MagicNumber        uint16
	UnicodeRange       [4]uint32
	CodePageRange      [2]uint32
	CheckSumAdjustment uint32
	Reserved           [4]uint32
	Padding1           uint16
}

// DEFAULT_CHARSET of the Windows GDI
const defaultCharset = 1

// Encode wraps the sfnt font data into an EOT container.
func Encode(font []byte) ([]byte, error) {
	dir, err := sfntdir.Parse(font)
	if err != nil {
		return nil, err
	}
	os2, err := dir.OS2()
	if err != nil {
		return nil, err
	}
	adjust, err := dir.ChecksumAdjustment()
	if err != nil {
		return nil, err
	}
	names, err := nameStrings(font)
	if err != nil {
		return nil, err
	}
	h := Header{
		FontDataSize:       uint32(len(font)),
		Version:            Version,
		FontPANOSE:         os2.Panose,
		Charset:            defaultCharset,
		Weight:             uint32(os2.WeightClass),
		FsType:             os2.FsType,
		MagicNumber:        MagicNumber,
		UnicodeRange:       os2.UnicodeRange,
		CodePageRange:      os2.CodePageRange,
		CheckSumAdjustment: adjust,
	}
	if os2.Italic() {
		h.Italic = 1
	}
	var tail bytes.Buffer
	for i, name := range names {
		if i > 0 {
			writeU16(&tail, 0) // Padding2 … Padding4
		}
		writeU16(&tail, uint16(len(name)))
		tail.Write(name)
	}
	writeU16(&tail, 0) // Padding5
	writeU16(&tail, 0) // RootStringSize: no root string
	h.EOTSize = uint32(binary.Size(h) + tail.Len() + len(font))
	buf := bytes.NewBuffer(make([]byte, 0, h.EOTSize))
	if err := binary.Write(buf, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	buf.Write(tail.Bytes())
	buf.Write(font)
	tracer().Debugf("EOT: %d bytes sfnt -> %d bytes eot", len(font), buf.Len())
	return buf.Bytes(), nil
}

// nameStrings returns family name, style name, version and full name as
// UTF-16LE byte strings. Missing names are empty.
func nameStrings(font []byte) ([][]byte, error) {
	f, err := sfnt.Parse(font)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font for EOT names")
	}
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	var b sfnt.Buffer
	ids := []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDSubfamily, sfnt.NameIDVersion, sfnt.NameIDFull}
	names := make([][]byte, len(ids))
	for i, id := range ids {
		s, err := f.Name(&b, id)
		if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
			return nil, core.WrapError(err, core.EINVALID, "cannot read name %d for EOT", id)
		}
		if names[i], err = enc.Bytes([]byte(s)); err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot encode name %d for EOT", id)
		}
	}
	return names, nil
}

func writeU16(buf *bytes.Buffer, n uint16) {
	buf.WriteByte(byte(n))
	buf.WriteByte(byte(n >> 8))
}
