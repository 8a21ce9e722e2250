package eot

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/encoding/unicode"
)

func TestEncodeGoRegular(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.fonts")
	defer teardown()
	//
	e, err := Encode(goregular.TTF)
	require.NoError(t, err)
	h := Header{}
	r := bytes.NewReader(e)
	require.NoError(t, binary.Read(r, binary.LittleEndian, &h))
	assert.Equal(t, uint32(len(e)), h.EOTSize)
	assert.Equal(t, uint32(len(goregular.TTF)), h.FontDataSize)
	assert.Equal(t, Version, h.Version)
	assert.Equal(t, MagicNumber, h.MagicNumber)
	assert.Equal(t, uint32(400), h.Weight)
	assert.Equal(t, uint8(0), h.Italic)
	assert.Equal(t, goregular.TTF, e[len(e)-len(goregular.TTF):], "font data must follow the header unchanged")
	//
	var size uint16
	require.NoError(t, binary.Read(r, binary.LittleEndian, &size))
	family := make([]byte, size)
	_, err = r.Read(family)
	require.NoError(t, err)
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	name, err := dec.Bytes(family)
	require.NoError(t, err)
	assert.Equal(t, "Go", string(name), "expected family name of Go Regular")
}

func TestEncodeRejectsNonSfnt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.fonts")
	defer teardown()
	//
	_, err := Encode([]byte("wOFF and then some"))
	assert.Error(t, err)
}
