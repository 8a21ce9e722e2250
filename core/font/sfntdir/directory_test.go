package sfntdir

import (
	"testing"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestTags(t *testing.T) {
	tag := Tag(0x636d6170)
	assert.Equal(t, "cmap", tag.String())
	assert.Equal(t, tag, MakeTag([]byte("cmap")))
	assert.Equal(t, tag, T("cmap"))
	assert.Equal(t, "OS/2", T("OS/2").String())
	assert.Equal(t, Tag(0), MakeTag(nil))
	assert.Equal(t, tag, MakeTag([]byte("cmapXYZ")))
}

func TestMakeTagLeavesInputAlone(t *testing.T) {
	buf := []byte("abXYZW")
	tag := MakeTag(buf[:2])
	assert.Equal(t, "abXYZW", string(buf), "MakeTag must not write to its input")
	assert.Equal(t, Tag(0x00006162), tag)
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, uint32(3), Checksum([]byte{0, 0, 0, 1, 0, 0, 0, 2}))
	assert.Equal(t, uint32(0x01000000), Checksum([]byte{1}), "tail must be zero-padded")
	assert.Equal(t, 8, Pad4(5))
	assert.Equal(t, 8, Pad4(8))
}

func TestParseGoRegular(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.fonts")
	defer teardown()
	//
	dir, err := Parse(goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, FlavorTrueType, dir.Flavor)
	assert.False(t, dir.IsCFF())
	for _, tag := range []string{"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post"} {
		_, ok := dir.Table(T(tag))
		assert.True(t, ok, "expected Go Regular to contain table %s", tag)
	}
	for i := 1; i < len(dir.Records); i++ {
		assert.Less(t, dir.Records[i-1].Tag, dir.Records[i].Tag, "records must be sorted")
	}
	for _, rec := range dir.Records {
		if rec.Tag == T("head") {
			continue // checksum of head ignores checkSumAdjustment
		}
		table, _ := dir.Table(rec.Tag)
		assert.Equal(t, rec.CheckSum, Checksum(table), "checksum of table %s", rec.Tag)
	}
	assert.Greater(t, dir.Size(), 12+16*len(dir.Records))
}

func TestOS2AndHead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.fonts")
	defer teardown()
	//
	dir, err := Parse(goregular.TTF)
	require.NoError(t, err)
	os2, err := dir.OS2()
	require.NoError(t, err)
	assert.Equal(t, uint16(400), os2.WeightClass)
	assert.False(t, os2.Italic())
	_, err = dir.ChecksumAdjustment()
	assert.NoError(t, err)
}

func TestParseGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.fonts")
	defer teardown()
	//
	_, err := Parse([]byte("wOFF0000"))
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Parse([]byte{0, 1})
	assert.Error(t, err)
	// a header promising a table beyond the data
	broken := []byte{0, 1, 0, 0, 0, 1, 0, 16, 0, 0, 0, 0,
		'h', 'e', 'a', 'd', 0, 0, 0, 0, 0, 0, 0, 28, 0, 0, 0, 54}
	_, err = Parse(broken)
	assert.Error(t, err)
}
