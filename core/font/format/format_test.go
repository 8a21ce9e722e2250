package format

import (
	"testing"

	"github.com/npillmayer/fontpack/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryRoundTrip(t *testing.T) {
	reg := Default()
	for ext, f := range extensions {
		got, ok := reg.ForExtension(ext)
		require.True(t, ok, "extension %s should be known", ext)
		assert.Equal(t, f, got)
		back, ok := reg.Extension(f)
		require.True(t, ok, "format %s should have an extension", f)
		assert.Equal(t, ext, back, "reverse table must be a true inverse")
	}
}

func TestExtensionNormalization(t *testing.T) {
	reg := Default()
	f, ok := reg.ForExtension("TTF")
	assert.True(t, ok)
	assert.Equal(t, TrueType, f)
	f, ok = reg.ForFile("fonts/Gentium-Italic.otf")
	assert.True(t, ok)
	assert.Equal(t, OpenType, f)
	_, ok = reg.ForFile("fonts/readme.txt")
	assert.False(t, ok)
}

func TestNonInjectiveRegistry(t *testing.T) {
	_, err := NewRegistry(map[string]ID{
		".ttf":  TrueType,
		".ttf2": TrueType,
	})
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	// extensions differing only in case or dot are the same extension
	_, err = NewRegistry(map[string]ID{
		".TTF": TrueType,
		".ttf": OpenType,
	})
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = NewRegistry(map[string]ID{
		"woff":  WOFF,
		".woff": OpenType,
	})
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := Parse(" WOFF ")
	require.NoError(t, err)
	assert.Equal(t, WOFF, f)
	_, err = Parse("woff2")
	assert.Error(t, err)
}
