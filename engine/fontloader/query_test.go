package fontloader

import (
	"testing"

	"github.com/npillmayer/fontpack/core/font/format"
	"github.com/npillmayer/fontpack/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryURL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.loader")
	defer teardown()
	//
	q, opts, err := ParseQuery("?format[]=woff&format[]=truetype&weight=400&context=fonts")
	require.NoError(t, err)
	assert.Equal(t, option.Many, q.Format.Shape())
	assert.Equal(t, []format.ID{format.WOFF, format.TrueType}, q.Format.Unwrap())
	assert.Equal(t, option.One, q.Weight.Shape())
	assert.Equal(t, []int{400}, q.Weight.Unwrap())
	assert.True(t, q.Style.IsNone())
	assert.Equal(t, "fonts", opts["context"])
}

func TestParseQueryCommaList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.loader")
	defer teardown()
	//
	q, _, err := ParseQuery("style=normal,italic")
	require.NoError(t, err)
	assert.Equal(t, []string{"normal", "italic"}, q.Style.Unwrap())
	assert.True(t, q.Format.IsNone())
}

func TestParseQueryJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.loader")
	defer teardown()
	//
	q, opts, err := ParseQuery(`?{"format":["embedded-opentype"],"weight":700,"name":"[hash].[ext]"}`)
	require.NoError(t, err)
	assert.Equal(t, option.Many, q.Format.Shape())
	assert.Equal(t, []format.ID{format.EmbeddedOpenType}, q.Format.Unwrap())
	assert.Equal(t, []int{700}, q.Weight.Unwrap())
	assert.Equal(t, "[hash].[ext]", opts["name"])
	//
	q, _, err = ParseQuery(`{"format":[]}`)
	require.NoError(t, err)
	assert.False(t, q.Format.IsNone())
	assert.Empty(t, q.Format.Unwrap())
}

func TestParseQueryErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.loader")
	defer teardown()
	//
	var malformed MalformedMetadataError
	_, _, err := ParseQuery("format=woff2")
	assert.ErrorAs(t, err, &malformed)
	_, _, err = ParseQuery("weight=bold")
	assert.ErrorAs(t, err, &malformed)
	_, _, err = ParseQuery(`{"format":`)
	assert.ErrorAs(t, err, &malformed)
	q, _, err := ParseQuery("")
	require.NoError(t, err)
	assert.True(t, q.Weight.IsNone() && q.Style.IsNone() && q.Format.IsNone())
}
