package option_test

import (
	"testing"

	"github.com/npillmayer/fontpack/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestOptionUnspecified(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.loader")
	defer teardown()
	//
	var x option.Values[int]
	assert.True(t, x.IsNone(), "zero value should be unspecified")
	assert.Equal(t, option.None, x.Shape())
	assert.Nil(t, x.Unwrap())
	assert.Equal(t, []int{400, 700}, x.OrElse([]int{400, 700}))
	assert.Equal(t, "None", x.String())
}

func TestOptionSingle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.loader")
	defer teardown()
	//
	x := option.Some("italic")
	assert.Equal(t, option.One, x.Shape())
	assert.Equal(t, []string{"italic"}, x.OrElse([]string{"normal"}))
	assert.Equal(t, "italic", x.String())
}

func TestOptionList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.loader")
	defer teardown()
	//
	x := option.List("woff", "truetype", "woff")
	assert.Equal(t, option.Many, x.Shape())
	assert.Equal(t, []string{"woff", "truetype"}, x.Unwrap(), "duplicates should be dropped")
	assert.Equal(t, "[woff,truetype]", x.String())
	//
	vals := x.Unwrap()
	vals[0] = "svg"
	assert.Equal(t, []string{"woff", "truetype"}, x.Unwrap(), "Unwrap must return a copy")
	//
	empty := option.List[string]()
	assert.False(t, empty.IsNone(), "empty list is an explicit choice")
	assert.Equal(t, option.Many, empty.Shape())
	assert.Empty(t, empty.OrElse([]string{"woff"}))
}
