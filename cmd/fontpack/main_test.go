package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/fontpack/engine/fontloader"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestReportPrintsOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.loader")
	defer teardown()
	//
	var buf bytes.Buffer
	report(&buf, fontloader.MissingSourceError{Weight: 700, Style: "italic", Format: "woff"})
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "error must be printed exactly once")
	assert.Equal(t, 1, strings.Count(out, "no matching source for weight 700"))
	assert.True(t, strings.HasPrefix(out, "[122] "))
}
