package css

import (
	"strings"
	"testing"

	douceur "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/fontpack/core/font/format"
	"github.com/npillmayer/fontpack/engine/fontloader"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faces() []fontloader.FaceGroup {
	return []fontloader.FaceGroup{
		{Name: "Go", Weight: 400, Style: "regular", Files: []*fontloader.ConcreteFont{
			{Weight: 400, Style: "regular", Format: format.EmbeddedOpenType, File: "go.1.eot"},
			{Weight: 400, Style: "regular", Format: format.WOFF, File: "go.2.woff"},
		}},
		{Name: "Go", Weight: 700, Style: "italic", Files: []*fontloader.ConcreteFont{
			{Weight: 700, Style: "italic", Format: format.TrueType, File: "go.3.ttf"},
		}},
	}
}

func TestRenderParsesBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.emit")
	defer teardown()
	//
	r := New(testconfig.Conf{"public-path": "/assets/"})
	text, err := r.Render(faces())
	require.NoError(t, err)
	t.Logf("\n%s", text)
	sheet, err := parser.Parse(text)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)
	for _, rule := range sheet.Rules {
		assert.Equal(t, "@font-face", rule.Name)
	}
	props := declarations(sheet.Rules[0].Declarations)
	assert.Equal(t, `"Go"`, props["font-family"][0])
	assert.Equal(t, "normal", props["font-style"][0], "regular must be rendered as normal")
	assert.Equal(t, "400", props["font-weight"][0])
	require.Len(t, props["src"], 2, "expected IE fallback src for eot")
	assert.Contains(t, props["src"][1], "/assets/go.1.eot?#iefix")
	assert.Contains(t, props["src"][1], "/assets/go.2.woff")
	assert.True(t, strings.Index(props["src"][1], "go.1.eot") < strings.Index(props["src"][1], "go.2.woff"),
		"files must keep their order")
	props = declarations(sheet.Rules[1].Declarations)
	assert.Equal(t, "italic", props["font-style"][0])
	assert.Equal(t, "700", props["font-weight"][0])
	assert.Contains(t, props["src"][0], `format("truetype")`)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"Gill \"Sans\""`, quote(`Gill "Sans"`))
}

func TestEmptyFace(t *testing.T) {
	_, err := Renderer{}.Render([]fontloader.FaceGroup{{Name: "Go", Weight: 400, Style: "normal"}})
	assert.Error(t, err)
}

func declarations(decls []*douceur.Declaration) map[string][]string {
	props := make(map[string][]string)
	for _, d := range decls {
		props[d.Property] = append(props[d.Property], d.Value)
	}
	return props
}
