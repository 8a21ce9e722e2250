/*
Package css renders font faces as CSS @font-face rules.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"fmt"
	"strconv"
	"strings"

	douceur "github.com/aymerick/douceur/css"
	"github.com/npillmayer/fontpack/core/font/format"
	"github.com/npillmayer/fontpack/engine/fontloader"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpack.emit'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.emit")
}

// Renderer creates a stylesheet with one @font-face rule per font face.
// It implements fontloader.Renderer.
type Renderer struct {
	PublicPath string // prefix for asset URLs
}

var _ fontloader.Renderer = Renderer{}

// New creates a renderer. The URL prefix of assets is taken from
// configuration key `public-path`.
func New(conf schuko.Configuration) Renderer {
	return Renderer{PublicPath: conf.GetString("public-path")}
}

// Render is part of interface fontloader.Renderer.
func (r Renderer) Render(faces []fontloader.FaceGroup) (string, error) {
	sheet := douceur.NewStylesheet()
	for _, face := range faces {
		rule, err := r.FontFace(face)
		if err != nil {
			return "", err
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	tracer().Debugf("rendered %d @font-face rules", len(sheet.Rules))
	return sheet.String() + "\n", nil
}

// FontFace creates the @font-face rule for a face.
func (r Renderer) FontFace(face fontloader.FaceGroup) (*douceur.Rule, error) {
	if len(face.Files) == 0 {
		return nil, fmt.Errorf("font face %s %d/%s has no files", face.Name, face.Weight, face.Style)
	}
	rule := douceur.NewRule(douceur.AtRule)
	rule.Name = "@font-face"
	decl := func(prop, value string) {
		rule.Declarations = append(rule.Declarations, &douceur.Declaration{Property: prop, Value: value})
	}
	decl("font-family", quote(face.Name))
	decl("font-style", cssStyle(face.Style))
	decl("font-weight", strconv.Itoa(face.Weight))
	srcs := make([]string, 0, len(face.Files))
	for _, f := range face.Files {
		url := r.PublicPath + f.File
		if f.Format == format.EmbeddedOpenType {
			// IE < 9 only understands a single url without format hint
			decl("src", fmt.Sprintf("url(%s)", quote(url)))
			url += "?#iefix"
		}
		srcs = append(srcs, fmt.Sprintf("url(%s) format(%s)", quote(url), quote(string(f.Format))))
	}
	decl("src", strings.Join(srcs, ", "))
	return rule, nil
}

// cssStyle maps a font style to a value of the font-style descriptor.
func cssStyle(style string) string {
	switch strings.ToLower(style) {
	case "", "regular", "normal":
		return "normal"
	}
	return style
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
