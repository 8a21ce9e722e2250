package fontloader

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// FaceGroup is a font face of a family: all the font files for one
// (weight, style) combination.
type FaceGroup struct {
	Name   string // family name
	Weight int
	Style  string
	Files  []*ConcreteFont
}

type faceKey struct {
	weight int
	style  string
}

// Group partitions fonts into faces by weight and style. Faces are ordered
// by first appearance of their (weight, style), files within a face keep the
// order of fonts.
func Group(family string, fonts []*ConcreteFont) []FaceGroup {
	groups := linkedhashmap.New()
	for _, font := range fonts {
		key := faceKey{weight: font.Weight, style: font.Style}
		var members []*ConcreteFont
		if m, found := groups.Get(key); found {
			members = m.([]*ConcreteFont)
		}
		groups.Put(key, append(members, font))
	}
	faces := make([]FaceGroup, 0, groups.Size())
	it := groups.Iterator()
	for it.Next() {
		key := it.Key().(faceKey)
		faces = append(faces, FaceGroup{
			Name:   family,
			Weight: key.weight,
			Style:  key.style,
			Files:  it.Value().([]*ConcreteFont),
		})
	}
	return faces
}
