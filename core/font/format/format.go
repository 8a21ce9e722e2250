/*
Package format maps font file extensions to web font format identifiers.

The identifiers are the ones used in the format() hint of a CSS @font-face
src descriptor.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package format

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/fontpack/core"
)

// ID is a font container format.
type ID string

// Known font formats.
const (
	WOFF             ID = "woff"
	TrueType         ID = "truetype"
	EmbeddedOpenType ID = "embedded-opentype"
	SVG              ID = "svg"
	OpenType         ID = "opentype"
)

// Valid is a predicate: is f one of the known formats?
func (f ID) Valid() bool {
	switch f {
	case WOFF, TrueType, EmbeddedOpenType, SVG, OpenType:
		return true
	}
	return false
}

func (f ID) String() string {
	return string(f)
}

// Parse checks a format name from metadata or a query.
func Parse(s string) (ID, error) {
	f := ID(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", core.Error(core.EINVALID, "unknown font format %q", s)
	}
	return f, nil
}

// extensions is the fixed table of file extensions.
var extensions = map[string]ID{
	".woff": WOFF,
	".ttf":  TrueType,
	".eot":  EmbeddedOpenType,
	".svg":  SVG,
	".otf":  OpenType,
}

// Registry maps file extensions to formats and back.
// A Registry is immutable after construction.
type Registry struct {
	formats    map[string]ID
	extensions map[ID]string
}

// NewRegistry creates a registry from a table of extensions. The table has to
// be injective, i.e. no two extensions may map to the same format, otherwise
// the reverse lookup would be ambiguous.
func NewRegistry(table map[string]ID) (*Registry, error) {
	reg := &Registry{
		formats:    make(map[string]ID, len(table)),
		extensions: make(map[ID]string, len(table)),
	}
	exts := make([]string, 0, len(table))
	for ext := range table {
		exts = append(exts, ext)
	}
	sort.Strings(exts) // deterministic error messages
	for _, ext := range exts {
		f := table[ext]
		key := normalizeExt(ext)
		if !f.Valid() {
			return nil, core.Error(core.EINVALID, "extension %s maps to unknown format %q", ext, f)
		}
		if other, ok := reg.formats[key]; ok {
			return nil, core.Error(core.EINVALID,
				"format registry inconsistent: extension %s given twice, for %s and %s", key, other, f)
		}
		if other, ok := reg.extensions[f]; ok {
			return nil, core.Error(core.EINVALID,
				"format registry inconsistent: %s and %s both map to %s", other, key, f)
		}
		reg.formats[key] = f
		reg.extensions[f] = key
	}
	return reg, nil
}

var defaultRegistry *Registry
var defaultRegistryCreation sync.Once

// Default returns the registry for the standard web font extensions
// .woff, .ttf, .eot, .svg and .otf.
func Default() *Registry {
	defaultRegistryCreation.Do(func() {
		var err error
		if defaultRegistry, err = NewRegistry(extensions); err != nil {
			panic(fmt.Sprintf("default format registry: %v", err)) // cannot happen
		}
	})
	return defaultRegistry
}

// ForExtension returns the default format for a file extension.
// The extension may be given with or without a leading dot.
func (reg *Registry) ForExtension(ext string) (ID, bool) {
	f, ok := reg.formats[normalizeExt(ext)]
	return f, ok
}

// ForFile returns the default format for a file, derived from its extension.
func (reg *Registry) ForFile(file string) (ID, bool) {
	return reg.ForExtension(path.Ext(file))
}

// Extension returns the file extension for a format, including the dot.
func (reg *Registry) Extension(f ID) (string, bool) {
	ext, ok := reg.extensions[f]
	return ext, ok
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
