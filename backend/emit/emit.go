package emit

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/font/format"
	"github.com/npillmayer/fontpack/engine/fontloader"
	"github.com/npillmayer/schuko"
)

// DefaultTemplate is the name template used if none is configured.
const DefaultTemplate = "[name].[hash:8].[ext]"

// Sink stores named assets. Remove deletes an asset written before; it is
// used to take back a partially written batch.
type Sink interface {
	Write(name string, data []byte) error
	Remove(name string) error
}

// Emitter names fonts and writes them to a sink.
// It implements fontloader.Emitter.
type Emitter struct {
	Template string           // name template
	Resource string           // path of the metadata resource, source of [name]
	Registry *format.Registry // maps formats to extensions
	Sink     Sink
}

var _ fontloader.Emitter = &Emitter{}

// New creates an emitter for the fonts of a metadata resource.
// The template is taken from configuration key `name`.
func New(conf schuko.Configuration, resource string, sink Sink) *Emitter {
	tmpl := conf.GetString("name")
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	return &Emitter{
		Template: tmpl,
		Resource: resource,
		Registry: format.Default(),
		Sink:     sink,
	}
}

// Emit is part of interface fontloader.Emitter.
//
// All names are interpolated before the first asset is written. If writing
// an asset fails, the assets of the batch written so far are removed again.
func (e *Emitter) Emit(fonts []*fontloader.ConcreteFont) ([]string, error) {
	names := make([]string, len(fonts))
	owner := make(map[string]int, len(fonts))
	for i, font := range fonts {
		name, err := e.Name(font)
		if err != nil {
			return nil, err
		}
		if j, dup := owner[name]; dup && !bytes.Equal(fonts[j].Data, font.Data) {
			return nil, core.Error(core.EINVALID, "name template %q yields %s for different fonts",
				e.Template, name)
		} else if !dup {
			owner[name] = i
		}
		names[i] = name
	}
	written := make([]string, 0, len(owner))
	for i, font := range fonts {
		if owner[names[i]] != i { // same content as an earlier font
			continue
		}
		if err := e.Sink.Write(names[i], font.Data); err != nil {
			e.rollback(written)
			return nil, core.WrapError(err, core.EINTERNAL, "cannot emit font asset %s", names[i])
		}
		written = append(written, names[i])
		tracer().Debugf("emitted %s (%d bytes)", names[i], len(font.Data))
	}
	return names, nil
}

func (e *Emitter) rollback(written []string) {
	for _, name := range written {
		if err := e.Sink.Remove(name); err != nil {
			tracer().Errorf("cannot remove font asset %s: %v", name, err)
		}
	}
}

var placeholder = regexp.MustCompile(`\[(\w+)(?::(\d+))?\]`)

// Name interpolates the name template for a font.
func (e *Emitter) Name(font *fontloader.ConcreteFont) (string, error) {
	ext, ok := e.Registry.Extension(font.Format)
	if !ok {
		return "", core.Error(core.EINVALID, "no file extension for format %s", font.Format)
	}
	base := filepath.Base(e.Resource)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	sum := md5.Sum(font.Data)
	digest := hex.EncodeToString(sum[:])
	var err error
	name := placeholder.ReplaceAllStringFunc(e.Template, func(ph string) string {
		m := placeholder.FindStringSubmatch(ph)
		switch m[1] {
		case "name":
			return base
		case "ext":
			return strings.TrimPrefix(ext, ".")
		case "hash":
			if m[2] != "" {
				n, _ := strconv.Atoi(m[2])
				if n > 0 && n < len(digest) {
					return digest[:n]
				}
			}
			return digest
		case "weight":
			return strconv.Itoa(font.Weight)
		case "style":
			return font.Style
		case "format":
			return string(font.Format)
		}
		err = core.Error(core.EINVALID, "unknown placeholder %s in name template %q", ph, e.Template)
		return ph
	})
	return name, err
}
