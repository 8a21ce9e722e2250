package fontloader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/npillmayer/fontpack/core/font/format"
	"github.com/npillmayer/fontpack/core/locate/resources"
)

// Defaults for source fonts without explicit weight or style.
const (
	DefaultWeight = 500
	DefaultStyle  = "regular"
)

// Metadata describes a font family.
type Metadata struct {
	Name  string      `json:"name"`
	Files []FileEntry `json:"files"`
}

// FileEntry is a source font as listed in the metadata, possibly without
// weight, style or format.
type FileEntry struct {
	File   string `json:"file"`
	Weight *int   `json:"weight,omitempty"`
	Style  string `json:"style,omitempty"`
	Format string `json:"format,omitempty"`
}

// ParseMetadata decodes a metadata document. Unknown fields are rejected.
func ParseMetadata(input []byte) (*Metadata, error) {
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.DisallowUnknownFields()
	meta := &Metadata{}
	if err := dec.Decode(meta); err != nil {
		return nil, MalformedMetadataError{Msg: "cannot decode metadata", Err: err}
	}
	for i, entry := range meta.Files {
		if strings.TrimSpace(entry.File) == "" {
			return nil, MalformedMetadataError{Msg: fmt.Sprintf("file entry #%d has no file name", i)}
		}
	}
	tracer().Debugf("metadata for family %q lists %d files", meta.Name, len(meta.Files))
	return meta, nil
}

// DataLoader is a collaborator which loads the binary data of font files.
type DataLoader interface {
	Load(file string) resources.DataPromise
}

// Source is a source font of a family, with all of its properties set.
// A Source is immutable.
type Source struct {
	File   string
	Weight int
	Style  string
	Format format.ID
	data   resources.DataPromise
}

// Data awaits the binary data of the source font. Data is loaded at most
// once, no matter how many targets share this source.
func (src *Source) Data(ctx context.Context) ([]byte, error) {
	if src.data == nil {
		return nil, DataAcquisitionError{File: src.File, Err: fmt.Errorf("no data loader")}
	}
	data, err := src.data.Data(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, DataAcquisitionError{File: src.File, Err: err}
	}
	return data, nil
}

func (src *Source) String() string {
	return fmt.Sprintf("%s(%d|%s|%s)", src.File, src.Weight, src.Style, src.Format)
}

// Defaults creates a source font from a metadata entry. Missing values are
// set to defaults: weight 500, style "regular", and the format derived from
// the file extension. The entry itself is left untouched.
func Defaults(entry FileEntry, reg *format.Registry, loader DataLoader) (*Source, error) {
	src := &Source{
		File:   entry.File,
		Weight: DefaultWeight,
		Style:  DefaultStyle,
	}
	if entry.Weight != nil {
		src.Weight = *entry.Weight
	}
	if entry.Style != "" {
		src.Style = entry.Style
	}
	if entry.Format != "" {
		f, err := format.Parse(entry.Format)
		if err != nil {
			return nil, MalformedMetadataError{Msg: "format of " + entry.File, Err: err}
		}
		src.Format = f
	} else if f, ok := reg.ForFile(entry.File); ok {
		src.Format = f
	} else {
		return nil, MalformedMetadataError{Msg: "cannot derive format of " + entry.File}
	}
	if loader != nil {
		src.data = loader.Load(entry.File)
	}
	return src, nil
}

// Sources applies Defaults to every file entry of a family.
func Sources(meta *Metadata, reg *format.Registry, loader DataLoader) ([]*Source, error) {
	sources := make([]*Source, 0, len(meta.Files))
	for _, entry := range meta.Files {
		src, err := Defaults(entry, reg, loader)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}
