package fontloader

import (
	"context"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/font/convert"
	"github.com/npillmayer/fontpack/core/font/format"
	"github.com/npillmayer/fontpack/core/locate/resources"
	"github.com/npillmayer/schuko"
	"golang.org/x/sync/errgroup"
)

// ConcreteFont is a font file produced for a target.
type ConcreteFont struct {
	Weight int
	Style  string
	Format format.ID
	Data   []byte
	File   string // name assigned by the Emitter
}

// Emitter is a collaborator which stores fonts as output assets and returns
// the names they have been stored under, in the order of fonts.
//
// Emit is all-or-nothing: if it returns an error, no asset of the batch may
// remain stored.
type Emitter interface {
	Emit(fonts []*ConcreteFont) ([]string, error)
}

// Renderer is a collaborator which renders font faces as style rules.
type Renderer interface {
	Render(faces []FaceGroup) (string, error)
}

// Produce creates the font for a target: it finds the target's source,
// awaits the source's data and converts it to the target's format, if
// necessary.
func Produce(ctx context.Context, target Target, sources []*Source, m *convert.Matrix) (*ConcreteFont, error) {
	src, err := Match(sources, target.Weight, target.Style)
	if err != nil {
		missing := err.(MissingSourceError)
		missing.Format = target.Format
		return nil, missing
	}
	if !m.Supports(src.Format, target.Format) { // fail before loading any data
		return nil, UnsupportedConversionError{From: src.Format, To: target.Format}
	}
	data, err := src.Data(ctx)
	if err != nil {
		return nil, err
	}
	if data, err = m.Convert(src.Format, target.Format, data); err != nil {
		return nil, err
	}
	tracer().Debugf("produced %v from %v", target, src)
	return &ConcreteFont{
		Weight: target.Weight,
		Style:  target.Style,
		Format: target.Format,
		Data:   data,
	}, nil
}

// Pipeline transforms a family description into font assets and style rules.
type Pipeline struct {
	Registry *format.Registry
	Matrix   *convert.Matrix
	Loader   DataLoader
	Emitter  Emitter  // may be nil: fonts will not be emitted
	Renderer Renderer // may be nil: no stylesheet will be rendered
}

// New creates a pipeline with the standard format registry and conversion
// matrix.
func New(loader DataLoader, emitter Emitter, renderer Renderer) *Pipeline {
	return &Pipeline{
		Registry: format.Default(),
		Matrix:   convert.Default(),
		Loader:   loader,
		Emitter:  emitter,
		Renderer: renderer,
	}
}

// NewWithConfig creates a pipeline reading source fonts from the file system.
// See resources.NewFileLoader for configuration keys.
func NewWithConfig(conf schuko.Configuration, emitter Emitter, renderer Renderer) *Pipeline {
	return New(resources.NewFileLoader(conf), emitter, renderer)
}

// Result is the outcome of a successful run.
type Result struct {
	Family     string
	Targets    []Target
	Fonts      []*ConcreteFont // in target order
	Faces      []FaceGroup
	Stylesheet string
}

// Transform parses a metadata document and runs the pipeline on it.
func (p *Pipeline) Transform(ctx context.Context, input []byte, q Query) (*Result, error) {
	meta, err := ParseMetadata(input)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx, meta, q)
}

// Run expands the family into targets, produces a font for every target
// concurrently and groups the fonts into faces.
//
// Run fails with the first error of any target. Fonts are handed to the
// Emitter as one batch after every target has been produced, thus a failing
// run does not emit anything.
func (p *Pipeline) Run(ctx context.Context, meta *Metadata, q Query) (*Result, error) {
	sources, err := Sources(meta, p.Registry, p.Loader)
	if err != nil {
		return nil, err
	}
	targets := Expand(sources, q)
	tracer().Infof("family %q: %d sources, %d targets", meta.Name, len(sources), len(targets))
	fonts := make([]*ConcreteFont, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			font, err := Produce(gctx, target, sources, p.Matrix)
			if err != nil {
				return err
			}
			fonts[i] = font
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tracer().Errorf("family %q: %v", meta.Name, err)
		return nil, err
	}
	if p.Emitter != nil {
		names, err := p.Emitter.Emit(fonts)
		if err != nil {
			tracer().Errorf("family %q: %v", meta.Name, err)
			return nil, err
		}
		if len(names) != len(fonts) {
			return nil, core.Error(core.EINTERNAL, "emitter returned %d names for %d fonts",
				len(names), len(fonts))
		}
		for i, font := range fonts {
			font.File = names[i]
		}
	}
	result := &Result{
		Family:  meta.Name,
		Targets: targets,
		Fonts:   fonts,
		Faces:   Group(meta.Name, fonts),
	}
	if p.Renderer != nil {
		if result.Stylesheet, err = p.Renderer.Render(result.Faces); err != nil {
			return nil, err
		}
	}
	return result, nil
}
