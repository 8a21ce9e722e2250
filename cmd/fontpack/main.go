/*
Command fontpack turns a font family description into web fonts.

Usage:

	fontpack -meta fonts/gentium.font.json -query 'format[]=woff&format[]=truetype' -out dist -css dist/gentium.css

The metadata document lists the source fonts of a family. The query selects
weights, styles and formats to produce; unset dimensions are derived from the
sources. Font assets are written to the output directory, and the @font-face
rules to the CSS file (or stdout).

Options in the query override command line flags, e.g. `?context=fonts&name=[hash].[ext]`.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/fontpack/backend/css"
	"github.com/npillmayer/fontpack/backend/emit"
	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/engine/fontloader"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontpack.loader'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.loader")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	metafile := flag.String("meta", "", "Font family metadata (JSON)")
	query := flag.String("query", "", "Query: weights, styles and formats to produce")
	outdir := flag.String("out", ".", "Output directory for font assets")
	cssfile := flag.String("css", "", "Output file for the stylesheet (default stdout)")
	basedir := flag.String("context", "", "Base directory of source fonts (default: directory of metadata)")
	name := flag.String("name", emit.DefaultTemplate, "Name template for font assets")
	public := flag.String("public-path", "", "URL prefix of font assets in the stylesheet")
	sysfonts := flag.Bool("system-fonts", false, "Search system fonts for missing source files")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.fontpack.loader":    *tlevel,
		"trace.fontpack.fonts":     *tlevel,
		"trace.fontpack.resources": *tlevel,
		"trace.fontpack.emit":      *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	if *metafile == "" {
		pterm.Error.Println("no metadata file given, use -meta")
		flag.Usage()
		os.Exit(2)
	}
	q, opts, err := fontloader.ParseQuery(*query)
	if err != nil {
		exit(err, 2)
	}
	conf["context"] = *basedir
	if *basedir == "" {
		conf["context"] = filepath.Dir(*metafile)
	}
	conf["name"] = *name
	conf["public-path"] = *public
	conf["system-fonts"] = fmt.Sprintf("%v", *sysfonts)
	for k, v := range opts {
		tracer().Infof("query option %s = %s", k, v)
		conf[k] = v
	}

	input, err := os.ReadFile(*metafile)
	if err != nil {
		exit(core.WrapError(err, core.EMISSING, "cannot read metadata %s", *metafile), 3)
	}
	sink, err := emit.NewDirSink(*outdir)
	if err != nil {
		exit(err, 3)
	}
	pipeline := fontloader.NewWithConfig(conf, emit.New(conf, *metafile, sink), css.New(conf))
	result, err := pipeline.Transform(context.Background(), input, q)
	if err != nil {
		exit(err, 4)
	}
	for _, font := range result.Fonts {
		pterm.Success.Printfln("%-4d %-8s %-18s %s", font.Weight, font.Style, font.Format, font.File)
	}
	if *cssfile == "" {
		fmt.Print(result.Stylesheet)
		return
	}
	if err := os.WriteFile(*cssfile, []byte(result.Stylesheet), 0644); err != nil {
		exit(core.WrapError(err, core.EINTERNAL, "cannot write stylesheet %s", *cssfile), 5)
	}
	pterm.Info.Printfln("%d font faces of %q written to %s", len(result.Faces), result.Family, *cssfile)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func exit(err error, code int) {
	report(os.Stderr, err)
	os.Exit(code)
}

// report prints an error once, with the error code and the user message.
func report(w io.Writer, err error) {
	core.FprintUserError(w, err)
	tracer().Debugf("%v", err)
}
