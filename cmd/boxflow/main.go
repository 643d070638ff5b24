/*
Command boxflow renders an HTML or Markdown document to a PNG image.

Usage:

	boxflow -in doc.md [-css style.css] [-w 800] [-h 600] [-o doc.png] [-dot doc.dot] [-trace Info]

Files with extension ".md" or ".markdown" are read as Markdown, all others
as HTML. Style sheets linked from an HTML document are loaded as well.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/boxflow/backend/gfx/ggadapter"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/engine/dom"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/framedebug"
	"github.com/npillmayer/boxflow/engine/paint"
	"github.com/npillmayer/boxflow/engine/render"
	"github.com/npillmayer/boxflow/input/html"
	"github.com/npillmayer/boxflow/input/markdown"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'boxflow.render'
func tracer() tracing.Trace {
	return tracing.Select("boxflow.render")
}

// options are the settings given on the command line.
type options struct {
	in, css, out string
	dot          string
	width        int
	height       int
	systemFonts  bool
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	opts := options{}
	flag.StringVar(&opts.in, "in", "", "Input document (.md or .html)")
	flag.StringVar(&opts.css, "css", "", "Additional style sheet")
	flag.StringVar(&opts.out, "o", "", "Output PNG file (default: input name with .png)")
	flag.StringVar(&opts.dot, "dot", "", "Write the fragment tree to a GraphViz DOT file")
	flag.IntVar(&opts.width, "w", 800, "Page width in pixels")
	flag.IntVar(&opts.height, "h", 600, "Page height in pixels")
	flag.BoolVar(&opts.systemFonts, "sysfonts", true, "Use fonts installed on the system")
	flag.Parse()

	// set up logging
	if err := setupTracing(*tlevel); err != nil {
		pterm.Error.Println("error configuring tracing")
		os.Exit(1)
	}
	if opts.in == "" {
		pterm.Error.Println("no input document given, use -in")
		flag.Usage()
		os.Exit(2)
	}
	pterm.Info.Printf("Rendering %s\n", opts.in)
	out, err := run(opts)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	pterm.Success.Printf("Output written to %s\n", out)
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range []string{"boxflow.render", "boxflow.layout", "boxflow.frame",
		"boxflow.frame.box", "boxflow.style", "boxflow.fonts", "boxflow.paint", "boxflow.gfx"} {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
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

// run renders the input document and writes the image. It returns the path
// of the image.
func run(opts options) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.WrapError(fmt.Errorf("%v", r), core.EINTERNAL, "rendering aborted: %v", r)
		}
	}()
	conf := testconfig.Conf{
		"page-width":   fmt.Sprintf("%dpx", opts.width),
		"page-height":  fmt.Sprintf("%dpx", opts.height),
		"system-fonts": fmt.Sprintf("%v", opts.systemFonts),
	}
	settings, err := render.SettingsFrom(conf)
	if err != nil {
		return "", err
	}
	doc, sheets, err := load(opts.in)
	if err != nil {
		return "", err
	}
	if opts.css != "" {
		b, err := os.ReadFile(opts.css)
		if err != nil {
			return "", core.WrapError(err, core.EMISSING, "cannot read style sheet %s", opts.css)
		}
		sheets = append(sheets, string(b))
	}
	fragments, page, err := render.Layout(doc, sheets, settings)
	if err != nil {
		return "", err
	}
	if opts.dot != "" {
		if err = writeDot(opts.dot, fragments); err != nil {
			return "", err
		}
	}
	dev := ggadapter.New(opts.width, opts.height, color.White)
	paint.Paint(dev, fragments, page)
	out = opts.out
	if out == "" {
		out = strings.TrimSuffix(opts.in, filepath.Ext(opts.in)) + ".png"
	}
	if err = dev.SavePNG(out); err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot write image %s", out)
	}
	return out, nil
}

func writeDot(path string, fragments []frame.Fragment) error {
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create DOT file %s", path)
	}
	defer f.Close()
	return framedebug.ToGraphViz(fragments, f)
}

// load reads an input document, together with the style sheets linked from
// it.
func load(path string) (*dom.Document, []string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, core.WrapError(err, core.EMISSING, "cannot open input document %s", path)
		}
		defer f.Close()
		doc, err := markdown.Parse(f)
		return doc, nil, err
	}
	src, err := html.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return src.Document, src.StyleSheets, nil
}
