/*
Package framedebug writes fragment trees in GraphViz DOT format.
*/
package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	names    map[frame.Fragment]string
}

// ToGraphViz creates a graphical representation of a fragment tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(fragments []frame.Fragment, w io.Writer) error {
	header, err := template.New("fragmentTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{
		Fontname: "Helvetica",
		names:    make(map[frame.Fragment]string, 256),
	}
	gparams.NodeTmpl = template.Must(template.New("fragment").Funcs(
		template.FuncMap{
			"label":  label,
			"istext": isText,
			"isline": isLine,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	for _, f := range fragments {
		if err = nodes(f, w, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(f frame.Fragment, w io.Writer, gparams *graphParamsType) error {
	if err := node(f, w, gparams); err != nil {
		return err
	}
	for _, child := range frame.Children(f) {
		tracer().Debugf("  child = %v", child)
		if err := nodes(child, w, gparams); err != nil {
			return err
		}
		e := fedge{N1: gparams.names[f], N2: gparams.names[child]}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

type fnode struct {
	F    frame.Fragment
	Name string
}

type fedge struct {
	N1, N2 string
}

func node(f frame.Fragment, w io.Writer, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(gparams.names)+1)
	gparams.names[f] = name
	return gparams.NodeTmpl.Execute(w, fnode{F: f, Name: name})
}

func label(f frame.Fragment) string {
	s := f.String()
	if t, ok := f.(*frame.TextFragment); ok {
		txt := t.Text.Text()
		if r := []rune(txt); len(r) > 10 {
			txt = string(r[:10]) + "…"
		}
		s = "T " + strings.ReplaceAll(txt, " ", "␣")
	}
	return fmt.Sprintf("%q", s)
}

func isText(f frame.Fragment) bool {
	_, ok := f.(*frame.TextFragment)
	return ok
}

func isLine(f frame.Fragment) bool {
	_, ok := f.(*frame.AnonymousFragment)
	return ok
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ if istext .F }}
{{ .Name }}	[ label={{ label .F }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if isline .F }}
{{ .Name }}	[ label={{ label .F }} shape=box style=filled fillcolor=grey90 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .F }} shape=box style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
