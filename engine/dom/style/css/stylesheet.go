package css

import (
	"strings"

	"github.com/andybalholm/cascadia"
	douceur "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxflow/core"
)

// Origin is the origin of a style sheet.
type Origin uint8

const (
	UserAgentOrigin Origin = iota
	AuthorOrigin
)

// Stylesheet is a parsed style sheet with compiled selectors.
type Stylesheet struct {
	origin Origin
	rules  []rule
}

type rule struct {
	selectors []cascadia.Sel
	decls     []*douceur.Declaration
	order     int // position in style sheet
}

// ParseStylesheet parses a style sheet. Rules with selectors cascadia
// cannot compile are skipped. Only syntax errors of the style sheet as a
// whole are reported.
func ParseStylesheet(text string, origin Origin) (*Stylesheet, error) {
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse style sheet")
	}
	sheet := &Stylesheet{origin: origin}
	for _, r := range parsed.Rules {
		if r.Kind != douceur.QualifiedRule {
			tracer().Debugf("ignoring at-rule %s", r.Name)
			continue
		}
		compiled := rule{decls: r.Declarations, order: len(sheet.rules)}
		for _, s := range r.Selectors {
			sel, err := cascadia.Parse(strings.TrimSpace(s))
			if err != nil {
				tracer().Infof("ignoring selector %q: %v", s, err)
				continue
			}
			if sel.PseudoElement() != "" {
				continue // generated content is not supported
			}
			compiled.selectors = append(compiled.selectors, sel)
		}
		if len(compiled.selectors) > 0 {
			sheet.rules = append(sheet.rules, compiled)
		}
	}
	tracer().Debugf("style sheet has %d rules", len(sheet.rules))
	return sheet, nil
}

// Origin returns the origin of a style sheet.
func (sheet *Stylesheet) Origin() Origin {
	return sheet.origin
}

// Len returns the number of rules of a style sheet.
func (sheet *Stylesheet) Len() int {
	return len(sheet.rules)
}

// userAgentCSS is the default style sheet for HTML documents. Element
// display types are not set here, but by style.DefaultDisplay.
const userAgentCSS = `
body { margin: 8px }
p, blockquote, ul, ol, dl, pre, figure { margin-top: 1em; margin-bottom: 1em }
h1 { font-size: 2em; margin-top: .67em; margin-bottom: .67em; font-weight: bold }
h2 { font-size: 1.5em; margin-top: .83em; margin-bottom: .83em; font-weight: bold }
h3 { font-size: 1.17em; margin-top: 1em; margin-bottom: 1em; font-weight: bold }
h4 { margin-top: 1.33em; margin-bottom: 1.33em; font-weight: bold }
h5 { font-size: .83em; margin-top: 1.67em; margin-bottom: 1.67em; font-weight: bold }
h6 { font-size: .67em; margin-top: 2.33em; margin-bottom: 2.33em; font-weight: bold }
b, strong, th { font-weight: bold }
i, em, cite, var, dfn { font-style: italic }
pre, code, kbd, samp, tt { font-family: monospace }
pre { white-space: pre }
sub { vertical-align: sub; font-size: smaller }
sup { vertical-align: super; font-size: smaller }
ul, ol { padding-left: 40px }
dd { margin-left: 40px }
blockquote { margin-left: 40px; margin-right: 40px }
center { text-align: center }
a { color: blue }
hr { border-top: 1px solid gray; margin-top: .5em; margin-bottom: .5em }
`

// UserAgentStylesheet returns the default style sheet for HTML documents.
func UserAgentStylesheet() *Stylesheet {
	sheet, err := ParseStylesheet(userAgentCSS, UserAgentOrigin)
	if err != nil {
		panic("cannot parse user agent style sheet") // this cannot happen
	}
	return sheet
}
