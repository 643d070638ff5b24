package css

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	douceur "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/dom"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"golang.org/x/net/html"
)

// Resolver computes styles for elements of a document.
//
// A resolver is not safe for concurrent use, as it remembers the font size
// of the root element for resolving `rem` units.
type Resolver struct {
	sheets   []*Stylesheet
	viewport dimen.Point
	rem      dimen.Dimen
	medium   dimen.Dimen // initial font size of the root element
}

// NewResolver creates a resolver for a set of style sheets. The user agent
// style sheet is always included. The viewport is used to resolve viewport
// units.
func NewResolver(viewport dimen.Point, sheets ...*Stylesheet) *Resolver {
	r := &Resolver{
		sheets:   append([]*Stylesheet{UserAgentStylesheet()}, sheets...),
		viewport: viewport,
		rem:      style.DefaultFontSize,
		medium:   style.DefaultFontSize,
	}
	return r
}

// SetDefaultFontSize changes the initial font size of the root element.
// Sizes ≤ 0 are ignored.
func (r *Resolver) SetDefaultFontSize(size dimen.Dimen) {
	if size <= 0 {
		return
	}
	r.medium, r.rem = size, size
}

// ResolverForDocument creates a resolver for a document, including the
// style sheets embedded in the document and additional author style sheets.
// Style sheets which cannot be parsed are skipped.
func ResolverForDocument(doc *dom.Document, viewport dimen.Point, extra ...string) *Resolver {
	var sheets []*Stylesheet
	for _, text := range append(doc.StyleSheets(), extra...) {
		sheet, err := ParseStylesheet(text, AuthorOrigin)
		if err != nil {
			tracer().Errorf("skipping style sheet: %v", err)
			continue
		}
		sheets = append(sheets, sheet)
	}
	return NewResolver(viewport, sheets...)
}

// matched is a declaration matching an element, together with its cascade
// sort key.
type matched struct {
	decl        *douceur.Declaration
	origin      Origin
	inline      bool
	specificity cascadia.Specificity
	sheet       int
	order       int
}

// Resolve computes the style of element node. parent is the computed style
// of the parent element, or nil for the root element.
func (r *Resolver) Resolve(node *html.Node, parent *style.ComputedValues) *style.ComputedValues {
	decls := r.cascade(node)
	c := newComputer(parent, r.rem, r.viewport)
	if parent == nil {
		c.cv.Font.Size = r.medium
	}
	if _, ok := decls["display"]; !ok {
		c.cv.Display = style.DefaultDisplay(dom.ElementName(node))
	}
	c.apply(decls)
	if parent == nil {
		r.rem = c.cv.Font.Size
	}
	tracer().Debugf("style for <%s> = %v", dom.ElementName(node), c.cv)
	return c.cv
}

// cascade collects the declarations for an element, sorts them by
// importance, origin, specificity and order, and returns the winning value
// for every longhand property.
func (r *Resolver) cascade(node *html.Node) map[string]string {
	var candidates []matched
	for i, sheet := range r.sheets {
		for _, rl := range sheet.rules {
			var best cascadia.Specificity
			found := false
			for _, sel := range rl.selectors {
				if sel.Match(node) {
					if sp := sel.Specificity(); !found || best.Less(sp) {
						best = sp
					}
					found = true
				}
			}
			if !found {
				continue
			}
			for _, d := range rl.decls {
				candidates = append(candidates, matched{
					decl:        d,
					origin:      sheet.origin,
					specificity: best,
					sheet:       i,
					order:       rl.order,
				})
			}
		}
	}
	if attr, ok := dom.Attr(node, "style"); ok {
		inline, err := parser.ParseDeclarations(terminated(attr))
		if err != nil {
			tracer().Infof("ignoring style attribute %q: %v", attr, err)
		}
		for _, d := range inline {
			candidates = append(candidates, matched{decl: d, origin: AuthorOrigin, inline: true})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].less(candidates[j])
	})
	values := make(map[string]string)
	for _, m := range candidates {
		prop := strings.ToLower(strings.TrimSpace(m.decl.Property))
		for longhand, v := range expandShorthand(prop, strings.TrimSpace(m.decl.Value)) {
			values[longhand] = v
		}
	}
	return values
}

// less orders declarations by ascending precedence.
func (m matched) less(other matched) bool {
	if m.decl.Important != other.decl.Important {
		return other.decl.Important
	}
	if m.origin != other.origin {
		if m.decl.Important {
			return m.origin > other.origin // important user agent rules win
		}
		return m.origin < other.origin
	}
	if m.inline != other.inline {
		return other.inline
	}
	if m.specificity != other.specificity {
		return m.specificity.Less(other.specificity)
	}
	if m.sheet != other.sheet {
		return m.sheet < other.sheet
	}
	return m.order < other.order
}

// terminated appends a semicolon to a declaration list which lacks one.
// The declaration parser drops the value of an unterminated last
// declaration.
func terminated(decls string) string {
	d := strings.TrimSpace(decls)
	if d == "" || strings.HasSuffix(d, ";") {
		return d
	}
	return d + ";"
}
