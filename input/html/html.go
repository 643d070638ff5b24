package html

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/engine/dom"
)

var styleLinks = cascadia.MustCompile(`link[rel~="stylesheet"][href]`)

// Source is an input document together with its external style sheets.
type Source struct {
	Document    *dom.Document
	StyleSheets []string // contents of linked style sheets, in document order
}

// ReadFile parses an HTML file and loads the style sheets it links to.
// Linked style sheets which cannot be read are skipped.
func ReadFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open input document %s", path)
	}
	defer f.Close()
	doc, err := dom.Parse(f)
	if err != nil {
		return nil, err
	}
	src := &Source{Document: doc}
	for _, href := range LinkedStyleSheets(doc) {
		sheet, err := readLocal(filepath.Dir(path), href)
		if err != nil {
			tracer().Errorf("skipping linked style sheet: %v", err)
			continue
		}
		src.StyleSheets = append(src.StyleSheets, sheet)
	}
	return src, nil
}

// LinkedStyleSheets returns the references of all style sheets linked to
// by a document.
func LinkedStyleSheets(doc *dom.Document) []string {
	var hrefs []string
	for _, link := range styleLinks.MatchAll(doc.Root()) {
		if href, ok := dom.Attr(link, "href"); ok && href != "" {
			hrefs = append(hrefs, href)
		}
	}
	tracer().Debugf("document links to %d style sheets", len(hrefs))
	return hrefs
}

func readLocal(dir, href string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "malformed style sheet reference %q", href)
	}
	if u.Scheme != "" && u.Scheme != "file" {
		return "", core.Error(core.EUNSUPPORTED, "remote style sheet %q not loaded", href)
	}
	path := filepath.FromSlash(u.Path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "cannot read style sheet %s", path)
	}
	return string(b), nil
}
