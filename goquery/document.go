// Package goquery provides a goquery-backed implementation of the
// sift.Document query surface over parsed HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/emezenwere/sift"
)

// Ensure interfaces are implemented at compile time.
var (
	_ sift.Parser   = (*Parser)(nil)
	_ sift.Document = (*Document)(nil)
	_ sift.Element  = (*Element)(nil)
)

// Parser parses raw HTML into queryable Documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw HTML fetched from baseURL.
func (p *Parser) Parse(html string, baseURL string) (sift.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sift.Errorf(sift.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc, baseURL: baseURL}, nil
}

// Document is a read-only goquery-backed view of one parsed page.
type Document struct {
	doc     *goquery.Document
	baseURL string
}

// BaseURL returns the URL the page was fetched from.
func (d *Document) BaseURL() string {
	return d.baseURL
}

// Find returns the first element matching the CSS selector in document order.
func (d *Document) Find(selector string) (sift.Element, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &Element{sel: sel}, true
}

// Each calls fn for every element matching the CSS selector in document order.
func (d *Document) Each(selector string, fn func(sift.Element)) {
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		fn(&Element{sel: sel})
	})
}

// Element is a handle to a single element within a Document.
type Element struct {
	sel *goquery.Selection
}

// Text returns the element's inner text, trimmed.
func (e *Element) Text() string {
	return strings.TrimSpace(e.sel.Text())
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Find returns the first descendant matching the CSS selector.
func (e *Element) Find(selector string) (sift.Element, bool) {
	sel := e.sel.Find(selector).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &Element{sel: sel}, true
}
