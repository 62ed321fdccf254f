// Package page holds the HTML document the site is rendered from and the
// operations that populate it.
package page

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Element is a single node of the page that can be read and mutated.
type Element interface {
	Text() string
	SetText(text string)
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	HasClass(name string) bool
	// ToggleClass flips name and reports whether it is now present.
	ToggleClass(name string) bool
	RemoveClass(name string)
}

// Document is the set of page capabilities the renderers rely on.
type Document interface {
	ElementByID(id string) (Element, bool)
	// Query returns the first element matching a CSS selector.
	Query(selector string) (Element, bool)
}

var _ Document = (*HTMLDocument)(nil)

// HTMLDocument is a parsed HTML page.
type HTMLDocument struct {
	doc *goquery.Document
}

// ParseHTML parses r into an HTMLDocument.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page HTML: %w", err)
	}
	return &HTMLDocument{doc: doc}, nil
}

// ParseHTMLString parses s into an HTMLDocument.
func ParseHTMLString(s string) (*HTMLDocument, error) {
	return ParseHTML(bytes.NewBufferString(s))
}

// ElementByID implements Document.
func (d *HTMLDocument) ElementByID(id string) (Element, bool) {
	if id == "" {
		return nil, false
	}
	return d.Query(`[id="` + id + `"]`)
}

// Query implements Document.
func (d *HTMLDocument) Query(selector string) (Element, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &htmlElement{sel: sel}, true
}

// Render writes the full document as HTML.
func (d *HTMLDocument) Render(w io.Writer) error {
	html, err := d.doc.Html()
	if err != nil {
		return fmt.Errorf("render page HTML: %w", err)
	}
	_, err = io.WriteString(w, html)
	return err
}

// Bytes renders the document into a byte slice.
func (d *HTMLDocument) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type htmlElement struct {
	sel *goquery.Selection
}

func (e *htmlElement) Text() string { return e.sel.Text() }

func (e *htmlElement) SetText(text string) { e.sel.SetText(text) }

func (e *htmlElement) Attr(name string) (string, bool) { return e.sel.Attr(name) }

func (e *htmlElement) SetAttr(name, value string) { e.sel.SetAttr(name, value) }

func (e *htmlElement) HasClass(name string) bool { return e.sel.HasClass(name) }

func (e *htmlElement) ToggleClass(name string) bool {
	e.sel.ToggleClass(name)
	return e.sel.HasClass(name)
}

func (e *htmlElement) RemoveClass(name string) { e.sel.RemoveClass(name) }
