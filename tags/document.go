package tags

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"

	"github.com/npillmayer/htmltree"
)

// Declaration selects a document type declaration.
type Declaration string

// The supported document type declarations.
const (
	HTML5 Declaration = "!DOCTYPE html"

	HTML401Strict       Declaration = `!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"`
	HTML401Transitional Declaration = `!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd"`
	HTML401Frameset     Declaration = `!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN" "http://www.w3.org/TR/html4/frameset.dtd"`
	XHTML10Strict       Declaration = `!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd"`
	XHTML10Transitional Declaration = `!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd"`
	XHTML10Frameset     Declaration = `!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd"`
	XHTML11             Declaration = `!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd"`
	XHTML11Basic        Declaration = `!DOCTYPE html PUBLIC "-//W3C//DTD XHTML Basic 1.1//EN" "http://www.w3.org/TR/xhtml-basic/xhtml-basic11.dtd"`
)

// Each declaration is registered as a void tag of its own, with the
// declaration text as the rendered name. Doctype tags therefore go
// through the ordinary tag-metadata lookup.
var doctypeIds = map[Declaration]string{
	HTML5:               "!doctype",
	HTML401Strict:       "!doctype-html401-strict",
	HTML401Transitional: "!doctype-html401-transitional",
	HTML401Frameset:     "!doctype-html401-frameset",
	XHTML10Strict:       "!doctype-xhtml10-strict",
	XHTML10Transitional: "!doctype-xhtml10-transitional",
	XHTML10Frameset:     "!doctype-xhtml10-frameset",
	XHTML11:             "!doctype-xhtml11",
	XHTML11Basic:        "!doctype-xhtml11-basic",
}

func registerDoctypes() {
	for decl, id := range doctypeIds {
		htmltree.DefineTag(htmltree.TagSpec{Tag: id, Render: string(decl), Void: true})
	}
}

// Doctype defines the document type, defaulting to the HTML5 declaration.
func Doctype(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew(doctypeIds[HTML5], items...)
}

// DoctypeOf defines the document type with an explicit declaration.
func DoctypeOf(decl Declaration, items ...interface{}) *htmltree.Element {
	id, ok := doctypeIds[decl]
	if !ok {
		id = doctypeIds[HTML5]
	}
	return htmltree.MustNew(id, items...)
}

// --- Document ----------------------------------------------------------------

// Document is a prepared container with the basic HTML page structure:
// doctype, html, a head pre-filled with a charset meta tag and a title,
// and a body. Add targets the body.
type Document struct {
	root *htmltree.Container
	head *htmltree.Element
	body *htmltree.Element
}

// NewDocument creates a page skeleton; the given arguments go into the
// body, classified like htmltree.New arguments.
func NewDocument(items ...interface{}) *Document {
	d := &Document{}
	d.head = Head(Meta(htmltree.Attr("charset", "utf-8")), Title("Title of the page"))
	d.body = Body(items...)
	d.root = Group(Doctype(), Html(d.head, d.body))
	return d
}

// Head returns the head element of the document.
func (d *Document) Head() *htmltree.Element { return d.head }

// Body returns the body element of the document.
func (d *Document) Body() *htmltree.Element { return d.body }

// Root returns the whole document tree (doctype and html element) for
// rendering or searching.
func (d *Document) Root() htmltree.Node { return d.root }

// Add classifies the given arguments and attaches them to the document's
// body.
func (d *Document) Add(items ...interface{}) error {
	return d.body.Add(items...)
}

// SetTitle replaces the text of the title element in the head.
func (d *Document) SetTitle(title string) {
	for _, ch := range d.head.Children() {
		el, ok := ch.(*htmltree.Element)
		if !ok || el.Tag() != "title" {
			continue
		}
		for el.Len() > 0 {
			_ = el.DeleteChild(0)
		}
		_ = el.Add(title)
		return
	}
}

// String returns the document pretty-rendered.
func (d *Document) String() string {
	return htmltree.Render(d.root)
}

// WriteTo serializes the document to w in compact form and returns the
// number of bytes written.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	out := htmltree.RenderCompact(d.root)
	n, err := io.WriteString(w, out)
	return int64(n), err
}
