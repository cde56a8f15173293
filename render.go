package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"io"
	"strings"
)

// Options control serialization. The zero value renders compact output;
// with Pretty set, Indent defaults to two spaces and Newline to "\n".
type Options struct {
	Pretty  bool   // each node on its own line, children indented
	Indent  string // indent unit per depth level
	Newline string // line separator
}

func (opts Options) filled() Options {
	if opts.Pretty {
		if opts.Indent == "" {
			opts.Indent = "  "
		}
		if opts.Newline == "" {
			opts.Newline = "\n"
		}
	} else {
		opts.Indent = ""
		opts.Newline = ""
	}
	return opts
}

// Render serializes a tree in the indented multi-line form: two spaces of
// indent per depth level, every element, comment and text run on its own
// line, closing tags at the parent's indent level. Rendering a well-formed
// tree never fails and is deterministic.
func Render(root Node) string {
	return RenderWith(root, Options{Pretty: true})
}

// RenderCompact serializes a tree on a single line, with no whitespace
// beyond what the markup requires.
func RenderCompact(root Node) string {
	return RenderWith(root, Options{})
}

// RenderWith serializes a tree with explicit options. It is the
// named-option entry over the same serialization walk as Render and
// RenderCompact.
func RenderWith(root Node, opts Options) string {
	var sb strings.Builder
	_ = Write(&sb, root, opts) // strings.Builder never errors
	return sb.String()
}

// Write serializes a tree to w. It returns the first error reported by w,
// if any; the walk itself cannot fail on a well-formed tree.
func Write(w io.Writer, root Node, opts Options) error {
	p := &printer{w: bufio.NewWriter(w), opts: opts.filled()}
	p.node(root, 0)
	return p.w.Flush()
}

// --- Serialization walk ------------------------------------------------------

type printer struct {
	w       *bufio.Writer
	opts    Options
	started bool // false until the first byte is emitted
}

// breakLine starts a fresh output line at the given depth. In compact mode
// (and for the very first node) it emits nothing.
func (p *printer) breakLine(depth int) {
	if !p.opts.Pretty || !p.started {
		return
	}
	p.w.WriteString(p.opts.Newline)
	for i := 0; i < depth; i++ {
		p.w.WriteString(p.opts.Indent)
	}
}

func (p *printer) node(n Node, depth int) {
	switch it := n.(type) {
	case *Element:
		p.element(it, depth)
	case *Text:
		p.breakLine(depth)
		p.started = true
		p.w.WriteString(escapeText(it.text))
	case *Comment:
		p.comment(it, depth)
	case *Container:
		// transparent: children in sequence, same depth, no wrapping syntax
		for _, ch := range it.children.nodes {
			p.node(ch, depth)
		}
	}
}

func (p *printer) element(e *Element, depth int) {
	spec := LookupTag(e.tag)
	p.breakLine(depth)
	p.started = true
	p.w.WriteByte('<')
	p.w.WriteString(spec.Render)
	for _, a := range e.attrs.list {
		p.w.WriteByte(' ')
		p.w.WriteString(a.String())
	}
	p.w.WriteByte('>')
	if spec.Void {
		return // never a closing tag, never children
	}
	for _, ch := range e.children.nodes {
		p.node(ch, depth+1)
	}
	p.breakLine(depth)
	p.w.WriteString("</")
	p.w.WriteString(spec.Render)
	p.w.WriteByte('>')
}

func (p *printer) comment(c *Comment, depth int) {
	p.breakLine(depth)
	p.started = true
	if c.condition != "" {
		p.w.WriteString("<!--[if ")
		p.w.WriteString(c.condition)
		p.w.WriteString("]>")
	} else {
		p.w.WriteString("<!--")
	}
	for _, ch := range c.children.nodes {
		p.node(ch, depth+1)
	}
	p.breakLine(depth)
	if c.condition != "" {
		p.w.WriteString("<![endif]-->")
	} else {
		p.w.WriteString("-->")
	}
}

// --- Escaping ------------------------------------------------------------------

// Text content escapes the markup-significant characters, attribute values
// the quote and ampersand characters. Escaping happens at serialization
// time only; node payloads keep the raw strings.

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&#34;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttrValue(s string) string {
	return attrEscaper.Replace(s)
}
