package tags

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/htmltree"
)

// Void tags never emit a closing tag and reject children at attach time.
var voidTags = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
}

func init() {
	for _, tag := range voidTags {
		htmltree.DefineTag(htmltree.TagSpec{Tag: tag, Void: true})
	}
	registerDoctypes()
}

// T is a shorthand for htmltree.NewText, re-exported so that builder code
// only needs this package in scope.
func T(content string) *htmltree.Text { return htmltree.NewText(content) }

// Comment creates a comment node wrapping the given content. Combine with
// WithCondition for the IE conditional form.
func Comment(items ...interface{}) *htmltree.Comment {
	return htmltree.MustNewComment(items...)
}

// Group creates a transparent container of sibling nodes.
func Group(items ...interface{}) *htmltree.Container {
	return htmltree.Group(items...)
}

// --- Basic HTML --------------------------------------------------------------

// Html defines an HTML document.
func Html(items ...interface{}) *htmltree.Element { return htmltree.MustNew("html", items...) }

// Head contains metadata/information for the document.
func Head(items ...interface{}) *htmltree.Element { return htmltree.MustNew("head", items...) }

// Title defines a title for the document.
func Title(items ...interface{}) *htmltree.Element { return htmltree.MustNew("title", items...) }

// Body defines the document's body.
func Body(items ...interface{}) *htmltree.Element { return htmltree.MustNew("body", items...) }

// H1 defines an HTML heading of rank 1.
func H1(items ...interface{}) *htmltree.Element { return htmltree.MustNew("h1", items...) }

// H2 defines an HTML heading of rank 2.
func H2(items ...interface{}) *htmltree.Element { return htmltree.MustNew("h2", items...) }

// H3 defines an HTML heading of rank 3.
func H3(items ...interface{}) *htmltree.Element { return htmltree.MustNew("h3", items...) }

// H4 defines an HTML heading of rank 4.
func H4(items ...interface{}) *htmltree.Element { return htmltree.MustNew("h4", items...) }

// H5 defines an HTML heading of rank 5.
func H5(items ...interface{}) *htmltree.Element { return htmltree.MustNew("h5", items...) }

// H6 defines an HTML heading of rank 6.
func H6(items ...interface{}) *htmltree.Element { return htmltree.MustNew("h6", items...) }

// P defines a paragraph.
func P(items ...interface{}) *htmltree.Element { return htmltree.MustNew("p", items...) }

// Paragraph defines a paragraph; alias of P.
func Paragraph(items ...interface{}) *htmltree.Element { return htmltree.MustNew("p", items...) }

// Br inserts a single line break.
func Br(items ...interface{}) *htmltree.Element { return htmltree.MustNew("br", items...) }

// Hr defines a thematic change in the content.
func Hr(items ...interface{}) *htmltree.Element { return htmltree.MustNew("hr", items...) }

// --- Formatting ---------------------------------------------------------------

// Acronym defines an acronym. Not supported in HTML5, use Abbr instead.
func Acronym(items ...interface{}) *htmltree.Element { return htmltree.MustNew("acronym", items...) }

// Abbr defines an abbreviation or an acronym.
func Abbr(items ...interface{}) *htmltree.Element { return htmltree.MustNew("abbr", items...) }

// Address defines contact information for the author/owner of a document.
func Address(items ...interface{}) *htmltree.Element { return htmltree.MustNew("address", items...) }

// B defines bold text.
func B(items ...interface{}) *htmltree.Element { return htmltree.MustNew("b", items...) }

// Bdi isolates a part of text that might be formatted in a different
// direction from other text outside it.
func Bdi(items ...interface{}) *htmltree.Element { return htmltree.MustNew("bdi", items...) }

// Bdo overrides the current text direction.
func Bdo(items ...interface{}) *htmltree.Element { return htmltree.MustNew("bdo", items...) }

// Big defines big text. Not supported in HTML5, use CSS instead.
func Big(items ...interface{}) *htmltree.Element { return htmltree.MustNew("big", items...) }

// Blockquote defines a section quoted from another source.
func Blockquote(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("blockquote", items...)
}

// Center defines centered text. Not supported in HTML5, use CSS instead.
func Center(items ...interface{}) *htmltree.Element { return htmltree.MustNew("center", items...) }

// Cite defines the title of a work.
func Cite(items ...interface{}) *htmltree.Element { return htmltree.MustNew("cite", items...) }

// Code defines a piece of computer code.
func Code(items ...interface{}) *htmltree.Element { return htmltree.MustNew("code", items...) }

// Del defines text that has been deleted from a document.
func Del(items ...interface{}) *htmltree.Element { return htmltree.MustNew("del", items...) }

// Dfn specifies a term that is going to be defined within the content.
func Dfn(items ...interface{}) *htmltree.Element { return htmltree.MustNew("dfn", items...) }

// Em defines emphasized text.
func Em(items ...interface{}) *htmltree.Element { return htmltree.MustNew("em", items...) }

// Font defines font, color, and size for text. Not supported in HTML5.
func Font(items ...interface{}) *htmltree.Element { return htmltree.MustNew("font", items...) }

// I defines a part of text in an alternate voice or mood.
func I(items ...interface{}) *htmltree.Element { return htmltree.MustNew("i", items...) }

// Ins defines a text that has been inserted into a document.
func Ins(items ...interface{}) *htmltree.Element { return htmltree.MustNew("ins", items...) }

// Kbd defines keyboard input.
func Kbd(items ...interface{}) *htmltree.Element { return htmltree.MustNew("kbd", items...) }

// Mark defines marked/highlighted text.
func Mark(items ...interface{}) *htmltree.Element { return htmltree.MustNew("mark", items...) }

// Meter defines a scalar measurement within a known range (a gauge).
func Meter(items ...interface{}) *htmltree.Element { return htmltree.MustNew("meter", items...) }

// Pre defines preformatted text.
func Pre(items ...interface{}) *htmltree.Element { return htmltree.MustNew("pre", items...) }

// Progress represents the progress of a task.
func Progress(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("progress", items...)
}

// Q defines a short quotation.
func Q(items ...interface{}) *htmltree.Element { return htmltree.MustNew("q", items...) }

// Rp defines what to show in browsers that do not support ruby annotations.
func Rp(items ...interface{}) *htmltree.Element { return htmltree.MustNew("rp", items...) }

// Rt defines an explanation/pronunciation of characters.
func Rt(items ...interface{}) *htmltree.Element { return htmltree.MustNew("rt", items...) }

// Ruby defines a ruby annotation (for East Asian typography).
func Ruby(items ...interface{}) *htmltree.Element { return htmltree.MustNew("ruby", items...) }

// S defines text that is no longer correct.
func S(items ...interface{}) *htmltree.Element { return htmltree.MustNew("s", items...) }

// Samp defines sample output from a computer program.
func Samp(items ...interface{}) *htmltree.Element { return htmltree.MustNew("samp", items...) }

// Small defines smaller text.
func Small(items ...interface{}) *htmltree.Element { return htmltree.MustNew("small", items...) }

// Strike defines strikethrough text. Not supported in HTML5.
func Strike(items ...interface{}) *htmltree.Element { return htmltree.MustNew("strike", items...) }

// Strong defines important text.
func Strong(items ...interface{}) *htmltree.Element { return htmltree.MustNew("strong", items...) }

// Sub defines subscripted text.
func Sub(items ...interface{}) *htmltree.Element { return htmltree.MustNew("sub", items...) }

// Sup defines superscripted text.
func Sup(items ...interface{}) *htmltree.Element { return htmltree.MustNew("sup", items...) }

// Template defines a container for content hidden when the page loads.
func Template(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("template", items...)
}

// Time defines a specific time (or datetime).
func Time(items ...interface{}) *htmltree.Element { return htmltree.MustNew("time", items...) }

// Tt defines teletype text. Not supported in HTML5, use CSS instead.
func Tt(items ...interface{}) *htmltree.Element { return htmltree.MustNew("tt", items...) }

// U defines text that is unarticulated and styled differently from normal
// text.
func U(items ...interface{}) *htmltree.Element { return htmltree.MustNew("u", items...) }

// Var defines a variable.
func Var(items ...interface{}) *htmltree.Element { return htmltree.MustNew("var", items...) }

// Wbr defines a possible line-break.
func Wbr(items ...interface{}) *htmltree.Element { return htmltree.MustNew("wbr", items...) }

// --- Forms and input ------------------------------------------------------------

// Form defines an HTML form for user input.
func Form(items ...interface{}) *htmltree.Element { return htmltree.MustNew("form", items...) }

// Input defines an input control.
func Input(items ...interface{}) *htmltree.Element { return htmltree.MustNew("input", items...) }

// Textarea defines a multiline input control (text area).
func Textarea(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("textarea", items...)
}

// Button defines a clickable button.
func Button(items ...interface{}) *htmltree.Element { return htmltree.MustNew("button", items...) }

// Select defines a drop-down list.
func Select(items ...interface{}) *htmltree.Element { return htmltree.MustNew("select", items...) }

// Optgroup defines a group of related options in a drop-down list.
func Optgroup(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("optgroup", items...)
}

// Option defines an option in a drop-down list.
func Option(items ...interface{}) *htmltree.Element { return htmltree.MustNew("option", items...) }

// Label defines a label for an input element.
func Label(items ...interface{}) *htmltree.Element { return htmltree.MustNew("label", items...) }

// Fieldset groups related elements in a form.
func Fieldset(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("fieldset", items...)
}

// Legend defines a caption for a fieldset element.
func Legend(items ...interface{}) *htmltree.Element { return htmltree.MustNew("legend", items...) }

// Datalist specifies a list of pre-defined options for input controls.
func Datalist(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("datalist", items...)
}

// Output defines the result of a calculation.
func Output(items ...interface{}) *htmltree.Element { return htmltree.MustNew("output", items...) }

// --- Frames ----------------------------------------------------------------------

// Frame defines a window in a frameset. Not supported in HTML5.
func Frame(items ...interface{}) *htmltree.Element { return htmltree.MustNew("frame", items...) }

// Frameset defines a set of frames. Not supported in HTML5.
func Frameset(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("frameset", items...)
}

// Noframes defines alternate content for users that do not support frames.
// Not supported in HTML5.
func Noframes(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("noframes", items...)
}

// Iframe defines an inline frame.
func Iframe(items ...interface{}) *htmltree.Element { return htmltree.MustNew("iframe", items...) }

// --- Images and media -------------------------------------------------------------

// Img defines an image.
func Img(items ...interface{}) *htmltree.Element { return htmltree.MustNew("img", items...) }

// Map defines a client-side image map.
func Map(items ...interface{}) *htmltree.Element { return htmltree.MustNew("map", items...) }

// Area defines an area inside an image map.
func Area(items ...interface{}) *htmltree.Element { return htmltree.MustNew("area", items...) }

// Canvas is used to draw graphics on the fly, via scripting.
func Canvas(items ...interface{}) *htmltree.Element { return htmltree.MustNew("canvas", items...) }

// Figcaption defines a caption for a figure element.
func Figcaption(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("figcaption", items...)
}

// Figure specifies self-contained content.
func Figure(items ...interface{}) *htmltree.Element { return htmltree.MustNew("figure", items...) }

// Picture defines a container for multiple image resources.
func Picture(items ...interface{}) *htmltree.Element { return htmltree.MustNew("picture", items...) }

// Svg defines a container for SVG graphics.
func Svg(items ...interface{}) *htmltree.Element { return htmltree.MustNew("svg", items...) }

// Audio defines sound content.
func Audio(items ...interface{}) *htmltree.Element { return htmltree.MustNew("audio", items...) }

// Source defines multiple media resources for media elements.
func Source(items ...interface{}) *htmltree.Element { return htmltree.MustNew("source", items...) }

// Track defines text tracks for media elements.
func Track(items ...interface{}) *htmltree.Element { return htmltree.MustNew("track", items...) }

// Video defines a video or movie.
func Video(items ...interface{}) *htmltree.Element { return htmltree.MustNew("video", items...) }

// --- Links ------------------------------------------------------------------------

// A defines a hyperlink.
func A(items ...interface{}) *htmltree.Element { return htmltree.MustNew("a", items...) }

// Link defines the relationship between a document and an external
// resource, most used to link to style sheets.
func Link(items ...interface{}) *htmltree.Element { return htmltree.MustNew("link", items...) }

// Nav defines navigation links.
func Nav(items ...interface{}) *htmltree.Element { return htmltree.MustNew("nav", items...) }

// --- Lists ------------------------------------------------------------------------

// Menu defines an alternative unordered list.
func Menu(items ...interface{}) *htmltree.Element { return htmltree.MustNew("menu", items...) }

// Ul defines an unordered list.
func Ul(items ...interface{}) *htmltree.Element { return htmltree.MustNew("ul", items...) }

// Ol defines an ordered list.
func Ol(items ...interface{}) *htmltree.Element { return htmltree.MustNew("ol", items...) }

// Li defines a list item.
func Li(items ...interface{}) *htmltree.Element { return htmltree.MustNew("li", items...) }

// Dir defines a directory list. Not supported in HTML5, use Ul instead.
func Dir(items ...interface{}) *htmltree.Element { return htmltree.MustNew("dir", items...) }

// Dl defines a description list.
func Dl(items ...interface{}) *htmltree.Element { return htmltree.MustNew("dl", items...) }

// Dt defines a term/name in a description list.
func Dt(items ...interface{}) *htmltree.Element { return htmltree.MustNew("dt", items...) }

// Dd defines a description of a term/name in a description list.
func Dd(items ...interface{}) *htmltree.Element { return htmltree.MustNew("dd", items...) }

// --- Styles and semantics ------------------------------------------------------------

// Style defines style information for a document.
func Style(items ...interface{}) *htmltree.Element { return htmltree.MustNew("style", items...) }

// Div defines a section in a document.
func Div(items ...interface{}) *htmltree.Element { return htmltree.MustNew("div", items...) }

// Span defines an inline section in a document.
func Span(items ...interface{}) *htmltree.Element { return htmltree.MustNew("span", items...) }

// Header defines a header for a document or section.
func Header(items ...interface{}) *htmltree.Element { return htmltree.MustNew("header", items...) }

// Hgroup defines a header and related content.
func Hgroup(items ...interface{}) *htmltree.Element { return htmltree.MustNew("hgroup", items...) }

// Footer defines a footer for a document or section.
func Footer(items ...interface{}) *htmltree.Element { return htmltree.MustNew("footer", items...) }

// Main specifies the main content of a document.
func Main(items ...interface{}) *htmltree.Element { return htmltree.MustNew("main", items...) }

// Section defines a section in a document.
func Section(items ...interface{}) *htmltree.Element { return htmltree.MustNew("section", items...) }

// Search defines a search section.
func Search(items ...interface{}) *htmltree.Element { return htmltree.MustNew("search", items...) }

// Article defines an article.
func Article(items ...interface{}) *htmltree.Element { return htmltree.MustNew("article", items...) }

// Aside defines content aside from the page content.
func Aside(items ...interface{}) *htmltree.Element { return htmltree.MustNew("aside", items...) }

// Details defines additional details that the user can view or hide.
func Details(items ...interface{}) *htmltree.Element { return htmltree.MustNew("details", items...) }

// Dialog defines a dialog box or window.
func Dialog(items ...interface{}) *htmltree.Element { return htmltree.MustNew("dialog", items...) }

// Summary defines a visible heading for a details element.
func Summary(items ...interface{}) *htmltree.Element { return htmltree.MustNew("summary", items...) }

// Data adds a machine-readable translation of a given content.
func Data(items ...interface{}) *htmltree.Element { return htmltree.MustNew("data", items...) }

// --- Meta info --------------------------------------------------------------------------

// Meta defines metadata about an HTML document.
func Meta(items ...interface{}) *htmltree.Element { return htmltree.MustNew("meta", items...) }

// Base specifies the base URL/target for all relative URLs in a document.
func Base(items ...interface{}) *htmltree.Element { return htmltree.MustNew("base", items...) }

// Basefont specifies a default font for all text in a document. Not
// supported in HTML5, use CSS instead.
func Basefont(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("basefont", items...)
}

// --- Programming -------------------------------------------------------------------------

// Script defines a client-side script.
func Script(items ...interface{}) *htmltree.Element { return htmltree.MustNew("script", items...) }

// Noscript defines alternate content for users that do not support
// client-side scripts.
func Noscript(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("noscript", items...)
}

// Applet defines an embedded applet. Not supported in HTML5, use Embed or
// Object instead.
func Applet(items ...interface{}) *htmltree.Element { return htmltree.MustNew("applet", items...) }

// Embed defines a container for an external (non-HTML) application.
func Embed(items ...interface{}) *htmltree.Element { return htmltree.MustNew("embed", items...) }

// Object defines an embedded object.
func Object(items ...interface{}) *htmltree.Element { return htmltree.MustNew("object", items...) }

// Param defines a parameter for an object.
func Param(items ...interface{}) *htmltree.Element { return htmltree.MustNew("param", items...) }

// --- Tables (see table.go for the shorthand construction) ----------------------------------

// Caption defines a table caption.
func Caption(items ...interface{}) *htmltree.Element { return htmltree.MustNew("caption", items...) }

// Td defines a cell in a table.
func Td(items ...interface{}) *htmltree.Element { return htmltree.MustNew("td", items...) }

// Tr defines a row in a table.
func Tr(items ...interface{}) *htmltree.Element { return htmltree.MustNew("tr", items...) }

// Th defines a header cell in a table.
func Th(items ...interface{}) *htmltree.Element { return htmltree.MustNew("th", items...) }

// Tfoot groups the footer content in a table.
func Tfoot(items ...interface{}) *htmltree.Element { return htmltree.MustNew("tfoot", items...) }

// Tbody groups the body content in a table.
func Tbody(items ...interface{}) *htmltree.Element { return htmltree.MustNew("tbody", items...) }

// Thead groups the header content in a table.
func Thead(items ...interface{}) *htmltree.Element { return htmltree.MustNew("thead", items...) }

// Col specifies column properties for each column within a colgroup.
func Col(items ...interface{}) *htmltree.Element { return htmltree.MustNew("col", items...) }

// Colgroup specifies a group of one or more columns in a table.
func Colgroup(items ...interface{}) *htmltree.Element {
	return htmltree.MustNew("colgroup", items...)
}

// Table defines a table element.
func Table(items ...interface{}) *htmltree.Element { return htmltree.MustNew("table", items...) }
