package attr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/htmltree"
)

// Named creates an attribute from a keyword-style name, normalizing it
// through htmltree.CanonicalAttrName: reserved-word underscore suffixes
// are stripped and underscores are restored to dashes, so Named("class_",
// "container") and Named("data_row", 1) yield "class" and "data-row". A
// value of true produces a boolean (presence-only) attribute.
func Named(name string, value interface{}) htmltree.Attribute {
	return htmltree.Attr(name, value)
}

// Multi creates an attribute holding several space-separated values, as
// used for class or rel lists.
func Multi(name string, values ...string) htmltree.Attribute {
	return htmltree.Attr(name, strings.Join(values, " "))
}

// --- The dashed attribute families -----------------------------------------

// Data creates a custom data attribute "data-<name>"; Data("row", 1)
// renders data-row="1".
func Data(name string, value interface{}) htmltree.Attribute {
	return htmltree.Attr("data-"+name, value)
}

// Aria creates an accessibility attribute "aria-<name>".
func Aria(name string, value interface{}) htmltree.Attribute {
	return htmltree.Attr("aria-"+name, value)
}

// --- Global attributes --------------------------------------------------------

// Id specifies a unique id for an element.
func Id(value interface{}) htmltree.Attribute { return htmltree.Attr("id", value) }

// Class specifies one or more class names for an element. Re-adding a
// class attribute merges the values, space-separated.
func Class(values ...string) htmltree.Attribute {
	return Multi("class", values...)
}

// TitleAttr specifies extra information about an element, shown as a
// tooltip. Named with a suffix to keep it apart from the title tag.
func TitleAttr(value interface{}) htmltree.Attribute { return htmltree.Attr("title", value) }

// Lang specifies the language of the element's content.
func Lang(value interface{}) htmltree.Attribute { return htmltree.Attr("lang", value) }

// DirAttr specifies the text direction for the content in an element.
func DirAttr(value interface{}) htmltree.Attribute { return htmltree.Attr("dir", value) }

// Accesskey specifies a shortcut key to activate/focus an element.
func Accesskey(value interface{}) htmltree.Attribute { return htmltree.Attr("accesskey", value) }

// Contenteditable specifies whether the content of an element is editable.
func Contenteditable(value interface{}) htmltree.Attribute {
	return htmltree.Attr("contenteditable", value)
}

// Draggable specifies whether an element is draggable.
func Draggable(value interface{}) htmltree.Attribute { return htmltree.Attr("draggable", value) }

// Hidden specifies that an element is not yet, or no longer, relevant.
func Hidden() htmltree.Attribute { return htmltree.BoolAttr("hidden") }

// Spellcheck specifies whether the element is to have its spelling checked.
func Spellcheck(value interface{}) htmltree.Attribute { return htmltree.Attr("spellcheck", value) }

// Tabindex specifies the tabbing order of an element.
func Tabindex(value interface{}) htmltree.Attribute { return htmltree.Attr("tabindex", value) }

// --- Links and references -------------------------------------------------------

// Href specifies the URL of the page the link goes to.
func Href(value interface{}) htmltree.Attribute { return htmltree.Attr("href", value) }

// Hreflang specifies the language of the linked document.
func Hreflang(value interface{}) htmltree.Attribute { return htmltree.Attr("hreflang", value) }

// Target specifies where to open the linked document.
func Target(value interface{}) htmltree.Attribute { return htmltree.Attr("target", value) }

// Rel specifies the relationship between the current and the linked
// document.
func Rel(values ...string) htmltree.Attribute { return Multi("rel", values...) }

// Src specifies the URL of an external resource.
func Src(value interface{}) htmltree.Attribute { return htmltree.Attr("src", value) }

// Srcset specifies the URLs of images to use in different situations.
func Srcset(value interface{}) htmltree.Attribute { return htmltree.Attr("srcset", value) }

// Alt specifies an alternate text for when the original element fails to
// display.
func Alt(value interface{}) htmltree.Attribute { return htmltree.Attr("alt", value) }

// CiteAttr specifies a URL which explains the quote/deleted/inserted text.
func CiteAttr(value interface{}) htmltree.Attribute { return htmltree.Attr("cite", value) }

// Download specifies that the target will be downloaded when clicked.
func Download() htmltree.Attribute { return htmltree.BoolAttr("download") }

// --- Forms and input ---------------------------------------------------------------

// Accept specifies the types of files that the server accepts.
func Accept(value interface{}) htmltree.Attribute { return htmltree.Attr("accept", value) }

// AcceptCharset specifies the character encodings used for the form
// submission.
func AcceptCharset(value interface{}) htmltree.Attribute {
	return htmltree.Attr("accept-charset", value)
}

// Action specifies where to send the form-data when a form is submitted.
func Action(value interface{}) htmltree.Attribute { return htmltree.Attr("action", value) }

// Autocomplete specifies whether a form or input should have autocomplete
// enabled.
func Autocomplete(value interface{}) htmltree.Attribute {
	return htmltree.Attr("autocomplete", value)
}

// Autofocus specifies that the element should automatically get focus when
// the page loads.
func Autofocus() htmltree.Attribute { return htmltree.BoolAttr("autofocus") }

// Checked specifies that an input element should be pre-selected when the
// page loads.
func Checked() htmltree.Attribute { return htmltree.BoolAttr("checked") }

// Cols specifies the visible width of a text area.
func Cols(value interface{}) htmltree.Attribute { return htmltree.Attr("cols", value) }

// Dirname specifies that the text direction will be submitted.
func Dirname(value interface{}) htmltree.Attribute { return htmltree.Attr("dirname", value) }

// Disabled specifies that the element should be disabled.
func Disabled() htmltree.Attribute { return htmltree.BoolAttr("disabled") }

// Enctype specifies how the form-data should be encoded when submitting.
func Enctype(value interface{}) htmltree.Attribute { return htmltree.Attr("enctype", value) }

// For specifies which form element a label is bound to.
func For(value interface{}) htmltree.Attribute { return htmltree.Attr("for", value) }

// FormAttr specifies the form an element belongs to.
func FormAttr(value interface{}) htmltree.Attribute { return htmltree.Attr("form", value) }

// Formaction specifies where to send the form-data when a form is
// submitted, for submit buttons.
func Formaction(value interface{}) htmltree.Attribute { return htmltree.Attr("formaction", value) }

// LabelAttr specifies a shorter label for an option.
func LabelAttr(value interface{}) htmltree.Attribute { return htmltree.Attr("label", value) }

// List refers to a datalist element with pre-defined options for an input.
func List(value interface{}) htmltree.Attribute { return htmltree.Attr("list", value) }

// Max specifies the maximum value.
func Max(value interface{}) htmltree.Attribute { return htmltree.Attr("max", value) }

// Maxlength specifies the maximum number of characters allowed in an
// element.
func Maxlength(value interface{}) htmltree.Attribute { return htmltree.Attr("maxlength", value) }

// Method specifies the HTTP method to use when sending form-data.
func Method(value interface{}) htmltree.Attribute { return htmltree.Attr("method", value) }

// Min specifies a minimum value.
func Min(value interface{}) htmltree.Attribute { return htmltree.Attr("min", value) }

// Multiple specifies that a user can enter more than one value.
func Multiple() htmltree.Attribute { return htmltree.BoolAttr("multiple") }

// Name specifies the name of an element.
func Name(value interface{}) htmltree.Attribute { return htmltree.Attr("name", value) }

// Novalidate specifies that the form should not be validated when
// submitted.
func Novalidate() htmltree.Attribute { return htmltree.BoolAttr("novalidate") }

// Pattern specifies a regular expression that an input element's value is
// checked against.
func Pattern(value interface{}) htmltree.Attribute { return htmltree.Attr("pattern", value) }

// Placeholder specifies a short hint that describes the expected value of
// an element.
func Placeholder(value interface{}) htmltree.Attribute { return htmltree.Attr("placeholder", value) }

// Readonly specifies that the element is read-only.
func Readonly() htmltree.Attribute { return htmltree.BoolAttr("readonly") }

// Required specifies that the element must be filled out before submitting
// the form.
func Required() htmltree.Attribute { return htmltree.BoolAttr("required") }

// Rows specifies the visible number of lines in a text area.
func Rows(value interface{}) htmltree.Attribute { return htmltree.Attr("rows", value) }

// Selected specifies that an option should be pre-selected when the page
// loads.
func Selected() htmltree.Attribute { return htmltree.BoolAttr("selected") }

// Size specifies the width of an element, in characters.
func Size(value interface{}) htmltree.Attribute { return htmltree.Attr("size", value) }

// Step specifies the legal number intervals for an input field.
func Step(value interface{}) htmltree.Attribute { return htmltree.Attr("step", value) }

// Type specifies the type of an element.
func Type(value interface{}) htmltree.Attribute { return htmltree.Attr("type", value) }

// Value specifies the value of an element.
func Value(value interface{}) htmltree.Attribute { return htmltree.Attr("value", value) }

// --- Media -------------------------------------------------------------------------

// Autoplay specifies that the audio/video will start playing as soon as it
// is ready.
func Autoplay() htmltree.Attribute { return htmltree.BoolAttr("autoplay") }

// Controls specifies that audio/video controls should be displayed.
func Controls() htmltree.Attribute { return htmltree.BoolAttr("controls") }

// Loop specifies that the audio/video will start over again every time it
// is finished.
func Loop() htmltree.Attribute { return htmltree.BoolAttr("loop") }

// Muted specifies that the audio output should be muted.
func Muted() htmltree.Attribute { return htmltree.BoolAttr("muted") }

// Poster specifies an image to be shown while the video is downloading.
func Poster(value interface{}) htmltree.Attribute { return htmltree.Attr("poster", value) }

// Preload specifies if and how the media should be loaded when the page
// loads.
func Preload(value interface{}) htmltree.Attribute { return htmltree.Attr("preload", value) }

// --- Table and layout ------------------------------------------------------------------

// Colspan specifies the number of columns a table cell should span.
func Colspan(value interface{}) htmltree.Attribute { return htmltree.Attr("colspan", value) }

// Rowspan specifies the number of rows a table cell should span.
func Rowspan(value interface{}) htmltree.Attribute { return htmltree.Attr("rowspan", value) }

// Headers specifies one or more header cells a cell is related to.
func Headers(value interface{}) htmltree.Attribute { return htmltree.Attr("headers", value) }

// SpanAttr specifies the number of columns a col element should span.
func SpanAttr(value interface{}) htmltree.Attribute { return htmltree.Attr("span", value) }

// Height specifies the height of an element.
func Height(value interface{}) htmltree.Attribute { return htmltree.Attr("height", value) }

// Width specifies the width of an element.
func Width(value interface{}) htmltree.Attribute { return htmltree.Attr("width", value) }

// --- Meta and scripting --------------------------------------------------------------------

// Charset specifies the character encoding.
func Charset(value interface{}) htmltree.Attribute { return htmltree.Attr("charset", value) }

// Content specifies the value associated with the http-equiv or name
// attribute.
func Content(value interface{}) htmltree.Attribute { return htmltree.Attr("content", value) }

// HTTPEquiv provides an HTTP header for the information/value of the
// content attribute.
func HTTPEquiv(value interface{}) htmltree.Attribute { return htmltree.Attr("http-equiv", value) }

// Async specifies that the script is executed asynchronously.
func Async() htmltree.Attribute { return htmltree.BoolAttr("async") }

// Defer specifies that the script is executed when the page has finished
// parsing.
func Defer() htmltree.Attribute { return htmltree.BoolAttr("defer") }

// Media specifies what media/device the linked document is optimized for.
func Media(value interface{}) htmltree.Attribute { return htmltree.Attr("media", value) }

// Onclick attaches an inline script to the element's click event.
func Onclick(value interface{}) htmltree.Attribute { return htmltree.Attr("onclick", value) }

// Onload attaches an inline script to the element's load event.
func Onload(value interface{}) htmltree.Attribute { return htmltree.Attr("onload", value) }
