package attr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/htmltree"
	"github.com/npillmayer/htmltree/style"
)

// Style creates an inline style attribute. Items may be raw CSS strings,
// which are run through the CSS parser, or style.KeyValue pairs:
//
//	attr.Style("color: black;", style.KV("font_size", "20 px"))
//
// yields style="color: black;font-size: 20 px;". Adding a style attribute
// to an element which already carries one appends the new declarations.
// Any other item type panics with ErrInvalidArgument, like the tag
// factories do on unclassifiable arguments.
func Style(items ...interface{}) htmltree.Attribute {
	var kvs []style.KeyValue
	for _, item := range items {
		switch s := item.(type) {
		case string:
			kvs = append(kvs, style.Declarations(s)...)
		case style.KeyValue:
			kvs = append(kvs, s)
		case []style.KeyValue:
			kvs = append(kvs, s...)
		default:
			panic(fmt.Errorf("%w: cannot classify style item of type %T", htmltree.ErrInvalidArgument, item))
		}
	}
	return htmltree.Attr("style", style.Join(kvs)).WithSeparator("")
}
