/*
Package htmltree lets clients build a document-markup tree programmatically
and render it to textual HTML on demand.

Overview

Trees are composed from four node variants: Element (tagged, with attributes
and children), Text (leaf), Comment (optionally conditional) and Container
(a transparent grouping of siblings). Nodes are created by constructors or
by the classification of arguments passed to New and Add: child nodes,
attributes, and plain strings or numbers may be mixed freely.

	div := htmltree.MustNew("div",
		htmltree.MustNew("h1", "Title"),
		htmltree.Attr("class", "container"),
	)
	fmt.Println(htmltree.Render(div))

The sub-packages tags and attr carry the mechanical enumerations of the
HTML vocabulary: tag factories with void/self-closing metadata, and named
attribute constructors with keyword normalization. Package css searches a
built tree with CSS selectors.

Rendering is available in an indented multi-line form and a compact
single-line form; both are deterministic. Searching a tree is done with
Find and a closed set of query kinds, see Contains and Like.

Trees are not safe for concurrent mutation. All operations run to
completion on the calling goroutine; the one piece of ambient state is
the scope stack used for implicit parenting (see type Scope), which is
confined to a single execution context.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'htmltree.core'
func tracer() tracing.Trace {
	return tracing.Select("htmltree.core")
}
