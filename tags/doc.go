/*
Package tags carries the HTML tag vocabulary: one factory function per
tag, the registration of tag metadata (void/self-closing flags and
rendered-name aliases) with htmltree's tag registry, the Document
convenience type, and the table construction shorthand.

Factories are thin wrappers over htmltree.MustNew and panic on a
classification error; trees are meant to be composed as nested
expressions:

	tags.Div(
	    tags.H1("Title"),
	    tags.P("Paragraph"),
	    attr.Class("container"),
	    tags.Hr(),
	)

The enumeration follows the categories of the W3C tag reference; tags
dropped from HTML5 are kept for compatibility and marked in their
comments.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tags
