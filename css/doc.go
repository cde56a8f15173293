/*
Package css matches CSS selector expressions against markup trees.

Selection complements the structural matching in the root package: where
htmltree.Find takes a pattern node, Select takes a selector string and
compiles it with the cascadia package. Trees are mirrored into x/net/html
shadow nodes for matching, so the full CSS3 selector grammar is available
without clients ever handling x/net/html nodes themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmltree.css'.
func tracer() tracing.Trace {
	return tracing.Select("htmltree.css")
}
