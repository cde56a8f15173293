package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Sketch returns a structural outline of a tree, one node per line, for
// debugging and test output. It shows variants, tags and attribute
// counts, not the rendered markup; use Render for that.
func Sketch(root Node) string {
	tp := treeprint.New()
	sketch(tp, root)
	return tp.String()
}

func sketch(tp treeprint.Tree, n Node) {
	switch it := n.(type) {
	case *Element:
		label := "<" + it.tag + ">"
		if cnt := len(it.attrs.list); cnt > 0 {
			label += fmt.Sprintf(" +%d attr(s)", cnt)
		}
		br := tp.AddBranch(label)
		for _, ch := range it.children.nodes {
			sketch(br, ch)
		}
	case *Text:
		tp.AddNode(fmt.Sprintf("#text %q", clip(it.text, 20)))
	case *Comment:
		label := "<!-- -->"
		if it.condition != "" {
			label = "<!--[if " + it.condition + "]-->"
		}
		br := tp.AddBranch(label)
		for _, ch := range it.children.nodes {
			sketch(br, ch)
		}
	case *Container:
		br := tp.AddBranch("[group]")
		for _, ch := range it.children.nodes {
			sketch(br, ch)
		}
	}
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
