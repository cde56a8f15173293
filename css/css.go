package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/htmltree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Select matches a CSS selector expression against a markup tree and
// returns all matching nodes in document order. The root node itself is a
// candidate. Container nodes are transparent to selection: their children
// are treated as siblings at the container's position, and containers
// themselves never match.
//
// The selector syntax is that of the cascadia package, i.e. the usual CSS3
// selectors ("div.note > p", "input[type=checkbox]", "li:first-child").
func Select(root htmltree.Node, expression string) ([]htmltree.Node, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil selection root", htmltree.ErrInvalidArgument)
	}
	sel, err := cascadia.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", htmltree.ErrInvalidArgument, err.Error())
	}
	doc := &html.Node{Type: html.DocumentNode}
	backlink := make(map[*html.Node]htmltree.Node)
	mirror(root, doc, backlink)
	matches := sel.MatchAll(doc)
	nodes := make([]htmltree.Node, 0, len(matches))
	for _, m := range matches {
		if n, ok := backlink[m]; ok {
			nodes = append(nodes, n)
		}
	}
	tracer().Debugf("selector %q matched %d node(s)", expression, len(nodes))
	return nodes, nil
}

// MustSelect is like Select but panics on error, for use in filter chains.
func MustSelect(root htmltree.Node, expression string) []htmltree.Node {
	nodes, err := Select(root, expression)
	if err != nil {
		panic(err)
	}
	return nodes
}

// mirror builds an x/net/html shadow of n under parent, recording the
// correspondence in backlink. Containers contribute their children but no
// shadow node of their own.
func mirror(n htmltree.Node, parent *html.Node, backlink map[*html.Node]htmltree.Node) {
	switch t := n.(type) {
	case *htmltree.Element:
		a := atom.Lookup([]byte(t.Tag()))
		shadow := &html.Node{
			Type:     html.ElementNode,
			DataAtom: a,
			Data:     t.Tag(),
		}
		for _, attribute := range t.Attributes() {
			shadow.Attr = append(shadow.Attr, html.Attribute{
				Key: attribute.Name(),
				Val: attribute.Value(),
			})
		}
		parent.AppendChild(shadow)
		backlink[shadow] = n
		for i := 0; i < t.Len(); i++ {
			child, _ := t.Child(i)
			mirror(child, shadow, backlink)
		}
	case *htmltree.Text:
		shadow := &html.Node{Type: html.TextNode, Data: t.Content()}
		parent.AppendChild(shadow)
		backlink[shadow] = n
	case *htmltree.Comment:
		shadow := &html.Node{Type: html.CommentNode}
		parent.AppendChild(shadow)
		backlink[shadow] = n
	case *htmltree.Container:
		for i := 0; i < t.Len(); i++ {
			child, _ := t.Child(i)
			mirror(child, parent, backlink)
		}
	}
}
