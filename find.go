package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Query selects nodes of a markup tree. The set of query kinds is closed:
// Contains matches text nodes by substring, Like matches nodes
// structurally against a pattern node.
type Query interface {
	matches(n Node) bool
}

// Contains returns a query matching every Text node whose content contains
// the given substring.
func Contains(substring string) Query {
	return textQuery{substr: substring}
}

// Like returns a query matching nodes structurally against a partially
// populated pattern node:
//
//   - the candidate must be of the pattern's variant and, for elements,
//     carry the pattern's tag;
//   - every attribute of the pattern must be present on the candidate with
//     an equal value; extra attributes on the candidate are permitted;
//   - if the pattern has children, the candidate's children must be
//     structurally equal to them (a full, recursive match); a pattern
//     without children matches regardless of the candidate's children.
//
// A Text pattern with non-empty content requires exactly that content; an
// empty Text pattern matches every text node. A Comment pattern with a
// condition requires that condition.
//
// Patterns are ordinary nodes; construct them outside an open scope, or
// they will attach themselves to the tree under construction.
func Like(pattern Node) Query {
	return nodeQuery{pattern: pattern}
}

// Find walks the tree below root in depth-first pre-order, the root node
// included, and returns all nodes matching q in document order. No match
// yields an empty (nil) result, never an error.
func Find(root Node, q Query) []Node {
	if root == nil || q == nil {
		return nil
	}
	var hits []Node
	Walk(root, func(n Node) {
		if q.matches(n) {
			hits = append(hits, n)
		}
	})
	tracer().Debugf("find: %d node(s) matched", len(hits))
	return hits
}

// Walk visits every node of the tree below root in depth-first pre-order
// (a node before its children, children left to right), the root included.
func Walk(root Node, visit func(Node)) {
	if root == nil {
		return
	}
	visit(root)
	switch it := root.(type) {
	case *Element:
		for _, ch := range it.children.nodes {
			Walk(ch, visit)
		}
	case *Comment:
		for _, ch := range it.children.nodes {
			Walk(ch, visit)
		}
	case *Container:
		for _, ch := range it.children.nodes {
			Walk(ch, visit)
		}
	}
}

// --- Query kinds ---------------------------------------------------------------

type textQuery struct {
	substr string
}

func (q textQuery) matches(n Node) bool {
	t, ok := n.(*Text)
	return ok && strings.Contains(t.text, q.substr)
}

type nodeQuery struct {
	pattern Node
}

func (q nodeQuery) matches(n Node) bool {
	switch pat := q.pattern.(type) {
	case *Element:
		cand, ok := n.(*Element)
		if !ok || cand.tag != pat.tag {
			return false
		}
		if !attrsSubset(pat.attrs.list, &cand.attrs) {
			return false
		}
		return pat.Len() == 0 || childrenEqual(&pat.children, &cand.children)
	case *Text:
		cand, ok := n.(*Text)
		if !ok {
			return false
		}
		return pat.text == "" || cand.text == pat.text
	case *Comment:
		cand, ok := n.(*Comment)
		if !ok {
			return false
		}
		if pat.condition != "" && cand.condition != pat.condition {
			return false
		}
		return pat.Len() == 0 || childrenEqual(&pat.children, &cand.children)
	case *Container:
		cand, ok := n.(*Container)
		if !ok {
			return false
		}
		return pat.Len() == 0 || childrenEqual(&pat.children, &cand.children)
	}
	return false
}

// attrsSubset reports whether every attribute of pattern is present in
// cand with an equal value.
func attrsSubset(pattern []Attribute, cand *attrList) bool {
	for _, pa := range pattern {
		ca, ok := cand.get(pa.name)
		if !ok || ca.boolean != pa.boolean || ca.value != pa.value {
			return false
		}
	}
	return true
}

// --- Structural equality ----------------------------------------------------------

// Equal reports whether two trees are structurally equal: same variant at
// every position, same tags, equal attribute sets (order-insensitive) and
// pairwise equal children. Node identity does not matter, so a deep copy
// is Equal to its original.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch na := a.(type) {
	case *Element:
		nb, ok := b.(*Element)
		if !ok || na.tag != nb.tag {
			return false
		}
		if len(na.attrs.list) != len(nb.attrs.list) || !attrsSubset(na.attrs.list, &nb.attrs) {
			return false
		}
		return childrenEqual(&na.children, &nb.children)
	case *Text:
		nb, ok := b.(*Text)
		return ok && na.text == nb.text
	case *Comment:
		nb, ok := b.(*Comment)
		return ok && na.condition == nb.condition && childrenEqual(&na.children, &nb.children)
	case *Container:
		nb, ok := b.(*Container)
		return ok && childrenEqual(&na.children, &nb.children)
	}
	return false
}

func childrenEqual(a, b *childList) bool {
	if a.length() != b.length() {
		return false
	}
	for i, ch := range a.nodes {
		if !Equal(ch, b.nodes[i]) {
			return false
		}
	}
	return true
}
