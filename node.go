package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

/*
We manage a tree of mutable nodes. The variant set is closed: Element, Text,
Comment and Container all live in this package, which lets the matcher and
the serializer do exhaustive case analysis. Nodes maintain a slice of
children; a child is owned by exactly one parent at a time and inserting it
elsewhere reparents it.
*/

// Kind discriminates the variants of a markup node.
type Kind int8

// The four node variants.
const (
	KindElement Kind = iota + 1
	KindText
	KindComment
	KindContainer
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindContainer:
		return "container"
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// Node is the base type markup trees are built of. Implementations are
// Element, Text, Comment and Container; the set is closed.
type Node interface {
	// Kind returns the variant of this node.
	Kind() Kind
	// String returns the node pretty-rendered (see Render).
	String() string
	// Parent returns the parent node, or nil for the root of a tree.
	Parent() Node

	base() *nodeBase
	clone() Node
}

// nodeBase carries the parent link common to all node variants.
type nodeBase struct {
	parent *childList
}

func (b *nodeBase) base() *nodeBase { return b }

// Parent returns the parent node, or nil for the root of a tree.
func (b *nodeBase) Parent() Node {
	if b.parent == nil {
		return nil
	}
	return b.parent.owner
}

// --- Child sequences -------------------------------------------------------

// childList is the ordered child sequence of a composite node. Its
// operations keep parent links consistent: adding a node that already has
// a parent removes it from the old parent first.
type childList struct {
	owner Node
	nodes []Node
}

func (cl *childList) length() int {
	return len(cl.nodes)
}

func (cl *childList) at(i int) Node {
	return cl.nodes[i]
}

// adopt makes ch a child of cl's owner, detaching it from a previous
// parent if necessary. Adopting the owner itself or one of its ancestors
// would close a cycle, so an independent copy is adopted instead.
func (cl *childList) adopt(ch Node) Node {
	if cl.owner != nil && isAncestor(ch, cl.owner) {
		ch = ch.clone()
	}
	if p := ch.base().parent; p != nil {
		p.detach(ch)
	}
	ch.base().parent = cl
	return ch
}

// isAncestor reports whether n is of, or sits on the parent chain of, target.
func isAncestor(n, target Node) bool {
	for cur := target; cur != nil; cur = cur.Parent() {
		if cur == n {
			return true
		}
	}
	return false
}

func (cl *childList) append(ch Node) {
	cl.nodes = append(cl.nodes, cl.adopt(ch))
}

// set replaces the child at position i, dropping the old child.
func (cl *childList) set(i int, ch Node) {
	old := cl.nodes[i]
	cl.nodes[i] = cl.adopt(ch)
	old.base().parent = nil
}

// insert places ch at position i, shifting children at later positions.
func (cl *childList) insert(i int, ch Node) {
	cl.adopt(ch)
	cl.nodes = append(cl.nodes, nil)
	copy(cl.nodes[i+1:], cl.nodes[i:])
	cl.nodes[i] = ch
}

// delete removes the entry at position i, shifting subsequent indices down.
func (cl *childList) delete(i int) {
	cl.nodes[i].base().parent = nil
	cl.nodes = append(cl.nodes[:i], cl.nodes[i+1:]...)
}

// detach removes ch from the list, identified by node identity.
func (cl *childList) detach(ch Node) {
	for i, n := range cl.nodes {
		if n == ch {
			cl.delete(i)
			return
		}
	}
}

func (cl *childList) asSlice() []Node {
	children := make([]Node, len(cl.nodes))
	copy(children, cl.nodes)
	return children
}

// --- Composite base --------------------------------------------------------

// branch is the common part of the composite node variants (Element,
// Comment, Container).
type branch struct {
	nodeBase
	children childList
}

// Len returns the number of children of a node.
func (br *branch) Len() int {
	return br.children.length()
}

// Children returns a copy of the child sequence of a node.
func (br *branch) Children() []Node {
	return br.children.asSlice()
}

// rejectChildren reports why the node cannot take children, if it cannot.
// Only void elements refuse children; every other composite accepts them.
func (br *branch) rejectChildren() error {
	if el, ok := br.children.owner.(*Element); ok && el.IsVoid() {
		return fmt.Errorf("%w: void element <%s> cannot contain inner content", ErrInvalidArgument, el.tag)
	}
	return nil
}

// Child returns the child at position i. It fails with ErrOutOfBounds if i
// lies outside the child sequence.
func (br *branch) Child(i int) (Node, error) {
	if i < 0 || i >= br.children.length() {
		return nil, fmt.Errorf("%w: %d with %d children", ErrOutOfBounds, i, br.children.length())
	}
	return br.children.at(i), nil
}

// SetChild replaces the child at position i in place, reparenting the new
// value and dropping the old one. item is classified like an Add argument,
// except that attributes are rejected with ErrTypeMismatch. Out-of-range
// positions fail with ErrOutOfBounds.
func (br *branch) SetChild(i int, item interface{}) error {
	if err := br.rejectChildren(); err != nil {
		return err
	}
	if i < 0 || i >= br.children.length() {
		return fmt.Errorf("%w: %d with %d children", ErrOutOfBounds, i, br.children.length())
	}
	ch, err := asChildNode(item)
	if err != nil {
		return err
	}
	br.children.set(i, ch)
	return nil
}

// InsertChild inserts a new child at position i, shifting children at later
// positions. i may equal Len(), which appends.
func (br *branch) InsertChild(i int, item interface{}) error {
	if err := br.rejectChildren(); err != nil {
		return err
	}
	if i < 0 || i > br.children.length() {
		return fmt.Errorf("%w: %d with %d children", ErrOutOfBounds, i, br.children.length())
	}
	ch, err := asChildNode(item)
	if err != nil {
		return err
	}
	br.children.insert(i, ch)
	return nil
}

// DeleteChild removes the child at position i, shifting subsequent indices
// down. It fails with ErrOutOfBounds if i lies outside the child sequence.
func (br *branch) DeleteChild(i int) error {
	if i < 0 || i >= br.children.length() {
		return fmt.Errorf("%w: %d with %d children", ErrOutOfBounds, i, br.children.length())
	}
	br.children.delete(i)
	return nil
}

// --- Element ----------------------------------------------------------------

// Element is a tagged composite node with an insertion-ordered attribute
// collection and an ordered child sequence.
type Element struct {
	branch
	tag   string
	attrs attrList
}

// Tag returns the tag identifier of the element (lowercase).
func (e *Element) Tag() string { return e.tag }

// IsVoid reports whether the element renders as a void (self-closing) tag,
// according to the registered tag metadata.
func (e *Element) IsVoid() bool { return LookupTag(e.tag).Void }

// Kind returns KindElement.
func (e *Element) Kind() Kind { return KindElement }

func (e *Element) String() string { return Render(e) }

func (e *Element) clone() Node {
	dup := newElement(e.tag)
	dup.attrs.list = append([]Attribute(nil), e.attrs.list...)
	for _, ch := range e.children.nodes {
		dup.children.append(ch.clone())
	}
	return dup
}

// --- Text --------------------------------------------------------------------

// Text is a leaf node holding a string payload. Markup-significant
// characters of the payload are escaped at rendering time.
type Text struct {
	nodeBase
	text string
}

// Content returns the (unescaped) text payload.
func (t *Text) Content() string { return t.text }

// Kind returns KindText.
func (t *Text) Kind() Kind { return KindText }

func (t *Text) String() string { return Render(t) }

func (t *Text) clone() Node {
	return &Text{text: t.text}
}

// --- Comment ------------------------------------------------------------------

// Comment wraps its children between comment delimiters. With a condition
// set, it renders in the IE conditional-comment form
// "<!--[if COND]> … <![endif]-->".
type Comment struct {
	branch
	condition string
}

// Condition returns the conditional-compilation directive, or "".
func (c *Comment) Condition() string { return c.condition }

// WithCondition sets the conditional directive and returns the comment.
func (c *Comment) WithCondition(condition string) *Comment {
	c.condition = condition
	return c
}

// Kind returns KindComment.
func (c *Comment) Kind() Kind { return KindComment }

func (c *Comment) String() string { return Render(c) }

func (c *Comment) clone() Node {
	dup := newComment()
	dup.condition = c.condition
	for _, ch := range c.children.nodes {
		dup.children.append(ch.clone())
	}
	return dup
}

// --- Container ------------------------------------------------------------------

// Container is an untagged grouping of sibling nodes. It is transparent at
// render time: its children are emitted in sequence with no wrapping syntax.
type Container struct {
	branch
}

// Kind returns KindContainer.
func (g *Container) Kind() Kind { return KindContainer }

func (g *Container) String() string { return Render(g) }

func (g *Container) clone() Node {
	dup := newContainer()
	for _, ch := range g.children.nodes {
		dup.children.append(ch.clone())
	}
	return dup
}

// --- Plain constructors ------------------------------------------------------------

// The unexported constructors wire up the child list owner; they do not
// consult the scope stack (see compose.go for the public entry points).

func newElement(tag string) *Element {
	e := &Element{tag: tag}
	e.children.owner = e
	return e
}

func newText(content string) *Text {
	return &Text{text: content}
}

func newComment() *Comment {
	c := &Comment{}
	c.children.owner = c
	return c
}

func newContainer() *Container {
	g := &Container{}
	g.children.owner = g
	return g
}
