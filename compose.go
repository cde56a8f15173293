package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

/*
The composition engine classifies the arguments of constructors and of Add
calls by their runtime shape:

  - a Node (Element, Text, Comment, Container) is appended to the child
    sequence, reparenting it if it already has a parent;
  - an Attribute is merged into the attribute collection by name;
  - a plain string or number is wrapped as a Text child;
  - a slice of arguments is flattened recursively.

Classification is done completely before any mutation, so a failing call
leaves the target in its prior state.
*/

// staged holds classified arguments before they are committed to a node.
type staged struct {
	children []Node
	attrs    []Attribute
}

func classify(items []interface{}, allowAttrs bool) (staged, error) {
	var st staged
	if err := classifyInto(&st, items, allowAttrs); err != nil {
		return staged{}, err
	}
	return st, nil
}

func classifyInto(st *staged, items []interface{}, allowAttrs bool) error {
	for _, item := range items {
		switch it := item.(type) {
		case nil:
			return fmt.Errorf("%w: nil is not a node, attribute or text", ErrInvalidArgument)
		case Node:
			st.children = append(st.children, it)
		case Attribute:
			if !allowAttrs {
				return fmt.Errorf("%w: node cannot carry attribute %q", ErrInvalidArgument, it.Name())
			}
			st.attrs = append(st.attrs, it)
		case string:
			st.children = append(st.children, newText(it))
		case int:
			st.children = append(st.children, newText(fmt.Sprintf("%d", it)))
		case int64:
			st.children = append(st.children, newText(fmt.Sprintf("%d", it)))
		case float64:
			st.children = append(st.children, newText(formatFloat(it)))
		case []interface{}:
			if err := classifyInto(st, it, allowAttrs); err != nil {
				return err
			}
		case []Node:
			for _, n := range it {
				st.children = append(st.children, n)
			}
		default:
			return fmt.Errorf("%w: cannot classify argument of type %T", ErrInvalidArgument, item)
		}
	}
	return nil
}

// asChildNode classifies a single index-assignment value. Attributes are a
// type mismatch here: they cannot live in a child sequence.
func asChildNode(item interface{}) (Node, error) {
	switch it := item.(type) {
	case Node:
		return it, nil
	case Attribute:
		return nil, fmt.Errorf("%w: cannot assign attribute %q as a child", ErrTypeMismatch, it.Name())
	case string:
		return newText(it), nil
	case int:
		return newText(fmt.Sprintf("%d", it)), nil
	case int64:
		return newText(fmt.Sprintf("%d", it)), nil
	case float64:
		return newText(formatFloat(it)), nil
	}
	return nil, fmt.Errorf("%w: cannot assign %T as a child", ErrTypeMismatch, item)
}

// commit attaches staged children and attributes to a composite node.
// Inserting a node into itself or into one of its descendants inserts an
// independent copy instead, preventing cycles (see childList.adopt).
func (br *branch) commit(st staged, attrs *attrList) {
	for _, ch := range st.children {
		br.children.append(ch)
	}
	for _, a := range st.attrs {
		attrs.merge(a)
	}
}

// --- Constructors ----------------------------------------------------------

// New creates an Element with the given tag. The remaining arguments are
// classified as children, attributes or text, see Add. Handing children to
// a tag registered as void fails with ErrInvalidArgument.
//
// An element constructed while a scope is open attaches itself to the
// innermost open element, see type Scope.
func New(tag string, items ...interface{}) (*Element, error) {
	st, err := classify(items, true)
	if err != nil {
		return nil, err
	}
	spec := LookupTag(tag)
	if spec.Void && len(st.children) > 0 {
		return nil, fmt.Errorf("%w: void element <%s> cannot contain inner content", ErrInvalidArgument, spec.Render)
	}
	e := newElement(spec.Tag)
	e.commit(st, &e.attrs)
	graft(e)
	return e, nil
}

// MustNew is like New but panics on a classification error. It is the
// form used by the tag factories of package tags, where trees are
// composed as nested expressions.
func MustNew(tag string, items ...interface{}) *Element {
	e, err := New(tag, items...)
	if err != nil {
		panic(err)
	}
	return e
}

// NewText creates a text leaf node. Under an open scope the node attaches
// itself to the innermost open element.
func NewText(content string) *Text {
	t := newText(content)
	graft(t)
	return t
}

// NewComment creates a comment node wrapping the given content. Arguments
// are classified as for New, except that comments carry no attributes.
// Use WithCondition for the conditional-comment form.
func NewComment(items ...interface{}) (*Comment, error) {
	st, err := classify(items, false)
	if err != nil {
		return nil, err
	}
	c := newComment()
	c.commit(st, nil)
	graft(c)
	return c, nil
}

// MustNewComment is like NewComment but panics on a classification error.
func MustNewComment(items ...interface{}) *Comment {
	c, err := NewComment(items...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewContainer creates a transparent grouping of the given nodes.
// Arguments are classified as for New, except that containers carry no
// attributes.
func NewContainer(items ...interface{}) (*Container, error) {
	st, err := classify(items, false)
	if err != nil {
		return nil, err
	}
	g := newContainer()
	g.commit(st, nil)
	graft(g)
	return g, nil
}

// Group is like NewContainer but panics on a classification error.
func Group(items ...interface{}) *Container {
	g, err := NewContainer(items...)
	if err != nil {
		panic(err)
	}
	return g
}

// --- Add --------------------------------------------------------------------

// Add classifies the given arguments and attaches them: nodes and
// text-like values become children (appended in argument order),
// attributes are merged into the attribute collection by name. A failing
// Add leaves the element untouched.
func (e *Element) Add(items ...interface{}) error {
	st, err := classify(items, true)
	if err != nil {
		return err
	}
	if e.IsVoid() && len(st.children) > 0 {
		return fmt.Errorf("%w: void element <%s> cannot contain inner content", ErrInvalidArgument, e.tag)
	}
	e.commit(st, &e.attrs)
	return nil
}

// MustAdd is like Add but panics on error and returns the element for
// chaining.
func (e *Element) MustAdd(items ...interface{}) *Element {
	if err := e.Add(items...); err != nil {
		panic(err)
	}
	return e
}

// Add appends further content to the comment body. Attributes are rejected
// with ErrInvalidArgument.
func (c *Comment) Add(items ...interface{}) error {
	st, err := classify(items, false)
	if err != nil {
		return err
	}
	c.commit(st, nil)
	return nil
}

// Add appends further nodes to the container. Attributes are rejected with
// ErrInvalidArgument.
func (g *Container) Add(items ...interface{}) error {
	st, err := classify(items, false)
	if err != nil {
		return err
	}
	g.commit(st, nil)
	return nil
}

// Add concatenates further text onto the node. Accepted argument types are
// string, int, int64, float64 and *Text; anything else fails with
// ErrInvalidArgument. There is no separator between the parts.
func (t *Text) Add(items ...interface{}) error {
	content := t.text
	for _, item := range items {
		switch it := item.(type) {
		case string:
			content += it
		case int:
			content += fmt.Sprintf("%d", it)
		case int64:
			content += fmt.Sprintf("%d", it)
		case float64:
			content += formatFloat(it)
		case *Text:
			content += it.text
		default:
			return fmt.Errorf("%w: only text can be added to a text node, got %T", ErrInvalidArgument, item)
		}
	}
	t.text = content
	return nil
}

// SetContent replaces the text payload.
func (t *Text) SetContent(content string) {
	t.text = content
}

// --- Attribute access --------------------------------------------------------

// Attr returns the attribute stored under the given key. The key is
// canonicalized first, see CanonicalAttrName. A missing attribute fails
// with ErrNotFound.
func (e *Element) Attr(key string) (Attribute, error) {
	a, ok := e.attrs.get(CanonicalAttrName(key))
	if !ok {
		return Attribute{}, fmt.Errorf("%w: %q on <%s>", ErrNotFound, CanonicalAttrName(key), e.tag)
	}
	return a, nil
}

// AttrValue returns the value of the attribute stored under the given key,
// or dflt if the attribute is not present.
func (e *Element) AttrValue(key, dflt string) string {
	a, ok := e.attrs.get(CanonicalAttrName(key))
	if !ok {
		return dflt
	}
	return a.Value()
}

// SetAttr creates or replaces the attribute named by key. Unlike adding an
// Attribute through Add, assignment overwrites a previous value instead of
// merging with it. Accepted value types are those of Attr, plus a
// ready-made Attribute (whose name is then replaced by key).
func (e *Element) SetAttr(key string, value interface{}) error {
	name := CanonicalAttrName(key)
	if name == "" {
		return fmt.Errorf("%w: empty attribute name", ErrInvalidArgument)
	}
	var a Attribute
	switch v := value.(type) {
	case Attribute:
		a = v
		a.name = name
	case Node:
		return fmt.Errorf("%w: cannot assign %v node as an attribute", ErrTypeMismatch, v.Kind())
	default:
		a = Attr(name, value)
	}
	e.attrs.put(a)
	return nil
}

// DeleteAttr removes the attribute stored under the given key. Deleting an
// absent attribute is a no-op; the returned flag tells whether an
// attribute was removed.
func (e *Element) DeleteAttr(key string) bool {
	return e.attrs.delete(CanonicalAttrName(key))
}

// Attributes returns the attributes of the element in insertion order.
func (e *Element) Attributes() []Attribute {
	return e.attrs.asSlice()
}

// --- Sibling merge and replication ---------------------------------------------

// Merge groups a and b as siblings in a Container: the result holds a,
// then b. If one of the two already is a Container, the other side is
// appended into it (at the front when b is the container), avoiding
// nested single-purpose wrappers; when both are containers, a absorbs b's
// children. Both operands are reparented into the result.
func Merge(a, b Node) *Container {
	ga, aIsGroup := a.(*Container)
	gb, bIsGroup := b.(*Container)
	switch {
	case aIsGroup && bIsGroup:
		for _, ch := range gb.children.asSlice() {
			ga.children.append(ch)
		}
		return ga
	case aIsGroup:
		ga.children.append(b)
		return ga
	case bIsGroup:
		gb.children.insert(0, a)
		return gb
	}
	g := newContainer()
	g.children.append(a)
	g.children.append(b)
	return g
}

// Repeat returns a Container holding count independent deep copies of n.
// Mutating one copy does not affect the others. A count < 1 fails with
// ErrInvalidArgument.
func Repeat(n Node, count int) (*Container, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: replication count must be positive, got %d", ErrInvalidArgument, count)
	}
	g := newContainer()
	for i := 0; i < count; i++ {
		g.children.append(n.clone())
	}
	return g, nil
}

// Copy returns an independent deep copy of the element (attributes and
// children included). The copy has no parent.
func (e *Element) Copy() *Element { return e.clone().(*Element) }

// Copy returns an independent copy of the text node. The copy has no parent.
func (t *Text) Copy() *Text { return t.clone().(*Text) }

// Copy returns an independent deep copy of the comment. The copy has no parent.
func (c *Comment) Copy() *Comment { return c.clone().(*Comment) }

// Copy returns an independent deep copy of the container. The copy has no
// parent.
func (g *Container) Copy() *Container { return g.clone().(*Container) }
