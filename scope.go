package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Scope is a stack of "currently open" elements, enabling the scoped
// construction idiom: while an element is open, every node constructed
// without an explicit parent attaches itself as a child of the innermost
// open element at the moment of its construction.
//
//	page := tags.Div()
//	htmltree.In(page, func() {
//	    tags.H1("Title")
//	    tags.P("Paragraph")
//	})
//
// Explicit parenting still wins: a node constructed in a scope and then
// passed to another constructor or Add call is simply reparented.
//
// A Scope is confined to a single execution context; concurrent builders
// each create their own Scope and activate it with UseScope.
type Scope struct {
	stack []*Element
}

// NewScope creates an empty, independent scope stack.
func NewScope() *Scope {
	return &Scope{}
}

// Enter pushes the given elements onto the scope, left to right, so that
// the rightmost becomes the innermost open element. Void elements cannot
// take children and are not pushed; the refusal is traced. Enter returns
// a release function which pops the pushed elements again and must be
// called on every exit path:
//
//	exit := scope.Enter(div)
//	defer exit()
//
// Prefer In, which handles the release internally.
func (s *Scope) Enter(els ...*Element) func() {
	base := len(s.stack)
	for _, el := range els {
		if el == nil {
			continue
		}
		if el.IsVoid() {
			tracer().Errorf("void element <%s> cannot be opened for scoped construction", el.Tag())
			continue
		}
		s.stack = append(s.stack, el)
	}
	return func() {
		if len(s.stack) > base {
			s.stack = s.stack[:base]
		}
	}
}

// In opens el, runs body, and closes el again. The scope is restored on
// every exit path, including a panicking body. Nested calls stack.
func (s *Scope) In(el *Element, body func()) {
	exit := s.Enter(el)
	defer exit()
	body()
}

// Current returns the innermost open element, if any.
func (s *Scope) Current() (*Element, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	return s.stack[len(s.stack)-1], true
}

// Depth returns the number of currently open elements.
func (s *Scope) Depth() int {
	return len(s.stack)
}

// graftNew attaches a freshly constructed node to the innermost open
// element, if the scope is non-empty.
func (s *Scope) graftNew(n Node) {
	top, ok := s.Current()
	if !ok {
		return
	}
	tracer().Debugf("grafting %v node onto open <%s>", n.Kind(), top.Tag())
	top.children.append(n)
}

// --- The ambient scope ------------------------------------------------------

// ambient is the scope consulted by the node constructors. It is the one
// piece of ambient state in this package and is not designed for
// concurrent access; see UseScope.
var ambient = NewScope()

// Ambient returns the scope currently consulted by the node constructors.
func Ambient() *Scope {
	return ambient
}

// UseScope makes s the scope consulted by the node constructors and
// returns a function which restores the previous one. It lets independent
// builders run with their own scope stack rather than sharing one; the
// caller is responsible for confining each scope to a single execution
// context at a time.
func UseScope(s *Scope) (restore func()) {
	prev := ambient
	ambient = s
	return func() { ambient = prev }
}

// In opens el on the ambient scope, runs body, and closes el again,
// restoring the stack even when body panics.
func In(el *Element, body func()) {
	ambient.In(el, body)
}

// Attach classifies the given arguments (see Element.Add) and attaches
// them to the innermost open element of the ambient scope. It is the
// scoped way to set attributes, which are plain values, not nodes, and
// therefore never attach implicitly:
//
//	htmltree.In(p, func() {
//	    htmltree.Attach(attr.Class("lead"))
//	    tags.Span("…")
//	})
//
// Attach fails with ErrInvalidArgument if no element is open.
func Attach(items ...interface{}) error {
	top, ok := ambient.Current()
	if !ok {
		return fmt.Errorf("%w: no open element to attach to", ErrInvalidArgument)
	}
	return top.Add(items...)
}

func graft(n Node) {
	ambient.graftNew(n)
}
