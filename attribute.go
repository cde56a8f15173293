package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Attribute is a single named value (or boolean-presence flag) of an
// element. Attributes are immutable values; mutating an element's
// attribute set goes through Element.SetAttr and friends.
//
// Adding an attribute whose name is already present on an element MERGES
// the values, joined by the attribute's separator (a space by default;
// style attributes concatenate their "property: value;" pairs directly).
// Key-assignment through Element.SetAttr strictly overwrites instead.
type Attribute struct {
	name    string
	value   string
	boolean bool
	sep     string
}

// Attr creates a valued attribute. The name is canonicalized (lowercased,
// reserved-word underscore suffix stripped, underscores restored to
// dashes), so "class_" and "data_row" yield "class" and "data-row".
// Accepted value types are string, int, int64, float64 and bool; a value
// of true produces a boolean (presence-only) attribute, false an empty
// one. Other types make Attr fall back to fmt's %v formatting.
func Attr(name string, value interface{}) Attribute {
	a := Attribute{name: CanonicalAttrName(name), sep: " "}
	switch v := value.(type) {
	case string:
		a.value = v
	case int:
		a.value = fmt.Sprintf("%d", v)
	case int64:
		a.value = fmt.Sprintf("%d", v)
	case float64:
		a.value = formatFloat(v)
	case bool:
		a.boolean = v
	default:
		a.value = fmt.Sprintf("%v", v)
	}
	return a
}

// BoolAttr creates a boolean (presence-only) attribute, rendered as the
// bare name.
func BoolAttr(name string) Attribute {
	return Attribute{name: CanonicalAttrName(name), boolean: true, sep: " "}
}

// WithSeparator returns a copy of the attribute with a different
// add-merge separator. Package attr uses this for style attributes,
// which join their declaration pairs with no separating space.
func (a Attribute) WithSeparator(sep string) Attribute {
	a.sep = sep
	return a
}

// Name returns the canonical attribute name.
func (a Attribute) Name() string { return a.name }

// Value returns the attribute value. Boolean attributes have no value.
func (a Attribute) Value() string { return a.value }

// IsBool reports whether the attribute is a presence-only flag.
func (a Attribute) IsBool() bool { return a.boolean }

// String returns the rendered form of the attribute: `name="value"`, or
// the bare name for boolean attributes. Quote and ampersand characters of
// the value are escaped.
func (a Attribute) String() string {
	if a.boolean {
		return a.name
	}
	return a.name + `="` + escapeAttrValue(a.value) + `"`
}

// mergedWith merges a later attribute b of the same name into a,
// according to a's merge policy.
func (a Attribute) mergedWith(b Attribute) Attribute {
	if a.boolean && b.boolean {
		return a
	}
	if a.boolean {
		return b // a carries no value to join with
	}
	if b.boolean {
		return a
	}
	a.value = a.value + a.sep + b.value
	return a
}

// CanonicalAttrName maps a keyword-argument-style attribute name to its
// canonical rendered form: lowercase, underscore suffixes (used to avoid
// reserved words, as in "class_") stripped, and remaining underscores
// restored to dashes ("data_row" → "data-row").
func CanonicalAttrName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimRight(name, "_")
	return strings.ReplaceAll(name, "_", "-")
}

func formatFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0" // keep 1.0 distinguishable from 1
	}
	return s
}

// --- Ordered attribute collections ---------------------------------------

// attrList is an insertion-ordered attribute collection with unique names.
// Attribute counts per element are small, so lookup is a linear scan.
type attrList struct {
	list []Attribute
}

func (al *attrList) get(name string) (Attribute, bool) {
	for _, a := range al.list {
		if a.name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// merge adds a to the collection, joining values if the name is already
// present (add-semantics).
func (al *attrList) merge(a Attribute) {
	for i, prev := range al.list {
		if prev.name == a.name {
			al.list[i] = prev.mergedWith(a)
			return
		}
	}
	al.list = append(al.list, a)
}

// put adds a to the collection, replacing a previous entry of the same
// name (assignment-semantics). Insertion order is kept on replacement.
func (al *attrList) put(a Attribute) {
	for i, prev := range al.list {
		if prev.name == a.name {
			al.list[i] = a
			return
		}
	}
	al.list = append(al.list, a)
}

func (al *attrList) delete(name string) bool {
	for i, a := range al.list {
		if a.name == name {
			al.list = append(al.list[:i], al.list[i+1:]...)
			return true
		}
	}
	return false
}

func (al *attrList) asSlice() []Attribute {
	attrs := make([]Attribute, len(al.list))
	copy(attrs, al.list)
	return attrs
}
