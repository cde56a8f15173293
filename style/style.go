package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'htmltree.style'
func tracer() tracing.Trace {
	return tracing.Select("htmltree.style")
}

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. Property values are opaque to this
// module: they are carried into the style attribute as given, without
// validation.
type Property string

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks whether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a single style declaration.
type KeyValue struct {
	Key   string
	Value Property
}

// KV creates a style declaration. The key is dash-normalized: lowercased,
// underscores replaced by dashes, so "font_size" yields "font-size".
func KV(key string, value string) KeyValue {
	return KeyValue{Key: normalizeKey(key), Value: Property(value)}
}

// String returns the declaration in the form emitted into a style
// attribute: "key: value;".
func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String() + ";"
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(key, "_", "-")
}

// Declarations parses a raw CSS declaration string, e.g.
// "color: black;font-size: 20px", into its key/value pairs. Input which
// does not parse as CSS declarations is returned verbatim as a single
// pair with an empty key, so that style text survives unvalidated (this
// module is a text emitter, not a CSS validator).
func Declarations(css string) []KeyValue {
	// douceur drops the value of a final declaration without a closing
	// semicolon, so terminate the input before parsing.
	input := strings.TrimSpace(css)
	if input != "" && !strings.HasSuffix(input, ";") {
		input += ";"
	}
	decls, err := parser.ParseDeclarations(input)
	if err != nil {
		tracer().Infof("style text does not parse as declarations, kept verbatim: %v", err)
		return []KeyValue{{Key: "", Value: Property(css)}}
	}
	kvs := make([]KeyValue, 0, len(decls))
	for _, d := range decls {
		v := d.Value
		if d.Important {
			v += " !important"
		}
		kvs = append(kvs, KeyValue{Key: normalizeKey(d.Property), Value: Property(v)})
	}
	return kvs
}

// Join concatenates declarations in the form emitted into a style
// attribute: "key: value;" pairs with no separating space. Pairs with an
// empty key (verbatim text from Declarations) are emitted as-is.
func Join(kvs []KeyValue) string {
	var sb strings.Builder
	for _, kv := range kvs {
		if kv.Key == "" {
			sb.WriteString(kv.Value.String())
			continue
		}
		sb.WriteString(kv.String())
	}
	return sb.String()
}
