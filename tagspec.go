package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync"
)

// TagSpec carries the metadata the serializer needs about a tag: the
// rendered name and whether the tag is void (self-closing). The full HTML
// vocabulary is registered by package tags; the core works with any tag
// identifier and treats unregistered tags as ordinary non-void tags.
type TagSpec struct {
	Tag    string // canonical tag identifier, lowercase
	Render string // rendered tag name; defaults to Tag
	Void   bool   // void tags never emit children or a closing tag
}

var tagRegistry = struct {
	sync.RWMutex
	specs map[string]TagSpec
}{specs: make(map[string]TagSpec)}

// DefineTag registers tag metadata under spec.Tag, replacing a previous
// registration. Registration usually happens from an init function (see
// package tags) and is safe for concurrent use.
func DefineTag(spec TagSpec) {
	spec.Tag = strings.ToLower(strings.TrimSpace(spec.Tag))
	if spec.Tag == "" {
		return
	}
	if spec.Render == "" {
		spec.Render = spec.Tag
	}
	tagRegistry.Lock()
	defer tagRegistry.Unlock()
	tagRegistry.specs[spec.Tag] = spec
}

// LookupTag returns the metadata registered for a tag identifier. Unknown
// tags yield a non-void spec rendering under the identifier itself.
func LookupTag(tag string) TagSpec {
	tag = strings.ToLower(strings.TrimSpace(tag))
	tagRegistry.RLock()
	defer tagRegistry.RUnlock()
	if spec, ok := tagRegistry.specs[tag]; ok {
		return spec
	}
	return TagSpec{Tag: tag, Render: tag}
}
