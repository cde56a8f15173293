/*
Package attr provides named constructors for common HTML attributes.

Attributes are plain values of type htmltree.Attribute. The constructors
in this package save clients from spelling attribute names as strings and
take care of name canonicalization, so

	tags.A(attr.Href("https://example.com"), attr.Class("nav", "active"))

reads close to the markup it produces. For attributes without a dedicated
constructor, Named falls back to the general name/value form; Data and
Aria cover the dashed attribute families.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package attr
