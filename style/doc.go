/*
Package style models inline CSS declarations for style attributes.

Declarations are key/value pairs; raw CSS text is parsed into pairs with
the douceur parser. The package validates nothing: property names are
dash-normalized and values pass through as opaque text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style
