package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrInvalidArgument is thrown if an operation receives an argument it
// cannot classify: an unsupported argument shape passed to New or Add, a
// non-positive replication count, children handed to a void element, or
// attributes handed to a container.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOutOfBounds is thrown if an integer index lies outside the child
// sequence of a node.
var ErrOutOfBounds = errors.New("child index out of bounds")

// ErrNotFound is thrown if an attribute is looked up by a key which is not
// present on the element.
var ErrNotFound = errors.New("attribute not found")

// ErrTypeMismatch is thrown if a value of an incompatible type is assigned
// through index- or key-assignment, e.g. an attribute assigned as a child.
var ErrTypeMismatch = errors.New("type mismatch")

// Operations failing with one of the above error kinds leave the target
// node's prior state intact: arguments are classified completely before
// any mutation happens.
