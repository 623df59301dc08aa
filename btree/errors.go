package btree

import "errors"

// ErrDuplicateKey is returned by Add when the key is already present in
// the tree. The tree is left structurally unchanged.
var ErrDuplicateKey = errors.New("btree: key already exists")

// ErrKeyNotFound is returned by Get when the key is absent from the tree.
var ErrKeyNotFound = errors.New("btree: key not found")
