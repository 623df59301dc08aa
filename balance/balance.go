// Package balance provides a depth-measuring collaborator external to the
// B-tree core: it walks a tree via the IsLeaf/Children hook surface and
// checks that every leaf sits at the same depth. It does not belong to the
// core (spec.md scopes it out explicitly) and the core has no notion of it;
// Node here plays the role of the original implementation's Traversable and
// Measurable debug mixins, expressed as a generic capability instead of
// runtime polymorphism.
package balance

import "math"

// Node is the capability a tree must expose to be walked: a leaf
// predicate and a way to enumerate children, each of the same concrete
// type as the node itself. A btree.NodeView[K, V] satisfies this
// structurally, with no import in either direction.
type Node[N any] interface {
	IsLeaf() bool
	Children() []N
}

// DeepestAndShallowest returns the depth of the deepest node in the tree
// rooted at root and the depth of its shallowest leaf. depth 0 is the root
// itself.
func DeepestAndShallowest[N Node[N]](root N) (deepest, shallowest int) {
	shallowest = math.MaxInt
	var walk func(n N, depth int)
	walk = func(n N, depth int) {
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
		if depth > deepest {
			deepest = depth
		}
		if n.IsLeaf() && depth < shallowest {
			shallowest = depth
		}
	}
	walk(root, 0)
	return deepest, shallowest
}

// IsBalanced reports whether every leaf reachable from root sits at the
// same depth.
func IsBalanced[N Node[N]](root N) bool {
	deepest, shallowest := DeepestAndShallowest(root)
	return deepest == shallowest
}
