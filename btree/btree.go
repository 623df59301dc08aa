// Package btree implements a generic in-memory B-tree: an ordered
// associative container mapping unique keys to values, parameterised by a
// comparison-ordered key type, an arbitrary value type, and a branching
// degree D >= 2. Every leaf sits at the same depth, every internal node has
// one more child than it has keys, and every node carries between
// floor(D/2) and D keys once an insertion completes (the root is exempt
// from the lower bound). A split of a full D-key node always yields one
// half with floor(D/2) entries and the other with ceil(D/2): the two sum
// to D, so for odd D one half is necessarily the smaller of the pair.
package btree

import "fmt"

// node is a recursive tree node: it owns its keys and holds a non-owning
// back-reference to its parent. The root's parent is nil.
type node[K Ordered, V any] struct {
	keys   *keys[K, V]
	parent *node[K, V]
}

func newNode[K Ordered, V any](degree int) *node[K, V] {
	n := &node[K, V]{}
	n.keys = newKeys[K, V](degree, n)
	return n
}

// Btree is the tree handle; it owns the root and, transitively, the whole
// tree.
type Btree[K Ordered, V any] struct {
	root   *node[K, V]
	degree int
}

// New returns an empty tree with the given branching degree. Degrees below
// 2 are rounded up to 2, the smallest degree for which the B-tree
// invariants are satisfiable.
func New[K Ordered, V any](degree int) *Btree[K, V] {
	if degree < 2 {
		degree = 2
	}
	return &Btree[K, V]{root: newNode[K, V](degree), degree: degree}
}

// Degree returns the tree's branching degree.
func (t *Btree[K, V]) Degree() int {
	return t.degree
}

// Add inserts key/value into the tree. It returns ErrDuplicateKey, leaving
// the tree structurally unchanged, if key is already present.
func (t *Btree[K, V]) Add(key K, value V) error {
	leaf, err := t.descendToLeaf(t.root, key)
	if err != nil {
		return err
	}

	branch := Branch[K, V]{Entry: Entry[K, V]{Key: key, Value: value}}
	if leaf.keys.size() < t.degree {
		leaf.keys.add(branch)
		return nil
	}

	t.upwardsAdd(leaf, branch)
	return nil
}

// descendToLeaf walks from n toward the leaf that must hold key, failing
// early if the key is already present anywhere along the way. The B-tree
// order invariant guarantees that if key exists at all, this descent passes
// through the node that holds it.
func (t *Btree[K, V]) descendToLeaf(n *node[K, V], key K) (*node[K, V], error) {
	if n.keys.isPresent(key) {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	if n.keys.isLeaf() {
		return n, nil
	}
	return t.descendToLeaf(n.keys.selectChildForKey(key), key)
}

// upwardsAdd inserts incoming into current, splitting and propagating the
// median toward the root as needed. The two halves of a split are built up
// as independent values before current is mutated, so a split either
// completes in full or current is left untouched.
func (t *Btree[K, V]) upwardsAdd(current *node[K, V], incoming Branch[K, V]) {
	if current.keys.size() < t.degree {
		current.keys.add(incoming)
		return
	}

	median := current.keys.splitMedian(incoming.Entry)
	left := current.keys.leftHalf()
	right := current.keys.rightHalf()

	switch {
	case median.Key == incoming.Entry.Key:
		if incoming.hasChildren() {
			droppedLeft := left.overwriteLastChild(incoming.Left)
			droppedRight := right.overwriteFirstChild(incoming.Right)
			if droppedLeft != droppedRight {
				panic("btree: inner edge children disagreed during split")
			}
		}
		// incoming is itself the promoted median: both halves already hold
		// exactly the entries they should, untouched.
	case median.Key < incoming.Entry.Key:
		right.changeFirstTo(incoming)
	default:
		left.changeLastTo(incoming)
	}

	leftNode := &node[K, V]{keys: left}
	left.setOwner(leftNode)

	rightNode := &node[K, V]{keys: right}
	right.setOwner(rightNode)

	promoted := Branch[K, V]{Entry: median, Left: leftNode, Right: rightNode}

	if current.parent == nil {
		// current is the root: grow in place, depth increases by one.
		current.keys = newKeys[K, V](t.degree, current)
		current.keys.add(promoted)
		return
	}

	parent := current.parent
	t.upwardsAdd(parent, promoted)
	current.parent = nil
}

// Get returns a mutable handle to the value stored under key. It returns
// ErrKeyNotFound if key is absent.
func (t *Btree[K, V]) Get(key K) (*V, error) {
	v, ok := t.locate(t.root, key)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

func (t *Btree[K, V]) locate(n *node[K, V], key K) (*V, bool) {
	if v, ok := n.keys.findAndGetValue(key); ok {
		return v, true
	}
	if n.keys.isLeaf() {
		return nil, false
	}
	return t.locate(n.keys.selectChildForKey(key), key)
}
