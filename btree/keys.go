package btree

import "sort"

// keys is a node's payload: a sorted sequence of entries plus, when the
// node is non-leaf, a sequence of child handles one longer than the entry
// sequence. All ordering, median selection, split-halving and child-slot
// bookkeeping live here; node only holds a keys value and a parent link.
type keys[K Ordered, V any] struct {
	degree   int
	owner    *node[K, V]
	entries  []Entry[K, V]
	children []*node[K, V]
}

// newKeys returns an empty keys value for the given degree and owner.
func newKeys[K Ordered, V any](degree int, owner *node[K, V]) *keys[K, V] {
	return &keys[K, V]{degree: degree, owner: owner}
}

// newKeysFromParts builds a keys value directly from an entry slice and,
// for a non-leaf half, its flanking children. Used by leftHalf/rightHalf.
func newKeysFromParts[K Ordered, V any](degree int, owner *node[K, V], entries []Entry[K, V], children []*node[K, V]) *keys[K, V] {
	if children != nil && len(children) != len(entries)+1 {
		panic("btree: child count must be entry count + 1")
	}
	return &keys[K, V]{degree: degree, owner: owner, entries: entries, children: children}
}

func (ks *keys[K, V]) size() int {
	return len(ks.entries)
}

func (ks *keys[K, V]) isLeaf() bool {
	return len(ks.children) == 0
}

// posForKey returns the index of the first entry whose key is >= k, or
// len(entries) if no such entry exists. Entries are kept sorted, so this
// both doubles as the insertion position and as the search position.
func (ks *keys[K, V]) posForKey(k K) int {
	return sort.Search(len(ks.entries), func(i int) bool {
		return k <= ks.entries[i].Key
	})
}

func (ks *keys[K, V]) isPresent(k K) bool {
	pos := ks.posForKey(k)
	return pos < len(ks.entries) && ks.entries[pos].Key == k
}

func (ks *keys[K, V]) findAndGetValue(k K) (*V, bool) {
	pos := ks.posForKey(k)
	if pos < len(ks.entries) && ks.entries[pos].Key == k {
		return &ks.entries[pos].Value, true
	}
	return nil, false
}

func (ks *keys[K, V]) rightmostChild() *node[K, V] {
	return ks.children[len(ks.children)-1]
}

// add inserts branch.Entry at its sorted position. When the branch carries
// children, they are spliced into the child sequence so that it stays one
// longer than the entry sequence; branches without children (leaf-level
// inserts) leave the child sequence untouched.
func (ks *keys[K, V]) add(branch Branch[K, V]) {
	pos := ks.posForKey(branch.Entry.Key)

	ks.entries = append(ks.entries, Entry[K, V]{})
	copy(ks.entries[pos+1:], ks.entries[pos:])
	ks.entries[pos] = branch.Entry

	if !branch.hasChildren() {
		return
	}

	branch.Left.parent = ks.owner
	branch.Right.parent = ks.owner

	if pos+1 < len(ks.entries) {
		ks.insertChildren(pos, branch)
	} else {
		ks.setChildren(pos, branch)
	}
}

func (ks *keys[K, V]) insertChildren(pos int, branch Branch[K, V]) {
	ks.children = append(ks.children, nil)
	copy(ks.children[pos+1:], ks.children[pos:])
	ks.children[pos] = branch.Left
	ks.children[pos+1] = branch.Right
}

func (ks *keys[K, V]) setChildren(pos int, branch Branch[K, V]) {
	n := len(ks.children)
	if n == 0 {
		ks.children = append(ks.children, branch.Left)
	} else {
		ks.children[pos] = branch.Left
	}

	if n < pos+2 {
		ks.children = append(ks.children, branch.Right)
	} else {
		ks.children[pos+1] = branch.Right
	}
}

func (ks *keys[K, V]) removeFirst() {
	ks.entries = ks.entries[1:]
	if ks.isLeaf() {
		return
	}
	ks.children = ks.children[1:]
}

func (ks *keys[K, V]) removeLast() {
	ks.entries = ks.entries[:len(ks.entries)-1]
	if ks.isLeaf() {
		return
	}
	ks.children = ks.children[:len(ks.children)-1]
}

// changeFirstTo removes the first entry (and its edge child) and re-inserts
// the given branch, used to stitch a promoted median into the right half of
// a split.
func (ks *keys[K, V]) changeFirstTo(branch Branch[K, V]) {
	ks.removeFirst()
	ks.add(branch)
}

// changeLastTo is the mirror of changeFirstTo for the left half of a split.
func (ks *keys[K, V]) changeLastTo(branch Branch[K, V]) {
	ks.removeLast()
	ks.add(branch)
}

// overwriteLastChild replaces the rightmost child and returns the child it
// replaced, so the caller can assert the two edges of a split agreed on it.
func (ks *keys[K, V]) overwriteLastChild(c *node[K, V]) *node[K, V] {
	idx := len(ks.children) - 1
	old := ks.children[idx]
	ks.children[idx] = c
	return old
}

// overwriteFirstChild is the mirror of overwriteLastChild for the left edge.
func (ks *keys[K, V]) overwriteFirstChild(c *node[K, V]) *node[K, V] {
	old := ks.children[0]
	ks.children[0] = c
	return old
}

// splitMedian returns the entry that would sit at the median position if
// incoming were inserted: index n/2 (integer division) of the current n,
// taken over the n+1 candidates formed by merging entries with incoming.
func (ks *keys[K, V]) splitMedian(incoming Entry[K, V]) Entry[K, V] {
	n := len(ks.entries)
	merged := make([]Entry[K, V], 0, n+1)
	merged = append(merged, ks.entries...)
	merged = append(merged, incoming)
	sort.Slice(merged, func(i, j int) bool { return merged[i].Key < merged[j].Key })
	return merged[n/2]
}

// leftHalf and rightHalf split at index half = n/2 of the *current* (pre
// split) entries. Each half is returned unowned; the caller assigns it to a
// freshly allocated node and calls setOwner.
func (ks *keys[K, V]) leftHalf() *keys[K, V] {
	half := len(ks.entries) / 2
	entries := append([]Entry[K, V]{}, ks.entries[:half]...)

	if ks.isLeaf() {
		return newKeysFromParts[K, V](ks.degree, nil, entries, nil)
	}
	children := append([]*node[K, V]{}, ks.children[:half+1]...)
	return newKeysFromParts(ks.degree, nil, entries, children)
}

func (ks *keys[K, V]) rightHalf() *keys[K, V] {
	half := len(ks.entries) / 2
	entries := append([]Entry[K, V]{}, ks.entries[half:]...)

	if ks.isLeaf() {
		return newKeysFromParts[K, V](ks.degree, nil, entries, nil)
	}
	children := append([]*node[K, V]{}, ks.children[half:]...)
	return newKeysFromParts(ks.degree, nil, entries, children)
}

// selectChildForKey returns the child whose subtree must contain k: the
// first child whose following entry's key is >= k, or the rightmost child
// if k is greater than every entry.
func (ks *keys[K, V]) selectChildForKey(k K) *node[K, V] {
	pos := ks.posForKey(k)
	if pos >= len(ks.children) {
		return ks.rightmostChild()
	}
	return ks.children[pos]
}

// setOwner retargets the back-link and rewrites every child's parent to the
// new owner. Called whenever a keys value moves to a new node.
func (ks *keys[K, V]) setOwner(newOwner *node[K, V]) {
	ks.owner = newOwner
	for _, c := range ks.children {
		c.parent = newOwner
	}
}
