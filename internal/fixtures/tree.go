package fixtures

import "github.com/z248bw/btree/btree"

// Incremental builds a tree of the given degree by inserting 0..n-1 in
// order, mirroring the original implementation's
// tree_with_incremental_elements fixture.
func Incremental(degree, n int) *btree.Btree[int, string] {
	t := btree.New[int, string](degree)
	for i := 0; i < n; i++ {
		if err := t.Add(i, ""); err != nil {
			panic(err)
		}
	}
	return t
}

// Decremental builds a tree of the given degree by inserting n..1 in
// descending order.
func Decremental(degree, n int) *btree.Btree[int, string] {
	t := btree.New[int, string](degree)
	for i := n; i > 0; i-- {
		if err := t.Add(i, ""); err != nil {
			panic(err)
		}
	}
	return t
}

// Mixed builds a tree by alternately inserting the low end and the high
// end of a range, the way the original implementation's test_mixed does:
// for i in [0, n) it inserts i and then (2n+10)-i.
func Mixed(degree, n int) *btree.Btree[int, string] {
	t := btree.New[int, string](degree)
	top := 2*n + 10
	for i := 0; i < n; i++ {
		if err := t.Add(i, ""); err != nil {
			panic(err)
		}
		if err := t.Add(top-i, ""); err != nil {
			panic(err)
		}
	}
	return t
}
