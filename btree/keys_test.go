package btree

import "testing"

func TestKeysAddLeafKeepsSorted(t *testing.T) {
	owner := &node[int, string]{}
	ks := newKeys[int, string](4, owner)
	owner.keys = ks

	for _, k := range []int{5, 1, 3, 2, 4} {
		ks.add(Branch[int, string]{Entry: Entry[int, string]{Key: k, Value: "x"}})
	}

	if !ks.isLeaf() {
		t.Fatalf("expected leaf keys after leaf-level adds")
	}
	if ks.size() != 5 {
		t.Fatalf("size = %d, want 5", ks.size())
	}
	for i, want := range []int{1, 2, 3, 4, 5} {
		if ks.entries[i].Key != want {
			t.Fatalf("entries[%d] = %d, want %d", i, ks.entries[i].Key, want)
		}
	}
}

func TestKeysIsPresentAndFind(t *testing.T) {
	owner := &node[int, string]{}
	ks := newKeys[int, string](4, owner)
	owner.keys = ks

	ks.add(Branch[int, string]{Entry: Entry[int, string]{Key: 10, Value: "ten"}})
	ks.add(Branch[int, string]{Entry: Entry[int, string]{Key: 20, Value: "twenty"}})

	if !ks.isPresent(10) || !ks.isPresent(20) {
		t.Fatalf("expected 10 and 20 present")
	}
	if ks.isPresent(15) {
		t.Fatalf("did not expect 15 present")
	}

	v, ok := ks.findAndGetValue(20)
	if !ok || *v != "twenty" {
		t.Fatalf("findAndGetValue(20) = %v, %v, want twenty, true", v, ok)
	}
	*v = "veinte"
	v2, _ := ks.findAndGetValue(20)
	if *v2 != "veinte" {
		t.Fatalf("mutation through handle did not persist, got %q", *v2)
	}
}

// buildInternal wires up a two-level keys value with n leaf children so
// selectChildForKey / add / leftHalf / rightHalf can be exercised directly,
// mirroring the create_keys fixture from the original implementation's
// test_utils.cpp (a chain of nodes wired as branches into a Keys value).
func buildInternal(degree int, boundaries []int) (*node[int, string], []*node[int, string]) {
	owner := &node[int, string]{}
	ks := newKeys[int, string](degree, owner)
	owner.keys = ks

	children := make([]*node[int, string], len(boundaries)+1)
	for i := range children {
		children[i] = &node[int, string]{keys: newKeys[int, string](degree, nil)}
	}

	for i, b := range boundaries {
		ks.add(Branch[int, string]{
			Entry: Entry[int, string]{Key: b, Value: "x"},
			Left:  children[i],
			Right: children[i+1],
		})
	}

	return owner, children
}

func TestKeysSplitMedianIncludesIncoming(t *testing.T) {
	owner := &node[int, string]{}
	ks := newKeys[int, string](2, owner)
	owner.keys = ks
	ks.add(Branch[int, string]{Entry: Entry[int, string]{Key: 1, Value: "x"}})
	ks.add(Branch[int, string]{Entry: Entry[int, string]{Key: 20, Value: "x"}})

	median := ks.splitMedian(Entry[int, string]{Key: 2, Value: "x"})
	if median.Key != 2 {
		t.Fatalf("splitMedian(2) over [1,20] = %d, want 2", median.Key)
	}

	median = ks.splitMedian(Entry[int, string]{Key: 30, Value: "x"})
	if median.Key != 20 {
		t.Fatalf("splitMedian(30) over [1,20] = %d, want 20", median.Key)
	}

	median = ks.splitMedian(Entry[int, string]{Key: 0, Value: "x"})
	if median.Key != 1 {
		t.Fatalf("splitMedian(0) over [1,20] = %d, want 1", median.Key)
	}
}

func TestKeysSelectChildForKey(t *testing.T) {
	owner, children := buildInternal(4, []int{10, 20, 30})
	ks := owner.keys

	cases := []struct {
		key  int
		want *node[int, string]
	}{
		{5, children[0]},
		{10, children[0]},
		{15, children[1]},
		{25, children[2]},
		{30, children[2]},
		{35, children[3]},
	}
	for _, c := range cases {
		if got := ks.selectChildForKey(c.key); got != c.want {
			t.Errorf("selectChildForKey(%d): wrong child", c.key)
		}
	}
}

func TestKeysSetOwnerRewritesParents(t *testing.T) {
	owner, children := buildInternal(4, []int{10, 20})
	ks := owner.keys

	newOwner := &node[int, string]{}
	ks.setOwner(newOwner)

	if ks.owner != newOwner {
		t.Fatalf("owner not updated")
	}
	for _, c := range children {
		if c.parent != newOwner {
			t.Fatalf("child parent not rewritten to new owner")
		}
	}
}

func TestKeysLeftRightHalfSplitChildrenAlignment(t *testing.T) {
	owner, children := buildInternal(4, []int{10, 20, 30, 40})
	ks := owner.keys

	left := ks.leftHalf()
	right := ks.rightHalf()

	if left.size() != 2 || right.size() != 2 {
		t.Fatalf("left/right sizes = %d/%d, want 2/2", left.size(), right.size())
	}
	if len(left.children) != left.size()+1 {
		t.Fatalf("left children misaligned: %d keys, %d children", left.size(), len(left.children))
	}
	if len(right.children) != right.size()+1 {
		t.Fatalf("right children misaligned: %d keys, %d children", right.size(), len(right.children))
	}

	// the boundary child (between the two halves) is shared until the
	// caller resolves which side keeps it.
	if left.children[len(left.children)-1] != children[2] || right.children[0] != children[2] {
		t.Fatalf("left/right halves did not share the boundary child")
	}
}

func TestKeysChangeFirstAndLastTo(t *testing.T) {
	owner, _ := buildInternal(5, []int{10, 20, 30})
	ks := owner.keys

	newLeft := &node[int, string]{keys: newKeys[int, string](5, nil)}
	newRight := &node[int, string]{keys: newKeys[int, string](5, nil)}

	ks.changeFirstTo(Branch[int, string]{
		Entry: Entry[int, string]{Key: 5, Value: "x"},
		Left:  newLeft,
		Right: newRight,
	})

	if ks.entries[0].Key != 5 {
		t.Fatalf("entries[0] = %d, want 5", ks.entries[0].Key)
	}
	if ks.children[0] != newLeft || ks.children[1] != newRight {
		t.Fatalf("changeFirstTo did not splice in the new edge children")
	}

	lastLeft := &node[int, string]{keys: newKeys[int, string](5, nil)}
	lastRight := &node[int, string]{keys: newKeys[int, string](5, nil)}

	ks.changeLastTo(Branch[int, string]{
		Entry: Entry[int, string]{Key: 35, Value: "x"},
		Left:  lastLeft,
		Right: lastRight,
	})

	if ks.entries[len(ks.entries)-1].Key != 35 {
		t.Fatalf("last entry = %d, want 35", ks.entries[len(ks.entries)-1].Key)
	}
	if ks.children[len(ks.children)-2] != lastLeft || ks.children[len(ks.children)-1] != lastRight {
		t.Fatalf("changeLastTo did not splice in the new edge children")
	}
}
