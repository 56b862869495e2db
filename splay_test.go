package splaycache

import (
	"math/rand"
	"testing"
)

// checkAgainstRef verifies m against a reference map[int]int: same size,
// same key set, same values. It uses only exported methods, mirroring the
// teacher's splay/splay_test.go checkeq helper.
func checkAgainstRef(t *testing.T, m *Map[int, int], ref map[int]int) {
	t.Helper()
	if sz := m.Size(); sz != len(ref) {
		t.Fatalf("size mismatch: %d != %d", sz, len(ref))
	}
	for key, want := range ref {
		got, ok := m.Get(key)
		if !ok {
			t.Fatalf("key %v should exist", key)
		}
		if got != want {
			t.Fatalf("value mismatch for key %v: %v != %v", key, got, want)
		}
	}
}

// checkBSTOrder walks m.root and fails if any node's key is out of order
// relative to its subtree bounds, or if the node count disagrees with m.size.
func checkBSTOrder[K, V any](t *testing.T, m *Map[K, V]) {
	t.Helper()
	var walk func(n *node[K, V], lo, hi *K)
	walk = func(n *node[K, V], lo, hi *K) {
		if n == nil {
			return
		}
		if lo != nil && !m.less(*lo, n.key) {
			t.Fatalf("BST order violated: %v should be > %v", n.key, *lo)
		}
		if hi != nil && !m.less(n.key, *hi) {
			t.Fatalf("BST order violated: %v should be < %v", n.key, *hi)
		}
		walk(n.left, lo, &n.key)
		walk(n.right, &n.key, hi)
	}
	walk(m.root, nil, nil)
	if n := m.root.count(); n != m.size {
		t.Fatalf("node count %d disagrees with tracked size %d", n, m.size)
	}
}

func TestCrossCheckPutGetDelete(t *testing.T) {
	ref := make(map[int]int)
	m := NewOrdered[int, int]()
	checkAgainstRef(t, m, ref)

	const nops = 3000
	for i := 0; i < nops; i++ {
		key := rand.Intn(100)
		val := rand.Int()
		switch rand.Intn(3) {
		case 0:
			ref[key] = val
			m.Put(key, val)
		case 1:
			var del int
			for k := range ref {
				del = k
				break
			}
			delete(ref, del)
			m.Delete(del)
		case 2:
			got, ok := m.Get(key)
			want, wantOK := ref[key]
			if ok != wantOK {
				t.Fatalf("key %v present in one implementation but not the other", key)
			}
			if ok && got != want {
				t.Fatalf("value mismatch for key %v: %v != %v", key, got, want)
			}
		}
	}
	checkAgainstRef(t, m, ref)
}

func TestCrossCheckInvariantAfterEveryOp(t *testing.T) {
	ref := make(map[int]int)
	m := NewOrdered[int, int]()

	const nops = 1000
	for i := 0; i < nops; i++ {
		key := rand.Intn(50)
		val := rand.Int()
		switch rand.Intn(2) {
		case 0:
			ref[key] = val
			m.Put(key, val)
		case 1:
			var del int
			for k := range ref {
				del = k
				break
			}
			delete(ref, del)
			m.Delete(del)
		}
		checkAgainstRef(t, m, ref)
		if m.root != nil {
			checkBSTOrder(t, m)
		}
	}
}

func TestPutSplaysKeyToRoot(t *testing.T) {
	m := NewOrdered[int, string]()
	for i := 0; i < 10; i++ {
		m.Put(i, "v")
	}
	m.Put(3, "updated")
	if m.root.key != 3 {
		t.Fatalf("expected key 3 at root after Put, got %v", m.root.key)
	}
}

func TestGetSplaysKeyToRoot(t *testing.T) {
	m := NewOrdered[int, string]()
	for i := 0; i < 10; i++ {
		m.Put(i, "v")
	}
	if _, ok := m.Get(7); !ok {
		t.Fatal("expected key 7 to be present")
	}
	if m.root.key != 7 {
		t.Fatalf("expected key 7 at root after Get, got %v", m.root.key)
	}
}

func TestObtainDoesNotSplay(t *testing.T) {
	m := NewOrdered[int, string]()
	for i := 0; i < 10; i++ {
		m.Put(i, "v")
	}
	rootBefore := m.root.key
	if _, ok := m.Obtain(2); !ok {
		t.Fatal("expected key 2 to be present")
	}
	if m.root.key != rootBefore {
		t.Fatalf("Obtain should not change root: was %v, now %v", rootBefore, m.root.key)
	}
}

func TestDeleteMissingKeyLeavesTreeUnchanged(t *testing.T) {
	m := NewOrdered[int, string]()
	m.Put(1, "a")
	m.Put(2, "b")
	before := m.Size()
	if _, ok := m.Delete(999); ok {
		t.Fatal("expected Delete of absent key to report ok == false")
	}
	if m.Size() != before {
		t.Fatalf("size changed after deleting an absent key: %d != %d", m.Size(), before)
	}
}

func TestDeletePromotesLeftMax(t *testing.T) {
	m := NewOrdered[int, string]()
	for _, k := range []int{50, 25, 75, 10, 30, 60, 90, 27} {
		m.Put(k, "v")
	}
	if _, ok := m.Delete(50); !ok {
		t.Fatal("expected key 50 to be present")
	}
	if m.root.key != 30 {
		t.Fatalf("expected the left subtree's max 30 at the root after deleting 50, got %v", m.root.key)
	}
	checkBSTOrder(t, m)
	for _, k := range []int{25, 75, 10, 30, 60, 90, 27} {
		if _, ok := m.Get(k); !ok {
			t.Fatalf("key %v should still be present after deleting 50", k)
		}
	}
	if m.Size() != 7 {
		t.Fatalf("expected size 7 after delete, got %d", m.Size())
	}
}
