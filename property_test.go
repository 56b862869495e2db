package splaycache

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestBSTOrderHoldsForRandomSequences is the property suite referenced by
// spec's "Testable Properties" section: for any sequence of Put/Delete
// operations, the resulting tree is always a valid BST and its tracked size
// always matches the live node count.
func TestBSTOrderHoldsForRandomSequences(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	opGen := gen.IntRange(0, 1).Map(func(b int) bool { return b == 0 })
	keyGen := gen.IntRange(0, 64)

	properties.Property("BST order and size hold after any op sequence", prop.ForAll(
		func(ops []bool, keys []int) bool {
			n := len(ops)
			if len(keys) < n {
				n = len(keys)
			}
			m := NewOrdered[int, int]()
			for i := 0; i < n; i++ {
				if ops[i] {
					m.Put(keys[i], keys[i])
				} else {
					m.Delete(keys[i])
				}
				if !isValidBST(m) {
					return false
				}
				if m.root.count() != m.size {
					return false
				}
			}
			return true
		},
		gen.SliceOf(opGen),
		gen.SliceOf(keyGen),
	))

	properties.TestingRun(t)
}

// TestIterationOrderAlwaysAscending checks that Entries always yields keys
// in strictly ascending order, regardless of the shape splaying leaves the
// tree in.
func TestIterationOrderAlwaysAscending(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Entries yields strictly ascending keys", prop.ForAll(
		func(keys []int) bool {
			m := NewOrdered[int, int]()
			for _, k := range keys {
				m.Put(k, k)
			}
			it := m.Entries()
			prevSet := false
			var prev int
			for {
				e, ok := it.Next()
				if !ok {
					break
				}
				if prevSet && !(prev < e.Key) {
					return false
				}
				prev, prevSet = e.Key, true
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.TestingRun(t)
}

func isValidBST(m *Map[int, int]) bool {
	var walk func(n *node[int, int], lo, hi *int) bool
	walk = func(n *node[int, int], lo, hi *int) bool {
		if n == nil {
			return true
		}
		if lo != nil && n.key <= *lo {
			return false
		}
		if hi != nil && n.key >= *hi {
			return false
		}
		return walk(n.left, lo, &n.key) && walk(n.right, &n.key, hi)
	}
	return walk(m.root, nil, nil)
}
