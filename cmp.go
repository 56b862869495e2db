package splaycache

import "golang.org/x/exp/constraints"

// Less reports whether a precedes b in the key order a Map uses to keep its
// tree sorted. Implementations must describe a total order: for any a, b, c,
// exactly one of Less(a,b), Less(b,a) holds unless a and b are equivalent,
// and the relation must be transitive. The engine assumes this; it does not
// (and cannot, in general) verify it.
type Less[K any] func(a, b K) bool

// order is the three-way result of comparing two keys.
type order int

const (
	lt order = -1
	eq order = 0
	gt order = 1
)

// compare3 turns a Less function into a three-way comparison, the form the
// splay engine and the non-splaying walks are expressed in.
func compare3[K any](a, b K, less Less[K]) order {
	switch {
	case less(a, b):
		return lt
	case less(b, a):
		return gt
	default:
		return eq
	}
}

// Ordered is the set of key types golang.org/x/exp/constraints can derive a
// Less function for without the caller writing one by hand.
type Ordered = constraints.Ordered

// lessOrdered wraps the '<' operator for any constraints.Ordered type.
func lessOrdered[K Ordered](a, b K) bool {
	return a < b
}
