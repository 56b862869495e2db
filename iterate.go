package splaycache

// stackIter walks a tree in ascending key order using an explicit slice as
// the ancestor stack, rather than recursion. This means it has no
// recursion-depth exposure on a pathologically skewed tree (splaying can
// leave a tree arbitrarily deep), and — just as importantly — it never
// touches the tree's shape: iteration is a read over structure, not a use of
// it, so it must not splay.
//
// A stackIter is a one-shot cursor: once exhausted it stays exhausted, and
// it borrows the tree's structure as of the moment it was created. Mutating
// the map while a stackIter is live is undefined behavior, per the package
// docs. EntryIter, KeyIter, and ValueIter are three thin views over the same
// mechanism.
type stackIter[K, V any] struct {
	stack []*node[K, V]
}

func newStackIter[K, V any](root *node[K, V]) *stackIter[K, V] {
	it := &stackIter[K, V]{}
	it.pushLeftSpine(root)
	return it
}

func (it *stackIter[K, V]) pushLeftSpine(n *node[K, V]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// next pops the next node in ascending order, seeding its right subtree's
// left spine for subsequent calls.
func (it *stackIter[K, V]) next() (*node[K, V], bool) {
	if len(it.stack) == 0 {
		return nil, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeftSpine(n.right)
	return n, true
}

// EntryIter is a fresh, non-restartable ascending-order cursor over a Map's
// entries, obtained from Entries.
type EntryIter[K, V any] struct {
	it *stackIter[K, V]
}

// Next returns the next entry in ascending key order, or ok == false once
// every entry present at construction time has been returned.
func (e *EntryIter[K, V]) Next() (entry Entry[K, V], ok bool) {
	n, ok := e.it.next()
	if !ok {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{Key: n.key, Value: n.value}, true
}

// KeyIter is a fresh, non-restartable ascending-order cursor over a Map's
// keys, obtained from Keys.
type KeyIter[K, V any] struct {
	it *stackIter[K, V]
}

// Next returns the next key in ascending order, or ok == false once every
// key present at construction time has been returned.
func (k *KeyIter[K, V]) Next() (key K, ok bool) {
	n, ok := k.it.next()
	if !ok {
		var zero K
		return zero, false
	}
	return n.key, true
}

// ValueIter is a fresh, non-restartable cursor over a Map's values in
// ascending key order, obtained from Values.
type ValueIter[K, V any] struct {
	it *stackIter[K, V]
}

// Next returns the next value in ascending key order, or ok == false once
// every value present at construction time has been returned.
func (v *ValueIter[K, V]) Next() (value V, ok bool) {
	n, ok := v.it.next()
	if !ok {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Entries returns a fresh iterator over the map's entries in ascending key
// order. It does not splay and is not restartable; call Entries again for a
// new pass.
func (m *Map[K, V]) Entries() *EntryIter[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &EntryIter[K, V]{it: newStackIter(m.root)}
}

// Keys returns a fresh iterator over the map's keys in ascending order.
func (m *Map[K, V]) Keys() *KeyIter[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &KeyIter[K, V]{it: newStackIter(m.root)}
}

// Values returns a fresh iterator over the map's values in ascending-key
// order.
func (m *Map[K, V]) Values() *ValueIter[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &ValueIter[K, V]{it: newStackIter(m.root)}
}

// walkAscending visits every entry in ascending key order via the same
// stack mechanism, stopping early if fn returns false. It is the shared
// non-splaying scan used internally by ContainsValue, KeyForValue, ToSlice,
// and friends — it does not construct a caller-visible iterator.
func walkAscending[K, V any](root *node[K, V], fn func(n *node[K, V]) bool) {
	it := newStackIter(root)
	for {
		n, ok := it.next()
		if !ok {
			return
		}
		if !fn(n) {
			return
		}
	}
}
