// Package splaycache implements a self-adjusting binary search tree keyed
// map with an approximate LRU/LFU eviction policy. Every lookup and write
// splays the touched key to the root, so hot keys cluster near the top of
// the tree and cold keys drift toward the leaves; an optional maximum size
// prunes those leaves to keep the tree bounded.
//
// Map's exported methods are safe for concurrent use: each holds the map's
// single coarse lock for its whole duration (see the critical section
// described on Map). The iterators returned by Entries, Keys and Values are
// not guarded by that lock; mutating the map while one is in use is
// undefined behavior.
package splaycache

import "sync"

// Entry is a single key-value pair, returned by iteration and bulk
// operations.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is a splay-tree-backed associative map with bounded-size eviction.
//
// Every exported structural method acquires mu for its entire duration
// (splay, local fixup, size update, and any triggered prune), giving callers
// a strict total order over operations. The bounded-size check inside Put
// invokes pruning internally without re-acquiring mu — the unexported
// lock-free core (put, get, obtain, delete, prune, ...) is what an actual
// reentrant lock would otherwise be needed for.
type Map[K, V any] struct {
	mu   sync.Mutex
	root *node[K, V]
	size int
	less Less[K]

	maxSize   int // < 0 means unbounded
	wasPruned bool
	onPrune   func(K, V)

	// hasDefault/defaultValue back MustGetOrDefault when constructed via
	// NewWithDefault; compute backs MustGetOrCompute when constructed via
	// NewWithCompute. Both are optional — the zero Map has neither.
	hasDefault   bool
	defaultValue V
	compute      func(K) V
}

// New returns an empty Map ordered by less.
func New[K, V any](less Less[K]) *Map[K, V] {
	return &Map[K, V]{
		less:    less,
		maxSize: -1,
	}
}

// NewOrdered returns an empty Map for a key type with a natural order,
// deriving its Less function from the '<' operator.
func NewOrdered[K Ordered, V any]() *Map[K, V] {
	return New[K, V](lessOrdered[K])
}

// NewFromEntries returns a Map ordered by less, populated with entries. Later
// entries overwrite earlier ones that share a key, matching Put's semantics.
func NewFromEntries[K, V any](less Less[K], entries ...Entry[K, V]) *Map[K, V] {
	m := New[K, V](less)
	for _, e := range entries {
		m.Put(e.Key, e.Value)
	}
	return m
}

// NewWithDefault returns an empty Map whose MustGetOrDefault (GetOrDefault
// without an explicit default) falls back to dflt.
func NewWithDefault[K, V any](less Less[K], dflt V) *Map[K, V] {
	m := New[K, V](less)
	m.hasDefault = true
	m.defaultValue = dflt
	return m
}

// NewWithCompute returns an empty Map whose MustGetOrCompute (GetOrCompute
// without an explicit function) falls back to fn.
func NewWithCompute[K, V any](less Less[K], fn func(K) V) *Map[K, V] {
	m := New[K, V](less)
	m.compute = fn
	return m
}

// Size returns the number of entries in the map.
func (m *Map[K, V]) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

// Empty reports whether the map has no entries.
func (m *Map[K, V]) Empty() bool {
	return m.Size() == 0
}

// Clear removes every entry from the map.
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.root = nil
	m.size = 0
	m.wasPruned = false
}

// Put associates key with value, splaying key to the root. If key was
// already present, its value is overwritten in place and the previous value
// is returned with hadPrev true. If setting the new entry pushed the map
// past its configured maximum size, Put prunes until the bound holds again.
func (m *Map[K, V]) Put(key K, value V) (prev V, hadPrev bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.put(key, value)
}

func (m *Map[K, V]) put(key K, value V) (prev V, hadPrev bool) {
	if m.root == nil {
		m.root = &node[K, V]{key: key, value: value}
		m.size = 1
		m.enforceBound()
		return prev, false
	}

	m.root = splay(m.root, key, m.less)
	switch compare3(key, m.root.key, m.less) {
	case eq:
		prev = m.root.value
		m.root.value = value
		return prev, true
	case lt:
		n := &node[K, V]{key: key, value: value, left: m.root.left, right: m.root}
		m.root.left = nil
		m.root = n
	case gt:
		n := &node[K, V]{key: key, value: value, left: m.root, right: m.root.right}
		m.root.right = nil
		m.root = n
	}
	m.size++
	m.enforceBound()
	return prev, false
}

// Get returns the value associated with key, splaying key to the root. The
// second result reports whether key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(key)
}

func (m *Map[K, V]) get(key K) (V, bool) {
	if m.root == nil {
		var zero V
		return zero, false
	}
	m.root = splay(m.root, key, m.less)
	if compare3(key, m.root.key, m.less) != eq {
		var zero V
		return zero, false
	}
	return m.root.value, true
}

// MustGet returns the value associated with key. It panics with a
// *KeyError[K] if key is absent — use Get or ContainsKey for a soft check.
func (m *Map[K, V]) MustGet(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic(&KeyError[K]{Key: key})
	}
	return v
}

// Obtain returns the value associated with key without splaying — a plain
// BST walk using the three-way compare. It never changes the tree's shape,
// at the cost of forfeiting the self-optimization that makes subsequent hot
// accesses to key cheap.
func (m *Map[K, V]) Obtain(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.obtain(key)
}

func (m *Map[K, V]) obtain(key K) (V, bool) {
	n := m.root
	for n != nil {
		switch compare3(key, n.key, m.less) {
		case lt:
			n = n.left
		case gt:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present, via a non-splaying walk (it
// delegates to Obtain, so it does not disturb tree shape).
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Obtain(key)
	return ok
}

// ContainsValue reports whether any entry's value equals v according to eq,
// via a linear ascending-order scan. It does not splay.
func (m *Map[K, V]) ContainsValue(v V, eq func(a, b V) bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := false
	walkAscending(m.root, func(n *node[K, V]) bool {
		if eq(n.value, v) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Delete removes key from the map, splaying key to the root first. It
// returns the removed value and true if key was present, or the zero value
// and false otherwise.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.delete(key)
}

func (m *Map[K, V]) delete(key K) (V, bool) {
	if m.root == nil {
		var zero V
		return zero, false
	}
	m.root = splay(m.root, key, m.less)
	if compare3(key, m.root.key, m.less) != eq {
		var zero V
		return zero, false
	}

	deleted := m.root
	if deleted.left == nil {
		m.root = deleted.right
	} else {
		right := deleted.right
		left := splayMax(deleted.left) // promotes the left subtree's max to its root
		left.right = right
		m.root = left
	}
	m.size--
	return deleted.value, true
}
