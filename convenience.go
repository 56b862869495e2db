package splaycache

import (
	"fmt"
	"strings"
)

// Merge copies every entry of other into m, overwriting m's existing values
// on key collision. It iterates other in ascending order (without splaying
// other) and Puts into m (which does splay m).
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	m.MergeFunc(other, func(_ K, _, newV V) V { return newV })
}

// MergeFunc copies every entry of other into m. On a key collision it calls
// resolve(key, existing, incoming) and stores the result, rather than
// unconditionally overwriting.
func (m *Map[K, V]) MergeFunc(other *Map[K, V], resolve func(key K, old, new V) V) {
	other.mu.Lock()
	entries := make([]Entry[K, V], 0, other.size)
	walkAscending(other.root, func(n *node[K, V]) bool {
		entries = append(entries, Entry[K, V]{Key: n.key, Value: n.value})
		return true
	})
	other.mu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		if prev, had := m.get(e.Key); had {
			m.put(e.Key, resolve(e.Key, prev, e.Value))
		} else {
			m.put(e.Key, e.Value)
		}
	}
}

// Reject returns a new Map (ordered the same way as m) holding every entry
// for which pred returns false.
func (m *Map[K, V]) Reject(pred func(key K, value V) bool) *Map[K, V] {
	return m.filter(func(k K, v V) bool { return !pred(k, v) })
}

// Select returns a new Map (ordered the same way as m) holding every entry
// for which pred returns true.
func (m *Map[K, V]) Select(pred func(key K, value V) bool) *Map[K, V] {
	return m.filter(pred)
}

func (m *Map[K, V]) filter(keep func(K, V) bool) *Map[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := New[K, V](m.less)
	walkAscending(m.root, func(n *node[K, V]) bool {
		if keep(n.key, n.value) {
			out.put(n.key, n.value)
		}
		return true
	})
	return out
}

// TransformValues rewrites every value in place by calling fn on it. It
// walks the tree without splaying; the tree's shape and keys are unchanged.
func (m *Map[K, V]) TransformValues(fn func(V) V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	walkAscending(m.root, func(n *node[K, V]) bool {
		n.value = fn(n.value)
		return true
	})
}

// TransformKeys returns a new Map, ordered the same way as m, with every key
// rewritten by fn and the same values. If fn maps two distinct original
// keys to the same new key, the later (in ascending original-key order)
// entry wins, matching Put's overwrite semantics.
func (m *Map[K, V]) TransformKeys(fn func(K) K) *Map[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := New[K, V](m.less)
	walkAscending(m.root, func(n *node[K, V]) bool {
		out.put(fn(n.key), n.value)
		return true
	})
	return out
}

// ToSlice returns every entry in ascending key order.
func (m *Map[K, V]) ToSlice() []Entry[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry[K, V], 0, m.size)
	walkAscending(m.root, func(n *node[K, V]) bool {
		out = append(out, Entry[K, V]{Key: n.key, Value: n.value})
		return true
	})
	return out
}

// ToMap returns every entry as a built-in map. This requires K to be
// comparable, a strictly narrower constraint than the rest of the package
// needs (Less[K] alone) — it is the one place that constraint leaks through.
func ToMap[K comparable, V any](m *Map[K, V]) map[K]V {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[K]V, m.size)
	walkAscending(m.root, func(n *node[K, V]) bool {
		out[n.key] = n.value
		return true
	})
	return out
}

// String renders the map's entries in ascending key order as
// "{k1: v1, k2: v2, ...}".
func (m *Map[K, V]) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var b strings.Builder
	b.WriteByte('{')
	first := true
	walkAscending(m.root, func(n *node[K, V]) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", n.key, n.value)
		return true
	})
	b.WriteByte('}')
	return b.String()
}

// ValuesAt returns the value for each key in keys, in the same order. ok is
// false if any key was absent, in which case the corresponding slice slot
// holds the zero value.
func (m *Map[K, V]) ValuesAt(keys ...K) (values []V, ok bool) {
	values = make([]V, len(keys))
	ok = true
	for i, k := range keys {
		v, present := m.Get(k)
		values[i] = v
		if !present {
			ok = false
		}
	}
	return values, ok
}

// Pair holds one value from m and the corresponding value from another map,
// returned by Zip.
type Pair[V, W any] struct {
	A V
	B W
}

// Zip pairs up m's entries with other's, walking both in ascending key
// order. The result has length min(m.Size(), other.Size()); it does not
// attempt to align entries by key, only by iteration position.
func Zip[K1, V, K2, W any](m *Map[K1, V], other *Map[K2, W]) []Pair[V, W] {
	a := m.ToSlice()
	b := other.ToSlice()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]Pair[V, W], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[V, W]{A: a[i].Value, B: b[i].Value}
	}
	return out
}

// Dig looks up keys[0] in m, then follows the remaining keys as a chain of
// further lookups into nested maps: each intermediate value must itself be
// a *Map[K, any] for the walk to continue. It mirrors the source library's
// nested-lookup convenience for maps of maps; it returns (nil, false) as
// soon as any step misses or a non-final value isn't a nested map.
//
// Dig is a free function rather than a method because it only makes sense
// for maps whose value type is exactly `any` — there is no single static
// value type for an arbitrarily nested structure.
func Dig[K any](m *Map[K, any], keys ...K) (any, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	cur, ok := m.Get(keys[0])
	if !ok {
		return nil, false
	}
	for _, k := range keys[1:] {
		next, isMap := cur.(*Map[K, any])
		if !isMap {
			return nil, false
		}
		cur, ok = next.Get(k)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
