package splaycache

// GetOrDefault returns the value for key if present, splaying key to the
// root exactly as Get does. If key is absent it returns dflt and stores
// nothing (the lookup's splay may still reshape the tree).
func (m *Map[K, V]) GetOrDefault(key K, dflt V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return dflt
}

// Default returns the value a Map constructed with NewWithDefault falls
// back to, and whether one was configured.
func (m *Map[K, V]) Default() (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.defaultValue, m.hasDefault
}

// MustGetOrDefault is GetOrDefault without an explicit dflt: it falls back
// to the value configured via NewWithDefault. It panics if m was not
// constructed with NewWithDefault.
func (m *Map[K, V]) MustGetOrDefault(key K) V {
	dflt, ok := m.Default()
	if !ok {
		panic("splaycache: MustGetOrDefault requires a Map constructed with NewWithDefault")
	}
	return m.GetOrDefault(key, dflt)
}

// GetOrCompute is a read-through cache: it returns the value for key if
// present (splaying key to the root); on a miss it computes fn(key), stores
// the result under key via Put, and returns it. A panicking fn aborts the
// call before anything is stored — the map holds the same entries as before
// GetOrCompute was called, though the missed lookup has already splayed the
// tree.
func (m *Map[K, V]) GetOrCompute(key K, fn func(K) V) V {
	m.mu.Lock()
	if v, ok := m.get(key); ok {
		m.mu.Unlock()
		return v
	}
	m.mu.Unlock()

	v := fn(key) // deliberately outside the lock: fn must not re-enter the map

	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(key, v)
	return v
}

// Compute returns the function a Map constructed with NewWithCompute falls
// back to for GetOrCompute, and whether one was configured.
func (m *Map[K, V]) Compute() (func(K) V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.compute, m.compute != nil
}

// MustGetOrCompute is GetOrCompute without an explicit fn: it falls back to
// the function configured via NewWithCompute. It panics if m was not
// constructed with NewWithCompute.
func (m *Map[K, V]) MustGetOrCompute(key K) V {
	fn, ok := m.Compute()
	if !ok {
		panic("splaycache: MustGetOrCompute requires a Map constructed with NewWithCompute")
	}
	return m.GetOrCompute(key, fn)
}

// KeyForValue performs a soft reverse lookup: an ascending linear scan for
// the first entry whose value equals v according to eq. ok is false if no
// such entry exists. It does not splay.
func (m *Map[K, V]) KeyForValue(v V, eq func(a, b V) bool) (key K, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	walkAscending(m.root, func(n *node[K, V]) bool {
		if eq(n.value, v) {
			key, ok = n.key, true
			return false
		}
		return true
	})
	return key, ok
}

// MustKeyForValue is the hard (raise-on-miss) counterpart to KeyForValue: it
// panics with a *ValueError[V] if no entry's value matches.
func (m *Map[K, V]) MustKeyForValue(v V, eq func(a, b V) bool) K {
	k, ok := m.KeyForValue(v, eq)
	if !ok {
		panic(&ValueError[V]{Value: v})
	}
	return k
}

// KeyForValueFunc is the block-on-miss counterpart to KeyForValue: it
// returns onMiss() instead of a zero key when no entry's value matches.
func (m *Map[K, V]) KeyForValueFunc(v V, eq func(a, b V) bool, onMiss func() K) K {
	if k, ok := m.KeyForValue(v, eq); ok {
		return k
	}
	return onMiss()
}
