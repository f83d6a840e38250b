package omap

import "iter"

// KeyList is an eager ordered snapshot of the map's keys.
type KeyList[K comparable] struct {
	// Keys holds the keys in insertion order.
	Keys []K

	// Len is the number of keys in the snapshot.
	Len int
}

// Keys returns an ordered snapshot of the keys present at call time.
// Later mutation of the map does not affect the snapshot.
func (m *Map[K, V]) Keys() KeyList[K] {
	m.check()

	keys := make([]K, 0, m.order.len())
	for n := m.order.front; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return KeyList[K]{Keys: keys, Len: len(keys)}
}

// Pairs returns a lazy iterator over key-value pairs in insertion
// order. The sequence is restartable; ranging over it again starts a
// fresh traversal from the front.
func (m *Map[K, V]) Pairs() iter.Seq2[K, V] {
	m.check()
	return func(yield func(K, V) bool) {
		m.check()
		for n := m.order.front; n != nil; n = m.stepNext(n.key) {
			if !yield(n.key, m.values[n.key]) {
				return
			}
		}
	}
}

// IterKeys returns a lazy iterator over keys in insertion order.
// It performs no value lookups; prefer it over Pairs when values are
// not needed.
func (m *Map[K, V]) IterKeys() iter.Seq[K] {
	m.check()
	return func(yield func(K) bool) {
		m.check()
		for n := m.order.front; n != nil; n = m.stepNext(n.key) {
			if !yield(n.key) {
				return
			}
		}
	}
}

// RevPairs returns a lazy iterator over key-value pairs in reverse
// insertion order.
func (m *Map[K, V]) RevPairs() iter.Seq2[K, V] {
	m.check()
	return func(yield func(K, V) bool) {
		m.check()
		for n := m.order.back; n != nil; n = m.stepPrev(n.key) {
			if !yield(n.key, m.values[n.key]) {
				return
			}
		}
	}
}

// RevIterKeys returns a lazy iterator over keys in reverse insertion
// order, with no value lookups.
func (m *Map[K, V]) RevIterKeys() iter.Seq[K] {
	m.check()
	return func(yield func(K) bool) {
		m.check()
		for n := m.order.back; n != nil; n = m.stepPrev(n.key) {
			if !yield(n.key) {
				return
			}
		}
	}
}

// stepNext derives the successor of the given key by re-looking it up
// in the node index, so each step depends only on the current key and
// independent traversals cannot interfere. Returns nil when the key
// was deleted since it was yielded, which ends the traversal early.
func (m *Map[K, V]) stepNext(key K) *node[K] {
	if n := m.order.node(key); n != nil {
		return n.next
	}
	return nil
}

// stepPrev is stepNext's reverse-direction counterpart.
func (m *Map[K, V]) stepPrev(key K) *node[K] {
	if n := m.order.node(key); n != nil {
		return n.prev
	}
	return nil
}
