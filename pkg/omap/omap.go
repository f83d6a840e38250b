package omap

// Map is an insertion-order-preserving map.
//
// A Map must be created with New; methods panic with ErrInvalidArgument
// when called on a nil or zero-value Map.
type Map[K comparable, V any] struct {
	// values holds the key -> value association, order-agnostic.
	values map[K]V

	// order tracks insertion order and the key -> node index.
	order *orderList[K]

	// deleteSignal, when set, makes Set treat matching values as
	// removals. See WithDeleteSignal.
	deleteSignal func(V) bool
}

// Option configures a Map at construction time.
type Option[V any] func(*settings[V])

type settings[V any] struct {
	deleteSignal func(V) bool
}

// WithDeleteSignal makes Set treat any value for which fn returns true
// as a removal of the key instead of a store. This reproduces the
// assign-empty-to-delete convention of dynamic-language ordered maps;
// values matching the signal become unstorable, so most callers should
// prefer the explicit Delete and leave this unset.
func WithDeleteSignal[V any](fn func(V) bool) Option[V] {
	return func(s *settings[V]) {
		s.deleteSignal = fn
	}
}

// New creates an empty ordered map.
func New[K comparable, V any](opts ...Option[V]) *Map[K, V] {
	var s settings[V]
	for _, opt := range opts {
		opt(&s)
	}

	return &Map[K, V]{
		values:       make(map[K]V),
		order:        newOrderList[K](),
		deleteSignal: s.deleteSignal,
	}
}

// check verifies the map was built by New. All exported methods call it
// before touching internal state.
func (m *Map[K, V]) check() {
	if m == nil || m.values == nil || m.order == nil {
		panic(ErrInvalidArgument.WithDetails("map missing order state, construct it with New"))
	}
}

// Set stores value under key.
//
// A key seen for the first time is appended at the back of the
// iteration order. Re-setting an existing key overwrites the value
// only; its position is unchanged. If the value matches a configured
// delete signal, Set removes the key instead (a no-op when the key is
// absent, including keys never inserted).
func (m *Map[K, V]) Set(key K, value V) {
	m.check()

	if m.deleteSignal != nil && m.deleteSignal(value) {
		m.Delete(key)
		return
	}

	if _, ok := m.values[key]; ok {
		m.values[key] = value
		return
	}

	m.order.pushBack(key)
	m.values[key] = value
}

// Get retrieves the value for key and whether the key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.check()
	val, ok := m.values[key]
	return val, ok
}

// Value retrieves the value for key, or the zero value when absent.
func (m *Map[K, V]) Value(key K) V {
	m.check()
	return m.values[key]
}

// Has checks if a key is present.
func (m *Map[K, V]) Has(key K) bool {
	m.check()
	_, ok := m.values[key]
	return ok
}

// Delete removes key from the map, splicing its node out of the
// iteration order in O(1). Reports whether the key was present.
func (m *Map[K, V]) Delete(key K) bool {
	m.check()

	if _, ok := m.values[key]; !ok {
		return false
	}

	delete(m.values, key)
	m.order.unlink(key)
	return true
}

// Len returns the number of keys currently present.
func (m *Map[K, V]) Len() int {
	m.check()
	return m.order.len()
}

// Front returns the earliest-inserted key and its value.
// ok is false when the map is empty.
func (m *Map[K, V]) Front() (key K, value V, ok bool) {
	m.check()
	if m.order.front == nil {
		return key, value, false
	}
	key = m.order.front.key
	return key, m.values[key], true
}

// Back returns the latest-inserted key and its value.
// ok is false when the map is empty.
func (m *Map[K, V]) Back() (key K, value V, ok bool) {
	m.check()
	if m.order.back == nil {
		return key, value, false
	}
	key = m.order.back.key
	return key, m.values[key], true
}
