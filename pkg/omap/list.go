package omap

// node marks one key's position in insertion order.
//
// Nodes are owned by the orderList; prev/next and the index entry are
// non-owning references used for traversal and O(1) unlink.
type node[K comparable] struct {
	key  K
	prev *node[K]
	next *node[K]
}

// orderList is a doubly linked list of keys in insertion order, with a
// key -> node index so that unlink needs no traversal.
type orderList[K comparable] struct {
	front  *node[K]
	back   *node[K]
	index  map[K]*node[K]
	length int
}

func newOrderList[K comparable]() *orderList[K] {
	return &orderList[K]{
		index: make(map[K]*node[K]),
	}
}

// pushBack appends a new node for key at the back of the list.
// The key must not already be tracked.
func (l *orderList[K]) pushBack(key K) *node[K] {
	n := &node[K]{key: key}
	if l.back == nil {
		l.front = n
		l.back = n
	} else {
		n.prev = l.back
		l.back.next = n
		l.back = n
	}
	l.index[key] = n
	l.length++
	return n
}

// unlink splices the key's node out of the list and drops its index
// entry. Reports whether the key was tracked.
func (l *orderList[K]) unlink(key K) bool {
	n, ok := l.index[key]
	if !ok {
		return false
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}
	n.prev = nil
	n.next = nil

	delete(l.index, key)
	l.length--
	return true
}

// node returns the tracked node for key, or nil.
func (l *orderList[K]) node(key K) *node[K] {
	return l.index[key]
}

// len returns the number of tracked keys.
func (l *orderList[K]) len() int {
	return l.length
}
