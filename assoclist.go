package linkedds

import (
	"iter"
	"reflect"
)

// assocNode is one key/value entry of an AssocList. Only value changes after
// creation; next is rewired on insertion and removal.
type assocNode[K comparable, V any] struct {
	key   K
	value V
	next  *assocNode[K, V]
}

// AssocList is an ordered key/value container backed by a singly linked
// chain. Keys are unique and entries are kept in insertion order; assigning
// to an existing key replaces its value in place.
//
// The zero value is an empty list ready to use. It compares values with
// reflect.DeepEqual; use NewAssocList or NewAssocListFunc to pick the value
// equality explicitly.
type AssocList[K comparable, V any] struct {
	head  *assocNode[K, V]
	tail  *assocNode[K, V]
	count int
	equal func(a, b V) bool
}

// NewAssocList returns an empty list whose values are compared with ==.
func NewAssocList[K, V comparable]() *AssocList[K, V] {
	return &AssocList[K, V]{
		equal: func(a, b V) bool { return a == b },
	}
}

// NewAssocListFunc returns an empty list whose values are compared with
// equal. A nil equal falls back to reflect.DeepEqual.
func NewAssocListFunc[K comparable, V any](equal func(a, b V) bool) *AssocList[K, V] {
	return &AssocList[K, V]{equal: equal}
}

// CollectAssocList sets every pair of seq, in order, into a new list.
func CollectAssocList[K, V comparable](seq iter.Seq2[K, V]) *AssocList[K, V] {
	l := NewAssocList[K, V]()
	for k, v := range seq {
		l.Set(k, v)
	}
	return l
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended at the tail.
func (l *AssocList[K, V]) Set(key K, value V) {
	if n := l.node(key); n != nil {
		n.value = value
		return
	}
	l.append(key, value)
}

// Get returns the value stored under key.
func (l *AssocList[K, V]) Get(key K) (value V, ok bool) {
	if n := l.node(key); n != nil {
		return n.value, true
	}
	return value, false
}

// HasKey reports whether key is present.
func (l *AssocList[K, V]) HasKey(key K) bool {
	return l.node(key) != nil
}

// HasValue reports whether any entry holds a value equal to value.
func (l *AssocList[K, V]) HasValue(value V) bool {
	for n := l.head; n != nil; n = n.next {
		if l.valuesEqual(n.value, value) {
			return true
		}
	}
	return false
}

// Delete removes key and returns the value it held. ok is false, and the
// list is unchanged, when key is not present.
func (l *AssocList[K, V]) Delete(key K) (value V, ok bool) {
	var prev *assocNode[K, V]
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.key == key {
			l.unlink(prev, n)
			return n.value, true
		}
	}
	return value, false
}

// DeleteOr removes key and returns the value it held. When key is not present
// it returns fallback(key) instead, or the zero value if fallback is nil.
func (l *AssocList[K, V]) DeleteOr(key K, fallback func(K) V) V {
	if v, ok := l.Delete(key); ok {
		return v
	}
	if fallback == nil {
		var zero V
		return zero
	}
	return fallback(key)
}

// DeleteIf removes every entry for which pred is true and returns l.
func (l *AssocList[K, V]) DeleteIf(pred func(K, V) bool) *AssocList[K, V] {
	return l.RejectInPlace(pred)
}

// Deleting returns a lazy sequence that, each time it is ranged over, walks
// the list from the head, removes every entry for which pred is true and
// yields it. Stopping the range early leaves the remaining entries in place.
func (l *AssocList[K, V]) Deleting(pred func(K, V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var prev *assocNode[K, V]
		for n := l.head; n != nil; {
			if !pred(n.key, n.value) {
				prev, n = n, n.next
				continue
			}
			key, value := n.key, n.value
			n = l.unlink(prev, n)
			if !yield(key, value) {
				return
			}
		}
	}
}

// RejectInPlace removes every entry for which pred is true and returns l.
func (l *AssocList[K, V]) RejectInPlace(pred func(K, V) bool) *AssocList[K, V] {
	l.retain(func(k K, v V) bool { return !pred(k, v) })
	return l
}

// Reject returns a copy of l without the entries for which pred is true.
// l is not modified.
func (l *AssocList[K, V]) Reject(pred func(K, V) bool) *AssocList[K, V] {
	return l.Clone().RejectInPlace(pred)
}

// SelectInPlace keeps only the entries for which pred is true and returns l.
func (l *AssocList[K, V]) SelectInPlace(pred func(K, V) bool) *AssocList[K, V] {
	l.retain(pred)
	return l
}

// Select returns a copy of l holding only the entries for which pred is true.
// l is not modified.
func (l *AssocList[K, V]) Select(pred func(K, V) bool) *AssocList[K, V] {
	return l.Clone().SelectInPlace(pred)
}

// Each calls visit for every entry in order.
func (l *AssocList[K, V]) Each(visit func(K, V)) {
	for n := l.head; n != nil; n = n.next {
		visit(n.key, n.value)
	}
}

// All yields every entry in order.
func (l *AssocList[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys yields every key in order.
func (l *AssocList[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Values yields every value in key order.
func (l *AssocList[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Len returns the number of entries.
func (l *AssocList[K, V]) Len() int {
	return l.count
}

// IsEmpty reports whether the list has no entries.
func (l *AssocList[K, V]) IsEmpty() bool {
	return l.count == 0
}

// Equal reports whether other holds the same entries in the same order.
// A pair of values matches only when both lists' value equalities agree, so
// a.Equal(b) == b.Equal(a) even when a and b compare values differently.
func (l *AssocList[K, V]) Equal(other *AssocList[K, V]) bool {
	if l == other {
		return true
	}
	if other == nil || l.count != other.count {
		return false
	}
	for a, b := l.head, other.head; a != nil; a, b = a.next, b.next {
		if a.key != b.key || !l.valuesEqual(a.value, b.value) || !other.valuesEqual(b.value, a.value) {
			return false
		}
	}
	return true
}

// Clone returns an independent list with freshly allocated nodes holding the
// same keys and values in the same order. Values are copied by assignment.
func (l *AssocList[K, V]) Clone() *AssocList[K, V] {
	c := &AssocList[K, V]{equal: l.equal}
	for n := l.head; n != nil; n = n.next {
		c.append(n.key, n.value)
	}
	return c
}

// ToMap returns the entries as a Go map.
func (l *AssocList[K, V]) ToMap() map[K]V {
	m := make(map[K]V, l.count)
	for n := l.head; n != nil; n = n.next {
		m[n.key] = n.value
	}
	return m
}

// Clear drops every entry.
func (l *AssocList[K, V]) Clear() {
	l.head = nil
	l.tail = nil
	l.count = 0
}

func (l *AssocList[K, V]) node(key K) *assocNode[K, V] {
	for n := l.head; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}
	return nil
}

// append adds a node for key at the tail without checking for duplicates.
func (l *AssocList[K, V]) append(key K, value V) {
	n := &assocNode[K, V]{key: key, value: value}
	if l.head == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count++
}

// unlink splices n out of the chain. prev is n's predecessor, or nil when n
// is the head. It returns the node that followed n.
func (l *AssocList[K, V]) unlink(prev, n *assocNode[K, V]) *assocNode[K, V] {
	next := n.next
	n.next = nil
	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}
	if l.tail == n {
		l.tail = prev
	}
	l.count--
	return next
}

// retain removes, in one pass, every entry for which keep is false.
func (l *AssocList[K, V]) retain(keep func(K, V) bool) {
	var prev *assocNode[K, V]
	for n := l.head; n != nil; {
		if keep(n.key, n.value) {
			prev, n = n, n.next
			continue
		}
		n = l.unlink(prev, n)
	}
}

func (l *AssocList[K, V]) valuesEqual(a, b V) bool {
	if l.equal != nil {
		return l.equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}
