package glidejson

import (
	"fmt"
	"sort"
)

// omapNode is one link in the insertion-order sequence. The hash index
// stores a pointer to the node so lookup, overwrite, and removal are
// all O(1) expected, while iteration still walks the linked sequence
// in order.
type omapNode struct {
	key        string
	val        *Value
	prev, next *omapNode
}

// OrderedMap is an insertion-ordered, string-keyed associative
// container: a hash index for O(1) expected lookup paired with a
// doubly linked sequence that preserves insertion order until Sort or
// ReverseSort is called, after which iteration follows the requested
// key order and further insertions append at the tail.
//
// The original C++ implementation ref-counts keys across its hash
// index and its sequence so both sides can share one allocation
// safely; Go's value/GC model makes that unnecessary here.
type OrderedMap struct {
	index      map[string]*omapNode
	head, tail *omapNode // sentinels; head.next is the first real node
}

// NewOrderedMap returns an empty OrderedMap ready to use.
func NewOrderedMap() *OrderedMap {
	m := &OrderedMap{index: make(map[string]*omapNode)}
	m.head = &omapNode{}
	m.tail = &omapNode{}
	m.head.next = m.tail
	m.tail.prev = m.head
	return m
}

// Size returns the number of keys currently stored.
func (m *OrderedMap) Size() int {
	return len(m.index)
}

// Contains reports whether k is present.
func (m *OrderedMap) Contains(k string) bool {
	_, ok := m.index[k]
	return ok
}

// Get returns the value stored at k and whether k was present.
func (m *OrderedMap) Get(k string) (*Value, bool) {
	n, ok := m.index[k]
	if !ok {
		return nil, false
	}
	return n.val, true
}

// At returns the value stored at k, or an error if k is absent. It is
// the "fails when absent" counterpart to Get's boolean form.
func (m *OrderedMap) At(k string) (*Value, error) {
	v, ok := m.Get(k)
	if !ok {
		return nil, fmt.Errorf("%w: key %q not found", ErrType, k)
	}
	return v, nil
}

// Put inserts or overwrites the value at k. A new key is appended to
// the end of the iteration sequence; an existing key is overwritten in
// place, preserving its current sequence position.
func (m *OrderedMap) Put(k string, v *Value) {
	if n, ok := m.index[k]; ok {
		n.val = v
		return
	}
	n := &omapNode{key: k, val: v}
	last := m.tail.prev
	last.next = n
	n.prev = last
	n.next = m.tail
	m.tail.prev = n
	m.index[k] = n
}

// Remove deletes k, unlinking its sequence entry. It is a no-op if k
// is absent.
func (m *OrderedMap) Remove(k string) {
	n, ok := m.index[k]
	if !ok {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	delete(m.index, k)
}

// Clear empties both the hash index and the sequence.
func (m *OrderedMap) Clear() {
	m.index = make(map[string]*omapNode)
	m.head.next = m.tail
	m.tail.prev = m.head
}

// Keys returns the keys in current iteration order.
func (m *OrderedMap) Keys() []string {
	keys := make([]string, 0, m.Size())
	for n := m.head.next; n != m.tail; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Range calls fn for each (key, value) pair in current iteration
// order, stopping early if fn returns false.
func (m *OrderedMap) Range(fn func(key string, val *Value) bool) {
	for n := m.head.next; n != m.tail; n = n.next {
		if !fn(n.key, n.val) {
			return
		}
	}
}

// RangeReverse calls fn for each (key, value) pair in reverse of the
// current iteration order, stopping early if fn returns false.
func (m *OrderedMap) RangeReverse(fn func(key string, val *Value) bool) {
	for n := m.tail.prev; n != m.head; n = n.prev {
		if !fn(n.key, n.val) {
			return
		}
	}
}

// Sort reorders the iteration sequence by the natural (lexicographic)
// order of keys. It relinks every node in a single O(n log n) pass and
// never touches the hash index, so no lookup handle is invalidated:
// the index still points at the same node objects, only their
// sequence neighbors change.
func (m *OrderedMap) Sort() {
	m.resequence(false)
}

// ReverseSort reorders the iteration sequence by the reverse natural
// order of keys, with the same invalidation guarantee as Sort.
func (m *OrderedMap) ReverseSort() {
	m.resequence(true)
}

func (m *OrderedMap) resequence(reverse bool) {
	nodes := make([]*omapNode, 0, m.Size())
	for n := m.head.next; n != m.tail; n = n.next {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if reverse {
			return nodes[i].key > nodes[j].key
		}
		return nodes[i].key < nodes[j].key
	})
	prev := m.head
	for _, n := range nodes {
		prev.next = n
		n.prev = prev
		prev = n
	}
	prev.next = m.tail
	m.tail.prev = prev
}

// Clone returns a shallow copy: a new OrderedMap with the same keys in
// the same order, sharing the *Value pointers with m.
func (m *OrderedMap) Clone() *OrderedMap {
	out := NewOrderedMap()
	m.Range(func(k string, v *Value) bool {
		out.Put(k, v)
		return true
	})
	return out
}
