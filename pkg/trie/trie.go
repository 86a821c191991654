// Package trie provides a prefix tree keyed on "/"-separated path segments.
//
// Every complete path holds at most one value. Children are visited in the
// order they were first created, so enumeration is deterministic.
// Nodes are never pruned; Remove only clears the value slot.
package trie

import "strings"

// Separator splits a path into segments.
const Separator = "/"

type node[V any] struct {
	children map[string]*node[V]
	order    []string
	value    V
	terminal bool
}

func newNode[V any]() *node[V] {
	return &node[V]{children: make(map[string]*node[V])}
}

// Trie maps paths to values.
// A Trie is not safe for concurrent mutation.
type Trie[V any] struct {
	root *node[V]
	size int
}

// New returns an empty Trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{root: newNode[V]()}
}

// Insert stores v at path, replacing any previous value.
func (t *Trie[V]) Insert(path string, v V) {
	n := t.root
	for _, seg := range split(path) {
		child, ok := n.children[seg]
		if !ok {
			child = newNode[V]()
			n.children[seg] = child
			n.order = append(n.order, seg)
		}
		n = child
	}
	if !n.terminal {
		t.size++
	}
	n.value = v
	n.terminal = true
}

// Lookup returns the value stored at exactly path.
func (t *Trie[V]) Lookup(path string) (V, bool) {
	n := t.find(path)
	if n == nil || !n.terminal {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Remove clears the value at path and reports whether one was present.
func (t *Trie[V]) Remove(path string) bool {
	n := t.find(path)
	if n == nil || !n.terminal {
		return false
	}
	var zero V
	n.value = zero
	n.terminal = false
	t.size--
	return true
}

// ListUnder returns every value stored at path or below it, in pre-order.
// The boolean is false when no node exists for path.
func (t *Trie[V]) ListUnder(path string) ([]V, bool) {
	n := t.find(path)
	if n == nil {
		return nil, false
	}
	var out []V
	n.collect(&out)
	return out, true
}

// ListAll returns every stored value, in pre-order.
func (t *Trie[V]) ListAll() []V {
	out, _ := t.ListUnder("")
	return out
}

// Len returns the number of stored values.
func (t *Trie[V]) Len() int {
	return t.size
}

func (t *Trie[V]) find(path string) *node[V] {
	n := t.root
	for _, seg := range split(path) {
		child, ok := n.children[seg]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

func (n *node[V]) collect(out *[]V) {
	if n.terminal {
		*out = append(*out, n.value)
	}
	for _, seg := range n.order {
		n.children[seg].collect(out)
	}
}

// split returns the segments of path; the empty path is the root.
func split(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, Separator)
}
