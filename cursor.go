package btset

import "iter"

// path represents one level in the cursor's navigation path from the root.
// For an internal node, index is the child most recently descended into,
// which is also the next separator key to yield on the way back up. For a
// leaf, index is the current key index.
type path[K any] struct {
	node  *node[K]
	index int
}

// Cursor provides ordered iteration over set keys using an explicit stack of
// path frames, so traversal is lazy and resumable without recursion.
//
// A cursor starts unpositioned; call First or Seek before reading. Mutating
// the set while a cursor is open is not detected and leaves the cursor in an
// unspecified state.
type Cursor[K any] struct {
	set   *Set[K]
	stack []path[K]
	key   K    // Cached current key
	valid bool // Is cursor positioned on a valid key?
}

// Cursor returns a new cursor over the set.
func (s *Set[K]) Cursor() *Cursor[K] {
	return &Cursor[K]{set: s}
}

// First positions the cursor on the smallest key.
// Returns false if the set is empty.
func (c *Cursor[K]) First() bool {
	c.stack = c.stack[:0]
	c.descendFirst(c.set.root)

	leaf := &c.stack[len(c.stack)-1]
	if len(leaf.node.keys) == 0 {
		// Only the root leaf of an empty set can have zero keys.
		c.stack = c.stack[:0]
		c.valid = false
		return false
	}
	c.key = leaf.node.keys[0]
	c.valid = true
	return true
}

// Seek positions the cursor on the first key greater than or equal to key.
// Returns false if no such key exists.
func (c *Cursor[K]) Seek(key K) bool {
	c.stack = c.stack[:0]
	c.valid = true

	n := c.set.root
	for {
		found, index := n.search(c.set.compare, key)
		c.stack = append(c.stack, path[K]{node: n, index: index})
		if found {
			c.key = n.keys[index]
			return true
		}
		if n.leaf() {
			if index < len(n.keys) {
				c.key = n.keys[index]
				return true
			}
			// Leaf exhausted: the next key in order is the separator above.
			return c.ascend()
		}
		n = n.children[index]
	}
}

// Next advances the cursor to the next key in ascending order.
// Returns false when the iteration is exhausted.
func (c *Cursor[K]) Next() bool {
	if !c.valid || len(c.stack) == 0 {
		return false
	}

	top := &c.stack[len(c.stack)-1]
	if top.node.leaf() {
		top.index++
		if top.index < len(top.node.keys) {
			c.key = top.node.keys[top.index]
			return true
		}
		return c.ascend()
	}

	// Positioned on an internal separator: the next key is the minimum of
	// the subtree to its right.
	top.index++
	c.descendFirst(top.node.children[top.index])
	leaf := &c.stack[len(c.stack)-1]
	c.key = leaf.node.keys[0]
	return true
}

// Key returns the key under the cursor (only valid when Valid() == true).
func (c *Cursor[K]) Key() K {
	return c.key
}

// Valid reports whether the cursor is positioned on a key.
func (c *Cursor[K]) Valid() bool {
	return c.valid
}

// descendFirst pushes the leftmost path from n onto the stack.
func (c *Cursor[K]) descendFirst(n *node[K]) {
	for {
		c.stack = append(c.stack, path[K]{node: n})
		if n.leaf() {
			return
		}
		n = n.children[0]
	}
}

// ascend pops exhausted frames until an internal node still has a separator
// key to yield, invalidating the cursor when the stack runs out.
func (c *Cursor[K]) ascend() bool {
	for len(c.stack) > 1 {
		c.stack = c.stack[:len(c.stack)-1]
		parent := &c.stack[len(c.stack)-1]
		if parent.index < len(parent.node.keys) {
			c.key = parent.node.keys[parent.index]
			return true
		}
	}
	c.stack = c.stack[:0]
	c.valid = false
	return false
}

// All returns an ascending iterator over the keys for use with range. The
// sequence is lazy; mutating the set mid-iteration is not detected.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		c := s.Cursor()
		for ok := c.First(); ok; ok = c.Next() {
			if !yield(c.Key()) {
				return
			}
		}
	}
}

// Ascend calls fn for every key in ascending order until fn returns false.
func (s *Set[K]) Ascend(fn func(key K) bool) {
	c := s.Cursor()
	for ok := c.First(); ok; ok = c.Next() {
		if !fn(c.Key()) {
			return
		}
	}
}
