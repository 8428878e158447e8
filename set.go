// Package btset implements an in-memory ordered set backed by a B-tree of
// configurable minimum degree. Membership tests, insertion, and removal run
// in O(log n) node visits; iteration yields keys in ascending order. The
// tree keeps all leaves at equal depth and rebalances with local node
// surgery (split, merge, borrow) instead of global restructuring.
//
// A Set is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every mutating call and every iteration.
package btset

import "cmp"

// CompareFunc is a three-way comparison over keys: negative if a < b, zero
// if a == b, positive if a > b. It must define a total order; keys that
// compare equal are treated as duplicates.
type CompareFunc[K any] func(a, b K) int

// Set is an ordered set of keys. The zero value is not usable; construct
// with New, NewFunc, or NewFrom.
type Set[K any] struct {
	compare CompareFunc[K]
	root    *node[K]
	size    int
	minKeys int // degree - 1
	maxKeys int // degree*2 - 1
	logger  Logger
}

// New creates an empty set for a naturally ordered key type. The degree is
// the minimum number of children each non-root internal node must have, and
// must be at least 2.
func New[K cmp.Ordered](degree int, opts ...Option) (*Set[K], error) {
	return NewFunc[K](degree, cmp.Compare[K], opts...)
}

// NewFunc creates an empty set ordered by the given comparison function.
func NewFunc[K any](degree int, compare CompareFunc[K], opts ...Option) (*Set[K], error) {
	if degree < 2 {
		return nil, ErrInvalidDegree
	}
	if compare == nil {
		return nil, ErrNilCompare
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	s := &Set[K]{
		compare: compare,
		minKeys: degree - 1,
		maxKeys: degree*2 - 1,
		logger:  options.logger,
	}
	s.Clear()
	return s, nil
}

// NewFrom creates a set seeded with the given keys, added one at a time.
func NewFrom[K cmp.Ordered](degree int, keys ...K) (*Set[K], error) {
	s, err := New[K](degree)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		s.Add(key)
	}
	return s, nil
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.size
}

// Clear resets the set to a single empty leaf root.
func (s *Set[K]) Clear() {
	s.root = newLeaf[K](s.maxKeys)
	s.size = 0
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	n := s.root
	for {
		found, index := n.search(s.compare, key)
		if found {
			return true
		}
		if n.leaf() {
			return false
		}
		n = n.children[index]
	}
}

// Add inserts key, reporting whether it was absent. Adding a key already in
// the set is a no-op.
func (s *Set[K]) Add(key K) bool {
	root := s.root
	if len(root.keys) == s.maxKeys {
		// Split the root preemptively so that no node is ever split into a
		// full parent during the descent. This is the only way the tree
		// grows in height.
		middle, right := root.split(s.minKeys)
		newRoot := newInternal[K](s.maxKeys)
		newRoot.keys = append(newRoot.keys, middle)
		newRoot.children = append(newRoot.children, root, right)
		s.root = newRoot
		root = newRoot
	}

	n := root
	for {
		found, index := n.search(s.compare, key)
		if found {
			return false
		}
		if n.leaf() {
			n.keys = insertAt(n.keys, index, key)
			s.size++
			return true
		}

		child := n.children[index]
		if len(child.keys) == s.maxKeys {
			middle, right := child.split(s.minKeys)
			n.children = insertAt(n.children, index+1, right)
			n.keys = insertAt(n.keys, index, middle)
			switch c := s.compare(key, middle); {
			case c == 0:
				return false
			case c > 0:
				child = right
			}
		}
		n = child
	}
}

// Remove deletes key from the set, returning ErrKeyNotFound if absent.
func (s *Set[K]) Remove(key K) error {
	if !s.remove(key) {
		return ErrKeyNotFound
	}
	return nil
}

// Discard deletes key if present, reporting whether it was removed. Unlike
// Remove it signals nothing on absence.
func (s *Set[K]) Discard(key K) bool {
	return s.remove(key)
}

// remove walks the tree top-down, rebalancing ahead of every descent so the
// final removal cannot underflow any node. Reports whether a key was removed.
func (s *Set[K]) remove(key K) bool {
	n := s.root
	found, index := n.search(s.compare, key)
	for {
		if n.leaf() {
			if !found {
				return false
			}
			n.removeKey(index)
			s.size--
			return true
		}

		if found {
			// The key lives in this internal node. Replace it with its
			// predecessor or successor when either child has spare capacity.
			left, right := n.children[index], n.children[index+1]
			if len(left.keys) > s.minKeys {
				n.keys[index] = left.removeMax(s.minKeys)
				s.size--
				return true
			}
			if len(right.keys) > s.minKeys {
				n.keys[index] = right.removeMin(s.minKeys)
				s.size--
				return true
			}
			// Both children are minimal: absorb the key into a merge and
			// keep removing inside the merged node. The merge puts the key
			// at index minKeys, so no re-search is needed.
			n.mergeChildren(s.minKeys, index)
			if n == s.root && len(s.root.keys) == 0 {
				s.root = left // Decrement tree height
			}
			n = left
			index = s.minKeys
			continue
		}

		child := n.ensureChildRemove(s.minKeys, index)
		if n == s.root && len(s.root.keys) == 0 {
			s.root = s.root.children[0] // Decrement tree height
		}
		n = child
		found, index = n.search(s.compare, key)
	}
}

// Min returns the smallest key in the set, or false if the set is empty.
func (s *Set[K]) Min() (K, bool) {
	n := s.root
	for !n.leaf() {
		n = n.children[0]
	}
	if len(n.keys) == 0 {
		var zero K
		return zero, false
	}
	return n.keys[0], true
}

// Max returns the largest key in the set, or false if the set is empty.
func (s *Set[K]) Max() (K, bool) {
	n := s.root
	for !n.leaf() {
		n = n.children[len(n.children)-1]
	}
	if len(n.keys) == 0 {
		var zero K
		return zero, false
	}
	return n.keys[len(n.keys)-1], true
}

// Check validates every structural invariant of the tree: size accounting,
// root bounds, per-node key counts, strict key ordering, child counts, and
// equal leaf depth. Mutation never leaves the tree in a state where Check
// fails; it exists for test harnesses. Failures wrap ErrCorruption and are
// reported to the configured logger.
func (s *Set[K]) Check() error {
	if err := s.check(); err != nil {
		s.logger.Error("structure check failed", "error", err)
		return err
	}
	return nil
}

func (s *Set[K]) check() error {
	root := s.root
	if s.size < 0 || root == nil ||
		(s.size > s.maxKeys && root.leaf()) ||
		(s.size <= s.minKeys*2 && (!root.leaf() || len(root.keys) != s.size)) {
		return corruptionf("invalid size %d for root node", s.size)
	}

	// Compute the height by descending one leftmost branch; check verifies
	// that every other branch bottoms out at the same depth.
	height := 0
	for n := root; !n.leaf(); n = n.children[0] {
		height++
	}

	count, err := root.check(s.compare, true, height, nil, nil, s.minKeys)
	if err != nil {
		return err
	}
	if count != s.size {
		return corruptionf("key count %d does not match size %d", count, s.size)
	}
	return nil
}
