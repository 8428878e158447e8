package btset

// node represents a single B-tree node. A leaf has a nil children slice; an
// internal node's children slice always holds exactly len(keys)+1 entries.
// A node never changes kind after creation.
type node[K any] struct {
	keys     []K
	children []*node[K]
}

// newLeaf creates an empty leaf node.
func newLeaf[K any](maxKeys int) *node[K] {
	return &node[K]{
		keys: make([]K, 0, maxKeys),
	}
}

// newInternal creates an empty internal node.
func newInternal[K any](maxKeys int) *node[K] {
	return &node[K]{
		keys:     make([]K, 0, maxKeys),
		children: make([]*node[K], 0, maxKeys+1),
	}
}

func (n *node[K]) leaf() bool {
	return n.children == nil
}

// search scans the node's keys and returns (true, i) if key equals keys[i],
// otherwise (false, i) where i is the index of the child to descend into.
// Linear scan; could be swapped for binary search without behavior change.
func (n *node[K]) search(compare CompareFunc[K], key K) (bool, int) {
	for i := range n.keys {
		c := compare(key, n.keys[i])
		if c == 0 {
			return true, i
		}
		if c < 0 {
			return false, i
		}
	}
	return false, len(n.keys)
}

// split moves the right half of a full node into a new sibling and returns
// the median key along with the new node. The receiver keeps the left half.
// Both halves end up with exactly minKeys keys.
func (n *node[K]) split(minKeys int) (K, *node[K]) {
	maxKeys := minKeys*2 + 1
	if len(n.keys) != maxKeys {
		panic("btset: split of a non-full node")
	}

	right := &node[K]{keys: make([]K, 0, maxKeys)}
	if !n.leaf() {
		right.children = make([]*node[K], 0, maxKeys+1)
		right.children = append(right.children, n.children[minKeys+1:]...)
		n.children = n.children[:minKeys+1]
	}

	middle := n.keys[minKeys]
	right.keys = append(right.keys, n.keys[minKeys+1:]...)
	n.keys = n.keys[:minKeys]

	return middle, right
}

// mergeChildren folds the separator key at index and all of children[index+1]
// into children[index]. Both children must hold exactly minKeys keys; the
// merged node ends up with maxKeys keys and never overflows.
func (n *node[K]) mergeChildren(minKeys, index int) {
	if n.leaf() || len(n.keys) == 0 {
		panic("btset: mergeChildren on a leaf or empty node")
	}
	left, right := n.children[index], n.children[index+1]
	if len(left.keys) != minKeys || len(right.keys) != minKeys {
		panic("btset: mergeChildren on non-minimal children")
	}

	if !left.leaf() {
		left.children = append(left.children, right.children...)
	}
	left.keys = append(left.keys, n.removeKeyAndChild(index, index+1))
	left.keys = append(left.keys, right.keys...)
}

// ensureChildRemove prepares children[index] for a single removal by
// guaranteeing it holds more than minKeys keys. The child may borrow a key
// (and subchild) from a sibling, or be merged with one. The returned node is
// whatever now occupies the subtree slot; the original child may have been
// merged away, so callers must use the return value.
func (n *node[K]) ensureChildRemove(minKeys, index int) *node[K] {
	if n.leaf() {
		panic("btset: ensureChildRemove on a leaf")
	}
	child := n.children[index]
	if len(child.keys) > minKeys {
		return child
	}

	var left, right *node[K]
	if index >= 1 {
		left = n.children[index-1]
	}
	if index < len(n.keys) {
		right = n.children[index+1]
	}
	internal := !child.leaf()

	switch {
	case left != nil && len(left.keys) > minKeys:
		// Steal the rightmost item from the left sibling through the parent.
		if internal {
			last := len(left.children) - 1
			child.children = insertAt(child.children, 0, left.children[last])
			left.children = removeAt(left.children, last)
		}
		child.keys = insertAt(child.keys, 0, n.keys[index-1])
		n.keys[index-1] = left.removeKey(len(left.keys) - 1)
		return child

	case right != nil && len(right.keys) > minKeys:
		// Steal the leftmost item from the right sibling through the parent.
		if internal {
			child.children = append(child.children, right.children[0])
			right.children = removeAt(right.children, 0)
		}
		child.keys = append(child.keys, n.keys[index])
		n.keys[index] = right.removeKey(0)
		return child

	case left != nil:
		// Merge the child into its left sibling. The only case where the
		// returned node differs from the queried child.
		n.mergeChildren(minKeys, index-1)
		return left

	case right != nil:
		// Merge the right sibling into the child.
		n.mergeChildren(minKeys, index)
		return child
	}

	// Every internal node has at least two children (degree >= 2).
	panic("btset: internal node with no siblings")
}

// removeMin removes and returns the minimum key of the subtree rooted at n,
// rebalancing on the way down so the removal cannot underflow any node.
func (n *node[K]) removeMin(minKeys int) K {
	cur := n
	for !cur.leaf() {
		cur = cur.ensureChildRemove(minKeys, 0)
	}
	return cur.removeKey(0)
}

// removeMax removes and returns the maximum key of the subtree rooted at n.
func (n *node[K]) removeMax(minKeys int) K {
	cur := n
	for !cur.leaf() {
		cur = cur.ensureChildRemove(minKeys, len(cur.children)-1)
	}
	return cur.removeKey(len(cur.keys) - 1)
}

// removeKey removes and returns the key at index.
func (n *node[K]) removeKey(index int) K {
	if index < 0 || index >= len(n.keys) {
		panic("btset: key index out of range")
	}
	key := n.keys[index]
	n.keys = removeAt(n.keys, index)
	return key
}

// removeKeyAndChild removes and returns the key at keyIndex, also removing
// the child at childIndex.
func (n *node[K]) removeKeyAndChild(keyIndex, childIndex int) K {
	if n.leaf() {
		panic("btset: removeKeyAndChild on a leaf")
	}
	if childIndex < 0 || childIndex >= len(n.children) {
		panic("btset: child index out of range")
	}
	n.children = removeAt(n.children, childIndex)
	return n.removeKey(keyIndex)
}

// check recursively validates the subtree rooted at n against the inherited
// exclusive (low, high) bounds, where nil means unbounded, and returns the
// total number of keys in the subtree.
func (n *node[K]) check(compare CompareFunc[K], isRoot bool, leafDepth int, low, high *K, minKeys int) (int, error) {
	maxKeys := minKeys*2 + 1
	numKeys := len(n.keys)

	if n.leaf() != (leafDepth == 0) {
		return 0, corruptionf("leaf/internal kind does not match leaf depth %d", leafDepth)
	}
	if numKeys > maxKeys {
		return 0, corruptionf("node has %d keys, max is %d", numKeys, maxKeys)
	}
	if isRoot && !n.leaf() && numKeys == 0 {
		return 0, corruptionf("internal root has no keys")
	}
	if !isRoot && numKeys < minKeys {
		return 0, corruptionf("non-root node has %d keys, min is %d", numKeys, minKeys)
	}

	// Keys must be strictly increasing, bounded by the parent separators.
	prev := low
	for i := range n.keys {
		if prev != nil && compare(n.keys[i], *prev) <= 0 {
			return 0, corruptionf("key ordering violated at index %d", i)
		}
		prev = &n.keys[i]
	}
	if high != nil && prev != nil && compare(*high, *prev) <= 0 {
		return 0, corruptionf("key ordering violated at upper bound")
	}

	count := numKeys
	if !n.leaf() {
		if len(n.children) != numKeys+1 {
			return 0, corruptionf("internal node has %d children for %d keys", len(n.children), numKeys)
		}
		for i, child := range n.children {
			childLow, childHigh := low, high
			if i > 0 {
				childLow = &n.keys[i-1]
			}
			if i < numKeys {
				childHigh = &n.keys[i]
			}
			c, err := child.check(compare, false, leafDepth-1, childLow, childHigh, minKeys)
			if err != nil {
				return 0, err
			}
			count += c
		}
	}
	return count, nil
}

// insertAt inserts value at index, shifting the tail right.
func insertAt[T any](slice []T, index int, value T) []T {
	return append(slice[:index], append([]T{value}, slice[index:]...)...)
}

// removeAt removes the element at index, preserving order.
func removeAt[T any](slice []T, index int) []T {
	return append(slice[:index], slice[index+1:]...)
}
