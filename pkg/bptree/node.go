package bptree

// node is the single representation for both B+Tree node shapes. Rather
// than a polymorphic hierarchy dispatched through runtime type tests, it
// is a flat tagged variant: isLeaf selects which of the two field groups
// is live, and every call site branches on it directly instead of going
// through an interface. There is no parent pointer — a split propagates
// upward by returning the new sibling to the caller, which absorbs it;
// ownership stays strictly parent-to-child.
//
// Leaf shape: keys/values hold the payload, next threads to the
// following leaf in ascending order.
//
// Internal shape: keys are separators (keys[0] is a sentinel, never
// consulted by search), children are the routed subtrees.
//
// total is the subtree cardinality: equal to len(keys) for a leaf, and
// the sum of children's totals for an internal node.
type node[K any, V any] struct {
	isLeaf bool
	total  int

	keys     []K
	values   []V // leaf only
	children []*node[K, V] // internal only
	next     *node[K, V]   // leaf only
}

func newLeaf[K any, V any](capLeaf int) *node[K, V] {
	return &node[K, V]{
		isLeaf: true,
		keys:   make([]K, 0, capLeaf),
		values: make([]V, 0, capLeaf),
	}
}

func newInternal[K any, V any](capInternal int) *node[K, V] {
	return &node[K, V]{
		isLeaf:   false,
		keys:     make([]K, 0, capInternal),
		children: make([]*node[K, V], 0, capInternal),
	}
}

// minKey returns keys[0]. For a leaf that is its minimum key; for an
// internal node it is the sentinel, set from children[0]'s subtree at every
// split and root-grow. Later inserts and removals do not refresh the
// sentinel, so it can differ from the subtree's current minimum.
func (n *node[K, V]) minKey() K {
	return n.keys[0]
}

// search does a binary search for key among keys[0:used], returning the
// index of an exact match (found=true) or the insertion position the key
// would occupy (found=false).
func search[K any](compare Compare[K], keys []K, key K) (idx int, found bool) {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := compare(keys[mid], key)
		switch {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// leafInsertAt shifts keys/values right by one starting at pos and writes
// the new pair. Caller must ensure len(keys) < cap(keys).
func (n *node[K, V]) leafInsertAt(pos int, key K, value V) {
	n.keys = append(n.keys, key)
	copy(n.keys[pos+1:], n.keys[pos:len(n.keys)-1])
	n.keys[pos] = key

	n.values = append(n.values, value)
	copy(n.values[pos+1:], n.values[pos:len(n.values)-1])
	n.values[pos] = value

	n.total = len(n.keys)
}

// leafRemoveAt removes and clears the slot at pos, shifting the remainder
// left. The vacated tail slot is zeroed so no stale reference survives the
// logical removal.
func (n *node[K, V]) leafRemoveAt(pos int) {
	var zeroK K
	var zeroV V

	copy(n.keys[pos:], n.keys[pos+1:])
	n.keys[len(n.keys)-1] = zeroK
	n.keys = n.keys[:len(n.keys)-1]

	copy(n.values[pos:], n.values[pos+1:])
	n.values[len(n.values)-1] = zeroV
	n.values = n.values[:len(n.values)-1]

	n.total = len(n.keys)
}

// splitLeaf implements the ceiling-half split policy: after the new pair
// is logically inserted, the first half stays in n and the rest moves to
// a fresh right leaf spliced into the thread immediately after n.
func (n *node[K, V]) splitLeaf(capLeaf int, pos int, key K, value V) *node[K, V] {
	total := len(n.keys) + 1
	merged := make([]K, 0, total)
	mergedV := make([]V, 0, total)
	merged = append(merged, n.keys[:pos]...)
	merged = append(merged, key)
	merged = append(merged, n.keys[pos:]...)
	mergedV = append(mergedV, n.values[:pos]...)
	mergedV = append(mergedV, value)
	mergedV = append(mergedV, n.values[pos:]...)

	s := (total + 1) / 2 // ceiling half

	right := newLeaf[K, V](capLeaf)
	right.keys = append(right.keys, merged[s:]...)
	right.values = append(right.values, mergedV[s:]...)
	right.total = len(right.keys)
	right.next = n.next

	n.keys = append(make([]K, 0, capLeaf), merged[:s]...)
	n.values = append(make([]V, 0, capLeaf), mergedV[:s]...)
	n.total = len(n.keys)
	n.next = right

	return right
}

// findChildIndex locates the child covering key in an internal node:
// the greatest index i such that i == 0 or keys[i] <= key. keys[0] is the
// sentinel and is never consulted.
func (n *node[K, V]) findChildIndex(compare Compare[K], key K) int {
	idx, found := search(compare, n.keys[1:], key)
	if found {
		return idx + 1
	}
	return idx // idx == count of keys[1:] strictly less than key
}

// internalInsertAt shifts keys/children right by one, writing the new
// separator and its child together at pos.
func (n *node[K, V]) internalInsertAt(pos int, key K, child *node[K, V]) {
	n.keys = append(n.keys, key)
	copy(n.keys[pos+1:], n.keys[pos:len(n.keys)-1])
	n.keys[pos] = key

	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:len(n.children)-1])
	n.children[pos] = child
}

// splitInternal mirrors splitLeaf but moves children instead of values,
// and leaves no thread to patch. After the split both halves' sentinel
// (keys[0]) is refreshed to the minimum key of their respective
// children[0] subtree.
func (n *node[K, V]) splitInternal(capInternal int, pos int, key K, child *node[K, V]) *node[K, V] {
	total := len(n.keys) + 1
	mergedK := make([]K, 0, total)
	mergedC := make([]*node[K, V], 0, total+1)
	mergedK = append(mergedK, n.keys[:pos]...)
	mergedK = append(mergedK, key)
	mergedK = append(mergedK, n.keys[pos:]...)
	mergedC = append(mergedC, n.children[:pos]...)
	mergedC = append(mergedC, child)
	mergedC = append(mergedC, n.children[pos:]...)

	s := (total + 1) / 2

	right := newInternal[K, V](capInternal)
	right.keys = append(right.keys, mergedK[s:]...)
	right.children = append(right.children, mergedC[s:]...)

	n.keys = append(make([]K, 0, capInternal), mergedK[:s]...)
	n.children = append(make([]*node[K, V], 0, capInternal), mergedC[:s]...)

	right.keys[0] = right.minKeyFromChildren()
	n.keys[0] = n.minKeyFromChildren()

	n.recomputeTotal()
	right.recomputeTotal()

	return right
}

// minKeyFromChildren recomputes the sentinel from children[0]'s subtree.
// A leaf emptied by Remove has no key to offer, so the current sentinel is
// kept in that case.
func (n *node[K, V]) minKeyFromChildren() K {
	c := n.children[0]
	if c.isLeaf && len(c.keys) == 0 {
		return n.keys[0]
	}
	return c.minKey()
}

// recomputeTotal sums the children's totals. Bounded by capInternal, so
// this is constant-time in practice.
func (n *node[K, V]) recomputeTotal() {
	sum := 0
	for _, c := range n.children {
		sum += c.total
	}
	n.total = sum
}
