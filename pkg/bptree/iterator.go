package bptree

// Iterator is a lazy, stateful cursor over a Tree's entries in ascending
// key order. It walks the leftmost spine to the first leaf once, then
// follows the leaf thread — it never re-descends from the root.
//
// An Iterator is a snapshot of the mutation counter at creation time, not
// of the data: any structural or value mutation on the tree between
// creation and a call to Next invalidates it. Read-only operations
// (lookups, IndexOf, EntryAt, other iterators) never bump the counter, so
// they never invalidate an outstanding one.
type Iterator[K any, V any] struct {
	tree    *Tree[K, V]
	leaf    *node[K, V]
	slot    int
	epoch   uint64
	started bool
}

// Iterate returns a new Iterator positioned before the first entry.
func (t *Tree[K, V]) Iterate() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, epoch: t.mutationCounter}
}

// Next advances the iterator and returns the next entry. ok is false once
// the sequence is exhausted (err is nil in that case). err is non-nil
// with CollectionModified if the tree mutated since the iterator (or its
// last successful Next) was created.
func (it *Iterator[K, V]) Next() (Entry[K, V], bool, error) {
	if it.tree.mutationCounter != it.epoch {
		return Entry[K, V]{}, false, newError(KindCollectionModified, "tree was modified during traversal")
	}

	if !it.started {
		it.started = true
		it.leaf = leftmostLeaf(it.tree.root)
		it.slot = 0
	}

	for it.leaf != nil {
		if it.slot < len(it.leaf.keys) {
			e := Entry[K, V]{Key: it.leaf.keys[it.slot], Value: it.leaf.values[it.slot]}
			it.slot++
			return e, true, nil
		}
		it.leaf = it.leaf.next
		it.slot = 0
	}

	return Entry[K, V]{}, false, nil
}

func leftmostLeaf[K any, V any](n *node[K, V]) *node[K, V] {
	for n != nil && !n.isLeaf {
		n = n.children[0]
	}
	return n
}
