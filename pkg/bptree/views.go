package bptree

// KeyView is a read-only façade over a Tree's keys. It holds only a
// back-reference to the tree and reads live state on every call — there
// is no snapshotting beyond what an individual Iterator captures.
type KeyView[K any, V any] struct {
	tree *Tree[K, V]
}

// At returns the key at the given zero-based rank in ascending order.
func (k *KeyView[K, V]) At(index int) (K, error) {
	e, err := k.tree.EntryAt(index)
	if err != nil {
		var zero K
		return zero, err
	}
	return e.Key, nil
}

// Contains reports whether key is present.
func (k *KeyView[K, V]) Contains(key K) bool {
	return k.tree.ContainsKey(key)
}

// IndexOf returns the rank query for key (see Tree.IndexOf).
func (k *KeyView[K, V]) IndexOf(key K) int {
	return k.tree.IndexOf(key)
}

// Iterate returns an iterator over keys only.
func (k *KeyView[K, V]) Iterate() *KeyIterator[K, V] {
	return &KeyIterator[K, V]{inner: k.tree.Iterate()}
}

// Add always fails: a KeyView is read-only.
func (k *KeyView[K, V]) Add(K) error { return newError(KindReadOnly, "keys view is read-only") }

// Remove always fails: a KeyView is read-only.
func (k *KeyView[K, V]) Remove(K) error { return newError(KindReadOnly, "keys view is read-only") }

// Clear always fails: a KeyView is read-only.
func (k *KeyView[K, V]) Clear() error { return newError(KindReadOnly, "keys view is read-only") }

// KeyIterator projects an Iterator down to just the key of each entry.
type KeyIterator[K any, V any] struct {
	inner *Iterator[K, V]
}

// Next returns the next key in ascending order.
func (it *KeyIterator[K, V]) Next() (K, bool, error) {
	e, ok, err := it.inner.Next()
	return e.Key, ok, err
}

// ValueView is a read-only façade over a Tree's values, in key order.
type ValueView[K any, V any] struct {
	tree *Tree[K, V]
}

// At returns the value at the given zero-based rank in ascending key order.
func (v *ValueView[K, V]) At(index int) (V, error) {
	e, err := v.tree.EntryAt(index)
	if err != nil {
		var zero V
		return zero, err
	}
	return e.Value, nil
}

// Contains reports whether any stored value equals val (see Tree.ContainsValue).
func (v *ValueView[K, V]) Contains(val V) bool {
	return v.tree.ContainsValue(val)
}

// Iterate returns an iterator over values only.
func (v *ValueView[K, V]) Iterate() *ValueIterator[K, V] {
	return &ValueIterator[K, V]{inner: v.tree.Iterate()}
}

// Add always fails: a ValueView is read-only.
func (v *ValueView[K, V]) Add(V) error { return newError(KindReadOnly, "values view is read-only") }

// Remove always fails: a ValueView is read-only.
func (v *ValueView[K, V]) Remove(V) error { return newError(KindReadOnly, "values view is read-only") }

// Clear always fails: a ValueView is read-only.
func (v *ValueView[K, V]) Clear() error { return newError(KindReadOnly, "values view is read-only") }

// ValueIterator projects an Iterator down to just the value of each entry.
type ValueIterator[K any, V any] struct {
	inner *Iterator[K, V]
}

// Next returns the next value in ascending key order.
func (it *ValueIterator[K, V]) Next() (V, bool, error) {
	e, ok, err := it.inner.Next()
	return e.Value, ok, err
}
