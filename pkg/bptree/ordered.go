package bptree

import "cmp"

// NewOrdered constructs a Tree using the natural order of K (as defined
// by cmp.Compare), for callers who have no custom comparator to inject.
func NewOrdered[K cmp.Ordered, V any](opts ...Option[K, V]) (*Tree[K, V], error) {
	return New[K, V](cmp.Compare[K], opts...)
}
