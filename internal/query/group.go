package query

import "iter"

// Group is a set of elements sharing a key, in source order.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// Len returns the number of members.
func (g Group[K, T]) Len() int { return len(g.Items) }

// GroupBy partitions src by key. Groups appear in the order their key was
// first seen; members keep their relative source order.
func GroupBy[T any, K comparable](src iter.Seq[T], key func(T) K) []Group[K, T] {
	index := map[K]int{}
	var groups []Group[K, T]

	for v := range src {
		k := key(v)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, v)
	}
	return groups
}

// Flatten concatenates groups in order.
func Flatten[K comparable, T any](groups []Group[K, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, g := range groups {
			for _, v := range g.Items {
				if !yield(v) {
					return
				}
			}
		}
	}
}
