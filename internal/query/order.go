package query

import (
	"cmp"
	"iter"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparer orders two values: negative when a sorts first, zero when they tie.
type Comparer[T any] func(a, b T) int

// Asc orders by an ordered key, smallest first.
func Asc[T any, K cmp.Ordered](key func(T) K) Comparer[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// AscFunc orders by a key that is compared with compare, e.g. time.Time.Compare.
func AscFunc[T, K any](key func(T) K, compare func(K, K) int) Comparer[T] {
	return func(a, b T) int { return compare(key(a), key(b)) }
}

// Optional orders by an optional key. Absent values sort before every present value.
func Optional[T any, K cmp.Ordered](key func(T) *K) Comparer[T] {
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka == nil && kb == nil:
			return 0
		case ka == nil:
			return -1
		case kb == nil:
			return 1
		}
		return cmp.Compare(*ka, *kb)
	}
}

// HasValue orders by presence only: absent (0) before present (1).
func HasValue[T, K any](key func(T) *K) Comparer[T] {
	return func(a, b T) int { return cmp.Compare(presence(key(a)), presence(key(b))) }
}

func presence[K any](p *K) int {
	if p == nil {
		return 0
	}
	return 1
}

// Reverse inverts c.
func Reverse[T any](c Comparer[T]) Comparer[T] {
	return func(a, b T) int { return c(b, a) }
}

// Ordered is a sequence with an ordering of one or more keys. Later keys only
// break ties left by earlier ones, and the sort is stable.
//
// Ordered values are immutable: ThenBy returns a new ordering and leaves the
// receiver usable on its own.
type Ordered[T any] struct {
	src  iter.Seq[T]
	keys []Comparer[T]
}

// OrderBy starts an ascending ordering of src by c.
func OrderBy[T any](src iter.Seq[T], c Comparer[T]) Ordered[T] {
	return Ordered[T]{src: src, keys: []Comparer[T]{c}}
}

// OrderByDescending starts a descending ordering of src by c.
func OrderByDescending[T any](src iter.Seq[T], c Comparer[T]) Ordered[T] {
	return OrderBy(src, Reverse(c))
}

// ThenBy adds an ascending tie-breaker.
func (o Ordered[T]) ThenBy(c Comparer[T]) Ordered[T] {
	return Ordered[T]{src: o.src, keys: append(slices.Clip(o.keys), c)}
}

// ThenByDescending adds a descending tie-breaker.
func (o Ordered[T]) ThenByDescending(c Comparer[T]) Ordered[T] {
	return o.ThenBy(Reverse(c))
}

// All returns the sorted sequence. The source is read and sorted on every iteration.
func (o Ordered[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		items := ToSlice(o.src)
		slices.SortStableFunc(items, o.compare)
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice materializes the sorted sequence.
func (o Ordered[T]) ToSlice() []T {
	return ToSlice(o.All())
}

func (o Ordered[T]) compare(a, b T) int {
	for _, k := range o.keys {
		if c := k(a, b); c != 0 {
			return c
		}
	}
	return 0
}

// Collated orders strings by the collation rules of a language, so that case
// does not dominate the order the way a byte comparison does.
// The comparer must not be shared between goroutines.
func Collated[T any](key func(T) string, tag language.Tag) Comparer[T] {
	c := collate.New(tag)
	return func(a, b T) int { return c.CompareString(key(a), key(b)) }
}
