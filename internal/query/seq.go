package query

import (
	"iter"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// From adapts a slice into a restartable sequence. The slice is not copied.
func From[T any](items []T) iter.Seq[T] {
	return slices.Values(items)
}

// Where keeps the elements for which pred returns true.
func Where[T any](src iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range src {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// And combines predicates into their conjunction. With no predicates it accepts everything.
func And[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Select maps every element to a new shape.
func Select[T, U any](src iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range src {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// ToSlice materializes a sequence. It never returns nil.
func ToSlice[T any](src iter.Seq[T]) []T {
	out := []T{}
	for v := range src {
		out = append(out, v)
	}
	return out
}

// Count returns the number of elements in src.
func Count[T any](src iter.Seq[T]) int {
	n := 0
	for range src {
		n++
	}
	return n
}

// CountWhere returns the number of elements matching every predicate.
func CountWhere[T any](src iter.Seq[T], preds ...func(T) bool) int {
	return Count(Where(src, And(preds...)))
}

// HasPrefixFold reports whether s begins with prefix under Unicode case folding.
func HasPrefixFold(s, prefix string) bool {
	c := cases.Fold()
	return strings.HasPrefix(c.String(s), c.String(prefix))
}

// ContainsFold reports whether substr is within s under Unicode case folding.
func ContainsFold(s, substr string) bool {
	c := cases.Fold()
	return strings.Contains(c.String(s), c.String(substr))
}
