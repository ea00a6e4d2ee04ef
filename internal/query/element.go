package query

import (
	"iter"

	"github.com/aalvaropc/querylab/internal/domain"
)

// First returns the first element matching every predicate.
// It fails with KindEmptySequence when nothing matches.
func First[T any](src iter.Seq[T], preds ...func(T) bool) (T, error) {
	if v, ok := FirstOrDefault(src, preds...); ok {
		return v, nil
	}
	var zero T
	return zero, domain.EmptySequence("query.first")
}

// FirstOrDefault returns the first element matching every predicate, or the
// zero value and false when nothing matches.
func FirstOrDefault[T any](src iter.Seq[T], preds ...func(T) bool) (T, bool) {
	match := And(preds...)
	for v := range src {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
