package query

import (
	"cmp"
	"iter"

	"github.com/aalvaropc/querylab/internal/domain"
)

// Number is the set of types Average accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Max returns the largest key in src, failing with KindEmptySequence on empty input.
func Max[T any, K cmp.Ordered](src iter.Seq[T], key func(T) K) (K, error) {
	return extreme(src, key, cmp.Compare[K], 1, "query.max")
}

// MaxFunc is Max for keys that are not cmp.Ordered.
func MaxFunc[T, K any](src iter.Seq[T], key func(T) K, compare func(K, K) int) (K, error) {
	return extreme(src, key, compare, 1, "query.max")
}

// Min returns the smallest key in src, failing with KindEmptySequence on empty input.
func Min[T any, K cmp.Ordered](src iter.Seq[T], key func(T) K) (K, error) {
	return extreme(src, key, cmp.Compare[K], -1, "query.min")
}

// MinFunc is Min for keys that are not cmp.Ordered.
func MinFunc[T, K any](src iter.Seq[T], key func(T) K, compare func(K, K) int) (K, error) {
	return extreme(src, key, compare, -1, "query.min")
}

func extreme[T, K any](src iter.Seq[T], key func(T) K, compare func(K, K) int, sign int, op string) (K, error) {
	var best K
	seen := false
	for v := range src {
		k := key(v)
		if !seen || compare(k, best)*sign > 0 {
			best = k
			seen = true
		}
	}
	if !seen {
		return best, domain.EmptySequence(op)
	}
	return best, nil
}

// Average is the arithmetic mean of the present values of an optional key.
// Absent values are ignored. ok is false when no element has a value.
func Average[T any, N Number](src iter.Seq[T], key func(T) *N) (avg float64, ok bool) {
	var sum float64
	n := 0
	for v := range src {
		if k := key(v); k != nil {
			sum += float64(*k)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
