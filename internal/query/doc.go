// Package query provides composable, stateless operations over iter.Seq:
// filtering, ordering, projection, element access, grouping and aggregation.
//
// Where and Select are lazy; nothing runs until the resulting sequence is
// ranged over. OrderBy sorts when its sequence is iterated, and GroupBy and
// the aggregates consume their input immediately. A sequence built with From
// is restartable; whether a derived sequence can be ranged over more than once
// depends only on its source.
//
// Element and aggregate operations that need at least one value return a
// *domain.OpError of kind KindEmptySequence instead of panicking.
package query
