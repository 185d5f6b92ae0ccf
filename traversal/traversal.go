// Package traversal implements a composable optic for visiting and
// mutating elements nested inside containers.
//
// A Traversal[S, T] knows how to find every T inside an S. Leaves
// (Slice, MapValues, Pointer) address one container shape each;
// Compose chains two traversals into a deeper one, and Filter narrows
// a traversal to the targets matching a predicate.
//
// All returned sequences are lazy: visiting — and, for Edit and
// Mutate, mutating — happens only as the consumer pulls elements.
// Abandoning a sequence early leaves the remaining targets untouched.
package traversal

import (
	"iter"

	"optics/seqs"
)

// Traversal visits every target of type T reachable inside a source
// of type S.
//
// View yields each target by value and must not mutate the source.
// Edit yields a mutable handle per target; writes through a handle
// land in the original source. Both visit in the traversal's defined
// order: natural forward order for leaves, depth-first outer-then-
// inner for compositions. A live Edit sequence assumes exclusive
// access to the source until it is drained or abandoned.
type Traversal[S, T any] interface {
	View(src *S) iter.Seq[T]
	Edit(src *S) iter.Seq[*T]
	Kind() KindEnum
}

// Read lazily applies the pure projection f to every target of tr
// inside src, yielding one result per target in visiting order. The
// source is never mutated.
func Read[S, T, V any](tr Traversal[S, T], src *S, f func(T) V) iter.Seq[V] {
	return seqs.Map(tr.View(src), f)
}

// Mutate lazily applies f to a mutable handle of every target of tr
// inside src, yielding one result per target in visiting order.
//
// f runs only when the consumer pulls the corresponding element:
// stopping early leaves every target past the stopping point
// unmutated. That is the contract, not an implementation accident.
func Mutate[S, T, V any](tr Traversal[S, T], src *S, f func(*T) V) iter.Seq[V] {
	return seqs.Map(tr.Edit(src), f)
}
