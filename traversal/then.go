package traversal

import (
	"iter"

	"optics/seqs"
)

// Then chains two traversals end-to-end: left finds every M inside an
// S, right finds every T inside each of those Ms. The intermediate
// type M exists only in the type parameters; an incompatible pair
// does not compile.
//
// Composition is associative in behavior but not flattened:
// Compose(Compose(a, b), c) and Compose(a, Compose(b, c)) are
// distinct values with identical observable sequences.
type Then[S, M, T any] struct {
	left  Traversal[S, M]
	right Traversal[M, T]
}

// Compose builds the traversal that visits, for each target of left,
// all targets of right within it: depth-first, outer order from left,
// inner order from right.
func Compose[S, M, T any](left Traversal[S, M], right Traversal[M, T]) Then[S, M, T] {
	return Then[S, M, T]{left: left, right: right}
}

func (t Then[S, M, T]) View(src *S) iter.Seq[T] {
	return seqs.Flatten(func(yield func(iter.Seq[T]) bool) {
		for m := range t.left.View(src) {
			if !yield(t.right.View(&m)) {
				return
			}
		}
	})
}

// Edit threads mutable access through both levels: left hands out a
// handle to each intermediate, right opens it, so writes made by the
// innermost consumer land in the original source.
func (t Then[S, M, T]) Edit(src *S) iter.Seq[*T] {
	return seqs.Flatten(func(yield func(iter.Seq[*T]) bool) {
		for m := range t.left.Edit(src) {
			if !yield(t.right.Edit(m)) {
				return
			}
		}
	})
}

func (t Then[S, M, T]) Kind() KindEnum { return KindThen }
