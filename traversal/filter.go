package traversal

import "iter"

// Predicate reports whether a target should be visited.
type Predicate[T any] func(T) bool

// Filtered narrows a traversal to the targets satisfying a predicate,
// order preserved. For Edit the predicate sees the target's value as
// it is at pull time, before the consumer may mutate it.
type Filtered[S, T any] struct {
	inner Traversal[S, T]
	keep  Predicate[T]
}

func Filter[S, T any](inner Traversal[S, T], keep Predicate[T]) Filtered[S, T] {
	if keep == nil {
		panic("filter predicate cannot be nil")
	}

	return Filtered[S, T]{inner: inner, keep: keep}
}

func (f Filtered[S, T]) View(src *S) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range f.inner.View(src) {
			if f.keep(v) && !yield(v) {
				return
			}
		}
	}
}

func (f Filtered[S, T]) Edit(src *S) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for p := range f.inner.Edit(src) {
			if f.keep(*p) && !yield(p) {
				return
			}
		}
	}
}

func (f Filtered[S, T]) Kind() KindEnum { return KindFiltered }
