package traversal

import "iter"

// Pointer traverses the pointee of a *T: zero targets when the
// pointer is nil, one otherwise.
type Pointer[T any] struct{}

func (Pointer[T]) View(src **T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if p := *src; p != nil {
			yield(*p)
		}
	}
}

func (Pointer[T]) Edit(src **T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if p := *src; p != nil {
			yield(p)
		}
	}
}

func (Pointer[T]) Kind() KindEnum { return KindPointer }
