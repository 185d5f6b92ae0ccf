package traversal

import "iter"

// Slice traverses every element of a []T, in index order.
type Slice[T any] struct{}

func (Slice[T]) View(src *[]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range *src {
			if !yield(v) {
				return
			}
		}
	}
}

func (Slice[T]) Edit(src *[]T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		s := *src
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

func (Slice[T]) Kind() KindEnum { return KindSlice }
