package traversal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// MapValues traverses every value of a map[K]V, in ascending key
// order. Go maps have no intrinsic order, so the key order stands in
// as the traversal's forward order and keeps runs deterministic.
type MapValues[K cmp.Ordered, V any] struct{}

func (MapValues[K, V]) View(src *map[K]V) iter.Seq[V] {
	return func(yield func(V) bool) {
		m := *src
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(m[k]) {
				return
			}
		}
	}
}

// Edit yields a handle to a copy of each value and stores the copy
// back once the consumer releases the element. Map values are not
// addressable, so the copy is what makes a mutable handle possible;
// the store-back for the element being pulled happens even when the
// consumer stops on it, while keys past the stopping point are never
// touched.
func (MapValues[K, V]) Edit(src *map[K]V) iter.Seq[*V] {
	return func(yield func(*V) bool) {
		m := *src
		for _, k := range slices.Sorted(maps.Keys(m)) {
			v := m[k]
			more := yield(&v)
			m[k] = v

			if !more {
				return
			}
		}
	}
}

func (MapValues[K, V]) Kind() KindEnum { return KindMapValues }
