// Package seqs provides small lazy helpers over iter.Seq.
//
// Every helper preserves pull-driven evaluation: work attached to an
// element happens only when a consumer advances to it, and stopping
// early stops the upstream sequence at the same point.
package seqs

import "iter"

// Map returns a sequence that applies f to each element of seq as it
// is pulled.
func Map[V1, V2 any](seq iter.Seq[V1], f func(V1) V2) iter.Seq[V2] {
	return func(yield func(V2) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Take returns a sequence of at most the first n elements of seq.
func Take[V any](seq iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n <= 0 {
			return
		}

		left := n
		for v := range seq {
			if !yield(v) {
				return
			}

			left--
			if left == 0 {
				return
			}
		}
	}
}

// Flatten concatenates a sequence of sequences into one, preserving
// outer-then-inner order.
func Flatten[V any](seq iter.Seq[iter.Seq[V]]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for inner := range seq {
			for v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Collect drains seq into a slice. An empty sequence collects to nil.
func Collect[V any](seq iter.Seq[V]) []V {
	var out []V
	for v := range seq {
		out = append(out, v)
	}

	return out
}

// Empty returns a sequence with no elements.
func Empty[V any]() iter.Seq[V] {
	return func(func(V) bool) {}
}
