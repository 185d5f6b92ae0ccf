package traversal

import "optics/seqs"

// Update eagerly applies f to every target of tr inside src. It is
// the drained form of Mutate with a result-less projection.
func Update[S, T any](tr Traversal[S, T], src *S, f func(*T)) {
	for p := range tr.Edit(src) {
		f(p)
	}
}

// Collect returns every target of tr inside src as a slice, in
// visiting order. A source with no targets collects to nil.
func Collect[S, T any](tr Traversal[S, T], src *S) []T {
	return seqs.Collect(tr.View(src))
}

// Count returns the number of targets of tr inside src.
func Count[S, T any](tr Traversal[S, T], src *S) int {
	n := 0
	for range tr.View(src) {
		n++
	}

	return n
}

// First returns the first target of tr inside src and true, or the
// zero value and false if there are no targets.
func First[S, T any](tr Traversal[S, T], src *S) (T, bool) {
	for v := range tr.View(src) {
		return v, true
	}

	var zero T
	return zero, false
}
