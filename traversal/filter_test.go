package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"optics/seqs"
	"optics/traversal"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }

	t.Run("view visits only matching targets", func(t *testing.T) {
		t.Parallel()

		src := []int{1, 2, 3, 4, 5, 6}
		evens := traversal.Filter(traversal.Slice[int]{}, even)

		assert.Equal(t, []int{2, 4, 6}, traversal.Collect(evens, &src))
	})

	t.Run("mutate touches only matching targets", func(t *testing.T) {
		t.Parallel()

		src := []int{1, 2, 3, 4}
		evens := traversal.Filter(traversal.Slice[int]{}, even)
		traversal.Update(evens, &src, func(p *int) { *p += 10 })

		assert.Equal(t, []int{1, 12, 3, 14}, src)
	})

	t.Run("early stop leaves later matches untouched", func(t *testing.T) {
		t.Parallel()

		src := []int{2, 4, 6}
		evens := traversal.Filter(traversal.Slice[int]{}, even)
		got := seqs.Collect(seqs.Take(traversal.Mutate(evens, &src, func(p *int) int { *p++; return *p }), 1))

		assert.Equal(t, []int{3}, got)
		assert.Equal(t, []int{3, 4, 6}, src)
	})

	t.Run("no matches yields empty sequence", func(t *testing.T) {
		t.Parallel()

		src := []int{1, 3, 5}
		evens := traversal.Filter(traversal.Slice[int]{}, even)

		assert.Empty(t, traversal.Collect(evens, &src))
	})

	t.Run("nil predicate panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			traversal.Filter(traversal.Slice[int]{}, nil)
		})
	})
}
