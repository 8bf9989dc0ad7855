package collections

import (
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Sorted collects seq into a slice in ascending order. Sets have no defined
// order, so this is the way to render them reproducibly.
func Sorted[V constraints.Ordered](seq iter.Seq[V]) []V {
	arr := make([]V, 0)
	for v := range seq {
		arr = append(arr, v)
	}
	slices.Sort(arr)
	return arr
}
