package collections

import "iter"

type Set[V any] interface {
	Contains(v V) bool
	ContainsAll(iter.Seq[V]) bool
	Insert(v V) int
	Erase(v V) int
	InsertAll(iter.Seq[V]) int
	EraseAll(iter.Seq[V]) int
	RetainAll(iter.Seq[V]) int
	Clear()
	Empty() bool
	Size() int
	Entries() []V
	All() iter.Seq[V]
}
