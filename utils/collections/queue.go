package collections

import "iter"

type Queue[V any] interface {
	Enqueue(V) int
	Dequeue() (V, error)
	Peek() (*V, error)
	EnqueueAll(iter.Seq[V]) int
	Clear()
	Empty() bool
	Size() int
	Entries() []V
	All() iter.Seq[V]
}
