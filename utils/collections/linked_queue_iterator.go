package collections

import "fmt"

var _ Iterator[int] = (*QueueIterator[int])(nil)

// QueueIterator walks a LinkedQueue from front to rear. Since the queue has
// no sentinel, the iterator keeps the predecessor of its current node so that
// Erase can unlink it.
type QueueIterator[V comparable] struct {
	prev     *node[V] // nil when current is the front
	current  *node[V] // nil at the end
	queue    *LinkedQueue[V]
	expected uint64
	state    cursorState
}

func newQueueIterator[V comparable](q *LinkedQueue[V], initial *node[V]) *QueueIterator[V] {
	return &QueueIterator[V]{
		current:  initial,
		queue:    q,
		expected: q.modCount,
	}
}

func (it *QueueIterator[V]) check(op string) error {
	if it.expected != it.queue.modCount {
		return staleIterator(op, it.expected, it.queue.modCount)
	}
	return nil
}

func (it *QueueIterator[V]) advance() {
	if it.current == nil {
		return
	}
	if it.state.canErase() {
		it.prev = it.current
		it.current = it.current.next
	} else {
		it.state = settled
	}
}

func (it *QueueIterator[V]) Next() error {
	if err := it.check("LinkedQueue.Iterator.Next"); err != nil {
		return err
	}
	it.advance()
	return nil
}

// PostNext advances the cursor and returns a copy of it taken before the move.
func (it *QueueIterator[V]) PostNext() (*QueueIterator[V], error) {
	if err := it.check("LinkedQueue.Iterator.PostNext"); err != nil {
		return nil, err
	}
	before := *it
	it.advance()
	return &before, nil
}

func (it *QueueIterator[V]) Erase() (v V, err error) {
	const op = "LinkedQueue.Iterator.Erase"
	if err := it.check(op); err != nil {
		return v, err
	}
	if !it.state.canErase() {
		return v, newOpError(op, ErrCannotErase, "iterator cursor already erased")
	}
	if it.current == nil {
		return v, newOpError(op, ErrCannotErase, "iterator cursor beyond data structure")
	}
	v = it.current.value
	it.current = it.queue.unlink(it.prev, it.current)
	it.queue.modCount++
	it.expected = it.queue.modCount
	it.state = justErased
	return v, nil
}

func (it *QueueIterator[V]) ref(op string) (*V, error) {
	if err := it.check(op); err != nil {
		return nil, err
	}
	if !it.state.canErase() || it.current == nil {
		where := fmt.Sprintf("%s when front = %s and rear = %s",
			addr(it.current), addr(it.queue.front), addr(it.queue.rear))
		return nil, newOpError(op, ErrIllegalPosition, where)
	}
	return &it.current.value, nil
}

func (it *QueueIterator[V]) Value() (v V, err error) {
	p, err := it.ref("LinkedQueue.Iterator.Value")
	if err != nil {
		return v, err
	}
	return *p, nil
}

func (it *QueueIterator[V]) Ref() (*V, error) {
	return it.ref("LinkedQueue.Iterator.Ref")
}

func (it *QueueIterator[V]) Equal(other Iterator[V]) (bool, error) {
	const op = "LinkedQueue.Iterator.Equal"
	rhs, ok := other.(*QueueIterator[V])
	if !ok || rhs == nil {
		return false, newOpError(op, ErrIncompatibleIterator, fmt.Sprintf("cannot compare with %T", other))
	}
	if it.queue != rhs.queue {
		return false, newOpError(op, ErrIncompatibleIterator, "comparing iterators from different queues")
	}
	if err := it.check(op); err != nil {
		return false, err
	}
	if err := rhs.check(op); err != nil {
		return false, err
	}
	return it.current == rhs.current, nil
}

func (it *QueueIterator[V]) AtEnd() bool {
	return it.current == nil
}

func (it *QueueIterator[V]) String() string {
	return fmt.Sprintf("%s(current=%s,expected_mod_count=%d,can_erase=%t)",
		it.queue.Debug(), addr(it.current), it.expected, it.state.canErase())
}
