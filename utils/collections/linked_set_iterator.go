package collections

import "fmt"

var _ Iterator[int] = (*SetIterator[int])(nil)

// SetIterator walks a LinkedSet up to its trailer. Erase uses the set's
// single-link erase, so the cursor stays on the same node, which then holds
// the next element.
type SetIterator[V comparable] struct {
	current  *node[V]
	set      *LinkedSet[V]
	expected uint64
	state    cursorState
}

func newSetIterator[V comparable](s *LinkedSet[V], initial *node[V]) *SetIterator[V] {
	return &SetIterator[V]{
		current:  initial,
		set:      s,
		expected: s.modCount,
	}
}

func (it *SetIterator[V]) check(op string) error {
	if it.expected != it.set.modCount {
		return staleIterator(op, it.expected, it.set.modCount)
	}
	return nil
}

func (it *SetIterator[V]) advance() {
	if it.current == it.set.trailer {
		return
	}
	if it.state.canErase() {
		it.current = it.current.next
	} else {
		it.state = settled
	}
}

func (it *SetIterator[V]) Next() error {
	if err := it.check("LinkedSet.Iterator.Next"); err != nil {
		return err
	}
	it.advance()
	return nil
}

// PostNext advances the cursor and returns a copy of it taken before the move.
func (it *SetIterator[V]) PostNext() (*SetIterator[V], error) {
	if err := it.check("LinkedSet.Iterator.PostNext"); err != nil {
		return nil, err
	}
	before := *it
	it.advance()
	return &before, nil
}

func (it *SetIterator[V]) Erase() (v V, err error) {
	const op = "LinkedSet.Iterator.Erase"
	if err := it.check(op); err != nil {
		return v, err
	}
	if !it.state.canErase() {
		return v, newOpError(op, ErrCannotErase, "iterator cursor already erased")
	}
	if it.current == it.set.trailer {
		return v, newOpError(op, ErrCannotErase, "iterator cursor beyond data structure")
	}
	v = it.current.value
	it.set.eraseAt(it.current)
	it.set.modCount++
	it.expected = it.set.modCount
	it.state = justErased
	return v, nil
}

func (it *SetIterator[V]) ref(op string) (*V, error) {
	if err := it.check(op); err != nil {
		return nil, err
	}
	if !it.state.canErase() || it.current == it.set.trailer {
		where := fmt.Sprintf("%s when size = %d", addr(it.current), it.set.Size())
		return nil, newOpError(op, ErrIllegalPosition, where)
	}
	return &it.current.value, nil
}

func (it *SetIterator[V]) Value() (v V, err error) {
	p, err := it.ref("LinkedSet.Iterator.Value")
	if err != nil {
		return v, err
	}
	return *p, nil
}

// Ref gives access to the element in place. Changing it to a value already
// in the set breaks the set's uniqueness.
func (it *SetIterator[V]) Ref() (*V, error) {
	return it.ref("LinkedSet.Iterator.Ref")
}

func (it *SetIterator[V]) Equal(other Iterator[V]) (bool, error) {
	const op = "LinkedSet.Iterator.Equal"
	rhs, ok := other.(*SetIterator[V])
	if !ok || rhs == nil {
		return false, newOpError(op, ErrIncompatibleIterator, fmt.Sprintf("cannot compare with %T", other))
	}
	if it.set != rhs.set {
		return false, newOpError(op, ErrIncompatibleIterator, "comparing iterators from different sets")
	}
	if err := it.check(op); err != nil {
		return false, err
	}
	if err := rhs.check(op); err != nil {
		return false, err
	}
	return it.current == rhs.current, nil
}

func (it *SetIterator[V]) AtEnd() bool {
	return it.current == it.set.trailer
}

func (it *SetIterator[V]) String() string {
	return fmt.Sprintf("%s(current=%s,expected_mod_count=%d,can_erase=%t)",
		it.set.Debug(), addr(it.current), it.expected, it.state.canErase())
}
