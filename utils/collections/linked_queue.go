package collections

import (
	"fmt"
	"iter"
	"strings"
)

var _ Queue[int] = (*LinkedQueue[int])(nil)

// LinkedQueue is a FIFO queue on a singly linked chain. front owns the chain,
// rear is an alias of its last node. A LinkedQueue is not safe for concurrent
// use.
type LinkedQueue[V comparable] struct {
	front    *node[V]
	rear     *node[V]
	used     int
	modCount uint64
}

func NewLinkedQueue[V comparable]() *LinkedQueue[V] {
	return &LinkedQueue[V]{}
}

func NewLinkedQueueOf[V comparable](values ...V) *LinkedQueue[V] {
	q := NewLinkedQueue[V]()
	for _, v := range values {
		q.Enqueue(v)
	}
	return q
}

func NewLinkedQueueFrom[V comparable](seq iter.Seq[V]) *LinkedQueue[V] {
	q := NewLinkedQueue[V]()
	for v := range seq {
		q.Enqueue(v)
	}
	return q
}

// Clone returns an independent queue holding the same values in the same order.
func (q *LinkedQueue[V]) Clone() *LinkedQueue[V] {
	c := NewLinkedQueue[V]()
	for p := q.front; p != nil; p = p.next {
		c.Enqueue(p.value)
	}
	return c
}

func (q *LinkedQueue[V]) Empty() bool {
	return q.used == 0
}

func (q *LinkedQueue[V]) Size() int {
	return q.used
}

// Peek returns a reference to the front value, which stays valid until that
// value is dequeued.
func (q *LinkedQueue[V]) Peek() (*V, error) {
	if q.Empty() {
		return nil, newOpError("LinkedQueue.Peek", ErrEmptyContainer, "")
	}
	return &q.front.value, nil
}

func (q *LinkedQueue[V]) Enqueue(v V) int {
	q.link(v)
	q.modCount++
	return 1
}

func (q *LinkedQueue[V]) Dequeue() (v V, err error) {
	if q.Empty() {
		return v, newOpError("LinkedQueue.Dequeue", ErrEmptyContainer, "")
	}
	v = q.front.value
	q.unlink(nil, q.front)
	q.modCount++
	return v, nil
}

func (q *LinkedQueue[V]) Clear() {
	releaseChain(q.front, nil)
	q.front = nil
	q.rear = nil
	q.used = 0
	q.modCount++
}

// EnqueueAll appends every value of seq in order and returns how many were
// appended. The whole call counts as one modification.
func (q *LinkedQueue[V]) EnqueueAll(seq iter.Seq[V]) int {
	count := 0
	for v := range seq {
		q.link(v)
		if count == 0 {
			q.modCount++
		}
		count++
	}
	return count
}

// Assign makes q hold the values of src, overwriting q's nodes in place and
// allocating or releasing only the difference in length.
func (q *LinkedQueue[V]) Assign(src *LinkedQueue[V]) {
	if q == src {
		return
	}
	to := &q.front
	var last *node[V]
	for p := src.front; p != nil; p = p.next {
		if *to != nil {
			(*to).value = p.value
		} else {
			*to = newNode(p.value, nil)
		}
		last = *to
		to = &(*to).next
	}
	releaseChain(*to, nil)
	*to = nil
	q.rear = last
	q.used = src.used
	q.modCount++
}

func (q *LinkedQueue[V]) Equal(other *LinkedQueue[V]) bool {
	if q == other {
		return true
	}
	if q.used != other.used {
		return false
	}
	for p, r := q.front, other.front; p != nil; p, r = p.next, r.next {
		if p.value != r.value {
			return false
		}
	}
	return true
}

func (q *LinkedQueue[V]) Entries() []V {
	arr := make([]V, 0, q.used)
	for p := q.front; p != nil; p = p.next {
		arr = append(arr, p.value)
	}
	return arr
}

// All returns the values front to rear. It panics with an error wrapping
// ErrConcurrentModification if q is modified while the loop is running.
func (q *LinkedQueue[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		expected := q.modCount
		for p := q.front; p != nil; p = p.next {
			if !yield(p.value) {
				return
			}
			if q.modCount != expected {
				panic(staleIterator("LinkedQueue.All", expected, q.modCount))
			}
		}
	}
}

func (q *LinkedQueue[V]) Begin() *QueueIterator[V] {
	return newQueueIterator(q, q.front)
}

func (q *LinkedQueue[V]) End() *QueueIterator[V] {
	return newQueueIterator(q, nil)
}

func (q LinkedQueue[V]) String() string {
	var sb strings.Builder
	sb.WriteString("queue[")
	for p := q.front; p != nil; p = p.next {
		if p != q.front {
			sb.WriteString(",")
		}
		fmt.Fprint(&sb, p.value)
	}
	sb.WriteString("]:rear")
	return sb.String()
}

// Debug renders the chain together with the node addresses and counters.
func (q *LinkedQueue[V]) Debug() string {
	values := make([]string, 0, q.used)
	for p := q.front; p != nil; p = p.next {
		values = append(values, fmt.Sprint(p.value))
	}
	return fmt.Sprintf("LinkedQueue[%s](used=%d,front=%s,rear=%s,mod_count=%d)",
		strings.Join(values, "->"), q.used, addr(q.front), addr(q.rear), q.modCount)
}

func (q *LinkedQueue[V]) link(v V) {
	n := newNode(v, nil)
	if q.front == nil {
		q.front = n
	} else {
		q.rear.next = n
	}
	q.rear = n
	q.used++
}

// unlink removes n, whose predecessor is prev (nil when n is the front), and
// returns n's successor. The caller accounts for the modification.
func (q *LinkedQueue[V]) unlink(prev, n *node[V]) *node[V] {
	next := n.next
	if prev == nil {
		q.front = next
	} else {
		prev.next = next
	}
	if n == q.rear {
		q.rear = prev
	}
	n.release()
	q.used--
	return next
}
