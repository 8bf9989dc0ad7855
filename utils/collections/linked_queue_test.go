package collections

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireQueueShape[V comparable](t *testing.T, q *LinkedQueue[V]) {
	t.Helper()
	if q.front == nil {
		require.Nil(t, q.rear)
		require.Equal(t, 0, q.used)
		return
	}
	count := 1
	last := q.front
	for last.next != nil {
		last = last.next
		count++
	}
	require.Equal(t, count, q.used)
	require.True(t, last == q.rear, "rear must be the last node")
}

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestLinkedQueue(t *testing.T) {
	q := NewLinkedQueue[int]()
	require.Equal(t, true, q.Empty())
	require.Equal(t, 1, q.Enqueue(1))
	require.Equal(t, 1, q.Enqueue(2))
	require.Equal(t, 1, q.Enqueue(3))
	require.Equal(t, 3, q.Size())
	peek, err := q.Peek()
	require.Nil(t, err)
	require.Equal(t, 1, *peek)
	for _, expected := range []int{1, 2, 3} {
		v, err := q.Dequeue()
		require.Nil(t, err)
		require.Equal(t, expected, v)
		requireQueueShape(t, q)
	}
	_, err = q.Dequeue()
	require.True(t, errors.Is(err, ErrEmptyContainer))
	_, err = q.Peek()
	require.True(t, errors.Is(err, ErrEmptyContainer))
	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	require.Equal(t, "LinkedQueue.Peek", opErr.Op)
}

func TestLinkedQueueDequeueLastResetsRear(t *testing.T) {
	q := NewLinkedQueueOf("a")
	v, err := q.Dequeue()
	require.Nil(t, err)
	require.Equal(t, "a", v)
	require.Nil(t, q.front)
	require.Nil(t, q.rear)
	q.Enqueue("b")
	requireQueueShape(t, q)
	require.Equal(t, []string{"b"}, q.Entries())
}

func TestLinkedQueuePeekReference(t *testing.T) {
	q := NewLinkedQueueOf(1, 2)
	front, err := q.Peek()
	require.Nil(t, err)
	*front = 10
	v, err := q.Dequeue()
	require.Nil(t, err)
	require.Equal(t, 10, v)
}

func TestLinkedQueueSizeTracksNetCount(t *testing.T) {
	q := NewLinkedQueue[int]()
	next, expected := 0, 0
	for round := 0; round < 20; round++ {
		for i := 0; i < round%4+1; i++ {
			q.Enqueue(next)
			next++
		}
		for i := 0; i < round%3 && !q.Empty(); i++ {
			v, err := q.Dequeue()
			require.Nil(t, err)
			require.Equal(t, expected, v)
			expected++
		}
		require.Equal(t, next-expected, q.Size())
		requireQueueShape(t, q)
	}
}

func TestLinkedQueueClear(t *testing.T) {
	q := NewLinkedQueueOf(1, 2, 3)
	before := q.modCount
	q.Clear()
	require.Equal(t, 0, q.Size())
	require.Equal(t, before+1, q.modCount)
	requireQueueShape(t, q)
	q.Enqueue(4)
	require.Equal(t, "queue[4]:rear", q.String())
}

func TestLinkedQueueEnqueueAll(t *testing.T) {
	q := NewLinkedQueueOf(1)
	before := q.modCount
	require.Equal(t, 3, q.EnqueueAll(slices.Values([]int{2, 3, 4})))
	require.Equal(t, before+1, q.modCount)
	require.Equal(t, []int{1, 2, 3, 4}, q.Entries())
	requireQueueShape(t, q)

	require.Equal(t, 0, q.EnqueueAll(slices.Values([]int{})))
	require.Equal(t, before+1, q.modCount)

	other := NewLinkedQueueOf(5, 6)
	require.Equal(t, 2, q.EnqueueAll(other.All()))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, q.Entries())
}

func TestLinkedQueueEnqueueAllFromItself(t *testing.T) {
	q := NewLinkedQueueOf(1, 2)
	err := recoverError(func() {
		q.EnqueueAll(q.All())
	})
	require.True(t, errors.Is(err, ErrConcurrentModification))
	requireQueueShape(t, q)
	require.Equal(t, []int{1, 2, 1}, q.Entries())
}

func TestLinkedQueueConstructors(t *testing.T) {
	a := NewLinkedQueueOf("x", "y", "z")
	b := NewLinkedQueueFrom(a.All())
	c := a.Clone()
	require.True(t, a.Equal(b))
	require.True(t, a.Equal(c))
	require.True(t, a.Equal(a))
	c.Enqueue("w")
	require.False(t, a.Equal(c))
	require.Equal(t, 3, a.Size())
	b.Enqueue("q")
	_, _ = c.Dequeue()
	_, _ = c.Dequeue()
	_, _ = c.Dequeue()
	require.False(t, b.Equal(c))
	require.False(t, NewLinkedQueueOf(1, 2).Equal(NewLinkedQueueOf(2, 1)))
}

func TestLinkedQueueAssign(t *testing.T) {
	t.Run("longer source", func(t *testing.T) {
		dst := NewLinkedQueueOf(1, 2)
		reused := dst.front
		src := NewLinkedQueueOf(7, 8, 9, 10)
		before := dst.modCount
		dst.Assign(src)
		require.True(t, dst.Equal(src))
		require.True(t, reused == dst.front)
		require.Equal(t, before+1, dst.modCount)
		requireQueueShape(t, dst)
	})
	t.Run("shorter source", func(t *testing.T) {
		dst := NewLinkedQueueOf(1, 2, 3, 4)
		dropped := dst.front.next.next
		src := NewLinkedQueueOf(7, 8)
		dst.Assign(src)
		require.Equal(t, []int{7, 8}, dst.Entries())
		require.Nil(t, dropped.next)
		requireQueueShape(t, dst)
	})
	t.Run("empty source", func(t *testing.T) {
		dst := NewLinkedQueueOf(1, 2)
		dst.Assign(NewLinkedQueue[int]())
		require.True(t, dst.Empty())
		requireQueueShape(t, dst)
	})
	t.Run("self", func(t *testing.T) {
		dst := NewLinkedQueueOf(1, 2)
		before := dst.modCount
		dst.Assign(dst)
		require.Equal(t, before, dst.modCount)
		require.Equal(t, []int{1, 2}, dst.Entries())
	})
	t.Run("source mutation does not leak", func(t *testing.T) {
		src := NewLinkedQueueOf(1, 2, 3)
		dst := NewLinkedQueue[int]()
		dst.Assign(src)
		_, _ = src.Dequeue()
		src.Enqueue(4)
		require.Equal(t, []int{1, 2, 3}, dst.Entries())
		dst.Enqueue(5)
		requireQueueShape(t, dst)
	})
}

func TestLinkedQueueRendering(t *testing.T) {
	q := NewLinkedQueueOf(1, 2, 3)
	require.Equal(t, "queue[1,2,3]:rear", q.String())
	require.Equal(t, "queue[]:rear", NewLinkedQueue[int]().String())
	require.Regexp(t, `^LinkedQueue\[1->2->3\]\(used=3,front=0x[0-9a-f]+,rear=0x[0-9a-f]+,mod_count=3\)$`, q.Debug())
	require.Equal(t, "LinkedQueue[](used=0,front=nil,rear=nil,mod_count=0)", NewLinkedQueue[int]().Debug())
}

func TestLinkedQueueAllStopsEarly(t *testing.T) {
	q := NewLinkedQueueOf(1, 2, 3, 4)
	seen := make([]int, 0)
	for v := range q.All() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	require.Equal(t, []int{1, 2}, seen)
}
