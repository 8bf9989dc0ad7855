package collections

import (
	"fmt"
	"iter"
	"strings"
)

var _ Set[int] = (*LinkedSet[int])(nil)

// LinkedSet is an unordered set on a singly linked chain that always ends in
// a trailer node. The trailer holds no value; it marks one past the last
// element and lets eraseAt work without a predecessor link.
//
// A LinkedSet must be created with one of the constructors. It is not safe
// for concurrent use.
type LinkedSet[V comparable] struct {
	front    *node[V]
	trailer  *node[V]
	used     int
	modCount uint64
}

func NewLinkedSet[V comparable]() *LinkedSet[V] {
	trailer := &node[V]{}
	return &LinkedSet[V]{
		front:   trailer,
		trailer: trailer,
	}
}

func NewLinkedSetOf[V comparable](values ...V) *LinkedSet[V] {
	s := NewLinkedSet[V]()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

func NewLinkedSetFrom[V comparable](seq iter.Seq[V]) *LinkedSet[V] {
	s := NewLinkedSet[V]()
	for v := range seq {
		s.Insert(v)
	}
	return s
}

// Clone returns an independent set with the same elements, linked in
// reverse chain order.
func (s *LinkedSet[V]) Clone() *LinkedSet[V] {
	c := NewLinkedSet[V]()
	for p := s.front; p != s.trailer; p = p.next {
		c.Insert(p.value)
	}
	return c
}

func (s *LinkedSet[V]) Empty() bool {
	return s.used == 0
}

func (s *LinkedSet[V]) Size() int {
	return s.used
}

func (s *LinkedSet[V]) Contains(v V) bool {
	return s.find(v) != nil
}

func (s *LinkedSet[V]) ContainsAll(seq iter.Seq[V]) bool {
	for v := range seq {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

func (s *LinkedSet[V]) Insert(v V) int {
	if s.Contains(v) {
		return 0
	}
	s.push(v)
	s.modCount++
	return 1
}

func (s *LinkedSet[V]) Erase(v V) int {
	p := s.find(v)
	if p == nil {
		return 0
	}
	s.eraseAt(p)
	s.modCount++
	return 1
}

func (s *LinkedSet[V]) Clear() {
	releaseChain(s.front, s.trailer)
	s.front = s.trailer
	s.used = 0
	s.modCount++
}

func (s *LinkedSet[V]) InsertAll(seq iter.Seq[V]) int {
	count := 0
	for v := range seq {
		if s.Contains(v) {
			continue
		}
		s.push(v)
		if count == 0 {
			s.modCount++
		}
		count++
	}
	return count
}

func (s *LinkedSet[V]) EraseAll(seq iter.Seq[V]) int {
	count := 0
	for v := range seq {
		p := s.find(v)
		if p == nil {
			continue
		}
		s.eraseAt(p)
		if count == 0 {
			s.modCount++
		}
		count++
	}
	return count
}

// RetainAll removes every element not produced by seq and returns how many
// were removed.
func (s *LinkedSet[V]) RetainAll(seq iter.Seq[V]) int {
	keep := NewLinkedSetFrom(seq)
	count := 0
	for p := s.front; p != s.trailer; {
		if keep.Contains(p.value) {
			p = p.next
			continue
		}
		s.eraseAt(p)
		count++
		// p now holds the next element or has become the trailer
	}
	if count > 0 {
		s.modCount++
	}
	return count
}

// Assign makes s hold the elements of src, overwriting s's nodes in place and
// allocating or releasing only the difference in size.
func (s *LinkedSet[V]) Assign(src *LinkedSet[V]) {
	if s == src {
		return
	}
	to := &s.front
	for p := src.front; p != src.trailer; p = p.next {
		if *to != s.trailer {
			(*to).value = p.value
		} else {
			*to = newNode(p.value, s.trailer)
		}
		to = &(*to).next
	}
	if *to != s.trailer {
		releaseChain(*to, s.trailer)
		*to = s.trailer
	}
	s.used = src.used
	s.modCount++
}

func (s *LinkedSet[V]) Equal(other *LinkedSet[V]) bool {
	if s == other {
		return true
	}
	if s.used != other.used {
		return false
	}
	return other.containsChain(s)
}

// SubsetOf reports s <= other.
func (s *LinkedSet[V]) SubsetOf(other *LinkedSet[V]) bool {
	if s == other {
		return true
	}
	if s.used > other.used {
		return false
	}
	return other.containsChain(s)
}

// ProperSubsetOf reports s < other.
func (s *LinkedSet[V]) ProperSubsetOf(other *LinkedSet[V]) bool {
	if s == other {
		return false
	}
	if s.used >= other.used {
		return false
	}
	return other.containsChain(s)
}

func (s *LinkedSet[V]) SupersetOf(other *LinkedSet[V]) bool {
	return other.SubsetOf(s)
}

func (s *LinkedSet[V]) ProperSupersetOf(other *LinkedSet[V]) bool {
	return other.ProperSubsetOf(s)
}

func (s *LinkedSet[V]) Entries() []V {
	arr := make([]V, 0, s.used)
	for p := s.front; p != s.trailer; p = p.next {
		arr = append(arr, p.value)
	}
	return arr
}

// All returns the elements in chain order. It panics with an error wrapping
// ErrConcurrentModification if s is modified while the loop is running.
func (s *LinkedSet[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		expected := s.modCount
		for p := s.front; p != s.trailer; p = p.next {
			if !yield(p.value) {
				return
			}
			if s.modCount != expected {
				panic(staleIterator("LinkedSet.All", expected, s.modCount))
			}
		}
	}
}

func (s *LinkedSet[V]) Begin() *SetIterator[V] {
	return newSetIterator(s, s.front)
}

func (s *LinkedSet[V]) End() *SetIterator[V] {
	return newSetIterator(s, s.trailer)
}

func (s LinkedSet[V]) String() string {
	var sb strings.Builder
	sb.WriteString("set[")
	for p := s.front; p != s.trailer; p = p.next {
		if p != s.front {
			sb.WriteString(",")
		}
		fmt.Fprint(&sb, p.value)
	}
	sb.WriteString("]")
	return sb.String()
}

// Debug renders the chain up to the trailer together with the node addresses
// and counters.
func (s *LinkedSet[V]) Debug() string {
	values := make([]string, 0, s.used+1)
	for p := s.front; p != s.trailer; p = p.next {
		values = append(values, fmt.Sprint(p.value))
	}
	values = append(values, "TRAILER")
	return fmt.Sprintf("LinkedSet[%s](used=%d,front=%s,trailer=%s,mod_count=%d)",
		strings.Join(values, "->"), s.used, addr(s.front), addr(s.trailer), s.modCount)
}

func (s *LinkedSet[V]) find(v V) *node[V] {
	for p := s.front; p != s.trailer; p = p.next {
		if p.value == v {
			return p
		}
	}
	return nil
}

func (s *LinkedSet[V]) containsChain(other *LinkedSet[V]) bool {
	for p := other.front; p != other.trailer; p = p.next {
		if !s.Contains(p.value) {
			return false
		}
	}
	return true
}

func (s *LinkedSet[V]) push(v V) {
	s.front = newNode(v, s.front)
	s.used++
}

// eraseAt removes the element held by p in O(1) without a predecessor link:
// p takes over the value and link of its successor and the successor node is
// released. When the successor is the trailer, p becomes the new trailer and
// its slot is cleared.
//
// Any reference to the former successor is left on a released node. Only
// iterators, through the modification count, are protected against that.
// The caller accounts for the modification.
func (s *LinkedSet[V]) eraseAt(p *node[V]) {
	succ := p.next
	if succ == s.trailer {
		s.trailer = p
		p.release()
	} else {
		p.value = succ.value
		p.next = succ.next
	}
	succ.release()
	s.used--
}
