package collections

import "fmt"

// node is one link of a singly linked chain. A node owns the chain that
// follows it.
type node[V any] struct {
	value V
	next  *node[V]
}

func newNode[V any](v V, next *node[V]) *node[V] {
	return &node[V]{
		value: v,
		next:  next,
	}
}

// release detaches n from its chain and drops its value. Any alias still
// holding n afterwards sees a valueless node that leads nowhere.
func (n *node[V]) release() {
	var zero V
	n.value = zero
	n.next = nil
}

// releaseChain releases every node from n up to, but not including, stop.
func releaseChain[V any](n, stop *node[V]) {
	for n != stop {
		next := n.next
		n.release()
		n = next
	}
}

func addr[V any](n *node[V]) string {
	if n == nil {
		return "nil"
	}
	return fmt.Sprintf("%p", n)
}
