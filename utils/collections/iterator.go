package collections

// Iterator is a fail-fast cursor over a linked container. Every operation
// except AtEnd first checks that the container has not been structurally
// modified by anyone other than this iterator since it last looked.
type Iterator[V any] interface {
	// Next advances the cursor. After Erase it only re-settles the cursor on
	// the element that moved into the erased slot.
	Next() error
	// Erase removes the element under the cursor and returns it.
	Erase() (V, error)
	Value() (V, error)
	Ref() (*V, error)
	Equal(other Iterator[V]) (bool, error)
	AtEnd() bool
	String() string
}

// cursorState tells whether the cursor denotes a live element or sits on the
// slot left behind by Erase, waiting for Next to catch up.
type cursorState int

const (
	settled cursorState = iota
	justErased
)

func (s cursorState) canErase() bool {
	return s == settled
}
