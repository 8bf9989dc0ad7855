package collections

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyContainer         = errors.New("empty container")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrCannotErase            = errors.New("cannot erase")
	ErrIllegalPosition        = errors.New("illegal iterator position")
	ErrIncompatibleIterator   = errors.New("incompatible iterator")
)

// OpError records the operation that raised one of the error kinds above.
type OpError struct {
	Op     string
	Kind   error
	Detail string
}

func (e *OpError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Detail)
}

func (e *OpError) Unwrap() error {
	return e.Kind
}

func newOpError(op string, kind error, detail string) *OpError {
	err := &OpError{
		Op:     op,
		Kind:   kind,
		Detail: detail,
	}
	logger.WithFields(logFields{"op": op, "kind": kind.Error()}).Debug("collection operation failed: ", detail)
	return err
}

func staleIterator(op string, expected, actual uint64) *OpError {
	err := &OpError{
		Op:     op,
		Kind:   ErrConcurrentModification,
		Detail: fmt.Sprintf("expected_mod_count=%d mod_count=%d", expected, actual),
	}
	logger.WithFields(logFields{
		"op":                 op,
		"expected_mod_count": expected,
		"mod_count":          actual,
	}).Debug("stale iterator detected")
	return err
}
