package localize

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStack indicates a restore attempted a pop on an exhausted
	// value stack. The stack was mutated outside this package, or a
	// guard was copied and released twice through distinct copies.
	ErrEmptyStack = errors.New("localize: restore from empty value stack")
	// ErrReleaseOrder indicates a guard was released while a more deeply
	// nested guard on the same attribute was still live.
	ErrReleaseOrder = errors.New("localize: guards must release in reverse creation order")
)

// ContractError carries attribute context for a broken LIFO contract.
// Contract violations are programming errors, not runtime conditions:
// they surface as panics holding a *ContractError value, never as
// returned errors, because silent continuation would leave the
// attribute permanently out of sync with what callers saved.
type ContractError struct {
	Attr  string
	Depth int
	Err   error
}

func (e *ContractError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v (attr=%s depth=%d)", e.Err, describeAttr(e.Attr), e.Depth)
}

func (e *ContractError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeAttr(attr string) string {
	if attr == "" {
		return "<unnamed>"
	}
	return attr
}

func contractViolation(attr string, depth int, err error) *ContractError {
	return &ContractError{Attr: attr, Depth: depth, Err: err}
}
