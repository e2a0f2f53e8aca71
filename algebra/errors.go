package algebra

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by DomainError.
var (
	ErrBadCharacteristic = errors.New("characteristic must be an integer >= 2")
	ErrNotPrime          = errors.New("characteristic is not prime")
	ErrBadDegree         = errors.New("extension degree must be >= 1")
	ErrBadFactor         = errors.New("invariant factors must be >= 1")
	ErrOverflow          = errors.New("value exceeds 64-bit range")
)

// DomainError reports inputs outside the domain of Analyze.
type DomainError struct {
	Field string // "p", "t" or "param[i]"
	Value string
	Err   error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("algebra: invalid %s=%s: %v", e.Field, e.Value, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

// InternalInvariantError reports a broken arithmetic invariant, such as a
// multiplicity that is not an exact integer. It indicates a defect, not bad input.
type InternalInvariantError struct {
	Op     string
	Vector []uint64
	Detail string
}

func (e *InternalInvariantError) Error() string {
	if e.Vector == nil {
		return fmt.Sprintf("algebra: internal invariant violated in %s: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("algebra: internal invariant violated in %s for d=%v: %s", e.Op, e.Vector, e.Detail)
}
