package linkedhash

import "fmt"

// ContractViolation is raised (via panic) for misuse that spec classifies
// as a fatal programmer error rather than a benign rejection: using an
// Iterator after a foreign mutation, removing via an Iterator twice in a
// row without an intervening Next, or growing a table past the range a
// slot index can address.
//
// Iterator misuse and capacity overflow are detected before any
// container field is written, so the container's observable state is
// unchanged by a call that panics that way. MustAdd panics after its add
// was rejected; the stored elements are unchanged, but the slot array
// may already have been enlarged by the load-factor check.
type ContractViolation struct {
	Op      string
	Message string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("linkedhash: %s: %s", e.Op, e.Message)
}

func violate(op, format string, args ...any) {
	panic(&ContractViolation{Op: op, Message: fmt.Sprintf(format, args...)})
}
