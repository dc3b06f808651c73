package rootfind

import (
	"errors"
	"fmt"
)

// Sentinel outcomes. Both classes of "no result" are explicit values the
// caller must check for; a solver never substitutes a partial estimate.
var (
	// ErrNoConvergence reports that the iteration budget was exhausted
	// before the tolerance test passed, or that a bracketing precondition
	// did not hold.
	ErrNoConvergence = errors.New("no convergence within iteration budget")

	// ErrNoBracket reports that the expanding search exhausted its probe
	// budget without finding a sign change.
	ErrNoBracket = errors.New("no sign change within probed range")
)

// Error wraps a solver outcome with operation context. errors.Is still
// matches the underlying sentinel through Unwrap.
type Error struct {
	// Op is the solver or helper that produced the error.
	Op string
	// Message describes what went wrong.
	Message string
	// Err is the underlying sentinel, if any.
	Err error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying sentinel, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// noConvergence builds the uniform not-found outcome for a solver.
func noConvergence(op string, iterations int) error {
	return &Error{
		Op:      op,
		Message: fmt.Sprintf("tolerance not met after %d iterations", iterations),
		Err:     ErrNoConvergence,
	}
}
