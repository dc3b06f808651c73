package rootfind

import (
	"errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "op and sentinel",
			err:  &Error{Op: "bisection", Message: "tolerance not met", Err: ErrNoConvergence},
			want: "bisection: tolerance not met: no convergence within iteration budget",
		},
		{
			name: "op only",
			err:  &Error{Op: "find_bracket", Message: "probe budget exhausted"},
			want: "find_bracket: probe budget exhausted",
		},
		{
			name: "message only",
			err:  &Error{Message: "bad input"},
			want: "bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := noConvergence("secant", 40)
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("wrapped error does not match ErrNoConvergence")
	}
	if errors.Is(err, ErrNoBracket) {
		t.Errorf("wrapped error must not match ErrNoBracket")
	}
}
