package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"user not found", ErrUserNotFound},
		{"user inactive", ErrUserInactive},
		{"directory unavailable", ErrDirectoryUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}

	if stdErrors.Is(ErrNotFound, ErrUserNotFound) {
		t.Fatal("expected store and directory not-found errors to stay distinct")
	}
}
