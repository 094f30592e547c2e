package google

import (
	"errors"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestIsGone(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not found", &googleapi.Error{Code: 404}, true},
		{"gone", &googleapi.Error{Code: 410}, true},
		{"server error", &googleapi.Error{Code: 500}, false},
		{"plain error", errors.New("boom"), false},
		{"wrapped gone", errorsJoin(&googleapi.Error{Code: 410}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isGone(tt.err); got != tt.want {
				t.Errorf("isGone(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func errorsJoin(err error) error {
	return &wrapped{err}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }
