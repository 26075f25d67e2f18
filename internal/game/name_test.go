package game

import (
	"errors"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"Ada", "Ada", nil},
		{"  Grace  ", "Grace", nil},
		{"", "", ErrEmptyName},
		{"   \t ", "", ErrEmptyName},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnop", nil},
	}

	for _, tc := range tests {
		got, err := ValidateName(tc.in)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("ValidateName(%q) error = %v, expected %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ValidateName(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
