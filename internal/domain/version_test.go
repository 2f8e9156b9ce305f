package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextVersionLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.0", "2.0"},
		{"2.3", "3.0"},
		{"10.7", "11.0"},
		{"3", "4.0"},
		{" 1.0 ", "2.0"},
		{"", "1.0"},
		{"rev-a", "rev-a.1"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, NextVersionLabel(tc.in), "input %q", tc.in)
	}
}
