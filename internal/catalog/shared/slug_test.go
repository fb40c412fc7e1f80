package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Elf Bar BC5000 Watermelon", "elf-bar-bc5000-watermelon"},
		{"Crème Brûlée 60ml", "creme-brulee-60ml"},
		{"  spaced   out  ", "spaced-out"},
		{"UPPER_case/mixed", "upper-case-mixed"},
		{"---", ""},
		{"50/50 VG+PG", "50-50-vg-pg"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}
