package randomtest

import (
	"testing"

	"github.com/louisbranch/guess/internal/platform/random"
)

var _ random.Source = Fixed(0)

func TestFixedClampsToRange(t *testing.T) {
	tcs := []struct {
		fixed Fixed
		want  int
	}{
		{fixed: 42, want: 42},
		{fixed: 0, want: 1},
		{fixed: 500, want: 100},
	}
	for _, tc := range tcs {
		if got := tc.fixed.IntRange(1, 100); got != tc.want {
			t.Fatalf("Fixed(%d).IntRange(1, 100) = %d, want %d", tc.fixed, got, tc.want)
		}
	}
}
