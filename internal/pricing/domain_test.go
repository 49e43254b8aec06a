package pricing

import (
	"testing"

	"github.com/contactkeval/greek-plotter/internal/testutil"
)

func TestSpotDomain(t *testing.T) {
	tests := []struct {
		name   string
		spot   float64
		strike float64
		lo, hi float64
	}{
		{"atm", 100, 100, 80, 120},
		{"spot below strike", 50, 100, 40, 120},
		{"spot above strike", 150, 100, 80, 180},
		{"negative spot clamps to zero", -10, 100, 0, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := SpotDomain(tt.spot, tt.strike, DefaultPoints)
			if len(xs) != DefaultPoints {
				t.Fatalf("expected %d points, got %d", DefaultPoints, len(xs))
			}
			testutil.AssertClose(t, "first", xs[0], tt.lo, 1e-9)
			testutil.AssertClose(t, "last", xs[len(xs)-1], tt.hi, 1e-9)

			step := (tt.hi - tt.lo) / float64(DefaultPoints-1)
			for i := 1; i < len(xs); i++ {
				testutil.AssertClose(t, "step", xs[i]-xs[i-1], step, 1e-9)
			}
		})
	}
}

func TestSpotDomainSmallN(t *testing.T) {
	if xs := SpotDomain(100, 100, 0); xs != nil {
		t.Fatalf("expected nil for n=0, got %v", xs)
	}
	if xs := SpotDomain(100, 100, 1); len(xs) != 1 || xs[0] != 80 {
		t.Fatalf("expected [80], got %v", xs)
	}
	xs := SpotDomain(100, 100, 2)
	if len(xs) != 2 || xs[0] != 80 || xs[1] != 120 {
		t.Fatalf("expected [80 120], got %v", xs)
	}
}
