package cubelab

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSnapCoordParity(t *testing.T) {
	cases := []struct {
		size int
		in   float64
		want float64
	}{
		{3, 0.02, 0},
		{3, 0.97, 1},
		{3, -1.04, -1},
		{2, 0.48, 0.5},
		{2, -0.53, -0.5},
		{4, 1.45, 1.5},
		{4, -1.52, -1.5},
		{10, 4.49, 4.5},
	}
	for _, c := range cases {
		got := snapCoord(c.in, c.size)
		if got != c.want {
			t.Errorf("snapCoord(%v, %d) = %v, want %v", c.in, c.size, got, c.want)
		}
	}
}

func TestSnapPositionIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, size := range []int{2, 3, 4, 7, 10} {
		limit := latticeOffset(size)
		for i := 0; i < 200; i++ {
			v := mgl64.Vec3{
				(rng.Float64()*2 - 1) * limit,
				(rng.Float64()*2 - 1) * limit,
				(rng.Float64()*2 - 1) * limit,
			}
			once := snapPosition(v, size)
			twice := snapPosition(once, size)
			if once != twice {
				t.Fatalf("size %d: snap not idempotent: %v -> %v -> %v", size, v, once, twice)
			}
		}
	}
}

func TestSnapOrientationIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		q := mgl64.QuatRotate(rng.Float64()*2*math.Pi, mgl64.Vec3{
			rng.Float64()*2 - 1,
			rng.Float64()*2 - 1,
			rng.Float64()*2 - 1,
		}.Normalize())

		once := snapOrientation(q)
		twice := snapOrientation(once)
		if once != twice {
			t.Fatalf("snapOrientation not idempotent: %v -> %v -> %v", q, once, twice)
		}
	}
}

func TestSnapOrientationProducesAxisAlignedFrame(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	units := []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	isSignedUnit := func(v mgl64.Vec3) bool {
		for _, u := range units {
			if vecEquals(v, u, exactTolerance) || vecEquals(v, u.Mul(-1), exactTolerance) {
				return true
			}
		}
		return false
	}

	for i := 0; i < 100; i++ {
		q := mgl64.QuatRotate(rng.Float64()*2*math.Pi, mgl64.Vec3{
			rng.Float64()*2 - 1,
			rng.Float64()*2 - 1,
			rng.Float64()*2 - 1,
		}.Normalize())

		s := snapOrientation(q)
		for _, u := range units {
			if !isSignedUnit(s.Rotate(u)) {
				t.Fatalf("snapped orientation basis %v not axis-aligned (from %v)", s.Rotate(u), q)
			}
		}
	}
}

func TestSnapNearQuarterTurnRecoversExactRotation(t *testing.T) {
	// A barely overshot quarter turn about y must snap to the exact one.
	drifted := mgl64.QuatRotate(math.Pi/2+0.004, mgl64.Vec3{0, 1, 0})
	s := snapOrientation(drifted)

	got := s.Rotate(mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{0, 0, -1}
	if !vecEquals(got, want, exactTolerance) {
		t.Errorf("snapped quarter turn rotates x to %v, want %v", got, want)
	}
}
