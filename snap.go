package cubelab

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// snapBias breaks exact-half rounding ties consistently toward the
// positive side so repeated snapping is stable.
const snapBias = 1e-9

// snapCoord rounds a single coordinate component to the nearest valid
// lattice value for the cube's parity: half-integers for even N,
// integers for odd N.
func snapCoord(v float64, size int) float64 {
	if size%2 == 0 {
		return math.Round(v-0.5+snapBias) + 0.5
	}
	return math.Round(v + snapBias)
}

// snapPosition rounds each component of a drifted position independently
// onto the lattice.
func snapPosition(v mgl64.Vec3, size int) mgl64.Vec3 {
	return mgl64.Vec3{
		snapCoord(v.X(), size),
		snapCoord(v.Y(), size),
		snapCoord(v.Z(), size),
	}
}

// snapAxisVec forces a near-unit vector onto the signed cardinal axis
// with the largest magnitude component.
func snapAxisVec(v mgl64.Vec3) mgl64.Vec3 {
	dominant := 0
	for i := 1; i < 3; i++ {
		if math.Abs(v[i]) > math.Abs(v[dominant]) {
			dominant = i
		}
	}
	out := mgl64.Vec3{}
	if v[dominant] < 0 {
		out[dominant] = -1
	} else {
		out[dominant] = 1
	}
	return out
}

// snapOrientation returns the axis-aligned rotation nearest to q.
//
// The drifted basis vectors are snapped directly: the rotated X and Y
// unit vectors are each forced onto their nearest signed cardinal axis
// and Z is rebuilt as their cross product, so the result is always an
// exactly orthonormal right-handed frame regardless of accumulated
// error. Re-snapping an already-snapped orientation is a no-op.
func snapOrientation(q mgl64.Quat) mgl64.Quat {
	bx := snapAxisVec(q.Rotate(mgl64.Vec3{1, 0, 0}))
	by := snapAxisVec(q.Rotate(mgl64.Vec3{0, 1, 0}))
	bz := bx.Cross(by)

	m := mgl64.Mat4FromCols(bx.Vec4(0), by.Vec4(0), bz.Vec4(0), mgl64.Vec4{0, 0, 0, 1})
	return mgl64.Mat4ToQuat(m)
}

// snapPiece forces a piece's possibly drifted transform back onto the
// exact lattice and the exact 90-degree orientation grid.
func snapPiece(p *Piece, size int) {
	p.Pos = snapPosition(p.Pos, size)
	p.Rot = snapOrientation(p.Rot)
}
