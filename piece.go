package cubelab

import "github.com/go-gl/mathgl/mgl64"

// Face identifies one of the six local faces of a piece, named after the
// standard cube sides: Right (+x), Left (-x), Up (+y), Down (-y),
// Front (+z), Back (-z).
type Face int

const (
	FaceR Face = 0
	FaceL Face = 1
	FaceU Face = 2
	FaceD Face = 3
	FaceF Face = 4
	FaceB Face = 5
)

func (f Face) String() string {
	switch f {
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Axis returns the cardinal axis the face lies on.
func (f Face) Axis() Axis {
	switch f {
	case FaceR, FaceL:
		return AxisX
	case FaceU, FaceD:
		return AxisY
	default:
		return AxisZ
	}
}

// Sign returns +1 for the positive face of an axis pair, -1 for the
// negative one.
func (f Face) Sign() float64 {
	switch f {
	case FaceR, FaceU, FaceF:
		return 1
	default:
		return -1
	}
}

// Normal returns the face's outward normal in piece-local space.
func (f Face) Normal() mgl64.Vec3 {
	return f.Axis().Vec().Mul(f.Sign())
}

// faces lists all six faces in a stable order.
var faces = [6]Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}

// Piece is one visible unit of the cube.
//
// Initial is the piece's position in the solved state and never changes;
// it alone determines which sticker colors the piece carries. Pos and Rot
// are the piece's present transform: continuous-valued only while a turn
// is animating, otherwise always an exact lattice point and one of the 24
// axis-aligned rotations.
type Piece struct {
	ID      int
	Initial mgl64.Vec3
	Pos     mgl64.Vec3
	Rot     mgl64.Quat

	stickers [6]bool
}

// HasSticker reports whether the piece carries a sticker on the given
// local face. Sticker assignment is a function of the initial position
// and is invariant across moves.
func (p *Piece) HasSticker(f Face) bool {
	return p.stickers[f]
}

// WorldNormal returns the outward normal of the given local face rotated
// into world space by the piece's current orientation.
func (p *Piece) WorldNormal(f Face) mgl64.Vec3 {
	return p.Rot.Rotate(f.Normal())
}
