package cubelab

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// exactTolerance is the tight epsilon used for at-rest comparisons, as
// opposed to the loose in-flight slice tolerance.
const exactTolerance = 1e-6

// pickTolerance bounds how far a piece's boundary coordinate may sit
// from the lattice limit and still count as the cube's outer surface.
const pickTolerance = 0.25

func vecEquals(a, b mgl64.Vec3, tol float64) bool {
	return math.Abs(a.X()-b.X()) < tol &&
		math.Abs(a.Y()-b.Y()) < tol &&
		math.Abs(a.Z()-b.Z()) < tol
}

// Selection is the transient interaction state anchored on one exterior
// face of one piece. It is created by a valid face pick or a hint,
// cleared on move execution or explicit dismissal, and its cached
// coordinate is refreshed after every committed turn.
type Selection struct {
	PieceID     int
	Face        Face
	WorldNormal mgl64.Vec3
	Coord       mgl64.Vec3
}

// localFace returns the local face nearest a piece-local hit point: the
// face whose axis has the largest-magnitude hit component, sign choosing
// between the pair.
func localFace(hit mgl64.Vec3) Face {
	dominant := 0
	for i := 1; i < 3; i++ {
		if math.Abs(hit[i]) > math.Abs(hit[dominant]) {
			dominant = i
		}
	}

	switch Axis(dominant) {
	case AxisX:
		if hit[dominant] < 0 {
			return FaceL
		}
		return FaceR
	case AxisY:
		if hit[dominant] < 0 {
			return FaceD
		}
		return FaceU
	default:
		if hit[dominant] < 0 {
			return FaceB
		}
		return FaceF
	}
}

// exteriorFace reports whether the given local face of a piece, in the
// piece's current orientation and position, lies on the outer boundary
// of the whole cube. Faces that merely point into a gap exposed mid-turn
// or sit adjacent to the interior fail this check.
func (e *Engine) exteriorFace(p *Piece, f Face) (mgl64.Vec3, bool) {
	normal := p.WorldNormal(f)
	world := snapAxisVec(normal)
	dominant := 0
	for i := 1; i < 3; i++ {
		if math.Abs(world[i]) > math.Abs(world[dominant]) {
			dominant = i
		}
	}

	limit := latticeOffset(e.size)
	want := world[dominant] * limit
	if math.Abs(p.Pos[dominant]-want) > pickTolerance {
		return normal, false
	}
	return normal, true
}

// HoverFace resolves a piece-local hit point to the face it lies on and
// reports whether that face is a genuine exterior face. It is a pure
// query: no selection state changes. Hosts use it for hover feedback.
func (e *Engine) HoverFace(pieceID int, localHit mgl64.Vec3) (Face, bool) {
	p := e.Piece(pieceID)
	if p == nil {
		return 0, false
	}
	f := localFace(localHit)
	_, ok := e.exteriorFace(p, f)
	return f, ok
}

// PickFace resolves a piece-local hit point to a face, validates that
// the face is an exterior face of the assembled cube, and makes it the
// active Selection. An invalid pick clears any existing selection and
// returns ErrInteriorFace.
func (e *Engine) PickFace(pieceID int, localHit mgl64.Vec3) (*Selection, error) {
	p := e.Piece(pieceID)
	if p == nil {
		e.clearSelection()
		return nil, ErrPieceNotFound
	}

	f := localFace(localHit)
	normal, ok := e.exteriorFace(p, f)
	if !ok {
		e.clearSelection()
		return nil, ErrInteriorFace
	}

	e.setSelection(&Selection{
		PieceID:     p.ID,
		Face:        f,
		WorldNormal: normal,
		Coord:       p.Pos,
	})
	return e.sel, nil
}

// Selection returns the active selection, or nil.
func (e *Engine) Selection() *Selection {
	return e.sel
}

// ClearSelection dismisses the active selection, if any.
func (e *Engine) ClearSelection() {
	e.clearSelection()
}

func (e *Engine) setSelection(sel *Selection) {
	e.sel = sel
	if e.onSelected != nil {
		e.onSelected(sel)
	}
}

func (e *Engine) clearSelection() {
	if e.sel == nil {
		return
	}
	e.sel = nil
	if e.onSelected != nil {
		e.onSelected(nil)
	}
}

// refreshSelection re-reads the selected piece's post-commit transform
// so the selection never carries stale coordinates. If the selected face
// is no longer exterior after the turn, the selection is cleared.
func (e *Engine) refreshSelection() {
	if e.sel == nil {
		return
	}
	p := e.Piece(e.sel.PieceID)
	if p == nil {
		e.clearSelection()
		return
	}
	normal, ok := e.exteriorFace(p, e.sel.Face)
	if !ok {
		e.clearSelection()
		return
	}
	e.sel.WorldNormal = normal
	e.sel.Coord = p.Pos
	if e.onSelected != nil {
		e.onSelected(e.sel)
	}
}
