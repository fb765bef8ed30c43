package cubelab

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// frontCamera looks straight down the -z axis at the front face.
var frontCamera = Camera{
	Right:   mgl64.Vec3{1, 0, 0},
	Up:      mgl64.Vec3{0, 1, 0},
	Forward: mgl64.Vec3{0, 0, -1},
}

func pickFront(t *testing.T, e *Engine, x, y float64) *Selection {
	t.Helper()
	p := findPiece(t, e, x, y, latticeOffset(e.Size()))
	sel, err := e.PickFace(p.ID, mgl64.Vec3{0, 0, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	return sel
}

func TestGestureRightOnFrontFace(t *testing.T) {
	e, _ := New(3)
	sel := pickFront(t, e, 1, 1)

	// Swiping right on the front face: axis = (+z) x (+x) = +y, layer
	// from the piece's y coordinate.
	m, err := e.TranslateGesture(sel, GestureRight, frontCamera)
	if err != nil {
		t.Fatal(err)
	}
	want := Move{Axis: AxisY, Layer: 2, Dir: 1}
	if m != want {
		t.Errorf("gesture right = %v, want %v", m, want)
	}
}

func TestGestureUpOnFrontFace(t *testing.T) {
	e, _ := New(3)
	sel := pickFront(t, e, 1, 0)

	// Swiping up on the front face: axis = (+z) x (+y) = -x.
	m, err := e.TranslateGesture(sel, GestureUp, frontCamera)
	if err != nil {
		t.Fatal(err)
	}
	want := Move{Axis: AxisX, Layer: 2, Dir: -1}
	if m != want {
		t.Errorf("gesture up = %v, want %v", m, want)
	}
}

func TestGestureDirectionsAreOpposite(t *testing.T) {
	e, _ := New(4)
	sel := pickFront(t, e, 0.5, -1.5)

	up, err := e.TranslateGesture(sel, GestureUp, frontCamera)
	if err != nil {
		t.Fatal(err)
	}
	down, err := e.TranslateGesture(sel, GestureDown, frontCamera)
	if err != nil {
		t.Fatal(err)
	}
	if down != up.Inverse() {
		t.Errorf("down %v is not the inverse of up %v", down, up)
	}

	left, _ := e.TranslateGesture(sel, GestureLeft, frontCamera)
	right, _ := e.TranslateGesture(sel, GestureRight, frontCamera)
	if left != right.Inverse() {
		t.Errorf("left %v is not the inverse of right %v", left, right)
	}
}

func TestGestureTracksCameraOrbit(t *testing.T) {
	// After orbiting 90 degrees around the cube, the same on-screen
	// "right" must map to a different physical axis.
	e, _ := New(3)
	p := findPiece(t, e, 1, 0, 0)
	sel, err := e.PickFace(p.ID, mgl64.Vec3{0.5, 0, 0})
	if err != nil {
		t.Fatal(err)
	}

	sideCamera := Camera{
		Right:   mgl64.Vec3{0, 0, -1},
		Up:      mgl64.Vec3{0, 1, 0},
		Forward: mgl64.Vec3{-1, 0, 0},
	}

	// Selection normal +x, swipe -z: axis = (+x) x (-z) = +y.
	m, err := e.TranslateGesture(sel, GestureRight, sideCamera)
	if err != nil {
		t.Fatal(err)
	}
	want := Move{Axis: AxisY, Layer: 1, Dir: 1}
	if m != want {
		t.Errorf("orbited gesture right = %v, want %v", m, want)
	}
}

func TestGestureParallelToNormalIsAmbiguous(t *testing.T) {
	e, _ := New(3)
	p := findPiece(t, e, 0, 0, 1)
	sel, err := e.PickFace(p.ID, mgl64.Vec3{0, 0, 0.5})
	if err != nil {
		t.Fatal(err)
	}

	// A camera staring along -y makes its Up parallel to the front
	// normal; the cross product vanishes.
	degenerate := Camera{
		Right:   mgl64.Vec3{1, 0, 0},
		Up:      mgl64.Vec3{0, 0, 1},
		Forward: mgl64.Vec3{0, -1, 0},
	}
	if _, err := e.TranslateGesture(sel, GestureUp, degenerate); err != ErrAmbiguousGesture {
		t.Errorf("parallel gesture err = %v, want ErrAmbiguousGesture", err)
	}
}

func TestApplyGestureConsumesSelection(t *testing.T) {
	e, _ := New(3)
	pickFront(t, e, 1, 1)

	m, err := e.ApplyGesture(GestureRight, frontCamera)
	if err != nil {
		t.Fatal(err)
	}
	if e.Selection() != nil {
		t.Error("selection should be cleared once its move is queued")
	}
	if e.QueueLen() != 1 {
		t.Fatalf("queue length %d, want 1", e.QueueLen())
	}

	drain(t, e)
	h := e.History()
	if len(h) != 1 || h[0] != m {
		t.Errorf("history %v, want [%v]", h, m)
	}
}

func TestApplyGestureWithoutSelection(t *testing.T) {
	e, _ := New(3)
	if _, err := e.ApplyGesture(GestureUp, frontCamera); err != ErrNoSelection {
		t.Errorf("err = %v, want ErrNoSelection", err)
	}
}

func TestApplyGestureWhileBusyKeepsSelection(t *testing.T) {
	e, _ := New(3)
	e.Enqueue(Move{Axis: AxisX, Layer: 0, Dir: 1})
	e.Step(1.0 / 60)

	// Select a piece untouched by the x0 turn.
	p := findPiece(t, e, 1, 1, 1)
	if _, err := e.PickFace(p.ID, mgl64.Vec3{0.5, 0, 0}); err != nil {
		t.Fatal(err)
	}

	if _, err := e.ApplyGesture(GestureRight, frontCamera); err != ErrBusy {
		t.Errorf("err = %v, want ErrBusy", err)
	}
	if e.Selection() == nil {
		t.Error("declined gesture must leave the selection intact")
	}
}
