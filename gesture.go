package cubelab

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// GestureDir is a requested visual move direction relative to the
// current camera orientation.
type GestureDir int

const (
	GestureUp GestureDir = iota
	GestureDown
	GestureLeft
	GestureRight
)

func (d GestureDir) String() string {
	switch d {
	case GestureUp:
		return "up"
	case GestureDown:
		return "down"
	case GestureLeft:
		return "left"
	default:
		return "right"
	}
}

// Camera carries the live world-space basis of the viewer. Right and Up
// span the screen plane; Forward points from the camera toward the cube.
// Gesture translation reads the basis at gesture time, never a cached
// copy, so the same four on-screen directions stay physically correct at
// any orbit angle.
type Camera struct {
	Right   mgl64.Vec3
	Up      mgl64.Vec3
	Forward mgl64.Vec3
}

// swipeVector maps the requested direction to an intended world-space
// swipe along the camera basis.
func (c Camera) swipeVector(d GestureDir) mgl64.Vec3 {
	switch d {
	case GestureUp:
		return c.Up
	case GestureDown:
		return c.Up.Mul(-1)
	case GestureLeft:
		return c.Right.Mul(-1)
	default:
		return c.Right
	}
}

// TranslateGesture converts a validated selection plus a camera-relative
// direction into a concrete move: the rotation axis is the cross product
// of the selection's world normal and the intended swipe vector, snapped
// to the cardinal axis with the largest component; the sign of that
// component is the move direction; the selection coordinate along the
// chosen axis, rounded to a layer index, is the move layer.
func (e *Engine) TranslateGesture(sel *Selection, d GestureDir, cam Camera) (Move, error) {
	if sel == nil {
		return Move{}, ErrNoSelection
	}

	cross := sel.WorldNormal.Cross(cam.swipeVector(d))

	dominant := 0
	for i := 1; i < 3; i++ {
		if math.Abs(cross[i]) > math.Abs(cross[dominant]) {
			dominant = i
		}
	}
	if math.Abs(cross[dominant]) < exactTolerance {
		return Move{}, ErrAmbiguousGesture
	}

	dir := 1
	if cross[dominant] < 0 {
		dir = -1
	}

	axis := Axis(dominant)
	return Move{
		Axis:  axis,
		Layer: coordLayer(sel.Coord[dominant], e.size),
		Dir:   dir,
	}, nil
}

// ApplyGesture translates the active selection through TranslateGesture
// and enqueues the resulting move. The selection is consumed on success.
// While the engine is busy the gesture is declined with ErrBusy and the
// selection is left intact.
func (e *Engine) ApplyGesture(d GestureDir, cam Camera) (Move, error) {
	move, err := e.TranslateGesture(e.sel, d, cam)
	if err != nil {
		return Move{}, err
	}
	if err := e.Enqueue(move); err != nil {
		return Move{}, err
	}
	e.clearSelection()
	return move, nil
}
