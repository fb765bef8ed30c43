// Package tui implements the interactive terminal front-end for the
// cube engine: an orbiting orthographic view rendered into a cell grid,
// with mouse face picking and keyboard gestures.
package tui

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/seamusw/cubelab"
)

// orbitCamera is an orthographic camera orbiting the cube center.
type orbitCamera struct {
	yaw   float64 // radians around the world y axis
	pitch float64 // radians above the horizon
}

const (
	orbitStep = math.Pi / 18
	pitchMax  = math.Pi/2 - 0.1
)

// newOrbitCamera starts at the conventional three-quarter view: front,
// right and top faces visible.
func newOrbitCamera() orbitCamera {
	return orbitCamera{yaw: math.Pi / 7, pitch: math.Pi / 7}
}

func (c *orbitCamera) orbit(dyaw, dpitch float64) {
	c.yaw += dyaw
	c.pitch += dpitch
	if c.pitch > pitchMax {
		c.pitch = pitchMax
	}
	if c.pitch < -pitchMax {
		c.pitch = -pitchMax
	}
}

// basis returns the live camera basis for gesture translation and
// projection. Forward points from the viewer toward the cube.
func (c orbitCamera) basis() cubelab.Camera {
	eye := mgl64.Vec3{
		math.Cos(c.pitch) * math.Sin(c.yaw),
		math.Sin(c.pitch),
		math.Cos(c.pitch) * math.Cos(c.yaw),
	}
	forward := eye.Mul(-1)
	right := forward.Cross(mgl64.Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward).Normalize()
	return cubelab.Camera{Right: right, Up: up, Forward: forward}
}
