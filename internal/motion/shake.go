// Package motion detects shake gestures from a stream of acceleration
// samples and turns them into trigger callbacks.
package motion

import (
	"math"
	"time"
)

// Default detector tuning.
const (
	DefaultThreshold = 12.0 // acceleration delta magnitude that counts as a shake
	DefaultCooldown  = 1500 * time.Millisecond

	// OrientationThreshold suits detectors fed unit-quaternion vector
	// components instead of accelerations. Those components live in
	// [-1, 1], so sample deltas top out near 3.5 and a violent flip
	// lands around 2; slow deliberate turns stay well under 0.5.
	OrientationThreshold = 0.5
)

// Detector watches consecutive acceleration samples and fires a callback
// when the sample-to-sample delta exceeds the threshold. A cooldown
// keeps one physical shake from triggering repeatedly.
//
// Detector is not safe for concurrent use; feed it from the same loop
// that owns the sensor.
type Detector struct {
	threshold float64
	cooldown  time.Duration

	hasPrev             bool
	prevX, prevY, prevZ float64
	lastTrigger         time.Time

	onShake func()
}

// NewDetector creates a detector with the given threshold and cooldown.
// Non-positive arguments fall back to the defaults.
func NewDetector(threshold float64, cooldown time.Duration) *Detector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Detector{threshold: threshold, cooldown: cooldown}
}

// OnShake sets the callback fired when a shake is detected.
func (d *Detector) OnShake(cb func()) {
	d.onShake = cb
}

// Sample feeds one acceleration reading. Returns true if this sample
// triggered a shake.
func (d *Detector) Sample(x, y, z float64, at time.Time) bool {
	if !d.hasPrev {
		d.prevX, d.prevY, d.prevZ = x, y, z
		d.hasPrev = true
		return false
	}

	dx, dy, dz := x-d.prevX, y-d.prevY, z-d.prevZ
	d.prevX, d.prevY, d.prevZ = x, y, z

	delta := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if delta < d.threshold {
		return false
	}
	if !d.lastTrigger.IsZero() && at.Sub(d.lastTrigger) < d.cooldown {
		return false
	}

	d.lastTrigger = at
	if d.onShake != nil {
		d.onShake()
	}
	return true
}

// Reset forgets the previous sample and cooldown state.
func (d *Detector) Reset() {
	d.hasPrev = false
	d.lastTrigger = time.Time{}
}
