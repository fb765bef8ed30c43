package cubelab

import "math"

// sliceTolerance is half the lattice spacing: wide enough to absorb float
// drift left by prior animations, tight enough never to straddle two
// adjacent layers.
const sliceTolerance = 0.25

// selectSlice returns the pieces whose current coordinate along the
// move's axis matches the layer's lattice coordinate. A well-formed move
// selects at least one piece; an empty result is the degenerate-move
// condition handled by the queue consumer.
func selectSlice(pieces []*Piece, axis Axis, layer, size int) []*Piece {
	target := layerCoord(layer, size)

	var slice []*Piece
	for _, p := range pieces {
		if math.Abs(p.Pos[int(axis)]-target) < sliceTolerance {
			slice = append(slice, p)
		}
	}
	return slice
}
