package cubelab

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cube size limits. Sizes outside this range are rejected by New and
// SetSize.
const (
	MinSize = 2
	MaxSize = 10
)

// surfaceTolerance guards the float comparison that decides whether a
// coordinate component sits on the outer boundary.
const surfaceTolerance = 1e-2

// latticeOffset returns (N-1)/2, the distance from the cube center to the
// outermost layer. Lattice coordinates run from -offset to +offset in
// steps of 1: half-integers for even N, integers for odd N.
func latticeOffset(size int) float64 {
	return float64(size-1) / 2
}

// layerCoord converts a 0-based layer index to its lattice coordinate.
func layerCoord(layer, size int) float64 {
	return float64(layer) - latticeOffset(size)
}

// coordLayer converts a lattice coordinate back to a 0-based layer index.
func coordLayer(coord float64, size int) int {
	layer := int(math.Round(coord + latticeOffset(size)))
	if layer < 0 {
		layer = 0
	}
	if layer > size-1 {
		layer = size - 1
	}
	return layer
}

// onSurface reports whether a lattice coordinate triple touches at least
// one outer face of the cube.
func onSurface(x, y, z, limit float64) bool {
	return math.Abs(math.Abs(x)-limit) < surfaceTolerance ||
		math.Abs(math.Abs(y)-limit) < surfaceTolerance ||
		math.Abs(math.Abs(z)-limit) < surfaceTolerance
}

// generatePieces builds the surface-piece set for an N×N×N cube. Pieces
// strictly interior to the cube are never rendered and never participate
// in a turn, so they are not generated at all. Iteration order is stable:
// x outermost, then y, then z, ids assigned in that order.
func generatePieces(size int) []*Piece {
	limit := latticeOffset(size)
	pieces := make([]*Piece, 0, size*size*size-max(size-2, 0)*max(size-2, 0)*max(size-2, 0))

	id := 0
	for xi := 0; xi < size; xi++ {
		for yi := 0; yi < size; yi++ {
			for zi := 0; zi < size; zi++ {
				x := layerCoord(xi, size)
				y := layerCoord(yi, size)
				z := layerCoord(zi, size)
				if !onSurface(x, y, z, limit) {
					continue
				}

				p := &Piece{
					ID:      id,
					Initial: mgl64.Vec3{x, y, z},
					Pos:     mgl64.Vec3{x, y, z},
					Rot:     mgl64.QuatIdent(),
				}
				for _, f := range faces {
					c := p.Initial[int(f.Axis())]
					p.stickers[f] = math.Abs(c-f.Sign()*limit) < surfaceTolerance
				}
				pieces = append(pieces, p)
				id++
			}
		}
	}

	return pieces
}

// SurfacePieceCount returns the number of surface pieces of an N×N×N
// cube: N³ minus the strictly interior (N-2)³ block.
func SurfacePieceCount(size int) int {
	inner := size - 2
	if inner < 0 {
		inner = 0
	}
	return size*size*size - inner*inner*inner
}
