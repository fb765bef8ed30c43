package cubelab

import "errors"

// Sentinel errors for the cubelab package.
var (
	// Engine state errors
	ErrBusy        = errors.New("cubelab: engine is animating or has queued moves")
	ErrInvalidSize = errors.New("cubelab: cube size out of range")
	ErrInvalidMove = errors.New("cubelab: move layer out of range")

	// Interaction errors
	ErrPieceNotFound    = errors.New("cubelab: piece not found")
	ErrInteriorFace     = errors.New("cubelab: face is not an exterior cube face")
	ErrNoSelection      = errors.New("cubelab: no active selection")
	ErrAmbiguousGesture = errors.New("cubelab: gesture direction is parallel to face normal")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubelab: invalid move notation")
)
