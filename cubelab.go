// Package cubelab implements the move execution and spatial-state engine
// for an interactive N×N×N Rubik's-style cube.
//
// # Features
//
//   - Arbitrary cube sizes from 2×2×2 to 10×10×10
//   - Queued, frame-driven quarter-turn animation with exact lattice
//     re-snapping after every turn
//   - Shuffle generation and solve-by-history-inversion
//   - Face picking and camera-relative gesture translation for pointer
//     driven input
//   - Hint anchoring for single-step undo affordances
//
// # Quick start
//
// Create an engine, queue moves, and drive it from any host loop:
//
//	eng, err := cubelab.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	eng.OnMove(func(m cubelab.Move) {
//	    fmt.Println("committed:", m)
//	})
//	eng.Shuffle()
//
//	for eng.Busy() {
//	    eng.Step(1.0 / 60) // once per frame
//	}
//
// The engine is single-threaded and cooperative: all mutation happens
// inside Step, which does a bounded amount of work per call and never
// blocks. Hosts that render the cube read piece transforms between
// steps via Pieces.
//
// # Interaction
//
// Pointer input resolves to the same move representation as
// programmatic input. A hit point in piece-local space becomes a
// Selection through PickFace; an arrow direction plus the live camera
// basis becomes a Move through ApplyGesture:
//
//	if _, err := eng.PickFace(pieceID, hit); err == nil {
//	    eng.ApplyGesture(cubelab.GestureRight, cam)
//	}
package cubelab
