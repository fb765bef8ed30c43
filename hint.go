package cubelab

// preferredHintFace returns the outer face a hint should anchor on so
// the affordance is visible without rotating the view: the front face
// for x- and y-axis moves, the top face for z-axis moves.
func preferredHintFace(axis Axis) Face {
	if axis == AxisZ {
		return FaceU
	}
	return FaceF
}

// HintLast locates an anchor for undoing the most recent History entry.
// It returns the inverse move and installs a Selection on a visible
// piece of the target layer, preferring a piece with an exterior face on
// the conventional front/top side. With an empty history, or if no
// candidate piece is found, no selection is produced and ok is false.
func (e *Engine) HintLast() (Move, bool) {
	n := len(e.history)
	if n == 0 {
		return Move{}, false
	}
	target := e.history[n-1].Inverse()

	sel := e.locateAnchor(target)
	if sel == nil {
		return Move{}, false
	}
	e.setSelection(sel)
	return target, true
}

// locateAnchor finds a representative exterior piece/face pair on the
// target move's layer. Pieces are scanned in lattice order; the first
// face pointing along the preferred direction wins, then any exterior
// face as a fallback.
func (e *Engine) locateAnchor(target Move) *Selection {
	slice := selectSlice(e.pieces, target.Axis, target.Layer, e.size)
	preferred := preferredHintFace(target.Axis).Normal()

	var fallback *Selection
	for _, p := range slice {
		for _, f := range faces {
			normal, ok := e.exteriorFace(p, f)
			if !ok {
				continue
			}
			sel := &Selection{
				PieceID:     p.ID,
				Face:        f,
				WorldNormal: normal,
				Coord:       p.Pos,
			}
			if vecEquals(snapAxisVec(normal), preferred, exactTolerance) {
				return sel
			}
			if fallback == nil {
				fallback = sel
			}
		}
	}
	return fallback
}
