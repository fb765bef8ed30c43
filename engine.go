package cubelab

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const quarterTurn = math.Pi / 2

// queuedMove is a pending move plus the execution flags the animator
// needs: whether to record it in history and whether to run it at the
// sequence rate.
type queuedMove struct {
	move   Move
	record bool
	fast   bool
}

// activeTurn is the state of the single in-progress turn. Piece
// transforms captured at turn start are reinterpreted as offsets from a
// virtual pivot at the cube center; each tick applies the pivot's
// incremental rotation to those captured transforms, so no per-tick
// error accumulates in the pieces themselves.
type activeTurn struct {
	queuedMove
	axisVec  mgl64.Vec3
	angle    float64
	slice    []*Piece
	startPos []mgl64.Vec3
	startRot []mgl64.Quat
}

// Engine is the move execution and spatial-state engine for an N×N×N
// cube. It owns the piece set exclusively: external callers read piece
// state and submit moves or queries, never mutate transforms directly.
//
// All mutation happens inside Step, which the host loop calls once per
// frame with the elapsed time. Step never blocks; moves in the queue
// execute strictly FIFO, one at a time.
type Engine struct {
	size   int
	pieces []*Piece

	queue   []queuedMove
	history []Move
	turn    *activeTurn
	sel     *Selection

	cfg *config
	rng *rand.Rand

	degenerateMoves int

	onMove     func(Move)
	onDrained  func()
	onSelected func(*Selection)
}

// New creates an engine for an N×N×N cube in the solved state.
func New(size int, opts ...Option) (*Engine, error) {
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{
		size:   size,
		pieces: generatePieces(size),
		cfg:    cfg,
		rng:    rng,
	}, nil
}

// Size returns the current cube size.
func (e *Engine) Size() int {
	return e.size
}

// Pieces returns the engine's piece set. The slice and the pieces it
// holds are owned by the engine; callers must treat them as read-only.
func (e *Engine) Pieces() []*Piece {
	return e.pieces
}

// Piece returns the piece with the given id, or nil.
func (e *Engine) Piece(id int) *Piece {
	for _, p := range e.pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// History returns the moves applied and not yet undone, oldest first.
func (e *Engine) History() []Move {
	out := make([]Move, len(e.history))
	copy(out, e.history)
	return out
}

// QueueLen returns the number of moves not yet committed, including the
// one currently animating.
func (e *Engine) QueueLen() int {
	return len(e.queue)
}

// Busy reports whether a turn is animating or moves are queued.
func (e *Engine) Busy() bool {
	return e.turn != nil || len(e.queue) > 0
}

// DegenerateMoves returns how many queued moves selected an empty slice
// and were completed without animating. Always zero for well-formed
// input.
func (e *Engine) DegenerateMoves() int {
	return e.degenerateMoves
}

// OnMove sets a callback invoked after each committed turn.
func (e *Engine) OnMove(cb func(Move)) {
	e.onMove = cb
}

// OnQueueDrained sets a callback invoked when the last queued move has
// committed and the engine returns to rest.
func (e *Engine) OnQueueDrained(cb func()) {
	e.onDrained = cb
}

// OnSelectionChanged sets a callback invoked whenever the active
// Selection is created, refreshed, or cleared. The callback receives nil
// on clear.
func (e *Engine) OnSelectionChanged(cb func(*Selection)) {
	e.onSelected = cb
}

// Enqueue submits a single manual move. It is rejected with ErrBusy
// while a turn is animating or other moves are pending, and with
// ErrInvalidMove if the layer does not exist at the current size.
func (e *Engine) Enqueue(m Move) error {
	if e.Busy() {
		return ErrBusy
	}
	if m.Layer < 0 || m.Layer >= e.size || (m.Dir != 1 && m.Dir != -1) {
		return ErrInvalidMove
	}
	e.queue = append(e.queue, queuedMove{move: m, record: true})
	return nil
}

// Shuffle bulk-appends random moves to the queue, axis, layer and
// direction uniformly sampled. The move count is the configured shuffle
// length, defaulting to the cube size. Shuffle requires an idle engine.
func (e *Engine) Shuffle() error {
	if e.Busy() {
		return ErrBusy
	}

	n := e.cfg.shuffleLen
	if n <= 0 {
		n = e.size
	}

	for i := 0; i < n; i++ {
		m := Move{
			Axis:  Axis(e.rng.Intn(3)),
			Layer: e.rng.Intn(e.size),
			Dir:   1,
		}
		if e.rng.Intn(2) == 0 {
			m.Dir = -1
		}
		e.queue = append(e.queue, queuedMove{move: m, record: true, fast: true})
	}
	return nil
}

// Solve replaces the queue with the reverse of History, every direction
// negated, returning the cube to its solved state move by move. History
// is truncated immediately; the solve moves themselves are not recorded.
func (e *Engine) Solve() error {
	if e.Busy() {
		return ErrBusy
	}

	for i := len(e.history) - 1; i >= 0; i-- {
		e.queue = append(e.queue, queuedMove{move: e.history[i].Inverse(), fast: true})
	}
	e.history = e.history[:0]
	return nil
}

// SetSize changes the cube size. This is a hard reset: all pieces, queue
// entries, history and any selection or in-flight turn are discarded and
// the lattice is regenerated from scratch.
func (e *Engine) SetSize(size int) error {
	if size < MinSize || size > MaxSize {
		return ErrInvalidSize
	}

	e.size = size
	e.pieces = generatePieces(size)
	e.queue = nil
	e.history = e.history[:0]
	e.turn = nil
	e.clearSelection()
	return nil
}

// Reset restores the current size to the solved state, discarding queue,
// history and selection.
func (e *Engine) Reset() {
	e.SetSize(e.size)
}

// IsSolved reports whether every piece sits at its initial coordinate
// with identity orientation.
func (e *Engine) IsSolved() bool {
	for _, p := range e.pieces {
		if !vecEquals(p.Pos, p.Initial, exactTolerance) {
			return false
		}
		if !vecEquals(p.Rot.Rotate(mgl64.Vec3{1, 0, 0}), mgl64.Vec3{1, 0, 0}, exactTolerance) ||
			!vecEquals(p.Rot.Rotate(mgl64.Vec3{0, 1, 0}), mgl64.Vec3{0, 1, 0}, exactTolerance) {
			return false
		}
	}
	return true
}

// Step advances the engine by dt seconds of animation time. It performs
// a bounded amount of work and returns; the host loop is responsible for
// calling it once per frame. When the engine is idle and moves are
// queued, the front move starts animating on this tick.
func (e *Engine) Step(dt float64) {
	if e.turn == nil {
		if len(e.queue) == 0 {
			return
		}
		if !e.startTurn(e.queue[0]) {
			// Degenerate move: nothing to rotate, complete instantly so
			// the queue is never stuck.
			e.degenerateMoves++
			e.finishMove(e.queue[0].move)
			return
		}
	}

	t := e.turn
	rate := e.cfg.turnRate
	if t.fast {
		rate = e.cfg.sequenceRate
	}
	t.angle += dt * rate

	angle := math.Min(t.angle, quarterTurn)
	e.applyPivot(angle)

	if t.angle >= quarterTurn {
		e.commit()
	}
}

// startTurn captures the front move's slice and start transforms.
// Returns false when the slice is empty.
func (e *Engine) startTurn(qm queuedMove) bool {
	slice := selectSlice(e.pieces, qm.move.Axis, qm.move.Layer, e.size)
	if len(slice) == 0 {
		return false
	}

	t := &activeTurn{
		queuedMove: qm,
		axisVec:    qm.move.Axis.Vec(),
		slice:      slice,
		startPos:   make([]mgl64.Vec3, len(slice)),
		startRot:   make([]mgl64.Quat, len(slice)),
	}
	for i, p := range slice {
		t.startPos[i] = p.Pos
		t.startRot[i] = p.Rot
	}
	e.turn = t
	return true
}

// applyPivot sets every slice piece's transform to its captured start
// transform rotated by the pivot's current angle. The pivot sits at the
// cube center, so positions rotate in place around the move axis.
func (e *Engine) applyPivot(angle float64) {
	t := e.turn
	q := mgl64.QuatRotate(angle*float64(t.move.Dir), t.axisVec)
	for i, p := range t.slice {
		p.Pos = q.Rotate(t.startPos[i])
		p.Rot = q.Mul(t.startRot[i]).Normalize()
	}
}

// commit finalizes the in-progress turn at exactly a quarter turn. The
// pivot rotation is forced to 90 degrees regardless of frame-timing
// overshoot, every slice piece is snapped onto the lattice, and the
// snapped transform becomes the piece's logical state.
func (e *Engine) commit() {
	t := e.turn
	e.applyPivot(quarterTurn)
	for _, p := range t.slice {
		snapPiece(p, e.size)
	}

	move := t.move
	if t.record && e.cfg.moveHistory {
		e.recordMove(move)
	}
	e.turn = nil
	e.finishMove(move)
}

// finishMove pops the committed (or degenerate) move off the queue and
// fires completion events.
func (e *Engine) finishMove(move Move) {
	if len(e.queue) > 0 {
		e.queue = e.queue[1:]
	}

	e.refreshSelection()

	if e.onMove != nil {
		e.onMove(move)
	}
	if len(e.queue) == 0 && e.onDrained != nil {
		e.onDrained()
	}
}

// recordMove appends a move to the history, unless it exactly reverses
// the most recent entry, in which case that entry is popped instead.
// This keeps a hinted undo from growing the history it was meant to
// shrink.
func (e *Engine) recordMove(m Move) {
	if n := len(e.history); n > 0 && e.history[n-1] == m.Inverse() {
		e.history = e.history[:n-1]
		return
	}
	e.history = append(e.history, m)
}
