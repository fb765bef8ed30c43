package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/cubelab"
	"github.com/seamusw/cubelab/internal/app/storage"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	busyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

const frameInterval = time.Second / 30

// Messages
type frameMsg time.Time

// SmartMoveMsg is sent by the smart-cube source when a physical turn
// arrives.
type SmartMoveMsg struct{ Move cubelab.Move }

// ShakeMsg is sent when the motion detector sees a shake.
type ShakeMsg struct{}

// Model is the bubbletea model for interactive play.
type Model struct {
	eng   *cubelab.Engine
	cam   orbitCamera
	theme int

	repo      *storage.SessionRepository
	sessionID string
	sessionAt time.Time
	moveSeq   int

	width    int
	height   int
	busy     bool
	status   string
	lastTick time.Time

	// Mouse tap tracking: a press only becomes a pick if the release
	// lands on the same cell.
	pressX, pressY int
	pressed        bool

	hoverPiece int
	hoverFace  cubelab.Face
	hoverOK    bool

	lastCanvas *canvas
	quitting   bool
	err        error
}

// NewModel creates the play model. repo may be nil to disable session
// recording.
func NewModel(eng *cubelab.Engine, repo *storage.SessionRepository) *Model {
	m := &Model{
		eng:      eng,
		cam:      newOrbitCamera(),
		repo:     repo,
		lastTick: time.Now(),
	}

	eng.OnMove(func(mv cubelab.Move) { m.recordMove(mv) })
	eng.OnQueueDrained(func() { m.sequenceFinished() })
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.scheduleFrame()
}

func (m *Model) scheduleFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		if dt > 0.25 {
			dt = 0.25 // clamp after suspend/resize stalls
		}
		m.eng.Step(dt)
		return m, m.scheduleFrame()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case SmartMoveMsg:
		switch m.eng.Enqueue(msg.Move) {
		case nil:
			m.ensureSession()
			m.status = "smart cube: " + msg.Move.String()
		case cubelab.ErrBusy:
			// A fast physical solver outruns the animation; the
			// dropped turn desynchronizes the two cubes, so say so.
			m.status = "smart cube move " + msg.Move.String() + " dropped, cubes out of sync"
		}

	case ShakeMsg:
		m.startShuffle("shake detected, shuffling")
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		m.abandonSession()
		return m, tea.Quit

	case "h":
		m.cam.orbit(-orbitStep, 0)
	case "l":
		m.cam.orbit(orbitStep, 0)
	case "k":
		m.cam.orbit(0, orbitStep)
	case "j":
		m.cam.orbit(0, -orbitStep)

	case "left", "right", "up", "down":
		m.handleArrow(msg.String())

	case "s":
		m.startShuffle("shuffling")

	case "S":
		if err := m.eng.Solve(); err != nil {
			m.status = "busy, try again when the cube settles"
		} else if m.eng.QueueLen() == 0 {
			// Solve with no history enqueues nothing, so no
			// queue-drained event will ever clear a busy flag.
			m.status = "nothing to solve"
		} else {
			m.busy = true
			m.status = "solving"
		}

	case "u":
		if mv, ok := m.eng.HintLast(); ok {
			m.status = fmt.Sprintf("hint: %s undoes the last move", mv)
		} else {
			m.status = "nothing to undo"
		}

	case "t":
		m.theme = (m.theme + 1) % len(cubelab.Themes)
		m.status = "theme: " + cubelab.Themes[m.theme].Name

	case "x":
		m.eng.ClearSelection()
		m.status = ""

	case "+", "=":
		m.resize(m.eng.Size() + 1)
	case "-":
		m.resize(m.eng.Size() - 1)
	}

	return m, nil
}

// handleArrow issues a gesture when a face is selected; otherwise the
// arrows orbit the camera.
func (m *Model) handleArrow(key string) {
	if m.eng.Selection() == nil {
		switch key {
		case "left":
			m.cam.orbit(-orbitStep, 0)
		case "right":
			m.cam.orbit(orbitStep, 0)
		case "up":
			m.cam.orbit(0, orbitStep)
		case "down":
			m.cam.orbit(0, -orbitStep)
		}
		return
	}

	dir := map[string]cubelab.GestureDir{
		"up":    cubelab.GestureUp,
		"down":  cubelab.GestureDown,
		"left":  cubelab.GestureLeft,
		"right": cubelab.GestureRight,
	}[key]

	mv, err := m.eng.ApplyGesture(dir, m.cam.basis())
	switch err {
	case nil:
		m.ensureSession()
		m.status = "move: " + mv.String()
	case cubelab.ErrBusy:
		m.status = "wait for the current turn"
	default:
		m.status = ""
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	// The cube canvas starts one line below the title.
	canvasY := msg.Y - 1
	switch msg.Action {
	case tea.MouseActionMotion:
		m.updateHover(msg.X, canvasY)

	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pressed = true
			m.pressX, m.pressY = msg.X, canvasY
		}

	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		// Tap, not drag: press and release on the same cell.
		if msg.X != m.pressX || canvasY != m.pressY {
			return
		}
		m.pickAt(msg.X, canvasY)
	}
}

func (m *Model) updateHover(x, y int) {
	m.hoverOK = false
	if m.lastCanvas == nil {
		return
	}
	c := m.lastCanvas.at(x, y)
	if c == nil || !c.set {
		return
	}
	f, ok := m.eng.HoverFace(c.pieceID, c.face.Normal().Mul(0.5))
	if ok {
		m.hoverPiece = c.pieceID
		m.hoverFace = f
		m.hoverOK = true
	}
}

func (m *Model) pickAt(x, y int) {
	if m.lastCanvas == nil {
		return
	}
	c := m.lastCanvas.at(x, y)
	if c == nil || !c.set {
		m.eng.ClearSelection()
		m.status = ""
		return
	}

	// The cell remembers which local face it rasterized; the hit point
	// is the center of that face in piece-local space.
	if _, err := m.eng.PickFace(c.pieceID, c.face.Normal().Mul(0.5)); err != nil {
		m.status = "that face can't turn right now"
		return
	}
	m.status = "face selected, arrows turn the slice"
}

func (m *Model) startShuffle(note string) {
	if err := m.eng.Shuffle(); err != nil {
		m.status = "busy, try again when the cube settles"
		return
	}
	m.busy = true
	m.status = note
	m.ensureSession()
}

func (m *Model) resize(size int) {
	m.abandonSession()
	if err := m.eng.SetSize(size); err != nil {
		m.status = fmt.Sprintf("size must be %d-%d", cubelab.MinSize, cubelab.MaxSize)
		return
	}
	m.status = fmt.Sprintf("%dx%dx%d cube", size, size, size)
}

// ensureSession opens a recording session on the first move of a fresh
// cube.
func (m *Model) ensureSession() {
	if m.repo == nil || m.sessionID != "" {
		return
	}
	id, err := m.repo.Create(m.eng.Size())
	if err != nil {
		m.err = err
		return
	}
	m.sessionID = id
	m.sessionAt = time.Now()
	m.moveSeq = 0
}

func (m *Model) recordMove(mv cubelab.Move) {
	if m.repo == nil || m.sessionID == "" {
		return
	}
	if err := m.repo.AddMove(m.sessionID, m.moveSeq, mv.String(), time.Since(m.sessionAt)); err != nil {
		m.err = err
	}
	m.moveSeq++
}

// sequenceFinished fires when the queue drains: the busy indicator
// stops, and a solved cube closes the recording session.
func (m *Model) sequenceFinished() {
	m.busy = false
	if m.sessionID != "" && m.eng.IsSolved() {
		if err := m.repo.Finish(m.sessionID, m.moveSeq, true); err != nil {
			m.err = err
		}
		m.sessionID = ""
		m.status = "solved!"
	}
}

func (m *Model) abandonSession() {
	if m.repo == nil || m.sessionID == "" {
		return
	}
	if err := m.repo.Finish(m.sessionID, m.moveSeq, m.eng.IsSolved()); err != nil {
		m.err = err
	}
	m.sessionID = ""
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	h := m.height - 4
	if w < 20 || h < 10 {
		return "window too small"
	}

	title := titleStyle.Render(fmt.Sprintf("cubelab %dx%dx%d", m.eng.Size(), m.eng.Size(), m.eng.Size()))
	if m.busy {
		title += "  " + busyStyle.Render("● animating")
	} else if m.eng.IsSolved() {
		title += "  " + solvedStyle.Render("solved")
	}

	cam := m.cam.basis()
	m.lastCanvas = renderCube(m.eng, cam, cubelab.Themes[m.theme], w, h)
	board := m.lastCanvas.view(m.eng.Selection(), m.hoverPiece, m.hoverFace, m.hoverOK)

	status := statusStyle.Render(m.status)
	if m.err != nil {
		status = errorStyle.Render("storage error: " + m.err.Error())
	}

	help := helpStyle.Render("click face + arrows: turn · hjkl/arrows: orbit · s: shuffle · S: solve · u: hint · t: theme · +/-: size · q: quit")

	return title + "\n" + board + status + "\n" + help
}
