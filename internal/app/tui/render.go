package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/seamusw/cubelab"
)

// cell is one rendered character cell of the cube view.
type cell struct {
	set     bool
	depth   float64
	color   string
	pieceID int
	face    cubelab.Face
}

// canvas is the rasterized cube view plus the per-cell piece/face map
// used for mouse picking.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, cells: make([]cell, w*h)}
}

func (c *canvas) at(x, y int) *cell {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return nil
	}
	return &c.cells[y*c.w+x]
}

// sampleGrid controls how densely each sticker quad is sampled when
// rasterizing. Stickers cover few cells, so a modest grid fills them
// without holes.
const sampleGrid = 8

// renderCube rasterizes every camera-facing sticker into the canvas
// with a per-cell depth test. Sticker colors come from the theme via
// the piece's initial-position sticker set; selection and hover
// highlighting happens later in view.
func renderCube(eng *cubelab.Engine, cam cubelab.Camera, theme cubelab.Theme, w, h int) *canvas {
	cv := newCanvas(w, h)

	// Fit the whole cube at any size and orbit angle. Terminal cells
	// are roughly twice as tall as wide, so x gets double scale.
	extent := float64(eng.Size()) * 0.95
	scaleY := float64(h) / (2 * extent)
	scaleX := 2 * scaleY
	cx := float64(w) / 2
	cy := float64(h) / 2

	faceList := []cubelab.Face{
		cubelab.FaceR, cubelab.FaceL, cubelab.FaceU,
		cubelab.FaceD, cubelab.FaceF, cubelab.FaceB,
	}

	for _, p := range eng.Pieces() {
		for _, f := range faceList {
			if !p.HasSticker(f) {
				continue
			}
			normal := p.WorldNormal(f)
			if normal.Dot(cam.Forward) > -0.05 {
				continue // back-facing
			}

			center := p.Pos.Add(normal.Mul(0.5))
			t1 := p.Rot.Rotate(tangent1(f)).Mul(0.92)
			t2 := p.Rot.Rotate(tangent2(f)).Mul(0.92)

			for i := 0; i < sampleGrid; i++ {
				for j := 0; j < sampleGrid; j++ {
					u := (float64(i)+0.5)/sampleGrid - 0.5
					v := (float64(j)+0.5)/sampleGrid - 0.5
					pt := center.Add(t1.Mul(u)).Add(t2.Mul(v))

					x := int(cx + pt.Dot(cam.Right)*scaleX)
					y := int(cy - pt.Dot(cam.Up)*scaleY)
					depth := pt.Dot(cam.Forward)

					c := cv.at(x, y)
					if c == nil || (c.set && c.depth <= depth) {
						continue
					}
					c.set = true
					c.depth = depth
					c.color = theme.FaceColor(f)
					c.pieceID = p.ID
					c.face = f
				}
			}
		}
	}

	return cv
}

// tangent1 and tangent2 return two local edge directions spanning a
// face's sticker quad.
func tangent1(f cubelab.Face) mgl64.Vec3 {
	switch f.Axis() {
	case cubelab.AxisX:
		return mgl64.Vec3{0, 1, 0}
	case cubelab.AxisY:
		return mgl64.Vec3{0, 0, 1}
	default:
		return mgl64.Vec3{1, 0, 0}
	}
}

func tangent2(f cubelab.Face) mgl64.Vec3 {
	switch f.Axis() {
	case cubelab.AxisX:
		return mgl64.Vec3{0, 0, 1}
	case cubelab.AxisY:
		return mgl64.Vec3{1, 0, 0}
	default:
		return mgl64.Vec3{0, 1, 0}
	}
}

// view renders the canvas to styled terminal lines. The selection and
// hover targets get highlighted so the user can see what a gesture
// would act on.
func (cv *canvas) view(sel *cubelab.Selection, hoverPiece int, hoverFace cubelab.Face, hoverOK bool) string {
	var b strings.Builder
	styles := make(map[string]lipgloss.Style)

	for y := 0; y < cv.h; y++ {
		for x := 0; x < cv.w; x++ {
			c := cv.cells[y*cv.w+x]
			if !c.set {
				b.WriteByte(' ')
				continue
			}

			ch := " "
			color := c.color
			if sel != nil && c.pieceID == sel.PieceID && c.face == sel.Face {
				ch = "▒"
			} else if hoverOK && c.pieceID == hoverPiece && c.face == hoverFace {
				ch = "░"
			}

			st, ok := styles[color+ch]
			if !ok {
				st = lipgloss.NewStyle().Background(lipgloss.Color(color))
				if ch != " " {
					st = st.Foreground(lipgloss.Color("15"))
				}
				styles[color+ch] = st
			}
			b.WriteString(st.Render(ch))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
