package chartkit

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// labelFace is the face text nodes render with. Created lazily so importing
// the package never touches the graphics driver.
var labelFace *text.GoXFace

func ensureLabelFace() *text.GoXFace {
	if labelFace == nil {
		labelFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return labelFace
}

// MeasureLabel returns the rendered size of s in the label face.
func MeasureLabel(s string) (w, h float64) {
	return text.Measure(s, ensureLabelFace(), 0)
}

// Draw renders the scene tree onto screen, clearing it with ClearColor first
// when ClearColor is opaque.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	var drawn int
	s.draw(screen, s.root, identityTransform, 1, false, &drawn)
	if s.debug {
		s.log.V(2).Info("frame drawn", "nodes", countNodes(s.root), "drawCalls", drawn)
	}
}

// draw walks the tree depth-first, updating transforms and submitting one
// draw call per visible shape or label. Children draw over their parent.
func (s *Scene) draw(target *ebiten.Image, n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool, drawn *int) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	switch n.Type {
	case NodeTypeShape:
		if s.drawShape(target, n) {
			*drawn++
		}
	case NodeTypeText:
		if s.drawLabel(target, n) {
			*drawn++
		}
	}

	for _, child := range n.children {
		s.draw(target, child, n.worldTransform, n.worldAlpha, recompute, drawn)
	}
}

func (s *Scene) drawShape(target *ebiten.Image, n *Node) bool {
	verts, inds := n.mesh()
	if len(verts) == 0 || len(inds) == 0 {
		return false
	}
	tint := Color{n.Color.R, n.Color.G, n.Color.B, n.Color.A * n.worldAlpha}
	if tint.A <= 0 {
		return false
	}
	s.vertBuf = growVertexBuffer(s.vertBuf, len(verts))
	transformVertices(verts, s.vertBuf, n.worldTransform, tint)
	if !computeMeshAABB(s.vertBuf).Intersects(targetRect(target)) {
		return false
	}

	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	target.DrawTriangles(s.vertBuf, inds, ensureWhitePixel(), &op)
	return true
}

func (s *Scene) drawLabel(target *ebiten.Image, n *Node) bool {
	if n.Label == "" {
		return false
	}
	alpha := n.Color.A * n.worldAlpha
	if alpha <= 0 {
		return false
	}
	op := &text.DrawOptions{}
	switch n.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.SecondaryAlign = text.AlignCenter
	wt := n.worldTransform
	op.GeoM.SetElement(0, 0, wt[0])
	op.GeoM.SetElement(1, 0, wt[1])
	op.GeoM.SetElement(0, 1, wt[2])
	op.GeoM.SetElement(1, 1, wt[3])
	op.GeoM.SetElement(0, 2, wt[4])
	op.GeoM.SetElement(1, 2, wt[5])
	op.ColorScale.Scale(float32(n.Color.R*alpha), float32(n.Color.G*alpha), float32(n.Color.B*alpha), float32(alpha))
	text.Draw(target, n.Label, ensureLabelFace(), op)
	return true
}

func targetRect(target *ebiten.Image) Rect {
	b := target.Bounds()
	return Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
}
