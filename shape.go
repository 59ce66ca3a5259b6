package chartkit

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Shape is the geometry of a shape node in the node's local space.
type Shape interface {
	// Contains reports whether a local point lies inside the shape.
	Contains(x, y float64) bool
	// Bounds returns the local-space bounding box.
	Bounds() Rect
	// appendMesh appends a triangulation of the shape to verts and inds.
	appendMesh(verts []ebiten.Vertex, inds []uint16) ([]ebiten.Vertex, []uint16)
	// path returns an SVG path string for the shape.
	path() string
}

// ArcShape is an annular sector centered on the node's origin.
type ArcShape struct {
	Arc
}

// Contains implements Shape.
func (s *ArcShape) Contains(x, y float64) bool {
	return s.Arc.Contains(x, y)
}

// Bounds implements Shape. The box covers the full ring, which is enough for
// culling and SVG viewports.
func (s *ArcShape) Bounds() Rect {
	r := s.OuterRadius
	return Rect{X: -r, Y: -r, Width: 2 * r, Height: 2 * r}
}

// arcSegments returns how many straight segments approximate an arc of the
// given span and radius: about one per 4 pixels of outer arc length.
func arcSegments(span, radius float64) int {
	n := int(math.Ceil(span * radius / 4))
	if n < 1 {
		n = 1
	}
	if n > 512 {
		n = 512
	}
	return n
}

func (s *ArcShape) appendMesh(verts []ebiten.Vertex, inds []uint16) ([]ebiten.Vertex, []uint16) {
	span := s.Span()
	if span <= 0 || s.OuterRadius <= 0 {
		return verts, inds
	}
	segs := arcSegments(span, s.OuterRadius)
	base := uint16(len(verts))
	for i := 0; i <= segs; i++ {
		a := s.StartAngle + span*float64(i)/float64(segs)
		inner := polar(s.InnerRadius, a)
		outer := polar(s.OuterRadius, a)
		verts = append(verts, solidVertex(inner.X, inner.Y), solidVertex(outer.X, outer.Y))
	}
	for i := 0; i < segs; i++ {
		k := base + uint16(2*i)
		inds = append(inds, k, k+1, k+3, k, k+3, k+2)
	}
	return verts, inds
}

func (s *ArcShape) path() string {
	span := s.Span()
	if span <= 0 {
		return ""
	}
	var b strings.Builder
	r0, r1 := s.InnerRadius, s.OuterRadius
	// SVG arcs cannot describe a closed circle in one command.
	if span >= Tau-1e-9 {
		fmt.Fprintf(&b, "M0 %.6gA%.6g %.6g 0 1 1 0 %.6gA%.6g %.6g 0 1 1 0 %.6gZ", -r1, r1, r1, r1, r1, r1, -r1)
		if r0 > 0 {
			fmt.Fprintf(&b, "M0 %.6gA%.6g %.6g 0 1 0 0 %.6gA%.6g %.6g 0 1 0 0 %.6gZ", -r0, r0, r0, r0, r0, r0, -r0)
		}
		return b.String()
	}
	large := 0
	if span > math.Pi {
		large = 1
	}
	p0 := polar(r1, s.StartAngle)
	p1 := polar(r1, s.EndAngle)
	fmt.Fprintf(&b, "M%.6g %.6gA%.6g %.6g 0 %d 1 %.6g %.6g", p0.X, p0.Y, r1, r1, large, p1.X, p1.Y)
	if r0 > 0 {
		q1 := polar(r0, s.EndAngle)
		q0 := polar(r0, s.StartAngle)
		fmt.Fprintf(&b, "L%.6g %.6gA%.6g %.6g 0 %d 0 %.6g %.6gZ", q1.X, q1.Y, r0, r0, large, q0.X, q0.Y)
	} else {
		b.WriteString("L0 0Z")
	}
	return b.String()
}

// RectShape is an axis-aligned rectangle with its top-left at the node's origin.
type RectShape struct {
	Width, Height float64
}

// Contains implements Shape.
func (s *RectShape) Contains(x, y float64) bool {
	return s.Bounds().Contains(x, y)
}

// Bounds implements Shape.
func (s *RectShape) Bounds() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

func (s *RectShape) appendMesh(verts []ebiten.Vertex, inds []uint16) ([]ebiten.Vertex, []uint16) {
	if s.Width <= 0 || s.Height <= 0 {
		return verts, inds
	}
	base := uint16(len(verts))
	verts = append(verts,
		solidVertex(0, 0),
		solidVertex(s.Width, 0),
		solidVertex(s.Width, s.Height),
		solidVertex(0, s.Height),
	)
	inds = append(inds, base, base+1, base+2, base, base+2, base+3)
	return verts, inds
}

func (s *RectShape) path() string {
	if s.Width <= 0 || s.Height <= 0 {
		return ""
	}
	return fmt.Sprintf("M0 0H%.6gV%.6gH0Z", s.Width, s.Height)
}

// solidVertex returns an untinted vertex sampling the white pixel.
func solidVertex(x, y float64) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(x), DstY: float32(y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
	}
}

// mesh returns the node's triangulated shape, rebuilding it when marked dirty.
func (n *Node) mesh() ([]ebiten.Vertex, []uint16) {
	if n.meshDirty {
		n.vertices, n.indices = n.vertices[:0], n.indices[:0]
		if n.Shape != nil {
			n.vertices, n.indices = n.Shape.appendMesh(n.vertices, n.indices)
		}
		n.meshDirty = false
	}
	return n.vertices, n.indices
}

// InvalidateMesh marks the node's triangulation stale. Call it after mutating
// the Shape's fields directly.
func (n *Node) InvalidateMesh() {
	n.meshDirty = true
}
