package chartkit

import (
	"math"
	"strings"
	"testing"
)

func TestArcSegments(t *testing.T) {
	tests := []struct {
		span, radius float64
		want         int
	}{
		{0, 100, 1},
		{0.01, 10, 1},
		{math.Pi, 100, 79},
		{Tau, 1e6, 512},
	}
	for _, tt := range tests {
		if got := arcSegments(tt.span, tt.radius); got != tt.want {
			t.Errorf("arcSegments(%v, %v) = %d, want %d", tt.span, tt.radius, got, tt.want)
		}
	}
}

func TestArcShapeMesh(t *testing.T) {
	s := &ArcShape{Arc: Arc{StartAngle: 0, EndAngle: math.Pi / 2, InnerRadius: 10, OuterRadius: 20}}
	verts, inds := s.appendMesh(nil, nil)
	segs := arcSegments(math.Pi/2, 20)
	if len(verts) != 2*(segs+1) {
		t.Errorf("len(verts) = %d, want %d", len(verts), 2*(segs+1))
	}
	if len(inds) != 6*segs {
		t.Errorf("len(inds) = %d, want %d", len(inds), 6*segs)
	}
	// First pair sits on the 12 o'clock ray.
	if verts[0].DstX != 0 || verts[0].DstY != -10 || verts[1].DstY != -20 {
		t.Errorf("first vertices = (%v, %v), (%v, %v)", verts[0].DstX, verts[0].DstY, verts[1].DstX, verts[1].DstY)
	}
}

func TestArcShapeEmptyMesh(t *testing.T) {
	s := &ArcShape{Arc: Arc{StartAngle: 1, EndAngle: 1, OuterRadius: 20}}
	verts, inds := s.appendMesh(nil, nil)
	if len(verts) != 0 || len(inds) != 0 {
		t.Error("zero-span arc should produce no mesh")
	}
	if s.path() != "" {
		t.Error("zero-span arc should produce no path")
	}
}

func TestArcShapePath(t *testing.T) {
	half := &ArcShape{Arc: Arc{StartAngle: 0, EndAngle: math.Pi, InnerRadius: 5, OuterRadius: 10}}
	p := half.path()
	if !strings.HasPrefix(p, "M0 -10A10 10 0 0 1 ") || !strings.HasSuffix(p, "Z") {
		t.Errorf("half ring path = %q", p)
	}

	pie := &ArcShape{Arc: Arc{StartAngle: 0, EndAngle: 4, OuterRadius: 10}}
	if p := pie.path(); !strings.Contains(p, "0 1 1") || !strings.HasSuffix(p, "L0 0Z") {
		t.Errorf("pie slice path = %q", p)
	}

	ring := &ArcShape{Arc: Arc{StartAngle: 0, EndAngle: Tau, InnerRadius: 5, OuterRadius: 10}}
	if p := ring.path(); strings.Count(p, "Z") != 2 {
		t.Errorf("full ring path should have two subpaths: %q", p)
	}
}

func TestArcShapeBounds(t *testing.T) {
	s := &ArcShape{Arc: Arc{OuterRadius: 10}}
	if got := s.Bounds(); got != (Rect{-10, -10, 20, 20}) {
		t.Errorf("Bounds = %v", got)
	}
}

func TestRectShape(t *testing.T) {
	s := &RectShape{Width: 30, Height: 10}
	if !s.Contains(15, 5) || s.Contains(31, 5) {
		t.Error("Contains mismatch")
	}
	verts, inds := s.appendMesh(nil, nil)
	if len(verts) != 4 || len(inds) != 6 {
		t.Errorf("mesh = %d verts, %d indices", len(verts), len(inds))
	}
	if got := s.path(); got != "M0 0H30V10H0Z" {
		t.Errorf("path = %q", got)
	}
	if got := (&RectShape{}).path(); got != "" {
		t.Errorf("empty rect path = %q", got)
	}
}

func TestNodeMeshRebuildsWhenDirty(t *testing.T) {
	shape := &RectShape{Width: 10, Height: 10}
	n := NewShape("cell", shape, red)
	verts, _ := n.mesh()
	if verts[2].DstX != 10 {
		t.Fatalf("DstX = %v, want 10", verts[2].DstX)
	}

	shape.Width = 20
	verts, _ = n.mesh()
	if verts[2].DstX != 10 {
		t.Error("mesh should be cached until invalidated")
	}
	n.InvalidateMesh()
	verts, _ = n.mesh()
	if verts[2].DstX != 20 {
		t.Errorf("DstX = %v after InvalidateMesh, want 20", verts[2].DstX)
	}
}
