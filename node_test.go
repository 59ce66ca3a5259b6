package chartkit

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
}

func TestNewShapeDefaults(t *testing.T) {
	shape := &RectShape{Width: 10, Height: 5}
	n := NewShape("cell", shape, red)
	assertNodeDefaults(t, n, "cell", NodeTypeShape)
	if n.Shape != shape {
		t.Error("Shape not set")
	}
	if n.Color != red {
		t.Errorf("Color = %v, want %v", n.Color, red)
	}
	if !n.meshDirty {
		t.Error("meshDirty should be true")
	}
}

func TestNewTextDefaults(t *testing.T) {
	n := NewText("tick", "Mon")
	assertNodeDefaults(t, n, "tick", NodeTypeText)
	if n.Label != "Mon" {
		t.Errorf("Label = %q, want Mon", n.Label)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.Interactable {
		t.Error("Interactable should default to false")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewText("c", "")
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should belong to p2")
	}
}

func TestAddChildSameParentMovesToEnd(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(a)
	if parent.NumChildren() != 2 || parent.ChildAt(0) != b || parent.ChildAt(1) != a {
		t.Error("children order should be [b, a]")
	}
}

func TestAddChildPanics(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"nil", func() { NewContainer("n").AddChild(nil) }},
		{"self", func() {
			n := NewContainer("n")
			n.AddChild(n)
		}},
		{"cycle", func() {
			p, c, g := NewContainer("p"), NewContainer("c"), NewContainer("g")
			p.AddChild(c)
			c.AddChild(g)
			g.AddChild(p)
		}},
		{"index out of range", func() { NewContainer("n").AddChildAt(NewContainer("c"), 2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.run()
		})
	}
}

func TestAddChildAt(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(c)

	parent.AddChildAt(b, 1)

	if parent.ChildAt(0) != a || parent.ChildAt(1) != b || parent.ChildAt(2) != c {
		t.Error("children order should be [a, b, c]")
	}
}

// --- Remove ---

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	parent.RemoveChild(child)
	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child should be detached")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for wrong parent")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewContainer("orphan")
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("Parent should stay nil")
	}
}

// --- Lookup ---

func TestChildByKey(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	a.Key = "X"
	b := NewContainer("b")
	b.Key = "Y"
	parent.AddChild(a)
	parent.AddChild(b)
	if parent.ChildByKey("Y") != b {
		t.Error("ChildByKey(Y) should be b")
	}
	if parent.ChildByKey("Z") != nil {
		t.Error("ChildByKey(Z) should be nil")
	}
}

func TestSelectDepthFirst(t *testing.T) {
	root := NewContainer("root")
	root.Class = "arc"
	g1 := NewContainer("g1")
	g2 := NewContainer("g2")
	deep := NewContainer("deep")
	deep.Class = "arc"
	late := NewContainer("late")
	late.Class = "arc"
	root.AddChild(g1)
	root.AddChild(g2)
	g1.AddChild(deep)
	g2.AddChild(late)

	if root.Select("arc") != deep {
		t.Error("Select(arc) should return the first descendant in depth-first order")
	}
	if root.Select("missing") != nil {
		t.Error("Select(missing) should be nil")
	}
}

// --- SetChildIndex ---

func TestSetChildIndex(t *testing.T) {
	tests := []struct {
		name  string
		move  int
		to    int
		order string
	}{
		{"first to last", 0, 3, "bcda"},
		{"last to first", 3, 0, "dabc"},
		{"middle forward", 1, 2, "acbd"},
		{"same position", 2, 2, "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := NewContainer("parent")
			nodes := make([]*Node, 4)
			for i := range nodes {
				nodes[i] = NewContainer(string(rune('a' + i)))
				parent.AddChild(nodes[i])
			}
			parent.SetChildIndex(nodes[tt.move], tt.to)
			var got string
			for _, c := range parent.Children() {
				got += c.Name
			}
			if got != tt.order {
				t.Errorf("order = %q, want %q", got, tt.order)
			}
		})
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	parent := NewContainer("parent")
	child := NewShape("child", &RectShape{Width: 1, Height: 1}, red)
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)
	child.Datum = "datum"
	child.OnClick = func(PointerContext) {}

	child.Dispose()

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("child and grandchild should be disposed")
	}
	if child.ID != 0 || child.Datum != nil || child.OnClick != nil || child.Shape != nil {
		t.Error("disposed node should release its fields")
	}
	if grandchild.Parent != nil {
		t.Error("grandchild.Parent should be nil")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("should be disposed")
	}
}

func TestDirtyPropagationOnAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	child.AddChild(grandchild)
	updateWorldTransform(child, identityTransform, 1, false)
	if grandchild.transformDirty {
		t.Fatal("grandchild should be clean after update")
	}
	parent.AddChild(child)
	if !child.transformDirty || !grandchild.transformDirty {
		t.Error("AddChild should mark the whole subtree dirty")
	}
}
