package chartkit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// captureLogger returns a logger that appends every line to out.
func captureLogger(out *[]string) logr.Logger {
	return funcr.New(func(prefix, args string) {
		*out = append(*out, prefix+args)
	}, funcr.Options{Verbosity: 2})
}

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	s.Root().AddChild(parent)
	child := NewContainer("child")
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()
	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	parent.Dispose()

	defer func() {
		if r := recover(); r == nil || !strings.Contains(fmt.Sprint(r), "disposed") {
			t.Errorf("expected disposed panic, got %v", r)
		}
	}()
	parent.AddChild(NewContainer("child"))
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	var lines []string
	s := NewScene()
	s.SetLogger(captureLogger(&lines))
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	current := s.Root()
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewContainer(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}

	if !containsLine(lines, "tree depth exceeds threshold") {
		t.Errorf("expected tree depth warning, got: %q", lines)
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	var lines []string
	s := NewScene()
	s.SetLogger(captureLogger(&lines))
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("many_children")
	s.Root().AddChild(parent)
	for i := 0; i < debugMaxChildCount+1; i++ {
		parent.AddChild(NewContainer(fmt.Sprintf("c_%d", i)))
	}

	if !containsLine(lines, "child count exceeds threshold") {
		t.Errorf("expected child count warning, got %d lines", len(lines))
	}
}

func TestReleaseMode_NoWarnings(t *testing.T) {
	var lines []string
	s := NewScene()
	s.SetLogger(captureLogger(&lines))

	parent := NewContainer("many_children")
	s.Root().AddChild(parent)
	for i := 0; i < debugMaxChildCount+1; i++ {
		parent.AddChild(NewContainer(""))
	}
	if len(lines) != 0 {
		t.Errorf("release mode should not log, got %q", lines[0])
	}
}

func TestCountNodes(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("a")
	root.AddChild(a)
	a.AddChild(NewContainer("b"))
	root.AddChild(NewContainer("c"))
	if got := countNodes(root); got != 4 {
		t.Errorf("countNodes = %d, want 4", got)
	}
}

func containsLine(lines []string, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}
