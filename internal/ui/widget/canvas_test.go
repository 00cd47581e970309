package widget

import (
	"strings"
	"testing"
)

func renderLines(t *testing.T, n *Node) []string {
	t.Helper()
	return strings.Split(Render(n), "\n")
}

func TestRenderCanvasDimensions(t *testing.T) {
	root := NewRoot("root", Size{W: 8, H: 3})
	lines := renderLines(t, root)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 8 {
			t.Errorf("line %d width = %d, want 8", i, len([]rune(line)))
		}
	}
}

func TestRenderCompositesChildAtCenter(t *testing.T) {
	f := NewFactory(nil)
	root := NewRoot("root", Size{W: 9, H: 3})
	f.NewText(root, "label", Point{}, Size{W: 3, H: 1}, "abc", false)

	lines := renderLines(t, root)
	if got := lines[1]; got != "   abc   " {
		t.Errorf("middle line = %q, want %q", got, "   abc   ")
	}
}

func TestRenderClipsOutOfBoundsChild(t *testing.T) {
	f := NewFactory(nil)
	root := NewRoot("root", Size{W: 6, H: 1})
	// anchored far right: only the leading cells fit.
	f.NewText(root, "label", Point{X: 3}, Size{W: 4, H: 1}, "wxyz", false)

	line := Render(root)
	if len([]rune(line)) != 6 {
		t.Fatalf("line width = %d, want 6", len([]rune(line)))
	}
	if !strings.Contains(line, "wx") || strings.Contains(line, "yz") {
		t.Errorf("clipping failed: %q", line)
	}
}

func TestRenderSkipsHiddenChild(t *testing.T) {
	f := NewFactory(nil)
	root := NewRoot("root", Size{W: 5, H: 1})
	label := f.NewText(root, "label", Point{}, Size{W: 5, H: 1}, "hello", false)
	label.Node().Hide()

	if got := Render(root); strings.Contains(got, "hello") {
		t.Errorf("hidden child rendered: %q", got)
	}
}

func TestRenderHiddenRootIsEmpty(t *testing.T) {
	root := NewRoot("root", Size{W: 5, H: 2})
	root.Hide()
	if got := Render(root); got != "" {
		t.Errorf("hidden root rendered %q", got)
	}
}

func TestComposeFloatsOverBase(t *testing.T) {
	base := "....\n....\n...."
	got := Compose(base, "XX", 1, 1, 4, 3)
	want := "....\n.XX.\n...."
	if got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}

func TestComposeClampsToCanvas(t *testing.T) {
	base := "...\n..."
	got := Compose(base, "ABCDE", 1, 0, 3, 2)
	lines := strings.Split(got, "\n")
	if lines[0] != ".AB" {
		t.Errorf("top line = %q, want %q", lines[0], ".AB")
	}
}
