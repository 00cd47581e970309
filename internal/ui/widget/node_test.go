package widget

import "testing"

func TestChildOriginCentersChild(t *testing.T) {
	root := NewRoot("root", Size{W: 10, H: 6})
	child := newChild(root, "child", Point{}, Size{W: 4, H: 2})

	x, y := root.childOrigin(child)
	if x != 3 || y != 2 {
		t.Errorf("origin = (%d,%d), want (3,2)", x, y)
	}
}

func TestChildOriginAppliesAnchorOffset(t *testing.T) {
	root := NewRoot("root", Size{W: 10, H: 10})
	child := newChild(root, "child", Point{X: -2, Y: 3}, Size{W: 2, H: 2})

	x, y := root.childOrigin(child)
	if x != 2 || y != 7 {
		t.Errorf("origin = (%d,%d), want (2,7)", x, y)
	}
}

func TestFindWalksSubtree(t *testing.T) {
	root := NewRoot("root", Size{W: 4, H: 4})
	mid := newChild(root, "mid", Point{}, Size{W: 4, H: 4})
	leaf := newChild(mid, "leaf", Point{}, Size{W: 2, H: 1})

	if got := root.Find("leaf"); got != leaf {
		t.Errorf("Find(leaf) = %v, want the leaf node", got)
	}
	if got := root.Find("nope"); got != nil {
		t.Errorf("Find(nope) = %v, want nil", got)
	}
}

func TestVisibilityFlag(t *testing.T) {
	n := NewRoot("n", Size{W: 1, H: 1})
	if !n.Visible() {
		t.Fatal("new node should start visible")
	}
	n.Hide()
	if n.Visible() {
		t.Error("Hide did not clear visibility")
	}
	n.Show()
	if !n.Visible() {
		t.Error("Show did not restore visibility")
	}
}
