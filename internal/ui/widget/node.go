// Package widget is the procedural UI-construction engine: a factory for
// primitive and composite visual nodes that panels are assembled from at
// runtime. Widgets live in a retained node tree with parent-relative anchor
// positions and render onto a string canvas, so the same tree works under
// any host that can composite text at cell positions.
package widget

// Point is an anchor offset from the parent node's center, in cells.
// Positive Y grows downward.
type Point struct {
	X int
	Y int
}

// Size is a node's extent in cells.
type Size struct {
	W int
	H int
}

// Node is one element of the retained tree. Every widget owns exactly one
// node; containers (panel roots, dropdown templates, viewports) are bare
// nodes.
type Node struct {
	name     string
	pos      Point
	size     Size
	visible  bool
	clip     bool
	parent   *Node
	children []*Node

	// view renders this node's own content (not its children); nil for
	// pure containers.
	view func() string
}

// NewRoot creates a detached container node, typically a panel root.
func NewRoot(name string, size Size) *Node {
	return &Node{name: name, size: size, visible: true}
}

func newChild(parent *Node, name string, pos Point, size Size) *Node {
	n := &Node{name: name, pos: pos, size: size, visible: true, parent: parent}
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	return n
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Size returns the node's extent.
func (n *Node) Size() Size { return n.size }

// Pos returns the anchor offset from the parent's center.
func (n *Node) Pos() Point { return n.pos }

// SetPos moves the node relative to its parent's center.
func (n *Node) SetPos(p Point) { n.pos = p }

// Visible reports whether the node itself is marked visible. A node renders
// only when every ancestor is also visible.
func (n *Node) Visible() bool { return n.visible }

// Show marks the node visible.
func (n *Node) Show() { n.visible = true }

// Hide marks the node hidden.
func (n *Node) Hide() { n.visible = false }

// SetVisible sets the visibility flag directly.
func (n *Node) SetVisible(v bool) { n.visible = v }

// SetClip makes the node clip children to its own bounds when rendering.
func (n *Node) SetClip(clip bool) { n.clip = clip }

// Clips reports whether the node clips its children.
func (n *Node) Clips() bool { return n.clip }

// Children returns the node's direct children.
func (n *Node) Children() []*Node { return n.children }

// Find walks the subtree for a node by name, depth first.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// childOrigin returns the top-left cell of child c inside n's canvas.
// Children anchor at their center, offset from the parent's center.
func (n *Node) childOrigin(c *Node) (int, int) {
	x := (n.size.W-c.size.W)/2 + c.pos.X
	y := (n.size.H-c.size.H)/2 + c.pos.Y
	return x, y
}
