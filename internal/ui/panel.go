// Package ui holds the session core: panel construction, the visibility
// controller, the session state machine, the task overlay, and the
// bubbletea application model that drives them.
package ui

import (
	"mindnest/internal/ui/widget"
)

// Primary panel names. Exactly one primary panel is visible at a time; the
// task overlay is an orthogonal interrupt layer.
const (
	PanelWelcome       = "welcome"
	PanelCustomization = "customization"
	PanelCheckin       = "connection_confirm"
	PanelMainMenu      = "main_menu"
	PanelBreathing     = "breathing"
	PanelAltruistic    = "altruistic"
	PanelTreeControl   = "tree_control"
	PanelHistory       = "history"
	PanelTaskOverlay   = "task_overlay"
)

// Panel is a named, independently visible widget subtree. Panels are built
// exactly once at startup and toggled for the life of the session; hiding a
// panel never resets its widgets' values.
type Panel struct {
	name    string
	root    *widget.Node
	widgets map[string]widget.Widget
}

// NewPanel creates an empty panel with a root container of the given size.
func NewPanel(name string, size widget.Size) *Panel {
	return &Panel{
		name:    name,
		root:    widget.NewRoot(name, size),
		widgets: make(map[string]widget.Widget),
	}
}

// Name returns the panel name.
func (p *Panel) Name() string { return p.name }

// Root returns the panel's root node.
func (p *Panel) Root() *widget.Node { return p.root }

// Bind registers a named child-widget handle for outer logic.
func (p *Panel) Bind(w widget.Widget) {
	p.widgets[w.Name()] = w
}

// Widget returns a bound handle by name, or nil.
func (p *Panel) Widget(name string) widget.Widget { return p.widgets[name] }

// Visible reports the panel's visibility flag.
func (p *Panel) Visible() bool { return p.root.Visible() }

// Show marks the panel visible.
func (p *Panel) Show() { p.root.Show() }

// Hide marks the panel hidden.
func (p *Panel) Hide() { p.root.Hide() }
