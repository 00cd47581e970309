package ui

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrUnknownPanel is returned when a visibility call names a panel that was
// never registered (or whose construction failed).
var ErrUnknownPanel = errors.New("unknown panel")

// VisibilityController enforces primary-panel exclusivity: showing one panel
// hides every other primary first, within the same synchronous call, so no
// frame ever renders two primaries. The task overlay is tracked separately
// and ignores the exclusivity rule.
type VisibilityController struct {
	log     *zap.Logger
	order   []string
	primary map[string]*Panel
	overlay *Panel
	current string
}

// NewVisibilityController creates an empty controller.
func NewVisibilityController(log *zap.Logger) *VisibilityController {
	if log == nil {
		log = zap.NewNop()
	}
	return &VisibilityController{log: log, primary: make(map[string]*Panel)}
}

// Register adds a primary panel.
func (v *VisibilityController) Register(p *Panel) {
	if p == nil {
		return
	}
	if _, dup := v.primary[p.Name()]; !dup {
		v.order = append(v.order, p.Name())
	}
	v.primary[p.Name()] = p
}

// RegisterOverlay sets the overlay panel.
func (v *VisibilityController) RegisterOverlay(p *Panel) { v.overlay = p }

// Show hides every other primary panel, then shows the named one. An unknown
// name is a recoverable error: it is logged and the current panel stays
// visible.
func (v *VisibilityController) Show(name string) error {
	target, ok := v.primary[name]
	if !ok || target == nil {
		v.log.Error("show of unregistered panel ignored", zap.String("panel", name))
		return fmt.Errorf("%w: %s", ErrUnknownPanel, name)
	}
	for _, n := range v.order {
		if n != name {
			v.primary[n].Hide()
		}
	}
	target.Show()
	v.current = name
	return nil
}

// HideAll hides every primary panel and the overlay. Used once right after
// construction to establish the all-hidden default state.
func (v *VisibilityController) HideAll() {
	for _, n := range v.order {
		v.primary[n].Hide()
	}
	if v.overlay != nil {
		v.overlay.Hide()
	}
	v.current = ""
}

// ShowOverlay reveals the overlay without touching primary panels.
func (v *VisibilityController) ShowOverlay() {
	if v.overlay == nil {
		v.log.Error("overlay panel not registered")
		return
	}
	v.overlay.Show()
}

// HideOverlay hides the overlay without touching primary panels.
func (v *VisibilityController) HideOverlay() {
	if v.overlay != nil {
		v.overlay.Hide()
	}
}

// OverlayVisible reports the overlay's visibility flag.
func (v *VisibilityController) OverlayVisible() bool {
	return v.overlay != nil && v.overlay.Visible()
}

// Current returns the name of the visible primary panel, or "".
func (v *VisibilityController) Current() string { return v.current }

// Panel returns a registered primary panel by name, or nil.
func (v *VisibilityController) Panel(name string) *Panel { return v.primary[name] }

// VisibleCount counts visible primary panels; the exclusivity invariant
// keeps this at most one.
func (v *VisibilityController) VisibleCount() int {
	n := 0
	for _, name := range v.order {
		if v.primary[name].Visible() {
			n++
		}
	}
	return n
}
