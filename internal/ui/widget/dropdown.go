package widget

import (
	"go.uber.org/zap"
)

// Dropdown is the composite single-select widget: a label plus arrow
// indicator, and a collapsible template holding a clipped viewport over a
// vertically stacked option list. Selection discipline lives inside the
// dropdown itself — options are mutually exclusive here, never through a
// shared external group, so two dropdowns on one panel cannot interfere.
type Dropdown struct {
	node     *Node
	label    *Text
	arrow    *Text
	template *Node
	viewport *Node
	content  *Node

	options    []string
	items      []*option
	itemHeight int
	value      int
	cursor     int
	open       bool
	inert      bool
	onSelect   func(int)
}

// option is a two-state toggle inside the dropdown's content container.
type option struct {
	text     *Text
	label    string
	selected bool
}

func (o *option) refresh(highlighted bool) {
	marker := "  "
	switch {
	case highlighted:
		marker = focusedStyle.Render("› ")
	case o.selected:
		marker = selectedStyle.Render("✓ ")
	}
	o.text.SetText(marker + o.label)
}

// visibleOptionRows caps how tall the viewport gets before scrolling.
const visibleOptionRows = 4

// NewDropdown builds a dropdown over options with a fixed per-item height.
// An empty option list logs a warning and leaves the widget inert rather
// than failing construction. The initial value is index 0.
func (f *Factory) NewDropdown(parent *Node, name string, pos Point, size Size, options []string, itemHeight int, onSelect func(int)) *Dropdown {
	if itemHeight < 1 {
		itemHeight = 1
	}
	d := &Dropdown{
		options:    append([]string(nil), options...),
		itemHeight: itemHeight,
		onSelect:   onSelect,
	}
	d.node = newChild(parent, name, pos, size)

	labelText := ""
	if len(options) > 0 {
		labelText = options[0]
	}
	d.label = f.NewText(d.node, name+"/label", Point{X: -2, Y: -size.H/2 + 1}, Size{W: size.W - 4, H: 1}, labelText, false)
	d.arrow = f.NewText(d.node, name+"/arrow", Point{X: size.W/2 - 2, Y: -size.H/2 + 1}, Size{W: 2, H: 1}, "▾", false)

	if len(options) == 0 {
		f.log.Warn("dropdown built with no options; widget left inert", zap.String("name", name))
		d.inert = true
		return d
	}

	rows := len(options)
	if rows > visibleOptionRows {
		rows = visibleOptionRows
	}
	viewH := rows * itemHeight

	// Template collapses whole; the viewport inside clips the stacked
	// content, which is sized optionCount × itemHeight.
	d.template = newChild(d.node, name+"/template", Point{Y: -size.H/2 + 1 + (viewH+1)/2 + 1}, Size{W: size.W - 2, H: viewH})
	d.template.Hide()
	d.viewport = newChild(d.template, name+"/viewport", Point{}, Size{W: size.W - 2, H: viewH})
	d.viewport.SetClip(true)
	contentH := len(options) * itemHeight
	d.content = newChild(d.viewport, name+"/content", Point{}, Size{W: size.W - 2, H: contentH})

	y := 0
	for i, opt := range options {
		text := f.NewText(d.content, optionNameAt(name, i), Point{Y: y - (contentH-itemHeight)/2}, Size{W: size.W - 2, H: itemHeight}, "", false)
		item := &option{text: text, label: opt, selected: i == 0}
		item.refresh(false)
		d.items = append(d.items, item)
		y += itemHeight
	}
	d.scrollToCursor()
	return d
}

func (d *Dropdown) Node() *Node  { return d.node }
func (d *Dropdown) Name() string { return d.node.name }

// Selected returns the current option index, -1 when inert.
func (d *Dropdown) Selected() int {
	if d.inert {
		return -1
	}
	return d.value
}

// Label returns the text currently shown on the collapsed dropdown.
func (d *Dropdown) Label() string { return d.label.Text() }

// Open reports whether the option template is expanded.
func (d *Dropdown) Open() bool { return d.open }

// Inert reports whether the dropdown was built without options.
func (d *Dropdown) Inert() bool { return d.inert }

// Options returns a copy of the option labels.
func (d *Dropdown) Options() []string { return append([]string(nil), d.options...) }

// OnSelect binds the value-changed handler, replacing any previous one.
func (d *Dropdown) OnSelect(fn func(int)) { d.onSelect = fn }

// Toggle expands or collapses the option template. Activating the label or
// arrow routes here.
func (d *Dropdown) Toggle() {
	if d.inert {
		return
	}
	d.open = !d.open
	d.template.SetVisible(d.open)
	if d.open {
		d.cursor = d.value
		d.scrollToCursor()
		d.arrow.SetText("▴")
	} else {
		d.arrow.SetText("▾")
	}
}

// Activate toggles the template, satisfying Clickable for the collapsed
// header.
func (d *Dropdown) Activate() { d.Toggle() }

// Cursor returns the highlighted option while the template is open.
func (d *Dropdown) Cursor() int { return d.cursor }

// MoveCursor shifts the open-template highlight by delta, clamped.
func (d *Dropdown) MoveCursor(delta int) {
	if d.inert || !d.open {
		return
	}
	c := d.cursor + delta
	if c < 0 {
		c = 0
	}
	if c >= len(d.items) {
		c = len(d.items) - 1
	}
	d.cursor = c
	d.scrollToCursor()
}

// Select picks option i: deselects all siblings, selects i, refreshes the
// label, collapses the template, and fires the value-changed callback —
// exactly once per distinct selection. Re-selecting the current value is a
// no-op apart from collapsing.
func (d *Dropdown) Select(i int) {
	if d.inert || i < 0 || i >= len(d.items) {
		return
	}
	changed := i != d.value
	for j, item := range d.items {
		item.selected = j == i
		item.refresh(false)
	}
	d.value = i
	d.label.SetText(d.options[i])
	if d.open {
		d.Toggle()
	}
	if changed && d.onSelect != nil {
		d.onSelect(i)
	}
}

// SelectCursor confirms the highlighted option.
func (d *Dropdown) SelectCursor() {
	if d.inert || !d.open {
		return
	}
	d.Select(d.cursor)
}

// scrollToCursor keeps the highlighted option inside the clipped viewport.
func (d *Dropdown) scrollToCursor() {
	if d.inert {
		return
	}
	viewRows := d.viewport.size.H / d.itemHeight
	top := d.topRow()
	if d.cursor < top {
		top = d.cursor
	} else if d.cursor >= top+viewRows {
		top = d.cursor - viewRows + 1
	}
	off := top * d.itemHeight
	d.content.SetPos(Point{Y: -off - (d.viewport.size.H-d.content.size.H)/2})
	d.highlight()
}

func (d *Dropdown) topRow() int {
	origin := d.content.pos.Y + (d.viewport.size.H-d.content.size.H)/2
	return -origin / d.itemHeight
}

func (d *Dropdown) highlight() {
	for i, item := range d.items {
		item.refresh(d.open && i == d.cursor)
	}
}

func optionNameAt(base string, i int) string {
	return itemName(base+"/option", i)
}
