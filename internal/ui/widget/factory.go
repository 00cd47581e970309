package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	buttonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	swatchStyle   = lipgloss.NewStyle()
	trackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
)

// Factory builds widgets under a parent node. Construction is deterministic
// and never panics; missing optional parameters fall back to neutral
// defaults so a bad builder call yields an inert widget, not a crash.
type Factory struct {
	log *zap.Logger
}

// NewFactory creates a factory. A nil logger is replaced with a nop logger.
func NewFactory(log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{log: log}
}

// Text is a static (or programmatically updated) label.
type Text struct {
	node    *Node
	content string
	heading bool
}

// NewText builds a text label. Heading text renders bold.
func (f *Factory) NewText(parent *Node, name string, pos Point, size Size, content string, heading bool) *Text {
	t := &Text{content: content, heading: heading}
	t.node = newChild(parent, name, pos, size)
	t.node.view = t.view
	return t
}

func (t *Text) Node() *Node  { return t.node }
func (t *Text) Name() string { return t.node.name }

// Text returns the current content.
func (t *Text) Text() string { return t.content }

// SetText replaces the content.
func (t *Text) SetText(s string) { t.content = s }

func (t *Text) view() string {
	lines := strings.Split(t.content, "\n")
	for i, line := range lines {
		if t.heading {
			lines[i] = headingStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Button fires a callback when activated.
type Button struct {
	node       *Node
	label      string
	focused    bool
	onActivate func()
}

// NewButton builds a button. onActivate may be nil; the button is then inert
// until a handler is bound.
func (f *Factory) NewButton(parent *Node, name string, pos Point, size Size, label string, onActivate func()) *Button {
	b := &Button{label: label, onActivate: onActivate}
	b.node = newChild(parent, name, pos, size)
	b.node.view = b.view
	return b
}

func (b *Button) Node() *Node  { return b.node }
func (b *Button) Name() string { return b.node.name }

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the button text.
func (b *Button) SetLabel(s string) { b.label = s }

// SetFocused toggles the focus highlight.
func (b *Button) SetFocused(v bool) { b.focused = v }

// OnActivate binds the activation handler, replacing any previous one.
func (b *Button) OnActivate(fn func()) { b.onActivate = fn }

// Activate fires the bound handler, if any.
func (b *Button) Activate() {
	if b.onActivate != nil {
		b.onActivate()
	}
}

func (b *Button) view() string {
	style := buttonStyle
	if b.focused {
		style = focusedStyle
	}
	return style.Render("[ " + b.label + " ]")
}

// ColorButton is a button rendered as a color swatch, used by the avatar
// customization panel.
type ColorButton struct {
	Button
	color string
}

// NewColorButton builds a swatch button for a hex or ANSI color.
func (f *Factory) NewColorButton(parent *Node, name string, pos Point, size Size, color string, onActivate func()) *ColorButton {
	c := &ColorButton{color: color}
	c.label = color
	c.onActivate = onActivate
	c.node = newChild(parent, name, pos, size)
	c.node.view = c.view
	return c
}

// Color returns the swatch color.
func (c *ColorButton) Color() string { return c.color }

func (c *ColorButton) view() string {
	w := c.node.size.W
	if w < 2 {
		w = 2
	}
	block := strings.Repeat("█", w)
	swatch := swatchStyle.Foreground(lipgloss.Color(c.color)).Render(block)
	if c.focused {
		return focusedStyle.Render(">") + swatch
	}
	return " " + swatch
}

// Slider holds a bounded numeric value with a change callback.
type Slider struct {
	node     *Node
	min, max float64
	value    float64
	step     float64
	focused  bool
	onChange func(float64)
}

// NewSlider builds a slider. A degenerate range (max <= min) is widened to
// one unit so the widget stays usable.
func (f *Factory) NewSlider(parent *Node, name string, pos Point, size Size, minV, maxV, initial float64, onChange func(float64)) *Slider {
	if maxV <= minV {
		f.log.Warn("slider built with degenerate range", zap.String("name", name))
		maxV = minV + 1
	}
	s := &Slider{min: minV, max: maxV, value: clamp(initial, minV, maxV), onChange: onChange}
	s.step = (maxV - minV) / 20
	s.node = newChild(parent, name, pos, size)
	s.node.view = s.view
	return s
}

func (s *Slider) Node() *Node  { return s.node }
func (s *Slider) Name() string { return s.node.name }

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue clamps and stores the value, firing the callback when it changed.
func (s *Slider) SetValue(v float64) {
	v = clamp(v, s.min, s.max)
	if v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
}

// Step nudges the value by n increments.
func (s *Slider) Step(n int) { s.SetValue(s.value + float64(n)*s.step) }

// SetFocused toggles the focus highlight.
func (s *Slider) SetFocused(v bool) { s.focused = v }

// OnChange binds the change handler, replacing any previous one.
func (s *Slider) OnChange(fn func(float64)) { s.onChange = fn }

func (s *Slider) view() string {
	w := s.node.size.W - 8
	if w < 5 {
		w = 5
	}
	frac := (s.value - s.min) / (s.max - s.min)
	knob := int(frac*float64(w-1) + 0.5)
	var sb strings.Builder
	for i := 0; i < w; i++ {
		if i == knob {
			sb.WriteString("●")
		} else {
			sb.WriteString("─")
		}
	}
	bar := trackStyle.Render(sb.String())
	if s.focused {
		bar = focusedStyle.Render(sb.String())
	}
	return fmt.Sprintf("%s %5.1f", bar, s.value)
}

// TextInput is an editable text field backed by a bubbles textinput model.
type TextInput struct {
	node     *Node
	input    textinput.Model
	onChange func(string)
}

// NewTextInput builds a text field with a placeholder.
func (f *Factory) NewTextInput(parent *Node, name string, pos Point, size Size, placeholder string, onChange func(string)) *TextInput {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 64
	in.Width = size.W - 2
	t := &TextInput{input: in, onChange: onChange}
	t.node = newChild(parent, name, pos, size)
	t.node.view = t.view
	return t
}

func (t *TextInput) Node() *Node  { return t.node }
func (t *TextInput) Name() string { return t.node.name }

// Text returns the current value.
func (t *TextInput) Text() string { return t.input.Value() }

// SetText replaces the value without firing the change callback.
func (t *TextInput) SetText(s string) { t.input.SetValue(s) }

// Focus gives the field keyboard focus.
func (t *TextInput) Focus() { t.input.Focus() }

// Blur removes keyboard focus.
func (t *TextInput) Blur() { t.input.Blur() }

// Focused reports keyboard focus.
func (t *TextInput) Focused() bool { return t.input.Focused() }

// Update forwards an input event to the underlying field and fires the
// change callback when the value changed.
func (t *TextInput) Update(msg tea.Msg) {
	before := t.input.Value()
	t.input, _ = t.input.Update(msg)
	if after := t.input.Value(); after != before && t.onChange != nil {
		t.onChange(after)
	}
}

func (t *TextInput) view() string { return t.input.View() }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
