package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestButtonActivateFiresHandler(t *testing.T) {
	root := NewRoot("root", Size{W: 20, H: 3})
	f := NewFactory(nil)

	fired := 0
	b := f.NewButton(root, "btn", Point{}, Size{W: 10, H: 1}, "Go", func() { fired++ })
	b.Activate()
	b.Activate()
	if fired != 2 {
		t.Errorf("handler fired %d times, want 2", fired)
	}
}

func TestButtonWithoutHandlerIsInert(t *testing.T) {
	root := NewRoot("root", Size{W: 20, H: 3})
	f := NewFactory(nil)
	b := f.NewButton(root, "btn", Point{}, Size{W: 10, H: 1}, "Go", nil)
	b.Activate() // must not panic
}

func TestButtonRebindReplacesHandler(t *testing.T) {
	root := NewRoot("root", Size{W: 20, H: 3})
	f := NewFactory(nil)
	b := f.NewButton(root, "btn", Point{}, Size{W: 10, H: 1}, "Go", nil)

	var got string
	b.OnActivate(func() { got = "first" })
	b.OnActivate(func() { got = "second" })
	b.Activate()
	if got != "second" {
		t.Errorf("got %q, want the replacing handler", got)
	}
}

func TestColorButtonKeepsColor(t *testing.T) {
	root := NewRoot("root", Size{W: 20, H: 3})
	f := NewFactory(nil)
	c := f.NewColorButton(root, "swatch", Point{}, Size{W: 5, H: 1}, "#ff0000", nil)
	if c.Color() != "#ff0000" {
		t.Errorf("Color() = %q", c.Color())
	}
}

func TestSliderClampsAndSteps(t *testing.T) {
	root := NewRoot("root", Size{W: 30, H: 3})
	f := NewFactory(nil)

	var last float64
	s := f.NewSlider(root, "s", Point{}, Size{W: 20, H: 1}, 0, 10, 5, func(v float64) { last = v })

	s.SetValue(42)
	if s.Value() != 10 {
		t.Errorf("value = %v, want clamped 10", s.Value())
	}
	if last != 10 {
		t.Errorf("callback saw %v, want 10", last)
	}

	s.SetValue(-3)
	if s.Value() != 0 {
		t.Errorf("value = %v, want clamped 0", s.Value())
	}

	s.Step(2) // step = (10-0)/20 = 0.5
	if s.Value() != 1 {
		t.Errorf("value after Step(2) = %v, want 1", s.Value())
	}
}

func TestSliderSetValueNoopSkipsCallback(t *testing.T) {
	root := NewRoot("root", Size{W: 30, H: 3})
	f := NewFactory(nil)

	calls := 0
	s := f.NewSlider(root, "s", Point{}, Size{W: 20, H: 1}, 0, 10, 5, func(float64) { calls++ })
	s.SetValue(5)
	if calls != 0 {
		t.Errorf("callback fired %d times for unchanged value", calls)
	}
}

func TestSliderDegenerateRangeWidened(t *testing.T) {
	root := NewRoot("root", Size{W: 30, H: 3})
	f := NewFactory(nil)
	s := f.NewSlider(root, "s", Point{}, Size{W: 20, H: 1}, 5, 5, 5, nil)
	s.Step(1) // must not divide by zero or panic
	if s.Value() <= 5 {
		t.Errorf("value = %v, want movement inside widened range", s.Value())
	}
}

func TestTextInputUpdateFiresOnChange(t *testing.T) {
	root := NewRoot("root", Size{W: 30, H: 3})
	f := NewFactory(nil)

	var got string
	in := f.NewTextInput(root, "in", Point{}, Size{W: 20, H: 1}, "name", func(v string) { got = v })
	in.Focus()
	in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})

	if in.Text() != "hi" {
		t.Errorf("Text() = %q, want %q", in.Text(), "hi")
	}
	if got != "hi" {
		t.Errorf("onChange saw %q, want %q", got, "hi")
	}
}

func TestTextInputSetTextSkipsCallback(t *testing.T) {
	root := NewRoot("root", Size{W: 30, H: 3})
	f := NewFactory(nil)

	calls := 0
	in := f.NewTextInput(root, "in", Point{}, Size{W: 20, H: 1}, "name", func(string) { calls++ })
	in.SetText("preset")
	if calls != 0 {
		t.Errorf("SetText fired onChange %d times", calls)
	}
	if in.Text() != "preset" {
		t.Errorf("Text() = %q", in.Text())
	}
}

func TestTextRendersContent(t *testing.T) {
	root := NewRoot("root", Size{W: 12, H: 1})
	f := NewFactory(nil)
	label := f.NewText(root, "label", Point{}, Size{W: 12, H: 1}, "hello", false)
	label.SetText("goodbye")
	if !strings.Contains(Render(root), "goodbye") {
		t.Errorf("render missing updated text: %q", Render(root))
	}
}
