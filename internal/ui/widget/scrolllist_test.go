package widget

import (
	"strings"
	"testing"
)

func newList(t *testing.T, w, h int) (*Factory, *ScrollList) {
	t.Helper()
	f := NewFactory(nil)
	root := NewRoot("root", Size{W: w, H: h})
	return f, f.NewScrollList(root, "list", Point{}, Size{W: w, H: h})
}

func TestScrollListAppendsAndWindows(t *testing.T) {
	f, l := newList(t, 10, 2)
	l.Append(f, "one")
	l.Append(f, "two")
	l.Append(f, "three")

	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	// appended entries auto-scroll to the newest.
	out := Render(l.Node())
	if strings.Contains(out, "one") {
		t.Errorf("oldest entry still visible after auto-scroll: %q", out)
	}
	if !strings.Contains(out, "two") || !strings.Contains(out, "three") {
		t.Errorf("window should show the two newest entries: %q", out)
	}
}

func TestScrollListScrollByClamps(t *testing.T) {
	f, l := newList(t, 10, 2)
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Append(f, s)
	}
	l.ScrollBy(-100)
	if l.Offset() != 0 {
		t.Errorf("offset = %d, want clamped 0", l.Offset())
	}
	out := Render(l.Node())
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Errorf("top window should show the oldest entries: %q", out)
	}

	l.ScrollBy(100)
	if l.Offset() != 2 { // content 4 lines, viewport 2
		t.Errorf("offset = %d, want clamped 2", l.Offset())
	}
}

func TestScrollListMultiLineEntries(t *testing.T) {
	f, l := newList(t, 12, 3)
	l.Append(f, "first\nsecond")
	l.Append(f, "third")

	out := Render(l.Node())
	for _, want := range []string{"first", "second", "third"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q: %q", want, out)
		}
	}
}

func TestScrollListClear(t *testing.T) {
	f, l := newList(t, 10, 2)
	l.Append(f, "x")
	l.Clear()
	if l.Len() != 0 || l.Offset() != 0 {
		t.Errorf("Clear left Len=%d Offset=%d", l.Len(), l.Offset())
	}
	if out := Render(l.Node()); strings.Contains(out, "x") {
		t.Errorf("cleared entry still renders: %q", out)
	}
}
