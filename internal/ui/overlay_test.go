package ui

import (
	"math/rand"
	"testing"

	"mindnest/internal/ui/widget"
)

func testOverlay(t *testing.T) (*TaskOverlayController, *VisibilityController) {
	t.Helper()
	vis := NewVisibilityController(nil)
	panels := BuildPanels(widget.NewFactory(nil), vis, nil)
	return NewTaskOverlayController(vis, panels.TaskPrompt, nil), vis
}

func TestOverlayShowAndDismiss(t *testing.T) {
	ov, _ := testOverlay(t)

	ov.Show("Step outside for a 10 minute walk")
	if !ov.Visible() {
		t.Fatal("overlay not visible after Show")
	}
	if ov.Text() != "Step outside for a 10 minute walk" {
		t.Errorf("Text = %q", ov.Text())
	}

	ov.Dismiss()
	if ov.Visible() {
		t.Error("overlay still visible after Dismiss")
	}
}

func TestOverlayNewerShowOverwrites(t *testing.T) {
	ov, _ := testOverlay(t)
	ov.Show("first task")
	ov.Show("second task")
	if ov.Text() != "second task" {
		t.Errorf("Text = %q, want the newer task", ov.Text())
	}
	if !ov.Visible() {
		t.Error("overlay dismissed by the overwrite")
	}
}

func TestOverlayOrthogonalToPrimary(t *testing.T) {
	ov, vis := testOverlay(t)
	if err := vis.Show(PanelBreathing); err != nil {
		t.Fatal(err)
	}

	ov.Show("task")
	if vis.Current() != PanelBreathing {
		t.Errorf("showing the overlay moved the primary to %q", vis.Current())
	}
	ov.Dismiss()
	if !vis.Panel(PanelBreathing).Visible() {
		t.Error("dismissing the overlay hid the primary")
	}
}

func TestShowRandomDrawsFromPool(t *testing.T) {
	ov, _ := testOverlay(t)
	ov.SetRand(rand.New(rand.NewSource(7)))

	ov.ShowRandom()
	got := ov.Text()
	found := false
	for _, task := range TaskPool {
		if task == got {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("ShowRandom produced %q, not in the pool", got)
	}
}
