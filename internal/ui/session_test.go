package ui

import (
	"errors"
	"testing"

	"mindnest/internal/store"
	"mindnest/internal/ui/widget"
)

func testMachine(t *testing.T, dir string) (*StateMachine, *VisibilityController) {
	t.Helper()
	vis := NewVisibilityController(nil)
	BuildPanels(widget.NewFactory(nil), vis, nil)
	flags := store.OpenFlags(dir)
	return NewStateMachine(vis, flags, nil), vis
}

func TestFreshInstallWalksOnboarding(t *testing.T) {
	sm, vis := testMachine(t, t.TempDir())
	if err := sm.Start(); err != nil {
		t.Fatal(err)
	}
	if sm.Current() != StateWelcome {
		t.Fatalf("fresh install starts in %s, want welcome", sm.Current())
	}

	steps := []struct {
		ev   Event
		want State
	}{
		{EventWelcomeComplete, StateCustomization},
		{EventFinishCustomization, StateConnectionConfirm},
		{EventContinue, StateMainMenu},
	}
	for _, step := range steps {
		if err := sm.Handle(step.ev); err != nil {
			t.Fatalf("Handle(%s): %v", step.ev, err)
		}
		if sm.Current() != step.want {
			t.Fatalf("after %s: state %s, want %s", step.ev, sm.Current(), step.want)
		}
		if vis.Current() != step.want.panelName() {
			t.Errorf("visible panel %q, want %q", vis.Current(), step.want.panelName())
		}
		if n := vis.VisibleCount(); n != 1 {
			t.Errorf("%d panels visible, want 1", n)
		}
	}
	if !sm.FirstRunCompleted() {
		t.Error("first-run latch not set after customization")
	}
}

func TestReturningUserSkipsOnboarding(t *testing.T) {
	dir := t.TempDir()

	sm, _ := testMachine(t, dir)
	if err := sm.Start(); err != nil {
		t.Fatal(err)
	}
	if err := sm.Handle(EventWelcomeComplete); err != nil {
		t.Fatal(err)
	}
	if err := sm.Handle(EventFinishCustomization); err != nil {
		t.Fatal(err)
	}

	// second launch against the same flag dir.
	sm2, vis2 := testMachine(t, dir)
	if err := sm2.Start(); err != nil {
		t.Fatal(err)
	}
	if sm2.Current() != StateMainMenu {
		t.Errorf("returning user starts in %s, want main_menu", sm2.Current())
	}
	if vis2.Current() != PanelMainMenu {
		t.Errorf("visible panel %q, want main_menu", vis2.Current())
	}
}

func TestActivitySelectionAndFinish(t *testing.T) {
	sm, _ := testMachine(t, t.TempDir())
	if err := sm.Start(); err != nil {
		t.Fatal(err)
	}
	for _, ev := range []Event{EventWelcomeComplete, EventFinishCustomization, EventContinue} {
		if err := sm.Handle(ev); err != nil {
			t.Fatal(err)
		}
	}

	cases := []struct {
		sel  Event
		want State
	}{
		{EventSelectBreathing, StateBreathing},
		{EventSelectAltruistic, StateAltruistic},
		{EventSelectTree, StateTreeControl},
		{EventSelectHistory, StateHistory},
		{EventSelectCheckin, StateConnectionConfirm},
	}
	for _, c := range cases {
		if err := sm.Handle(c.sel); err != nil {
			t.Fatalf("Handle(%s): %v", c.sel, err)
		}
		if sm.Current() != c.want {
			t.Fatalf("after %s: %s, want %s", c.sel, sm.Current(), c.want)
		}
		if err := sm.Handle(EventFinish); err != nil {
			t.Fatalf("finish from %s: %v", c.want, err)
		}
		if sm.Current() != StateMainMenu {
			t.Fatalf("finish landed in %s, want main_menu", sm.Current())
		}
	}
}

func TestInvalidEventKeepsState(t *testing.T) {
	sm, vis := testMachine(t, t.TempDir())
	if err := sm.Start(); err != nil {
		t.Fatal(err)
	}

	err := sm.Handle(EventSelectBreathing) // not valid in welcome
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if sm.Current() != StateWelcome {
		t.Errorf("state moved to %s on invalid event", sm.Current())
	}
	if vis.Current() != PanelWelcome {
		t.Errorf("panel changed to %q on invalid event", vis.Current())
	}
}

type recordingStopper struct{ stops int }

func (r *recordingStopper) Stop() { r.stops++ }

func TestLeavingStateStopsController(t *testing.T) {
	sm, _ := testMachine(t, t.TempDir())
	stopper := &recordingStopper{}
	sm.BindStopper(StateBreathing, stopper)

	if err := sm.Start(); err != nil {
		t.Fatal(err)
	}
	for _, ev := range []Event{EventWelcomeComplete, EventFinishCustomization, EventContinue, EventSelectBreathing} {
		if err := sm.Handle(ev); err != nil {
			t.Fatal(err)
		}
	}
	if stopper.stops != 0 {
		t.Fatalf("stopper fired %d times before leaving", stopper.stops)
	}
	if err := sm.Handle(EventFinish); err != nil {
		t.Fatal(err)
	}
	if stopper.stops != 1 {
		t.Errorf("stopper fired %d times, want 1", stopper.stops)
	}
}

func TestFirstRunFlagPersistsOnce(t *testing.T) {
	dir := t.TempDir()
	sm, _ := testMachine(t, dir)
	if err := sm.Start(); err != nil {
		t.Fatal(err)
	}
	if err := sm.Handle(EventWelcomeComplete); err != nil {
		t.Fatal(err)
	}
	if err := sm.Handle(EventFinishCustomization); err != nil {
		t.Fatal(err)
	}

	flags := store.OpenFlags(dir)
	done, err := flags.Bool(store.FirstRunCompleted)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("first-run flag not persisted")
	}
}
