package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"mindnest/internal/chat"
	"mindnest/internal/config"
	"mindnest/internal/store"
)

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{
		Chat:    config.ChatConfig{Provider: "heuristic", TimeoutSeconds: 1},
		Session: config.SessionConfig{BreathCycleSeconds: 3, BreathCycles: 1},
	}
	flags := store.OpenFlags(t.TempDir())
	app := NewApp(cfg, chat.NewHeuristicProvider(), nil, flags, nil)
	app.Init()
	return app
}

func press(t *testing.T, app *App, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := app.Update(msg)
	return cmd
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func tab() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyTab} }

func TestAppFreshInstallStartsOnWelcome(t *testing.T) {
	app := testApp(t)
	if app.sm.Current() != StateWelcome {
		t.Fatalf("state = %s, want welcome", app.sm.Current())
	}
	if app.vis.Current() != PanelWelcome {
		t.Fatalf("visible panel %q, want welcome", app.vis.Current())
	}
}

func TestAppEnterWalksOnboarding(t *testing.T) {
	app := testApp(t)

	press(t, app, enter()) // Begin
	if app.sm.Current() != StateCustomization {
		t.Fatalf("state = %s, want customization", app.sm.Current())
	}

	// walk the focus ring past the name input, slider, and four swatches to
	// the Finish button.
	for i := 0; i < 6; i++ {
		press(t, app, tab())
	}
	press(t, app, enter())
	if app.sm.Current() != StateConnectionConfirm {
		t.Fatalf("state = %s, want connection_confirm", app.sm.Current())
	}
	if !app.panels.CheckinText.Focused() {
		t.Error("check-in input should grab focus on entry")
	}
	if !app.sm.FirstRunCompleted() {
		t.Error("first-run latch not set")
	}
}

func TestAppOverlayIsModalForInput(t *testing.T) {
	app := testApp(t)
	app.overlay.Show("a small task")

	// enter dismisses the overlay instead of activating the Begin button.
	press(t, app, enter())
	if app.overlay.Visible() {
		t.Fatal("enter did not dismiss the overlay")
	}
	if app.sm.Current() != StateWelcome {
		t.Errorf("overlay dismissal leaked into the state machine: %s", app.sm.Current())
	}
}

func TestAppBreathTickRoutesThroughGeneration(t *testing.T) {
	app := testApp(t)
	gen := app.breathing.Start()

	_, cmd := app.Update(BreathTickMsg{Generation: gen})
	if cmd == nil {
		t.Fatal("live tick should schedule the next one")
	}
	app.breathing.Stop()
	_, cmd = app.Update(BreathTickMsg{Generation: gen})
	if cmd != nil {
		t.Fatal("stale tick scheduled a follow-up")
	}
}

func TestAppSevereReplyRaisesTaskOverlay(t *testing.T) {
	app := testApp(t)
	app.chatPending = true
	app.chatSeq = 1

	app.Update(ChatReplyMsg{Seq: 1, Resp: chat.Response{Reply: "here", Level: chat.LevelSevere}})
	if !app.overlay.Visible() {
		t.Error("severe check-in did not raise the task overlay")
	}
	if app.overlay.Text() == "" {
		t.Error("overlay raised without a task")
	}
}

func TestAppStaleChatReplyIgnored(t *testing.T) {
	app := testApp(t)
	app.chatPending = true
	app.chatSeq = 2

	app.Update(ChatReplyMsg{Seq: 1, Resp: chat.Response{Reply: "late", Level: chat.LevelSevere}})
	if app.overlay.Visible() {
		t.Error("stale reply acted on the session")
	}
	if !app.chatPending {
		t.Error("stale reply cleared the pending request")
	}
}

func TestAppChatTimeoutClearsThinking(t *testing.T) {
	app := testApp(t)
	app.chatPending = true
	app.chatSeq = 3
	app.panels.Thinking.Node().Show()

	app.Update(ChatTimeoutMsg{Seq: 3})
	if app.chatPending {
		t.Error("timeout left the request pending")
	}
	if app.panels.Thinking.Node().Visible() {
		t.Error("timeout left the thinking indicator up")
	}
}

func TestAppViewRendersCurrentPanel(t *testing.T) {
	app := testApp(t)
	out := app.View()
	if !strings.Contains(out, "Welcome to MindNest") {
		t.Errorf("view missing welcome panel content")
	}
}
