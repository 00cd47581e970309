package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindnest/internal/chat"
	"mindnest/internal/config"
	"mindnest/internal/gesture"
	"mindnest/internal/store"
	"mindnest/internal/ui/widget"
)

var (
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	overlayStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
	Back  key.Binding
	Touch key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "focus")),
		Down:  key.NewBinding(key.WithKeys("down", "j", "tab")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "adjust")),
		Right: key.NewBinding(key.WithKeys("right", "l")),
		Enter: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "activate")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Touch: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "touch")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Up, k.Enter, k.Back, k.Quit}
}

// App is the bubbletea model tying the session core together. Everything
// mutates on the single program goroutine: widget values are observed by
// many readers but only ever written by the handlers of the state currently
// in control.
type App struct {
	log     *zap.Logger
	cfg     config.Config
	factory *widget.Factory
	panels  *Panels
	vis     *VisibilityController
	sm      *StateMachine
	overlay *TaskOverlayController

	breathing  *BreathingController
	altruistic *AltruisticController
	tree       *TreeController
	historyCtl *HistoryController

	provider chat.Provider
	history  *store.HistoryRepo
	flags    *store.FlagStore

	keys      keyMap
	sessionID string
	width     int
	height    int
	status    string

	rings map[string][]widget.Widget
	focus map[string]int

	chatSeq     int
	chatPending bool
	avatarColor string
	queue       []Event
}

// NewApp builds the whole session core: panels, controllers, state machine,
// and handler bindings.
func NewApp(cfg config.Config, provider chat.Provider, history *store.HistoryRepo, flags *store.FlagStore, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		log:       log,
		cfg:       cfg,
		provider:  provider,
		history:   history,
		flags:     flags,
		keys:      newKeyMap(),
		sessionID: uuid.NewString(),
		status:    "Ready",
		width:     100,
		height:    32,
	}
	a.factory = widget.NewFactory(log.Named("widget"))
	a.vis = NewVisibilityController(log.Named("visibility"))
	a.panels = BuildPanels(a.factory, a.vis, log.Named("panels"))
	a.overlay = NewTaskOverlayController(a.vis, a.panels.TaskPrompt, log.Named("overlay"))
	a.breathing = NewBreathingController(a.panels, cfg.Session.BreathCycleSeconds, cfg.Session.BreathCycles, log.Named("breathing"))
	a.altruistic = NewAltruisticController(a.panels, log.Named("altruistic"))
	a.tree = NewTreeController(a.panels, log.Named("tree"))
	a.historyCtl = NewHistoryController(a.panels, a.factory, log.Named("history"))

	a.sm = NewStateMachine(a.vis, flags, log.Named("session"))
	a.sm.BindStopper(StateBreathing, a.breathing)
	a.sm.BindStopper(StateAltruistic, a.altruistic)
	a.sm.BindStopper(StateTreeControl, a.tree)
	a.sm.BindStopper(StateHistory, a.historyCtl)

	a.bindHandlers()
	a.buildFocusRings()
	return a
}

// bindHandlers attaches the outer-logic callbacks to the panel widgets.
func (a *App) bindHandlers() {
	p := a.panels
	p.WelcomeBegin.OnActivate(a.emit(EventWelcomeComplete))
	p.CustomDone.OnActivate(a.emit(EventFinishCustomization))
	p.ContinueBtn.OnActivate(a.emit(EventContinue))
	p.MenuBreathing.OnActivate(a.emit(EventSelectBreathing))
	p.MenuAltruistic.OnActivate(a.emit(EventSelectAltruistic))
	p.MenuTree.OnActivate(a.emit(EventSelectTree))
	p.MenuHistory.OnActivate(a.emit(EventSelectHistory))
	p.MenuCheckin.OnActivate(a.emit(EventSelectCheckin))
	p.BreathFinish.OnActivate(a.emit(EventFinish))
	p.AltFinish.OnActivate(a.emit(EventFinish))
	p.TreeClose.OnActivate(a.emit(EventFinish))
	p.HistoryBack.OnActivate(a.emit(EventFinish))

	p.TaskDismiss.OnActivate(func() { a.overlay.Dismiss() })
	p.WaterButton.OnActivate(func() { a.status = "You water the tree. It rustles happily." })
	p.SeasonDropdown.OnSelect(func(i int) {
		a.status = "Season set to " + SeasonOptions[i]
	})
	for _, swatch := range p.Swatches {
		s := swatch
		s.OnActivate(func() {
			a.avatarColor = s.Color()
			a.status = "Companion color chosen"
		})
	}
}

func (a *App) buildFocusRings() {
	p := a.panels
	a.focus = make(map[string]int)
	a.rings = map[string][]widget.Widget{
		PanelWelcome:       {p.WelcomeBegin},
		PanelCustomization: append([]widget.Widget{p.NameInput, p.SizeSlider}, swatchWidgets(p.Swatches, p.CustomDone)...),
		PanelCheckin:       {p.CheckinText, p.SendButton, p.ContinueBtn},
		PanelMainMenu:      {p.MenuBreathing, p.MenuAltruistic, p.MenuTree, p.MenuHistory, p.MenuCheckin},
		PanelBreathing:     {p.BreathFinish},
		PanelAltruistic:    {p.AltFinish},
		PanelTreeControl:   {p.SeasonDropdown, p.GrowthSlider, p.WaterButton, p.TreeClose},
		PanelHistory:       {p.HistoryBack},
	}
	a.applyFocus()
}

func swatchWidgets(swatches []*widget.ColorButton, tail widget.Widget) []widget.Widget {
	out := make([]widget.Widget, 0, len(swatches)+1)
	for _, s := range swatches {
		out = append(out, s)
	}
	return append(out, tail)
}

// emit returns a button handler that queues a state-machine event; the
// queue drains at the end of the same Update pass.
func (a *App) emit(ev Event) func() {
	return func() { a.queue = append(a.queue, ev) }
}

func (a *App) Init() tea.Cmd {
	if err := a.sm.Start(); err != nil {
		a.log.Error("session start", zap.Error(err))
		a.status = "Startup problem: " + err.Error()
	}
	a.applyFocus()
	return a.loadHistoryCmd()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case BreathTickMsg:
		if a.breathing.Tick(msg.Generation) {
			return a, breathTick(msg.Generation)
		}
		if a.breathing.Completed() {
			a.status = "Breathing complete — sunlight for your tree"
			return a, a.recordActivityCmd("breathing")
		}
		return a, nil

	case GestureMsg:
		if a.sm.Current() != StateAltruistic {
			return a, nil
		}
		if a.altruistic.HandleGesture(gesture.Event(msg)) {
			a.status = "Nomi feels comforted — water for your tree"
			return a, a.recordActivityCmd("altruistic")
		}
		return a, nil

	case ChatReplyMsg:
		return a, a.handleChatReply(msg)

	case ChatTimeoutMsg:
		if msg.Seq == a.chatSeq && a.chatPending {
			a.chatPending = false
			a.panels.Thinking.Node().Hide()
			a.panels.Transcript.Append(a.factory, "Nomi seems far away right now. Try again in a moment.")
			a.status = "Check-in timed out"
			a.log.Warn("chat reply timed out", zap.Int("seq", msg.Seq))
		}
		return a, nil

	case HistoryLoadedMsg:
		if msg.Err != nil {
			a.log.Error("load history", zap.Error(msg.Err))
			a.status = "Couldn't load your history"
			return a, nil
		}
		a.historyCtl.SetRecords(msg.Records)
		a.tree.SetTotal(msg.Total)
		return a, nil

	case ActivityRecordedMsg:
		if msg.Err != nil {
			a.log.Error("record activity", zap.Error(msg.Err))
			return a, nil
		}
		a.tree.SetTotal(msg.Total)
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	// The overlay is modal for input even though it never touches the
	// primary state underneath.
	if a.overlay.Visible() {
		switch {
		case key.Matches(msg, a.keys.Enter):
			// Done: the task counts as a completed activity.
			a.overlay.Dismiss()
			a.status = "Task done — fertilizer for your tree"
			return a.recordActivityCmd("task")
		case key.Matches(msg, a.keys.Back):
			a.overlay.Dismiss()
		case key.Matches(msg, a.keys.Quit):
			return tea.Quit
		}
		return nil
	}

	current := a.sm.Current().panelName()
	ring := a.rings[current]
	focused := a.focusedWidget(current, ring)

	// An editing text field swallows everything except esc and enter.
	if in, ok := focused.(*widget.TextInput); ok && in.Focused() {
		switch msg.String() {
		case "esc":
			in.Blur()
		case "enter":
			in.Blur()
			if in == a.panels.CheckinText {
				return tea.Batch(a.sendCheckin(), a.drainQueue())
			}
		default:
			in.Update(msg)
		}
		return a.drainQueue()
	}

	// An open dropdown owns the navigation keys.
	if dd, ok := focused.(*widget.Dropdown); ok && dd.Open() {
		switch {
		case key.Matches(msg, a.keys.Up):
			dd.MoveCursor(-1)
		case key.Matches(msg, a.keys.Down):
			dd.MoveCursor(1)
		case key.Matches(msg, a.keys.Enter):
			dd.SelectCursor()
		case key.Matches(msg, a.keys.Back):
			dd.Toggle()
		}
		return a.drainQueue()
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Up):
		a.moveFocus(current, ring, -1)
	case key.Matches(msg, a.keys.Down):
		a.moveFocus(current, ring, 1)
	case key.Matches(msg, a.keys.Left):
		if s, ok := focused.(*widget.Slider); ok {
			s.Step(-1)
		}
	case key.Matches(msg, a.keys.Right):
		if s, ok := focused.(*widget.Slider); ok {
			s.Step(1)
		}
	case key.Matches(msg, a.keys.Enter):
		if focused == widget.Widget(a.panels.SendButton) {
			return tea.Batch(a.sendCheckin(), a.drainQueue())
		}
		a.activate(focused)
	case key.Matches(msg, a.keys.Back):
		a.queue = append(a.queue, EventFinish)
	case key.Matches(msg, a.keys.Touch) && a.sm.Current() == StateAltruistic:
		// keyboard stand-in for the hand-tracking collaborator
		return func() tea.Msg { return GestureMsg{Type: gesture.ComfortTouch, Confidence: 1} }
	}
	return a.drainQueue()
}

func (a *App) activate(w widget.Widget) {
	switch w := w.(type) {
	case *widget.TextInput:
		w.Focus()
	case *widget.Dropdown:
		w.Toggle()
	case widget.Clickable:
		w.Activate()
	}
}

// drainQueue applies events queued by button handlers and produces any
// follow-up commands for the states just entered.
func (a *App) drainQueue() tea.Cmd {
	var cmds []tea.Cmd
	for len(a.queue) > 0 {
		ev := a.queue[0]
		a.queue = a.queue[1:]
		before := a.sm.Current()
		if err := a.sm.Handle(ev); err != nil {
			continue
		}
		if cmd := a.enteredState(before, a.sm.Current()); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// enteredState runs the entry work for a freshly shown state.
func (a *App) enteredState(from, to State) tea.Cmd {
	if from == to {
		return nil
	}
	a.applyFocus()
	switch to {
	case StateBreathing:
		gen := a.breathing.Start()
		return breathTick(gen)
	case StateAltruistic:
		a.altruistic.Reset()
		return nil
	case StateTreeControl, StateHistory:
		return a.loadHistoryCmd()
	case StateConnectionConfirm:
		a.panels.CheckinText.Focus()
		return nil
	}
	return nil
}

func (a *App) sendCheckin() tea.Cmd {
	text := a.panels.CheckinText.Text()
	if text == "" {
		return nil
	}
	if a.chatPending {
		a.status = "Nomi is still thinking"
		return nil
	}
	a.panels.Transcript.Append(a.factory, "You: "+text)
	a.panels.CheckinText.SetText("")
	a.panels.Thinking.Node().Show()
	a.chatPending = true
	a.chatSeq++
	seq := a.chatSeq

	timeout := time.Duration(a.cfg.Chat.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	provider := a.provider
	send := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := provider.Reply(ctx, chat.Request{Message: text})
		return ChatReplyMsg{Seq: seq, Resp: resp, Err: err}
	}
	expire := tea.Tick(timeout, func(time.Time) tea.Msg { return ChatTimeoutMsg{Seq: seq} })
	return tea.Batch(send, expire)
}

func (a *App) handleChatReply(msg ChatReplyMsg) tea.Cmd {
	if msg.Seq != a.chatSeq || !a.chatPending {
		return nil // stale: timeout already cleared this request
	}
	a.chatPending = false
	a.panels.Thinking.Node().Hide()
	if msg.Err != nil {
		a.log.Error("chat reply", zap.Error(msg.Err))
		a.panels.Transcript.Append(a.factory, "Nomi: (the connection wavered — let's just breathe together)")
		a.status = "Check-in failed"
		return nil
	}
	a.panels.Transcript.Append(a.factory, fmt.Sprintf("Nomi (%s): %s", msg.Resp.Expression, msg.Resp.Reply))
	a.status = "Nomi answered"
	if msg.Resp.Level == chat.LevelSevere {
		a.overlay.ShowRandom()
	}
	return nil
}

func (a *App) focusedWidget(panel string, ring []widget.Widget) widget.Widget {
	if len(ring) == 0 {
		return nil
	}
	i := a.focus[panel]
	if i < 0 || i >= len(ring) {
		i = 0
	}
	return ring[i]
}

func (a *App) moveFocus(panel string, ring []widget.Widget, delta int) {
	if len(ring) == 0 {
		return
	}
	i := (a.focus[panel] + delta + len(ring)) % len(ring)
	a.focus[panel] = i
	a.applyFocus()
}

// applyFocus repaints the focus highlight on the current panel's ring.
func (a *App) applyFocus() {
	current := a.sm.Current().panelName()
	ring := a.rings[current]
	idx := a.focus[current]
	for i, w := range ring {
		focused := i == idx
		switch w := w.(type) {
		case *widget.ColorButton:
			w.SetFocused(focused)
		case *widget.Button:
			w.SetFocused(focused)
		case *widget.Slider:
			w.SetFocused(focused)
		}
	}
}

func (a *App) loadHistoryCmd() tea.Cmd {
	repo := a.history
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		records, err := repo.Recent(ctx, 20)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		total, err := repo.TotalNutrients(ctx)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		return HistoryLoadedMsg{Records: records, Total: total}
	}
}

func (a *App) recordActivityCmd(activity string) tea.Cmd {
	repo := a.history
	if repo == nil {
		return nil
	}
	n, _ := store.NutrientFor(activity)
	rec := store.Record{
		ID:          uuid.NewString(),
		SessionID:   a.sessionID,
		Activity:    activity,
		Nutrient:    n.Type,
		Amount:      n.Amount,
		CompletedAt: time.Now(),
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := repo.Insert(ctx, rec); err != nil {
			return ActivityRecordedMsg{Activity: activity, Err: err}
		}
		total, err := repo.TotalNutrients(ctx)
		return ActivityRecordedMsg{Activity: activity, Total: total, Err: err}
	}
}

func breathTick(generation int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return BreathTickMsg{Generation: generation} })
}

func (a *App) View() string {
	current := a.vis.Current()
	panel := a.vis.Panel(current)
	body := ""
	if panel != nil {
		body = paneStyle.Render(widget.Render(panel.Root()))
	}

	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Center, lipgloss.Center, body)

	if a.overlay.Visible() {
		card := overlayStyle.Render(widget.Render(a.panels.TaskOverlay.Root()))
		cardW := lipgloss.Width(card)
		cardH := lipgloss.Height(card)
		x := (a.width - cardW) / 2
		if x < 0 {
			x = 0
		}
		y := (contentHeight - cardH) / 2
		if y < 0 {
			y = 0
		}
		main = widget.Compose(main, card, x, y, a.width, contentHeight)
	}

	return main + "\n" + a.renderStatus() + "\n" + a.renderFooter()
}

func (a *App) renderStatus() string {
	return statusBarStyle.Width(max(a.width, 0)).Render(a.status)
}

func (a *App) renderFooter() string {
	parts := ""
	for _, b := range a.keys.help() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		if parts != "" {
			parts += "  "
		}
		parts += h.Key + " " + h.Desc
	}
	return footerStyle.Width(max(a.width, 0)).Render(parts)
}
