package ui

import (
	"fmt"

	"go.uber.org/zap"

	"mindnest/internal/gesture"
	"mindnest/internal/store"
	"mindnest/internal/ui/widget"
)

// Breath phases cycle inhale → hold → exhale within one breath cycle.
const (
	phaseInhale = "Inhale"
	phaseHold   = "Hold"
	phaseExhale = "Exhale"
)

// BreathingController owns the countdown shown on the breathing panel. The
// countdown is generation-tagged: Stop bumps the generation, so a tick from
// a cancelled run is recognized as stale and dropped. Leaving the state
// always stops the countdown.
type BreathingController struct {
	log          *zap.Logger
	panels       *Panels
	cycleSeconds int
	cycles       int

	running    bool
	generation int
	elapsed    int
	completed  bool
}

// NewBreathingController wires the controller to the breathing panel's
// labels. Out-of-range knobs fall back to the defaults.
func NewBreathingController(p *Panels, cycleSeconds, cycles int, log *zap.Logger) *BreathingController {
	if cycleSeconds < 3 {
		cycleSeconds = 12
	}
	if cycles < 1 {
		cycles = 5
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BreathingController{
		log:          log,
		panels:       p,
		cycleSeconds: cycleSeconds,
		cycles:       cycles,
	}
}

// Start begins a fresh countdown and returns its generation tag.
func (b *BreathingController) Start() int {
	b.generation++
	b.running = true
	b.completed = false
	b.elapsed = 0
	b.render()
	return b.generation
}

// Stop cancels the countdown. Ticks carrying an older generation are
// ignored afterwards.
func (b *BreathingController) Stop() {
	if b.running {
		b.log.Debug("breathing countdown stopped", zap.Int("generation", b.generation))
	}
	b.running = false
	b.generation++
}

// Running reports whether a countdown is live.
func (b *BreathingController) Running() bool { return b.running }

// Generation returns the current tag.
func (b *BreathingController) Generation() int { return b.generation }

// Completed reports whether the last run reached the end on its own.
func (b *BreathingController) Completed() bool { return b.completed }

// Tick advances one second. It returns true while the countdown should keep
// ticking; stale or stopped ticks return false without touching any widget.
func (b *BreathingController) Tick(generation int) bool {
	if !b.running || generation != b.generation {
		return false
	}
	b.elapsed++
	if b.elapsed >= b.cycleSeconds*b.cycles {
		b.running = false
		b.completed = true
		b.panels.BreathPhase.SetText("Well done")
		b.panels.BreathCount.SetText("")
		b.panels.BreathCycle.SetText("Breathing complete")
		return false
	}
	b.render()
	return true
}

func (b *BreathingController) render() {
	within := b.elapsed % b.cycleSeconds
	third := b.cycleSeconds / 3
	var phase string
	var left int
	switch {
	case within < third:
		phase = phaseInhale
		left = third - within
	case within < 2*third:
		phase = phaseHold
		left = 2*third - within
	default:
		phase = phaseExhale
		left = b.cycleSeconds - within
	}
	b.panels.BreathPhase.SetText(phase)
	b.panels.BreathCount.SetText(fmt.Sprintf("%d", left))
	b.panels.BreathCycle.SetText(fmt.Sprintf("Cycle %d of %d", b.elapsed/b.cycleSeconds+1, b.cycles))
}

// touchGoal is how many comfort touches complete the altruistic exercise.
const touchGoal = 3

// AltruisticController counts comfort-touch gestures and mirrors palm
// tracking onto the camera-preview widget.
type AltruisticController struct {
	log     *zap.Logger
	panels  *Panels
	touches int
	done    bool
}

// NewAltruisticController wires the controller to the altruistic panel.
func NewAltruisticController(p *Panels, log *zap.Logger) *AltruisticController {
	if log == nil {
		log = zap.NewNop()
	}
	return &AltruisticController{log: log, panels: p}
}

// Touches returns the current count (0..3).
func (a *AltruisticController) Touches() int { return a.touches }

// Done reports whether the goal was reached.
func (a *AltruisticController) Done() bool { return a.done }

// HandleGesture consumes one collaborator event. It returns true when this
// event completed the exercise.
func (a *AltruisticController) HandleGesture(ev gesture.Event) bool {
	switch ev.Type {
	case gesture.ComfortTouch:
		if a.touches >= touchGoal {
			return false
		}
		a.touches++
		a.render()
		if a.touches == touchGoal {
			a.done = true
			a.log.Info("altruistic exercise complete")
			return true
		}
	case gesture.PalmDetected:
		a.panels.CameraPreview.Show()
	case gesture.HandLost:
		a.panels.CameraPreview.Hide()
	}
	return false
}

// Reset clears the counter for a fresh run.
func (a *AltruisticController) Reset() {
	a.touches = 0
	a.done = false
	a.render()
}

// Stop satisfies Stoppable; the exercise owns no timers, and the counter
// survives hide/show within the session.
func (a *AltruisticController) Stop() {}

func (a *AltruisticController) render() {
	a.panels.TouchCounter.SetText(fmt.Sprintf("Touches: %d / %d", a.touches, touchGoal))
}

// TreeController keeps the tree configurator in sync with the nutrient
// total.
type TreeController struct {
	log    *zap.Logger
	panels *Panels
	total  int
}

// NewTreeController wires the controller to the tree panel.
func NewTreeController(p *Panels, log *zap.Logger) *TreeController {
	if log == nil {
		log = zap.NewNop()
	}
	return &TreeController{log: log, panels: p}
}

// SetTotal updates the nutrient readout and growth slider (growth saturates
// at 100).
func (t *TreeController) SetTotal(total int) {
	t.total = total
	t.panels.NutrientTotal.SetText(fmt.Sprintf("Nutrients collected: %d", total))
	growth := float64(total)
	if growth > 100 {
		growth = 100
	}
	t.panels.GrowthSlider.SetValue(growth)
}

// Total returns the last known nutrient total.
func (t *TreeController) Total() int { return t.total }

// Season returns the selected season label.
func (t *TreeController) Season() string { return t.panels.SeasonDropdown.Label() }

// Stop satisfies Stoppable; the configurator owns no timers.
func (t *TreeController) Stop() {}

// HistoryController renders completed-activity records as stacked cards.
type HistoryController struct {
	log     *zap.Logger
	panels  *Panels
	factory *widget.Factory
}

// NewHistoryController wires the controller to the history panel.
func NewHistoryController(p *Panels, f *widget.Factory, log *zap.Logger) *HistoryController {
	if log == nil {
		log = zap.NewNop()
	}
	return &HistoryController{log: log, panels: p, factory: f}
}

// SetRecords replaces the card list, newest first.
func (h *HistoryController) SetRecords(records []store.Record) {
	h.panels.HistoryList.Clear()
	if len(records) == 0 {
		h.panels.HistoryList.Append(h.factory, "Nothing here yet — try an activity first.")
		return
	}
	for _, rec := range records {
		h.panels.HistoryList.Append(h.factory, CardText(rec))
	}
}

// Stop satisfies Stoppable.
func (h *HistoryController) Stop() {}

// CardText formats one history record as a card line.
func CardText(rec store.Record) string {
	n, ok := store.NutrientFor(rec.Activity)
	award := ""
	if ok {
		award = fmt.Sprintf("  %s +%d %s", n.Emoji, n.Amount, n.Type)
	}
	return fmt.Sprintf("%s — %s%s", rec.CompletedAt.Local().Format("Jan 2 15:04"), rec.Activity, award)
}
