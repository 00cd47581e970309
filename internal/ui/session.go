package ui

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mindnest/internal/store"
)

// State is the active session activity. Exactly one is active at a time;
// the task overlay is a flag orthogonal to this enum.
type State int

const (
	StateWelcome State = iota
	StateCustomization
	StateConnectionConfirm
	StateMainMenu
	StateBreathing
	StateAltruistic
	StateTreeControl
	StateHistory
)

var stateNames = map[State]string{
	StateWelcome:           "welcome",
	StateCustomization:     "customization",
	StateConnectionConfirm: "connection_confirm",
	StateMainMenu:          "main_menu",
	StateBreathing:         "breathing",
	StateAltruistic:        "altruistic",
	StateTreeControl:       "tree_control",
	StateHistory:           "history",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// panelName maps a state to the panel it shows. State and panel names line
// up one to one.
func (s State) panelName() string { return s.String() }

// Event is a UI or collaborator trigger fed to the state machine.
type Event int

const (
	EventWelcomeComplete Event = iota
	EventFinishCustomization
	EventContinue
	EventSelectBreathing
	EventSelectAltruistic
	EventSelectTree
	EventSelectHistory
	EventSelectCheckin
	EventFinish
)

var eventNames = map[Event]string{
	EventWelcomeComplete:     "welcome_complete",
	EventFinishCustomization: "finish_customization",
	EventContinue:            "continue",
	EventSelectBreathing:     "select_breathing",
	EventSelectAltruistic:    "select_altruistic",
	EventSelectTree:          "select_tree",
	EventSelectHistory:       "select_history",
	EventSelectCheckin:       "select_checkin",
	EventFinish:              "finish",
}

func (e Event) String() string {
	if n, ok := eventNames[e]; ok {
		return n
	}
	return "unknown"
}

// ErrInvalidTransition is returned for an event the current state ignores.
var ErrInvalidTransition = errors.New("invalid transition")

var transitions = map[State]map[Event]State{
	StateWelcome: {
		EventWelcomeComplete: StateCustomization,
	},
	StateCustomization: {
		EventFinishCustomization: StateConnectionConfirm,
	},
	StateConnectionConfirm: {
		EventContinue: StateMainMenu,
		EventFinish:   StateMainMenu,
	},
	StateMainMenu: {
		EventSelectBreathing:  StateBreathing,
		EventSelectAltruistic: StateAltruistic,
		EventSelectTree:       StateTreeControl,
		EventSelectHistory:    StateHistory,
		EventSelectCheckin:    StateConnectionConfirm,
	},
	StateBreathing:   {EventFinish: StateMainMenu},
	StateAltruistic:  {EventFinish: StateMainMenu},
	StateTreeControl: {EventFinish: StateMainMenu},
	StateHistory:     {EventFinish: StateMainMenu},
}

// Stoppable is an activity controller that owns timers or other pending
// work; the state machine stops the outgoing state's controller before the
// incoming panel shows.
type Stoppable interface {
	Stop()
}

// StateMachine owns the current session state, the first-run latch, and the
// transition table. It receives UI and collaborator events and drives the
// visibility controller; it never blocks.
type StateMachine struct {
	log      *zap.Logger
	vis      *VisibilityController
	flags    *store.FlagStore
	current  State
	started  bool
	flagDone bool
	stoppers map[State]Stoppable
}

// NewStateMachine wires the machine to its visibility controller and flag
// store.
func NewStateMachine(vis *VisibilityController, flags *store.FlagStore, log *zap.Logger) *StateMachine {
	if log == nil {
		log = zap.NewNop()
	}
	return &StateMachine{
		log:      log,
		vis:      vis,
		flags:    flags,
		stoppers: make(map[State]Stoppable),
	}
}

// BindStopper attaches an activity controller to a state.
func (s *StateMachine) BindStopper(st State, c Stoppable) {
	s.stoppers[st] = c
}

// Current returns the active state.
func (s *StateMachine) Current() State { return s.current }

// FirstRunCompleted reports the first-run latch. Once true it never reverts
// within a session.
func (s *StateMachine) FirstRunCompleted() bool { return s.flagDone }

// Start reads the persisted first-run flag and shows the initial panel:
// Welcome on a fresh install, MainMenu for a returning user (the whole
// Welcome→Customization→ConnectionConfirm chain is skipped).
func (s *StateMachine) Start() error {
	if s.started {
		return nil
	}
	done, err := s.flags.Bool(store.FirstRunCompleted)
	if err != nil {
		s.log.Error("read first-run flag; assuming fresh install", zap.Error(err))
		done = false
	}
	s.flagDone = done

	initial := StateWelcome
	if done {
		initial = StateMainMenu
	}
	if err := s.vis.Show(initial.panelName()); err != nil {
		return fmt.Errorf("show initial panel: %w", err)
	}
	s.current = initial
	s.started = true
	s.log.Info("session started", zap.Stringer("state", initial), zap.Bool("returning_user", done))
	return nil
}

// Handle applies one event. Unknown events for the current state and
// transitions onto missing panels are both non-fatal: the error is logged
// and the current panel stays visible.
func (s *StateMachine) Handle(ev Event) error {
	target, ok := transitions[s.current][ev]
	if !ok {
		s.log.Debug("event ignored in state", zap.Stringer("state", s.current), zap.Stringer("event", ev))
		return fmt.Errorf("%w: %s in %s", ErrInvalidTransition, ev, s.current)
	}

	// Verify the destination exists before tearing anything down, so a
	// failed transition leaves the current panel visible.
	if s.vis.Panel(target.panelName()) == nil {
		s.log.Error("transition target panel unset; staying put",
			zap.Stringer("from", s.current), zap.Stringer("to", target))
		return fmt.Errorf("%w: %s", ErrUnknownPanel, target.panelName())
	}

	if ev == EventFinishCustomization {
		s.completeFirstRun()
	}

	// Stop the outgoing state's pending work before the new panel shows.
	if c, ok := s.stoppers[s.current]; ok {
		c.Stop()
	}
	if err := s.vis.Show(target.panelName()); err != nil {
		return err
	}
	s.log.Debug("transition",
		zap.Stringer("from", s.current), zap.Stringer("event", ev), zap.Stringer("to", target))
	s.current = target
	return nil
}

// completeFirstRun writes the persisted flag exactly once.
func (s *StateMachine) completeFirstRun() {
	if s.flagDone {
		return
	}
	if err := s.flags.SetBool(store.FirstRunCompleted, true); err != nil {
		s.log.Error("persist first-run flag", zap.Error(err))
	}
	s.flagDone = true
}
