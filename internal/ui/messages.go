package ui

import (
	"mindnest/internal/chat"
	"mindnest/internal/gesture"
	"mindnest/internal/store"
)

// BreathTickMsg advances the breathing countdown by one second. The
// generation tag lets the controller drop ticks from a cancelled run.
type BreathTickMsg struct {
	Generation int
}

// ChatReplyMsg carries the collaborator's answer to check-in request Seq.
type ChatReplyMsg struct {
	Seq  int
	Resp chat.Response
	Err  error
}

// ChatTimeoutMsg fires when request Seq has waited long enough; if the
// reply still hasn't arrived the thinking indicator is cleared and an error
// line substituted into the transcript.
type ChatTimeoutMsg struct {
	Seq int
}

// GestureMsg delivers one hand-tracking collaborator event.
type GestureMsg gesture.Event

// HistoryLoadedMsg carries the recent records and nutrient total.
type HistoryLoadedMsg struct {
	Records []store.Record
	Total   int
	Err     error
}

// ActivityRecordedMsg confirms a completed activity was persisted.
type ActivityRecordedMsg struct {
	Activity string
	Total    int
	Err      error
}
