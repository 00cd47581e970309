// Package gesture defines the events the hand-tracking collaborator feeds
// into the session core. The core never talks to the tracker; it only
// consumes these discrete events.
package gesture

// EventType enumerates the gestures the core reacts to.
type EventType int

const (
	// ComfortTouch is a completed comfort/touch gesture during the
	// altruistic exercise.
	ComfortTouch EventType = iota
	// PalmDetected means a palm entered the tracking volume.
	PalmDetected
	// HandLost means tracking dropped the hand.
	HandLost
)

func (t EventType) String() string {
	switch t {
	case ComfortTouch:
		return "comfort_touch"
	case PalmDetected:
		return "palm_detected"
	case HandLost:
		return "hand_lost"
	default:
		return "unknown"
	}
}

// Event is one discrete gesture observation.
type Event struct {
	Type       EventType
	Confidence float64
}
