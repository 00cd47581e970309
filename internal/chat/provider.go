// Package chat is the boundary to the conversational collaborator. The
// session core only sends one message at a time and consumes the reply
// asynchronously; transport and model choice live behind Provider.
package chat

import "context"

// Avatar expressions, mapped from the assessed mood of the check-in text.
const (
	ExpressionHappy    = "happy"
	ExpressionThinking = "thinking"
	ExpressionQuestion = "question"
	ExpressionSad      = "sad"
	ExpressionOverload = "cpu_burned"
)

// Anxiety levels and the activity suite each one unlocks.
const (
	LevelLight    = "light"    // breathing only
	LevelModerate = "moderate" // breathing + altruistic
	LevelSevere   = "severe"   // breathing + altruistic + activation task
)

// Request is one user check-in message.
type Request struct {
	Message string
}

// Response is the collaborator's reply plus the assessed mood.
type Response struct {
	Reply      string
	Expression string
	Level      string
}

// Provider produces a reply for a check-in message. Implementations must
// honor ctx cancellation; the core enforces its own timeout around calls.
type Provider interface {
	Reply(ctx context.Context, req Request) (Response, error)
}

// Suite returns the activity names unlocked at a level, mildest first.
func Suite(level string) []string {
	switch level {
	case LevelSevere:
		return []string{"breathing", "altruistic", "task"}
	case LevelModerate:
		return []string{"breathing", "altruistic"}
	default:
		return []string{"breathing"}
	}
}
