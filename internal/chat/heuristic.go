package chat

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"
)

// HeuristicProvider is an offline assessment of the check-in text. It scores
// mood keywords (with a small edit-distance tolerance for typos) onto a 0-10
// anxiety scale and answers with a canned suggestion for the matching
// activity suite, so the rest of the app behaves identically with or without
// a cloud model.
type HeuristicProvider struct{}

func NewHeuristicProvider() *HeuristicProvider { return &HeuristicProvider{} }

var calmingWords = []string{
	"happy", "calm", "good", "great", "relaxed", "rested", "fine", "okay", "peaceful",
}

var anxiousWords = []string{
	"anxious", "anxiety", "stressed", "stress", "worried", "afraid", "scared",
	"sad", "tired", "overwhelmed", "panic", "exam", "deadline", "lonely", "failed",
}

func (h *HeuristicProvider) Reply(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	score := Assess(req.Message)
	level := levelFor(score)
	return Response{
		Reply:      replyFor(level),
		Expression: ExpressionFor(score),
		Level:      level,
	}, nil
}

// Assess maps check-in text to a 0-10 anxiety score.
func Assess(text string) float64 {
	score := 3.0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:'\"()")
		if word == "" {
			continue
		}
		switch {
		case matchesAny(word, anxiousWords):
			score += 1.5
		case matchesAny(word, calmingWords):
			score -= 1.0
		}
	}
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return score
}

// matchesAny tolerates one edit of distance per keyword, so "stresed" still
// counts as "stressed".
func matchesAny(word string, vocab []string) bool {
	for _, kw := range vocab {
		if word == kw {
			return true
		}
		if len(kw) >= 5 && levenshtein.ComputeDistance(word, kw) <= 1 {
			return true
		}
	}
	return false
}

func levelFor(score float64) string {
	switch {
	case score <= 3.5:
		return LevelLight
	case score <= 7:
		return LevelModerate
	default:
		return LevelSevere
	}
}

// ExpressionFor maps an anxiety score to the avatar expression shown in the
// transcript.
func ExpressionFor(score float64) string {
	switch {
	case score >= 9:
		return ExpressionOverload
	case score >= 7:
		return ExpressionSad
	case score >= 5:
		return ExpressionQuestion
	case score >= 3.5:
		return ExpressionThinking
	default:
		return ExpressionHappy
	}
}

func replyFor(level string) string {
	switch level {
	case LevelSevere:
		return "That sounds really heavy. Let's start with a slow breath together, then we can try a small act of kindness — and I have a little task for you, too."
	case LevelModerate:
		return "Thanks for telling me. A breathing exercise would help, and afterwards you could comfort me a little — it helps both of us."
	default:
		return "You sound steady today. A short breathing exercise will keep the calm going."
	}
}
