package chat

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const systemPrompt = `You are Nomi, a gentle companion inside a mixed-reality
healing space. The user just checked in with how they feel. Answer in at most
three warm sentences, then suggest one of: a breathing exercise, comforting
you (the altruistic exercise), or a small offline task.`

// GeminiProvider answers check-ins through the Gemini API. The mood level and
// expression still come from the local assessment so the state machine never
// depends on parsing model output.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (g *GeminiProvider) Reply(ctx context.Context, req Request) (Response, error) {
	score := Assess(req.Message)
	result, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(systemPrompt+"\n\nUser: "+req.Message), nil)
	if err != nil {
		return Response{}, fmt.Errorf("generate reply: %w", err)
	}
	reply := strings.TrimSpace(result.Text())
	if reply == "" {
		reply = replyFor(levelFor(score))
	}
	return Response{
		Reply:      reply,
		Expression: ExpressionFor(score),
		Level:      levelFor(score),
	}, nil
}
