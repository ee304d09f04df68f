package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var ErrNotConfigured = errors.New("gemini api key is not configured")

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one past message of an assistant conversation.
type Turn struct {
	Role string
	Text string
}

type Generator struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Generator, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	return NewWithConfig(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

func NewWithConfig(ctx context.Context, cfg *genai.ClientConfig, model string) (*Generator, error) {
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Generator{client: client, model: model}, nil
}

// Generate sends a single prompt. An empty string with a nil error means the
// model produced no text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

// Chat replays history under the legal assistant instruction and answers message.
func (g *Generator) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, genai.NewContentFromText(turn.Text, toRole(turn.Role)))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(LegalAssistantInstruction, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return resp.Text(), nil
}

func toRole(role string) genai.Role {
	if role == RoleModel {
		return genai.RoleModel
	}
	return genai.RoleUser
}
