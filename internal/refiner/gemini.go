package refiner

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// contentGenerator is the subset of *genai.Models the refiner calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiRefiner refines text with a Gemini model.
type GeminiRefiner struct {
	models contentGenerator
	model  string
}

// NewGeminiRefiner creates a refiner backed by the Gemini API.
func NewGeminiRefiner(ctx context.Context, apiKey, model string) (*GeminiRefiner, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return newGeminiRefiner(client.Models, model), nil
}

func newGeminiRefiner(models contentGenerator, model string) *GeminiRefiner {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiRefiner{models: models, model: model}
}

func (r *GeminiRefiner) Name() string {
	return "gemini"
}

func (r *GeminiRefiner) Refine(ctx context.Context, text string) (string, error) {
	req := newRequest(text)

	resp, err := r.models.GenerateContent(ctx, r.model, genai.Text(req.text), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.2),
	})
	if err != nil {
		return "", fmt.Errorf("Gemini generate failed: %w", err)
	}
	if resp == nil {
		return "", ErrEmptyOutput
	}

	return req.finish(resp.Text())
}
