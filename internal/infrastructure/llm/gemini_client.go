package llm

import (
	"context"
	"errors"
	"log"

	"chatorder/internal/usecase/interfaces"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiClient is the primary inference provider, backed by Google's Gemini
// API. A low temperature keeps extraction output close to the strict JSON
// shape the parser expects.

type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ interfaces.IInferenceProvider = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		log.Printf("[llm][gemini] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		log.Printf("[llm][gemini] client init failed err=%v", err)
		return nil, err
	}
	log.Printf("[llm][gemini] client initialized model=%s", model)

	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Infer(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.1),
	})
	if err != nil {
		log.Printf("[llm][gemini] generate failed model=%s err=%v", g.model, err)
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini returned empty response")
	}
	return text, nil
}
