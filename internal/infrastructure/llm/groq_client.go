package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"chatorder/internal/usecase/interfaces"
)

var ErrMissingGroqAPIKey = errors.New("missing GROQ_API_KEY")

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama-3.3-70b-versatile"
	groqHTTPTimeout    = 45 * time.Second
)

// GroqClient is the fallback inference provider, speaking the
// OpenAI-compatible chat completions protocol Groq exposes.

type GroqClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

var _ interfaces.IInferenceProvider = (*GroqClient)(nil)

func NewGroqClient(apiKey, model string) (*GroqClient, error) {
	if apiKey == "" {
		log.Printf("[llm][groq] missing GROQ_API_KEY")
		return nil, ErrMissingGroqAPIKey
	}
	if model == "" {
		model = defaultGroqModel
	}
	log.Printf("[llm][groq] client initialized model=%s", model)

	return &GroqClient{
		httpClient: &http.Client{Timeout: groqHTTPTimeout},
		baseURL:    defaultGroqBaseURL,
		apiKey:     apiKey,
		model:      model,
	}, nil
}

type groqChatRequest struct {
	Model       string            `json:"model"`
	Messages    []groqChatMessage `json:"messages"`
	Temperature float64           `json:"temperature"`
}

type groqChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqChatResponse struct {
	Choices []struct {
		Message groqChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (g *GroqClient) Infer(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(groqChatRequest{
		Model:       g.model,
		Messages:    []groqChatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.1,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[llm][groq] request failed model=%s err=%v", g.model, err)
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var parsed groqChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("groq response unmarshal failed (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := "unknown error"
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		log.Printf("[llm][groq] non-200 response status=%d err=%s", resp.StatusCode, msg)
		return "", fmt.Errorf("groq returned status %d: %s", resp.StatusCode, msg)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("groq returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
