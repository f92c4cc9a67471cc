package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"healthnet-api/config"
)

// ErrEmptyCompletion is returned when the model answers with no choices.
var ErrEmptyCompletion = errors.New("ai completion returned no choices")

const triageSystemPrompt = `You are a medical triage assistant for a hospital booking platform.
Given a patient's description of their symptoms, respond with a JSON object containing exactly these fields:
"severity": an integer from 1 (mild, self-care) to 5 (emergency, call an ambulance),
"response": a short empathetic assessment with practical next steps,
"category": the single hospital department best suited for the complaint (for example "Cardiology", "Neurology", "General Medicine"),
"betterPrompt": a rewritten, clinically precise version of the patient's description.
Never provide a diagnosis. Always advise seeing a professional for severity 3 and above.`

// Assessment is the structured triage verdict for a symptom description.
type Assessment struct {
	Severity     int    `json:"severity"`
	Response     string `json:"response"`
	Category     string `json:"category"`
	BetterPrompt string `json:"betterPrompt"`
}

// GroqClient calls the Groq OpenAI-compatible chat completions API.
type GroqClient struct {
	httpClient *http.Client
	log        *logrus.Logger
	apiKey     string
	baseURL    string
	model      string
}

func NewGroqClient(cfg config.GroqConfig, log *logrus.Logger) *GroqClient {
	return &GroqClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Assess runs the triage prompt over a free-text symptom description and
// decodes the model's JSON verdict.
func (c *GroqClient) Assess(ctx context.Context, symptoms string) (*Assessment, error) {
	payload := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: triageSystemPrompt},
			{Role: "user", Content: symptoms},
		},
		Temperature:    1,
		MaxTokens:      1024,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.Warnf("Groq API returned status %d: %s", resp.StatusCode, raw)
		return nil, fmt.Errorf("completion request returned status %d", resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	var assessment Assessment
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &assessment); err != nil {
		return nil, fmt.Errorf("failed to decode assessment payload: %w", err)
	}

	return &assessment, nil
}
