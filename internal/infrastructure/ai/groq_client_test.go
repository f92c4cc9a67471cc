package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthnet-api/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *GroqClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	return NewGroqClient(config.GroqConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "llama-3.3-70b-versatile",
	}, log)
}

func TestAssessDecodesVerdict(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.3-70b-versatile", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "chest pain when climbing stairs", req.Messages[1].Content)
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		verdict := `{"severity":4,"response":"Please seek urgent care.","category":"Cardiology","betterPrompt":"Exertional chest pain"}`
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": verdict}},
			},
		})
	})

	got, err := client.Assess(context.Background(), "chest pain when climbing stairs")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Severity)
	assert.Equal(t, "Cardiology", got.Category)
	assert.Equal(t, "Exertional chest pain", got.BetterPrompt)
}

func TestAssessSurfacesAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limit"}`, http.StatusTooManyRequests)
	})

	_, err := client.Assess(context.Background(), "headache")
	assert.ErrorContains(t, err, "status 429")
}

func TestAssessEmptyChoices(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := client.Assess(context.Background(), "headache")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}
