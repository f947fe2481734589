package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	t.Setenv("TEST_GROQ_KEY", "test-key")
	c, err := NewClient(Config{BaseURL: url, APIKeyEnv: "TEST_GROQ_KEY", Model: "test-model", Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func TestClient_Generate(t *testing.T) {
	t.Run("Should send system and user messages and return the answer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			var req struct {
				Model       string    `json:"model"`
				Messages    []message `json:"messages"`
				Temperature float64   `json:"temperature"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "test-model", req.Model)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Equal(t, "system prompt with context", req.Messages[0].Content)
			assert.Equal(t, "user", req.Messages[1].Role)
			assert.Equal(t, "What port does the service use?", req.Messages[1].Content)
			assert.Zero(t, req.Temperature)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "Port 8443."}},
				},
			})
		}))
		defer srv.Close()
		c := newTestClient(t, srv.URL)

		answer, err := c.Generate(context.Background(), "system prompt with context", "What port does the service use?")

		require.NoError(t, err)
		assert.Equal(t, "Port 8443.", answer)
	})

	t.Run("Should surface the API error message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "rate limit exceeded"},
			})
		}))
		defer srv.Close()
		c := newTestClient(t, srv.URL)

		_, err := c.Generate(context.Background(), "s", "u")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limit exceeded")
	})

	t.Run("Should fail when no choices come back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer srv.Close()
		c := newTestClient(t, srv.URL)

		_, err := c.Generate(context.Background(), "s", "u")

		assert.Error(t, err)
	})
}
