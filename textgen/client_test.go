package textgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "secret", "test-model")
	require.NoError(t, err)
	return c
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New("http://localhost", "", "m")
	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/completions", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "test-model", body["model"])
		require.Equal(t, float64(150), body["max_tokens"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"text": "  three day itinerary \n"}},
		})
	})

	out, err := c.Complete(context.Background(), "plan a trip", 0)
	require.NoError(t, err)
	assert.Equal(t, "three day itinerary", out)
}

func TestChat(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)

		var body struct {
			Messages []Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": Message{Role: "assistant", Content: "Day one: Prado."}},
			},
		})
	})

	out, err := c.Chat(context.Background(), []Message{
		{Role: "system", Content: "You plan trips."},
		{Role: "user", Content: "Madrid, 3 days"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Day one: Prado.", out)
}

func TestModels(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": []ModelInfo{{ID: "test-model"}, {ID: "bigger-model"}},
		})
	})

	models, err := c.Models(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "test-model", models[0].ID)
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		})
		assert.NoError(t, c.Health(context.Background()))
	})

	t.Run("unhealthy surfaces status", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		err := c.Health(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}

func TestCompleteEmptyChoices(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})
	_, err := c.Complete(context.Background(), "hi", 10)
	assert.Error(t, err)
}
