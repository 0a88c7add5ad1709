package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresKey(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestSearchText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/places:searchText", r.URL.Path)
		require.Equal(t, "secret", r.Header.Get("X-Goog-Api-Key"))
		require.Equal(t, DefaultSearchFields, r.Header.Get("X-Goog-FieldMask"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "tapas near Sol", body["textQuery"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"places": []Place{
				{DisplayName: "Casa Toni", FormattedAddress: "Calle de la Cruz, 14", PriceLevel: 2},
			},
		})
	}))
	defer srv.Close()

	c, err := New("secret")
	require.NoError(t, err)
	c.WithBaseURL(srv.URL)

	out, err := c.SearchText(context.Background(), "tapas near Sol", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Casa Toni", out[0].DisplayName)
}

func TestDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/places/abc123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Place{DisplayName: "Prado"})
	}))
	defer srv.Close()

	c, err := New("secret")
	require.NoError(t, err)
	c.WithBaseURL(srv.URL)

	p, err := c.Details(context.Background(), "abc123", "")
	require.NoError(t, err)
	assert.Equal(t, "Prado", p.DisplayName)
}

func TestAutocompletePlaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/places:autocomplete", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Autocomplete{Predictions: []string{"Madrid", "Madrid Rio"}})
	}))
	defer srv.Close()

	c, err := New("secret")
	require.NoError(t, err)
	c.WithBaseURL(srv.URL)

	out, err := c.AutocompletePlaces(context.Background(), "Madr", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Madrid", "Madrid Rio"}, out.Predictions)
}

func TestSearchTextHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := New("secret")
	require.NoError(t, err)
	c.WithBaseURL(srv.URL)

	_, err = c.SearchText(context.Background(), "anything", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
