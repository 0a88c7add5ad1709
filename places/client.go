// Package places wraps the places-search HTTP API behind a typed client.
package places

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://places.googleapis.com/v1"

// Default field masks, matching the fields carried by Place.
const (
	DefaultSearchFields       = "places.displayName,places.formattedAddress,places.priceLevel,places.photos"
	DefaultAutocompleteFields = "places.displayName,places.formattedAddress"
)

// Place is a single search result.
type Place struct {
	DisplayName      string   `json:"displayName,omitempty"`
	FormattedAddress string   `json:"formattedAddress,omitempty"`
	PriceLevel       int      `json:"priceLevel,omitempty"`
	Photos           []string `json:"photos,omitempty"`
}

// Autocomplete holds query predictions for a partial input.
type Autocomplete struct {
	Predictions []string `json:"predictions"`
}

// Client talks to the places-search API.
type Client struct {
	api *resty.Client
}

// New builds a places client. The API key is mandatory.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("places API key is required")
	}
	return &Client{
		api: resty.New().
			SetBaseURL(defaultBaseURL).
			SetHeader("Content-Type", "application/json").
			SetHeader("X-Goog-Api-Key", apiKey),
	}, nil
}

// SearchText runs a free-text place search. An empty fieldMask falls back
// to DefaultSearchFields.
func (c *Client) SearchText(ctx context.Context, query, fieldMask string) ([]Place, error) {
	if fieldMask == "" {
		fieldMask = DefaultSearchFields
	}

	var out struct {
		Places []Place `json:"places"`
	}
	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader("X-Goog-FieldMask", fieldMask).
		SetBody(map[string]string{"textQuery": query}).
		SetResult(&out).
		Post("/places:searchText")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("places search: HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	return out.Places, nil
}

// Details fetches a single place by id.
func (c *Client) Details(ctx context.Context, placeID, fieldMask string) (*Place, error) {
	if fieldMask == "" {
		fieldMask = DefaultSearchFields
	}

	var out Place
	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader("X-Goog-FieldMask", fieldMask).
		SetResult(&out).
		Get("/places/" + placeID)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("places details %s: HTTP %d: %s", placeID, resp.StatusCode(), resp.String())
	}
	return &out, nil
}

// AutocompletePlaces suggests completions for a partial query.
func (c *Client) AutocompletePlaces(ctx context.Context, input, fieldMask string) (Autocomplete, error) {
	if fieldMask == "" {
		fieldMask = DefaultAutocompleteFields
	}

	var out Autocomplete
	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader("X-Goog-FieldMask", fieldMask).
		SetBody(map[string]string{"input": input}).
		SetResult(&out).
		Post("/places:autocomplete")
	if err != nil {
		return Autocomplete{}, err
	}
	if resp.IsError() {
		return Autocomplete{}, fmt.Errorf("places autocomplete: HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	return out, nil
}

// WithBaseURL points the client at a different endpoint; used by tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.api.SetBaseURL(u)
	return c
}
