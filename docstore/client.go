// Package docstore wraps the backend platform's document store behind a
// typed client: JSON documents addressed by (collection, id).
package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ErrNotFound reports a missing document.
var ErrNotFound = errors.New("document not found")

// Document is a stored JSON document together with its id.
type Document struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

// Client talks to the platform's document endpoints.
type Client struct {
	api *resty.Client
}

// New builds a document-store client for the given platform endpoint.
// project, when non-empty, scopes every request.
func New(baseURL, apiKey, project string) *Client {
	api := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")
	if project != "" {
		api.SetHeader("X-Project-Id", project)
	}
	return &Client{api: api}
}

// Get fetches a single document. A missing document is ErrNotFound, not a
// nil-and-no-error sentinel.
func (c *Client) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	var doc Document
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&doc).
		Get(documentPath(collection, id))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, ErrNotFound)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("docstore get %s/%s: HTTP %d: %s", collection, id, resp.StatusCode(), resp.String())
	}
	return doc.Data, nil
}

// GetAll fetches every document in a collection.
func (c *Client) GetAll(ctx context.Context, collection string) ([]Document, error) {
	var out struct {
		Documents []Document `json:"documents"`
	}
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&out).
		Get(collectionPath(collection))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("docstore list %s: HTTP %d: %s", collection, resp.StatusCode(), resp.String())
	}
	return out.Documents, nil
}

// Set upserts a document, merging with any existing data.
func (c *Client) Set(ctx context.Context, collection, id string, data map[string]any) error {
	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("merge", "true").
		SetBody(data).
		Put(documentPath(collection, id))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("docstore set %s/%s: HTTP %d: %s", collection, id, resp.StatusCode(), resp.String())
	}
	return nil
}

// Update patches an existing document and fails with ErrNotFound when the
// document does not exist.
func (c *Client) Update(ctx context.Context, collection, id string, data map[string]any) error {
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(data).
		Patch(documentPath(collection, id))
	if err != nil {
		return err
	}
	if resp.StatusCode() == 404 {
		return fmt.Errorf("%s/%s: %w", collection, id, ErrNotFound)
	}
	if resp.IsError() {
		return fmt.Errorf("docstore update %s/%s: HTTP %d: %s", collection, id, resp.StatusCode(), resp.String())
	}
	return nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Delete(documentPath(collection, id))
	if err != nil {
		return err
	}
	if resp.IsError() && resp.StatusCode() != 404 {
		return fmt.Errorf("docstore delete %s/%s: HTTP %d: %s", collection, id, resp.StatusCode(), resp.String())
	}
	return nil
}

func collectionPath(collection string) string {
	return fmt.Sprintf("/collections/%s/documents", collection)
}

func documentPath(collection, id string) string {
	return fmt.Sprintf("/collections/%s/documents/%s", collection, id)
}
