// Package blobstore wraps the backend platform's file storage behind a
// typed client: blobs addressed by (folder, name).
package blobstore

import (
	"context"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
)

// Client talks to the platform's blob endpoints.
type Client struct {
	api *resty.Client
}

// New builds a blob-store client for the given platform endpoint.
func New(baseURL, apiKey string) *Client {
	return &Client{
		api: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(apiKey),
	}
}

// Upload stores the blob and returns its download URL.
func (c *Client) Upload(ctx context.Context, folder, name string, r io.Reader) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(r).
		SetResult(&out).
		Post(blobPath(folder, name))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("blobstore upload %s/%s: HTTP %d: %s", folder, name, resp.StatusCode(), resp.String())
	}
	return out.URL, nil
}

// URL returns the download URL of an existing blob.
func (c *Client) URL(ctx context.Context, folder, name string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&out).
		Get(blobPath(folder, name) + "/url")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("blobstore url %s/%s: HTTP %d: %s", folder, name, resp.StatusCode(), resp.String())
	}
	return out.URL, nil
}

// Delete removes a blob.
func (c *Client) Delete(ctx context.Context, folder, name string) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Delete(blobPath(folder, name))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("blobstore delete %s/%s: HTTP %d: %s", folder, name, resp.StatusCode(), resp.String())
	}
	return nil
}

// List returns the full paths of every blob in a folder.
func (c *Client) List(ctx context.Context, folder string) ([]string, error) {
	var out struct {
		Files []string `json:"files"`
	}
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/blobs/%s", folder))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("blobstore list %s: HTTP %d: %s", folder, resp.StatusCode(), resp.String())
	}
	return out.Files, nil
}

func blobPath(folder, name string) string {
	return fmt.Sprintf("/blobs/%s/%s", folder, name)
}
