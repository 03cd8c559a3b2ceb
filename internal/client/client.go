// Package client talks to the whisperlist transcription endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/whisperlist/whisperlist/internal/llm"
)

// Client uploads recordings to the transcription endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a client for the endpoint at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Transcribe uploads the audio blob as the multipart audio field and
// decodes the returned buckets. Keys absent from the response decode to
// nil slices.
func (c *Client) Transcribe(ctx context.Context, audio []byte, name string) (llm.Buckets, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("audio", name)
	if err != nil {
		return llm.Buckets{}, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return llm.Buckets{}, fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return llm.Buckets{}, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/transcribe", &buf)
	if err != nil {
		return llm.Buckets{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return llm.Buckets{}, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return llm.Buckets{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(body, &errBody); jsonErr == nil && errBody.Error != "" {
			return llm.Buckets{}, fmt.Errorf("endpoint error (status %d): %s", resp.StatusCode, errBody.Error)
		}
		return llm.Buckets{}, fmt.Errorf("endpoint error (status %d)", resp.StatusCode)
	}

	var buckets llm.Buckets
	if err := json.Unmarshal(body, &buckets); err != nil {
		return llm.Buckets{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return buckets, nil
}
