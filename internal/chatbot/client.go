// Package chatbot calls the Gemini generateContent API to produce replies to
// user messages.
package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// DefaultAPIURL is the generateContent endpoint for the model in use.
const DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// systemPrompt is sent ahead of every user message.
const systemPrompt = "My name is Chineye AI and I'm here to help."

type Client struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewClient builds a Gemini client. timeout bounds each generateContent call
// (the only outbound timeout in the system).
func NewClient(apiURL, apiKey string, timeout time.Duration) *Client {
	c := cleanhttp.DefaultPooledClient()
	c.Timeout = timeout
	return &Client{apiURL: apiURL, apiKey: apiKey, client: c}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Reply sends the system prompt plus message and returns the first candidate
// text. Transport failures, non-2xx statuses and empty candidate lists all
// return an error; the caller decides how to degrade.
func (c *Client) Reply(ctx context.Context, message string) (string, error) {
	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: systemPrompt}, {Text: message}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
