package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sozhane/backend/config"
	"k8s.io/klog/v2"
)

const apiVersion = "2023-06-01"

// Client talks to an Anthropic-compatible messages endpoint. One request
// per call, no retries; the caller decides what a failure means.
type Client struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Client    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL:   cfg.LLM.APIURL,
		APIKey:    cfg.LLM.APIKey,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
		Client: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

// Complete sends a single system+user exchange and returns the
// concatenated text blocks of the response.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	klog.V(6).Infof("messages request: model=%s, system=%d bytes, user=%d bytes", c.Model, len(system), len(user))

	resp, err := c.sendRequest(ctx, MessagesRequest{
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		System:    system,
		Messages:  []Message{{Role: "user", Content: user}},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return sb.String(), nil
}

func (c *Client) sendRequest(ctx context.Context, reqBody MessagesRequest) (*MessagesResponse, error) {
	url := c.BaseURL + "/v1/messages"

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		klog.V(6).Infof("messages API non-200: status=%d body=%s", resp.StatusCode, body)
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var msgResp MessagesResponse
	if err := json.Unmarshal(body, &msgResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if msgResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", msgResp.Error.Message)
	}

	return &msgResp, nil
}
