package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/antonholmquist/jason"
	"go.uber.org/zap"

	"droscher.com/BeanJournal/configs"
	"droscher.com/BeanJournal/pkg/integrations"
	"droscher.com/BeanJournal/pkg/model"
)

const IntegrationName = configs.EnrichmentPerplexity

// maxResponseBytes caps how much of a reply is read.
const maxResponseBytes = 1 << 20

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(conf configs.Perplexity, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(conf.BaseURL, "/"),
		model:      conf.Model,
		httpClient: &http.Client{Timeout: conf.Timeout},
		logger:     logger.With(zap.String("integration", IntegrationName)),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

func (c *Client) AutoPopulate(ctx context.Context, apiKey, roaster, name string) (*model.BeanDetails, error) {
	if err := integrations.RequireAPIKey(apiKey); err != nil {
		return nil, err
	}

	if err := integrations.ValidateLookup(roaster, name); err != nil {
		return nil, err
	}

	content, err := c.complete(ctx, apiKey, detailsSystemPrompt, detailsPrompt(strings.TrimSpace(roaster), strings.TrimSpace(name)))
	if err != nil {
		return nil, err
	}

	details, err := parseDetails(content)
	if err != nil {
		c.logger.Warn("unusable bean details", zap.Error(err), zap.String("roaster", roaster), zap.String("name", name))

		return nil, fmt.Errorf("%w: %w", integrations.ErrEnrichment, err)
	}

	return details, nil
}

func (c *Client) Recommend(ctx context.Context, apiKey string, request integrations.RecommendationRequest) ([]model.Suggestion, error) {
	if err := integrations.RequireAPIKey(apiKey); err != nil {
		return nil, err
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	content, err := c.complete(ctx, apiKey, recommendationsSystemPrompt, recommendationPrompt(request))
	if err != nil {
		return nil, err
	}

	suggestions, err := parseSuggestions(content)
	if err != nil {
		c.logger.Warn("unusable recommendations", zap.Error(err), zap.String("type", string(request.Type)))

		return nil, fmt.Errorf("%w: %w", integrations.ErrEnrichment, err)
	}

	return suggestions, nil
}

// complete sends one chat completion and returns the first choice's message content.
func (c *Client) complete(ctx context.Context, apiKey, system, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", integrations.ErrEnrichment, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", integrations.ErrEnrichment, err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("perplexity request failed", zap.Error(err))

		return "", fmt.Errorf("%w: %w", integrations.ErrEnrichment, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %w", integrations.ErrEnrichment, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("perplexity returned an error status", zap.Int("status", resp.StatusCode))

		return "", fmt.Errorf("%w: status %d", integrations.ErrEnrichment, resp.StatusCode)
	}

	envelope, err := jason.NewObjectFromBytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: decoding response: %w", integrations.ErrEnrichment, err)
	}

	choices, err := envelope.GetObjectArray("choices")
	if err != nil || len(choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", integrations.ErrEnrichment)
	}

	content, err := choices[0].GetString("message", "content")
	if err != nil {
		return "", fmt.Errorf("%w: response has no message content", integrations.ErrEnrichment)
	}

	return content, nil
}
