package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/bemviver/psicorisk/internal/domain/recommend"
	"github.com/bemviver/psicorisk/internal/infra/ai/prompt"
)

const maxTokens = 2048

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

// Generate asks the model for the narrative JSON and parses it into the
// domain shape. Exactly one attempt; every failure class (transport,
// quota, malformed JSON) comes back as an error for the caller to
// convert into the deterministic fallback.
func (c *Client) Generate(ctx context.Context, input recommend.ReportInput) (recommend.NarrativeResult, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetUserPrompt(input)},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return recommend.NarrativeResult{}, recommend.ErrQuotaExceeded
		}
		return recommend.NarrativeResult{}, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return recommend.NarrativeResult{}, fmt.Errorf("empty completion response")
	}

	return parseNarrative(resp.Choices[0].Message.Content)
}

// parseNarrative strips any code-fence wrapping and decodes the JSON
// payload. Models occasionally ignore the no-fence instruction.
func parseNarrative(raw string) (recommend.NarrativeResult, error) {
	cleaned := stripCodeFence(raw)

	var out recommend.NarrativeResult
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return recommend.NarrativeResult{}, fmt.Errorf("malformed narrative JSON: %w", err)
	}
	if strings.TrimSpace(out.Sintese) == "" {
		return recommend.NarrativeResult{}, fmt.Errorf("narrative JSON missing sintese")
	}
	return out, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	// drop the opening fence line (may carry a language tag)
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
