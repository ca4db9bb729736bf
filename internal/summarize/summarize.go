// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize produces a structured AI reading of a paper's full text.
// Failures never surface as Go errors here: the result string carries a
// "Warning:" or "Error:" marker instead, so the caller can display it
// directly or test for it.
package summarize

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pdiddy/paper-tracker/pkg/types"
)

const (
	warningPrefix = "Warning:"
	errorPrefix   = "Error:"

	defaultMaxChars = 30000
	truncationMark  = "...(truncated)"
)

// systemPrompt asks for the fixed five-section reading of the paper body.
const systemPrompt = `You are a senior academic research assistant reading the full body text of a paper.
Ignore formatting artifacts and focus on the core logic. Be specific and deep; avoid
generalities. Extract concrete terms, parameters, and experimental numbers from the text.
Answer in five sections:

1. Background & Motivation: the specific problem addressed, and the concrete
   limitations of existing approaches.

2. Methodology: the name of the proposed method or architecture and how it works,
   described step by step or module by module.

3. Experiments: the datasets used, the baselines compared against, and the concrete
   metric improvements, citing the key numbers from the text.

4. Pros & Cons: the biggest advantage over alternatives, and the limitations the
   authors state or that you see.

5. Insight: a one-sentence statement of the core contribution, and what it suggests
   for future work.`

// ChatClient abstracts the OpenAI-compatible API so tests can supply a mock.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewClient builds a client for cfg's endpoint.
func NewClient(cfg types.AIConfig) ChatClient {
	c := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(c)
}

// IsFailure reports whether a summary string is a failure marker rather
// than model output.
func IsFailure(summary string) bool {
	return strings.HasPrefix(summary, warningPrefix) || strings.HasPrefix(summary, errorPrefix)
}

// Summarize sends the paper text to the model and returns the five-section
// summary. A missing credential aborts before any network call.
func Summarize(ctx context.Context, client ChatClient, content, title string, cfg types.AIConfig) string {
	if cfg.APIKey == "" {
		return warningPrefix + " no API key configured; set OPENAI_API_KEY or add .secrets/openai-api-key"
	}

	maxChars := cfg.MaxChars
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}
	if runes := []rune(content); len(runes) > maxChars {
		content = string(runes[:maxChars]) + truncationMark
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       cfg.Model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Title: %s\n\nContent:\n%s", title, content)},
		},
	})
	if err != nil {
		return fmt.Sprintf("%s %v", errorPrefix, err)
	}
	if len(resp.Choices) == 0 {
		return errorPrefix + " empty response from model"
	}
	return resp.Choices[0].Message.Content
}
