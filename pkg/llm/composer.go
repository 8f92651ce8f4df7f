// Package llm provides an optional OpenAI-compatible composer that writes
// publishable titles and descriptions for assembled trivia sets.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/pucklab/puckdesk/pkg/config"
	"github.com/pucklab/puckdesk/pkg/domain"
)

// Composer uses an LLM to write set titles and descriptions
type Composer struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewComposer creates a new LLM set composer
func NewComposer(cfg config.LLMConfig) *Composer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Composer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for set metadata composition
const defaultSystemPrompt = `You are an editor for a hockey trivia publication.
Given a trivia set's type, theme and a sample of its questions, write:
- title: a catchy, publishable set title (max 60 chars, no quotes around it)
- description: one or two sentences teasing the set for readers (max 200 chars)

Respond with a single JSON object: {"title": "...", "description": "..."}.
Do not invent facts that are not in the questions.`

// setMeta is the JSON shape the LLM responds with
type setMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ComposeSetMeta asks the LLM for a title and description for the set
func (c *Composer) ComposeSetMeta(ctx context.Context, set *domain.TriviaSet) (title, description string, err error) {
	prompt := c.buildPrompt(set)

	req := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if c.config.UseJSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", "", fmt.Errorf("no response from llm")
	}

	meta, err := parseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return "", "", err
	}
	return meta.Title, meta.Description, nil
}

// buildPrompt creates the composition prompt from the set contents
func (c *Composer) buildPrompt(set *domain.TriviaSet) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Trivia set type: %s\nTheme: %s\n", set.Type, set.Theme))
	if set.Category != "" {
		sb.WriteString(fmt.Sprintf("Category: %s\n", set.Category))
	}
	sb.WriteString(fmt.Sprintf("Question count: %d\n\nSample questions:\n", set.QuestionCount))

	// first few questions give the model enough flavor
	sample := set.Questions
	if len(sample) > 3 {
		sample = sample[:3]
	}
	for i, q := range sample {
		text := q.Text
		if len(text) > 200 {
			text = text[:200] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, text))
	}

	sb.WriteString("\nRespond with the JSON object.")
	return sb.String()
}

// parseResponse extracts the metadata object from the LLM response,
// tolerating markdown code fences around the JSON
func parseResponse(content string) (*setMeta, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no json object found in response")
	}

	var meta setMeta
	if err := json.Unmarshal([]byte(content[start:end+1]), &meta); err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}
	if strings.TrimSpace(meta.Title) == "" {
		return nil, fmt.Errorf("response has empty title")
	}
	return &meta, nil
}
