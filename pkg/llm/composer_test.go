package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pucklab/puckdesk/pkg/config"
	"github.com/pucklab/puckdesk/pkg/domain"
)

// newTestServer returns an OpenAI-compatible chat completion endpoint that
// always responds with the given content
func newTestServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req["messages"])

		resp := map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   req["model"],
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func testSet() *domain.TriviaSet {
	return &domain.TriviaSet{
		SetID:         "test-set-id",
		Type:          domain.TriviaMultipleChoice,
		Theme:         "original six",
		QuestionCount: 2,
		Questions: []domain.SetQuestion{
			{ContentItem: domain.ContentItem{Text: "Which six teams made up the league from 1942 to 1967?"}, DisplayOrder: 1},
			{ContentItem: domain.ContentItem{Text: "Which original six team went longest without a championship?"}, DisplayOrder: 2},
		},
	}
}

func TestComposer_ComposeSetMeta(t *testing.T) {
	t.Run("plain json response", func(t *testing.T) {
		srv := newTestServer(t, `{"title": "Original Six Showdown", "description": "Test your knowledge of hockey's founding era."}`)
		defer srv.Close()

		c := NewComposer(config.LLMConfig{
			Endpoint: srv.URL,
			APIKey:   "test-key",
			Model:    "gpt-4o-mini",
			Timeout:  5 * time.Second,
		})

		title, description, err := c.ComposeSetMeta(context.Background(), testSet())
		require.NoError(t, err)
		assert.Equal(t, "Original Six Showdown", title)
		assert.Equal(t, "Test your knowledge of hockey's founding era.", description)
	})

	t.Run("fenced json response", func(t *testing.T) {
		srv := newTestServer(t, "```json\n{\"title\": \"Fenced Title\", \"description\": \"desc\"}\n```")
		defer srv.Close()

		c := NewComposer(config.LLMConfig{Endpoint: srv.URL, APIKey: "k", Model: "llama3"})

		title, description, err := c.ComposeSetMeta(context.Background(), testSet())
		require.NoError(t, err)
		assert.Equal(t, "Fenced Title", title)
		assert.Equal(t, "desc", description)
	})

	t.Run("json surrounded by prose", func(t *testing.T) {
		srv := newTestServer(t, `Here you go: {"title": "Buried Title", "description": "d"} hope that helps!`)
		defer srv.Close()

		c := NewComposer(config.LLMConfig{Endpoint: srv.URL, APIKey: "k", Model: "llama3"})

		title, _, err := c.ComposeSetMeta(context.Background(), testSet())
		require.NoError(t, err)
		assert.Equal(t, "Buried Title", title)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		srv := newTestServer(t, `{"title": "", "description": "d"}`)
		defer srv.Close()

		c := NewComposer(config.LLMConfig{Endpoint: srv.URL, APIKey: "k", Model: "llama3"})

		_, _, err := c.ComposeSetMeta(context.Background(), testSet())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty title")
	})

	t.Run("no json in response", func(t *testing.T) {
		srv := newTestServer(t, "sorry, I cannot help with that")
		defer srv.Close()

		c := NewComposer(config.LLMConfig{Endpoint: srv.URL, APIKey: "k", Model: "llama3"})

		_, _, err := c.ComposeSetMeta(context.Background(), testSet())
		require.Error(t, err)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewComposer(config.LLMConfig{Endpoint: srv.URL, APIKey: "k", Model: "llama3"})

		_, _, err := c.ComposeSetMeta(context.Background(), testSet())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm request failed")
	})
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		title   string
		wantErr bool
	}{
		{"plain object", `{"title":"T","description":"D"}`, "T", false},
		{"fenced with language", "```json\n{\"title\":\"T\"}\n```", "T", false},
		{"fenced without language", "```\n{\"title\":\"T\"}\n```", "T", false},
		{"leading whitespace", "  \n {\"title\":\"T\"}", "T", false},
		{"no object", "no json here", "", true},
		{"malformed json", `{"title": "T"`, "", true},
		{"missing title", `{"description":"D"}`, "", true},
		{"whitespace title", `{"title":"   "}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := parseResponse(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, meta.Title)
		})
	}
}

func TestComposer_BuildPrompt(t *testing.T) {
	c := NewComposer(config.LLMConfig{Endpoint: "http://localhost", APIKey: "k", Model: "m"})

	set := testSet()
	set.Category = "history"
	prompt := c.buildPrompt(set)

	assert.Contains(t, prompt, "Theme: original six")
	assert.Contains(t, prompt, "Category: history")
	assert.Contains(t, prompt, "Question count: 2")
	assert.Contains(t, prompt, "1. Which six teams")
	assert.Contains(t, prompt, "2. Which original six team")
}
