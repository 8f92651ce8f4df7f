package domain

import "time"

// ContentType identifies the kind of short-form content an item holds
type ContentType string

// known content types
const (
	ContentQuote     ContentType = "quote"
	ContentFact      ContentType = "fact"
	ContentStat      ContentType = "stat"
	ContentTriviaMC  ContentType = "trivia_mc"
	ContentTriviaTF  ContentType = "trivia_tf"
	ContentTriviaWAI ContentType = "trivia_wai"
)

// Valid reports whether the content type is one of the known values
func (t ContentType) Valid() bool {
	switch t {
	case ContentQuote, ContentFact, ContentStat, ContentTriviaMC, ContentTriviaTF, ContentTriviaWAI:
		return true
	}
	return false
}

// ItemStatus represents the editorial lifecycle of a content item
type ItemStatus string

// item statuses
const (
	StatusUnpublished ItemStatus = "unpublished"
	StatusPublished   ItemStatus = "published"
	StatusArchived    ItemStatus = "archived"
)

// ContentItem is a single selectable unit of short-form content: a quote,
// a fact, a stat line or a trivia question. The selection engine only reads
// these rows, it never mutates them.
type ContentItem struct {
	ID          int64       `json:"id"`
	Type        ContentType `json:"type"`
	Text        string      `json:"text"`
	Answer      string      `json:"answer,omitempty"`  // trivia answer, empty for non-trivia content
	Options     []string    `json:"options,omitempty"` // multiple-choice options, nil otherwise
	Theme       string      `json:"theme,omitempty"`
	Category    string      `json:"category,omitempty"`
	Attribution string      `json:"attribution,omitempty"`
	SourceGUID  string      `json:"source_guid,omitempty"` // de-duplication key for imported items
	Status      ItemStatus  `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PoolFilter restricts which content items form a selection pool
type PoolFilter struct {
	Type     ContentType
	Theme    string
	Category string
	Status   ItemStatus
}
