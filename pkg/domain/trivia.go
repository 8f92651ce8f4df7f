package domain

import "time"

// TriviaType identifies the format of a trivia set
type TriviaType string

// trivia set types
const (
	TriviaMultipleChoice TriviaType = "mc"
	TriviaTrueFalse      TriviaType = "tf"
	TriviaWhoAmI         TriviaType = "wai"
)

// Valid reports whether the trivia type is one of the known values
func (t TriviaType) Valid() bool {
	switch t {
	case TriviaMultipleChoice, TriviaTrueFalse, TriviaWhoAmI:
		return true
	}
	return false
}

// ContentType returns the content pool type questions are drawn from
func (t TriviaType) ContentType() ContentType {
	switch t {
	case TriviaTrueFalse:
		return ContentTriviaTF
	case TriviaWhoAmI:
		return ContentTriviaWAI
	default:
		return ContentTriviaMC
	}
}

// SetQuestion is a question placed into a trivia set with its position
type SetQuestion struct {
	ContentItem
	DisplayOrder int `json:"display_order"`
}

// TriviaSet is a named, typed bundle of questions drawn from a themed pool.
// QuestionCount always equals len(Questions); sets are immutable once
// created except for status transitions handled elsewhere.
type TriviaSet struct {
	ID            int64         `json:"id"`
	SetID         string        `json:"set_id"` // uuid, unique key
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description,omitempty"`
	Type          TriviaType    `json:"set_type"`
	Theme         string        `json:"theme"`
	Category      string        `json:"category,omitempty"`
	QuestionCount int           `json:"question_count"`
	Questions     []SetQuestion `json:"question_data"`
	Status        ItemStatus    `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
