package domain

import "time"

// BuildStatus is the terminal state of a trivia set build
type BuildStatus string

// build statuses
const (
	BuildSuccess BuildStatus = "success"
	BuildPartial BuildStatus = "partial"
	BuildFailed  BuildStatus = "failed"
)

// error codes attached to BuildError entries
const (
	ErrCodeValidation       = "validation"
	ErrCodeNoContent        = "no_matching_content"
	ErrCodeInsufficientPool = "insufficient_questions"
	ErrCodePersistence      = "persistence"
	ErrCodeUnexpected       = "unexpected"
)

// BuildError is a structured error produced during a build stage
type BuildError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Stage   string `json:"stage,omitempty"`
}

// TaskResult records the outcome of a single build stage
type TaskResult struct {
	Stage   string `json:"stage"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BuildResult is the transient outcome of one trivia set build. It is
// returned to the caller and never persisted.
type BuildResult struct {
	Status        BuildStatus   `json:"status"`
	Tasks         []TaskResult  `json:"tasks"`
	Errors        []BuildError  `json:"errors,omitempty"`
	Warnings      []string      `json:"warnings,omitempty"`
	ExecutionTime time.Duration `json:"execution_time"`
	Set           *TriviaSet    `json:"set,omitempty"`
}

// BatchResult aggregates per-set outcomes of an automated build run
type BatchResult struct {
	SetsCreated int            `json:"sets_created"`
	SetsFailed  int            `json:"sets_failed"`
	Message     string         `json:"message"`
	Results     []*BuildResult `json:"results,omitempty"`
}
