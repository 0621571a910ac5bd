package pagelens

import (
	"context"
	"time"
)

// Answer is a recorded question/answer exchange about a saved page.
type Answer struct {
	ID           string    `json:"id"`
	PageID       string    `json:"pageId"`
	Question     string    `json:"question"`
	Text         string    `json:"text"` // Markdown
	Model        string    `json:"model"`
	Voice        string    `json:"voice"`
	InputTokens  int       `json:"inputTokens"`
	OutputTokens int       `json:"outputTokens"`
	CostUSD      float64   `json:"costUsd"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate returns an error if the answer contains invalid fields.
func (a *Answer) Validate() error {
	if a.PageID == "" {
		return Errorf(EINVALID, "answer page ID required")
	}
	if a.Question == "" {
		return Errorf(EINVALID, "answer question required")
	}
	return nil
}

// AnswerService represents a service for recording question/answer history.
type AnswerService interface {
	// CreateAnswer records a new answer.
	CreateAnswer(ctx context.Context, answer *Answer) error

	// FindAnswerByID retrieves an answer by ID.
	// Returns ENOTFOUND if the answer does not exist.
	FindAnswerByID(ctx context.Context, id string) (*Answer, error)

	// FindAnswers retrieves answers matching the filter, newest first.
	FindAnswers(ctx context.Context, filter AnswerFilter) ([]*Answer, error)

	// DeleteAnswersByPage removes all answers recorded for a page.
	DeleteAnswersByPage(ctx context.Context, pageID string) error
}

// AnswerFilter represents a filter for FindAnswers.
type AnswerFilter struct {
	ID     *string `json:"id"`
	PageID *string `json:"pageId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
