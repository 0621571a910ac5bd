package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/pagelens"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagelens.AnswerService = (*AnswerService)(nil)

// AnswerService implements pagelens.AnswerService using SQLite.
type AnswerService struct {
	db *DB
}

// NewAnswerService creates a new AnswerService.
func NewAnswerService(db *DB) *AnswerService {
	return &AnswerService{db: db}
}

// CreateAnswer records a new answer.
func (s *AnswerService) CreateAnswer(ctx context.Context, answer *pagelens.Answer) error {
	if err := answer.Validate(); err != nil {
		return err
	}

	answer.ID = uuid.New().String()
	answer.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO answers (id, page_id, question, text, model, voice, input_tokens, output_tokens, cost_usd, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, answer.ID, answer.PageID, answer.Question, answer.Text, answer.Model, answer.Voice,
		answer.InputTokens, answer.OutputTokens, answer.CostUSD,
		answer.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAnswerByID retrieves an answer by ID.
func (s *AnswerService) FindAnswerByID(ctx context.Context, id string) (*pagelens.Answer, error) {
	var answer pagelens.Answer
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, page_id, question, text, model, voice, input_tokens, output_tokens, cost_usd, created_at
		FROM answers
		WHERE id = ?
	`, id).Scan(&answer.ID, &answer.PageID, &answer.Question, &answer.Text, &answer.Model,
		&answer.Voice, &answer.InputTokens, &answer.OutputTokens, &answer.CostUSD, &createdAt)

	if err == sql.ErrNoRows {
		return nil, pagelens.Errorf(pagelens.ENOTFOUND, "answer not found")
	}
	if err != nil {
		return nil, err
	}

	answer.CreatedAt, err = timeColumn("created_at", createdAt)
	if err != nil {
		return nil, err
	}

	return &answer, nil
}

// FindAnswers retrieves answers matching the filter, newest first.
func (s *AnswerService) FindAnswers(ctx context.Context, filter pagelens.AnswerFilter) ([]*pagelens.Answer, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, page_id, question, text, model, voice, input_tokens, output_tokens, cost_usd, created_at FROM answers WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.PageID != nil {
		query.WriteString(" AND page_id = ?")
		args = append(args, *filter.PageID)
	}

	query.WriteString(" ORDER BY created_at DESC")
	args = paginate(&query, args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []*pagelens.Answer
	for rows.Next() {
		var answer pagelens.Answer
		var createdAt string

		if err := rows.Scan(&answer.ID, &answer.PageID, &answer.Question, &answer.Text,
			&answer.Model, &answer.Voice, &answer.InputTokens, &answer.OutputTokens,
			&answer.CostUSD, &createdAt); err != nil {
			return nil, err
		}

		answer.CreatedAt, err = timeColumn("created_at", createdAt)
		if err != nil {
			return nil, err
		}

		answers = append(answers, &answer)
	}

	return answers, rows.Err()
}

// DeleteAnswersByPage removes all answers recorded for a page.
func (s *AnswerService) DeleteAnswersByPage(ctx context.Context, pageID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM answers WHERE page_id = ?", pageID)
	return err
}
