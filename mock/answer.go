package mock

import (
	"context"

	"github.com/fwojciec/pagelens"
)

var _ pagelens.AnswerService = (*AnswerService)(nil)

// AnswerService is a mock implementation of pagelens.AnswerService.
type AnswerService struct {
	CreateAnswerFn        func(ctx context.Context, answer *pagelens.Answer) error
	FindAnswerByIDFn      func(ctx context.Context, id string) (*pagelens.Answer, error)
	FindAnswersFn         func(ctx context.Context, filter pagelens.AnswerFilter) ([]*pagelens.Answer, error)
	DeleteAnswersByPageFn func(ctx context.Context, pageID string) error
}

func (s *AnswerService) CreateAnswer(ctx context.Context, answer *pagelens.Answer) error {
	return s.CreateAnswerFn(ctx, answer)
}

func (s *AnswerService) FindAnswerByID(ctx context.Context, id string) (*pagelens.Answer, error) {
	return s.FindAnswerByIDFn(ctx, id)
}

func (s *AnswerService) FindAnswers(ctx context.Context, filter pagelens.AnswerFilter) ([]*pagelens.Answer, error) {
	return s.FindAnswersFn(ctx, filter)
}

func (s *AnswerService) DeleteAnswersByPage(ctx context.Context, pageID string) error {
	return s.DeleteAnswersByPageFn(ctx, pageID)
}
