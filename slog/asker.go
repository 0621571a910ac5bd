package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagelens"
)

// Ensure LoggingAsker implements pagelens.Asker.
var _ pagelens.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with debug logging.
type LoggingAsker struct {
	next   pagelens.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next pagelens.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the operation.
func (a *LoggingAsker) Ask(ctx context.Context, req pagelens.AskRequest) (completion *pagelens.Completion, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"model", req.Model,
			"input_len", len(req.Input),
			"duration", time.Since(begin),
			"err", err,
		}
		if completion != nil {
			attrs = append(attrs,
				"input_tokens", completion.InputTokens,
				"output_tokens", completion.OutputTokens,
			)
		}
		a.logger.Info("llm request", attrs...)
	}(time.Now())
	return a.next.Ask(ctx, req)
}
