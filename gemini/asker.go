// Package gemini provides a Google Gemini-backed implementation of
// pagelens.Asker, plus a local token counter.
package gemini

import (
	"context"

	"github.com/fwojciec/pagelens"
	"google.golang.org/genai"
)

// DefaultModel is used when a request does not name a model.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements pagelens.Asker at compile time.
var _ pagelens.Asker = (*Asker)(nil)

// Asker implements pagelens.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client) *Asker {
	return &Asker{client: client}
}

// Ask performs the completion request. Instructions map to the system
// instruction; reasoning effort and verbosity have no Gemini equivalent
// and are ignored here.
func (a *Asker) Ask(ctx context.Context, req pagelens.AskRequest) (*pagelens.Completion, error) {
	if req.Input == "" {
		return nil, pagelens.Errorf(pagelens.EINVALID, "request input required")
	}

	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	config := &genai.GenerateContentConfig{}
	if req.Instructions != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.Instructions}},
		}
	}
	if req.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxOutputTokens)
	}

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.Input}},
		}},
		config,
	)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EUNAVAILABLE, "gemini request failed: %v", err)
	}
	if result == nil {
		return nil, pagelens.Errorf(pagelens.EINTERNAL, "gemini returned nil result")
	}

	completion := &pagelens.Completion{
		Text:  result.Text(),
		Model: model,
	}

	// Usage metadata is not guaranteed; fall back to rough estimates so
	// cost reporting stays populated.
	if result.UsageMetadata != nil {
		completion.InputTokens = int(result.UsageMetadata.PromptTokenCount)
		completion.OutputTokens = int(result.UsageMetadata.CandidatesTokenCount)
	} else {
		completion.InputTokens = pagelens.EstimateTokens(req.Instructions + req.Input)
		completion.OutputTokens = pagelens.EstimateTokens(completion.Text)
	}

	return completion, nil
}
