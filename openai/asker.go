// Package openai provides an OpenAI-backed implementation of pagelens.Asker.
package openai

import (
	"context"

	"github.com/fwojciec/pagelens"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when a request does not name a model.
const DefaultModel = "gpt-5-mini"

// Ensure Asker implements pagelens.Asker at compile time.
var _ pagelens.Asker = (*Asker)(nil)

// Asker implements pagelens.Asker using the OpenAI API.
type Asker struct {
	client *openai.Client
}

// NewAsker creates a new Asker with the given API key.
func NewAsker(apiKey string) (*Asker, error) {
	if apiKey == "" {
		return nil, pagelens.Errorf(pagelens.EINVALID, "OpenAI API key required (set OPENAI_API_KEY)")
	}
	return &Asker{client: openai.NewClient(apiKey)}, nil
}

// Ask performs the completion request. Instructions map to the system
// message, input to the user message. Verbosity has no chat-completions
// equivalent and is ignored here.
func (a *Asker) Ask(ctx context.Context, req pagelens.AskRequest) (*pagelens.Completion, error) {
	if req.Input == "" {
		return nil, pagelens.Errorf(pagelens.EINVALID, "request input required")
	}

	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	apiReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.Instructions},
			{Role: openai.ChatMessageRoleUser, Content: req.Input},
		},
	}
	if req.MaxOutputTokens > 0 {
		apiReq.MaxCompletionTokens = req.MaxOutputTokens
	}
	if req.ReasoningEffort != "" {
		apiReq.ReasoningEffort = req.ReasoningEffort
	}

	resp, err := a.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EUNAVAILABLE, "openai request failed: %v", err)
	}

	if len(resp.Choices) == 0 {
		return nil, pagelens.Errorf(pagelens.EINTERNAL, "openai returned no choices")
	}

	return &pagelens.Completion{
		Text:         resp.Choices[0].Message.Content,
		Model:        model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}
