package pagelens

import "context"

// Reasoning effort levels accepted by hosted completion endpoints.
const (
	EffortMinimal = "minimal"
	EffortLow     = "low"
	EffortMedium  = "medium"
	EffortHigh    = "high"
)

// AskRequest is a single completion request against a hosted LLM endpoint.
// The field set mirrors the hosted responses API: instructions carry the
// system-level voice and interpretation rules, input carries the page
// context and the question.
type AskRequest struct {
	Model           string
	Instructions    string
	Input           string
	MaxOutputTokens int
	ReasoningEffort string
	Verbosity       string
}

// Completion is the result of one Ask call.
type Completion struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
}

// Asker sends a completion request to a hosted LLM API.
type Asker interface {
	// Ask performs the completion request.
	// Returns EINVALID if the request is missing required fields and
	// EUNAVAILABLE if the provider cannot be reached.
	Ask(ctx context.Context, req AskRequest) (*Completion, error)
}
