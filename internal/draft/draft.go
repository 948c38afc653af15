package draft

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/ziadkadry99/second-draft/internal/llm"
	"github.com/ziadkadry99/second-draft/internal/prompt"
	"github.com/ziadkadry99/second-draft/internal/reply"
)

// Request is one form submission.
type Request struct {
	prompt.Options
	Model string
}

// Result is what the form displays for one submission.
type Result struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Prompt       string `json:"prompt"`
	Reasoning    string `json:"reasoning,omitempty"`
	HasReasoning bool   `json:"has_reasoning"`
	Visible      string `json:"visible"`
	Failed       bool   `json:"failed"`
}

// Service turns submissions into displayed drafts using one provider.
type Service struct {
	provider     llm.Provider
	providerName string
	defaultModel string
}

// NewService creates a Service. defaultModel is used when a request names no model.
func NewService(provider llm.Provider, defaultModel string) *Service {
	return &Service{
		provider:     provider,
		providerName: llm.DisplayName(provider.Name()),
		defaultModel: defaultModel,
	}
}

// FailureMessage is the text shown in place of a draft when the completion
// call fails for the named provider.
func FailureMessage(providerName string) string {
	return fmt.Sprintf("Error: Could not get a response from %s.", providerName)
}

// Failure returns this service's failure text.
func (s *Service) Failure() string {
	return FailureMessage(s.providerName)
}

// Submit builds the prompt, makes a single completion call and splits the
// reply. It never returns an error: a failed call is logged and its result
// carries the failure text as the visible draft.
func (s *Service) Submit(ctx context.Context, req Request) Result {
	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	res := Result{
		ID:     uuid.New().String(),
		Model:  model,
		Prompt: prompt.Build(req.Options),
	}

	text, err := llm.Ask(ctx, s.provider, res.Prompt, model)
	if err != nil {
		log.Printf("draft: error getting response from %s (submission %s, model %s): %v", s.providerName, res.ID, model, err)
		res.Visible = s.Failure()
		res.Failed = true
		return res
	}

	parts := reply.Split(text)
	res.Reasoning = parts.Reasoning
	res.HasReasoning = parts.HasReasoning
	res.Visible = parts.Visible
	return res
}
