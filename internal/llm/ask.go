package llm

import (
	"context"
	"errors"
)

// ErrEmptyModel is returned when no model identifier was given.
var ErrEmptyModel = errors.New("model identifier is required")

// Ask sends prompt as the single user message of one completion request and
// returns the reply text. Model identifiers are opaque; the only check is
// that one was given.
func Ask(ctx context.Context, p Provider, prompt, model string) (string, error) {
	if model == "" {
		return "", ErrEmptyModel
	}

	resp, err := p.Complete(ctx, CompletionRequest{
		Model:    model,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	})
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", ErrNoChoices
	}
	return resp.Content, nil
}
