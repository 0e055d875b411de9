package service

import (
	"context"
	"strings"

	"docqa/internal/domain"
	"docqa/internal/port"
	"docqa/internal/prompt"
)

// QueryService defines the question-answering contract.
type QueryService interface {
	Answer(ctx context.Context, state domain.SessionState) (string, error)
}

type queryService struct {
	provider port.AnswerProvider
}

// NewQueryService creates a new QueryService implementation.
func NewQueryService(provider port.AnswerProvider) QueryService {
	return &queryService{provider: provider}
}

// Answer builds a context-grounded prompt from the session state and makes a
// single provider call. All required fields are checked before any network
// activity.
func (s *queryService) Answer(ctx context.Context, state domain.SessionState) (string, error) {
	if emptyDocument(state.Document) || strings.TrimSpace(state.Question) == "" || state.APIKey == "" {
		return "", domain.ErrMissingField
	}

	p := prompt.Build(state.Document, state.ContentType, state.Question)

	answer, err := s.provider.GenerateAnswer(ctx, p, state.APIKey)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func emptyDocument(document []byte) bool {
	trimmed := strings.TrimSpace(string(document))
	return trimmed == "" || trimmed == "null" || trimmed == `""`
}
