package service

import (
	"context"
	"errors"

	"salesdash/internal/model"
)

// ErrQuestionRequired is returned when the question text is empty.
var ErrQuestionRequired = errors.New("question is required")

const answerPrefix = "This is a placeholder answer to your question: "

// AssistantService answers dashboard questions.
type AssistantService interface {
	Ask(ctx context.Context, question string) (*model.Answer, error)
}

// placeholderAssistant echoes the question in a canned answer. No model is
// consulted.
type placeholderAssistant struct{}

// NewAssistantService returns the placeholder assistant.
func NewAssistantService() AssistantService {
	return placeholderAssistant{}
}

func (placeholderAssistant) Ask(_ context.Context, question string) (*model.Answer, error) {
	if question == "" {
		return nil, ErrQuestionRequired
	}
	return &model.Answer{Answer: answerPrefix + question}, nil
}
