package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantService_Ask(t *testing.T) {
	svc := NewAssistantService()

	tests := []struct {
		name     string
		question string
		want     string
		wantErr  error
	}{
		{
			name:     "question is echoed",
			question: "Who closed the most deals?",
			want:     "This is a placeholder answer to your question: Who closed the most deals?",
		},
		{
			name:     "whitespace is kept as given",
			question: "  revenue by region  ",
			want:     "This is a placeholder answer to your question:   revenue by region  ",
		},
		{
			name:     "unicode survives",
			question: "売上は？",
			want:     "This is a placeholder answer to your question: 売上は？",
		},
		{
			name:     "empty question",
			question: "",
			wantErr:  ErrQuestionRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Ask(context.Background(), tt.question)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.Answer)
		})
	}
}
