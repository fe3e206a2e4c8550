package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nutrobots/nutrobot-go/config"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// fakeCompleter returns scripted responses in order and records the
// requests it saw.
type fakeCompleter struct {
	responses []completion
	requests  []openai.ChatCompletionRequest
}

type completion struct {
	content string
	err     error
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	if len(f.responses) == 0 {
		return openai.ChatCompletionResponse{}, errors.New("no scripted response")
	}
	next := f.responses[0]
	f.responses = f.responses[1:]
	if next.err != nil {
		return openai.ChatCompletionResponse{}, next.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: next.content}},
		},
	}, nil
}

func testAnalyzer(client ChatCompleter) Analyzer {
	return NewAnalyzerWithClient(client, config.AnalyzerConfig{
		Model:          "gpt-4o-mini",
		MaxAttempts:    3,
		AttemptTimeout: time.Second,
		InitialBackoff: time.Millisecond,
	}, zap.NewNop())
}

func TestAnalyze_Success(t *testing.T) {
	client := &fakeCompleter{responses: []completion{
		{content: `{"calories": 450, "protein": 30, "fat": 15, "carbs": 45}`},
	}}

	est, err := testAnalyzer(client).Analyze(context.Background(), "grilled chicken with rice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.Calories != 450 || est.Protein != 30 || est.Fat != 15 || est.Carbs != 45 {
		t.Errorf("unexpected estimate: %+v", est)
	}
	if len(client.requests) != 1 {
		t.Errorf("expected 1 request, got %d", len(client.requests))
	}
}

func TestAnalyze_RetriesTransientFailure(t *testing.T) {
	client := &fakeCompleter{responses: []completion{
		{err: &openai.APIError{HTTPStatusCode: 500}},
		{err: context.DeadlineExceeded},
		{content: `{"calories": 300, "protein": 20, "fat": 10, "carbs": 30}`},
	}}

	est, err := testAnalyzer(client).Analyze(context.Background(), "oatmeal")
	if err != nil {
		t.Fatalf("expected recovery on third attempt, got %v", err)
	}
	if est.Calories != 300 {
		t.Errorf("unexpected estimate: %+v", est)
	}
	if len(client.requests) != 3 {
		t.Errorf("expected 3 requests, got %d", len(client.requests))
	}
}

func TestAnalyze_ExhaustsAttemptsOnTimeout(t *testing.T) {
	client := &fakeCompleter{responses: []completion{
		{err: context.DeadlineExceeded},
		{err: context.DeadlineExceeded},
		{err: context.DeadlineExceeded},
	}}

	_, err := testAnalyzer(client).Analyze(context.Background(), "soup")
	var aerr *AnalysisError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AnalysisError, got %v", err)
	}
	if aerr.Reason != ReasonTimeout {
		t.Errorf("expected reason %q, got %q", ReasonTimeout, aerr.Reason)
	}
	if len(client.requests) != 3 {
		t.Errorf("expected 3 attempts, got %d", len(client.requests))
	}
}

func TestAnalyze_RateLimited(t *testing.T) {
	client := &fakeCompleter{responses: []completion{
		{err: &openai.APIError{HTTPStatusCode: 429}},
		{err: &openai.APIError{HTTPStatusCode: 429}},
		{err: &openai.APIError{HTTPStatusCode: 429}},
	}}

	_, err := testAnalyzer(client).Analyze(context.Background(), "salad")
	var aerr *AnalysisError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AnalysisError, got %v", err)
	}
	if aerr.Reason != ReasonRateLimited {
		t.Errorf("expected reason %q, got %q", ReasonRateLimited, aerr.Reason)
	}
}

func TestAnalyze_InvalidResponseNotRetried(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "a bowl of soup has about 200 calories"},
		{"missing field", `{"calories": 200, "protein": 10, "fat": 5}`},
		{"negative value", `{"calories": -200, "protein": 10, "fat": 5, "carbs": 20}`},
		{"wrong type", `{"calories": "lots", "protein": 10, "fat": 5, "carbs": 20}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeCompleter{responses: []completion{{content: tt.content}}}

			_, err := testAnalyzer(client).Analyze(context.Background(), "soup")
			var aerr *AnalysisError
			if !errors.As(err, &aerr) {
				t.Fatalf("expected AnalysisError, got %v", err)
			}
			if aerr.Reason != ReasonInvalidResponse {
				t.Errorf("expected reason %q, got %q", ReasonInvalidResponse, aerr.Reason)
			}
			if len(client.requests) != 1 {
				t.Errorf("malformed response must not be retried, got %d requests", len(client.requests))
			}
		})
	}
}

func TestAnalyze_EmptyDescription(t *testing.T) {
	client := &fakeCompleter{}

	_, err := testAnalyzer(client).Analyze(context.Background(), "   ")
	var aerr *AnalysisError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AnalysisError, got %v", err)
	}
	if aerr.Reason != ReasonInvalidResponse {
		t.Errorf("expected reason %q, got %q", ReasonInvalidResponse, aerr.Reason)
	}
	if len(client.requests) != 0 {
		t.Error("empty description must not reach the provider")
	}
}

func TestAnalyze_TruncatesLongDescription(t *testing.T) {
	client := &fakeCompleter{responses: []completion{
		{content: `{"calories": 100, "protein": 5, "fat": 2, "carbs": 10}`},
	}}
	a := NewAnalyzerWithClient(client, config.AnalyzerConfig{
		Model:             "gpt-4o-mini",
		MaxAttempts:       1,
		AttemptTimeout:    time.Second,
		InitialBackoff:    time.Millisecond,
		MaxDescriptionLen: 10,
	}, zap.NewNop())

	if _, err := a.Analyze(context.Background(), strings.Repeat("x", 50)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	userMsg := client.requests[0].Messages[1].Content
	if strings.Count(userMsg, "x") != 10 {
		t.Errorf("expected description truncated to 10 runes, got %q", userMsg)
	}
}

func TestAnalyze_ParsesEmbeddedJSON(t *testing.T) {
	client := &fakeCompleter{responses: []completion{
		{content: "Here is the estimate:\n{\"calories\": 250, \"protein\": 12, \"fat\": 8, \"carbs\": 30}\nEnjoy!"},
	}}

	est, err := testAnalyzer(client).Analyze(context.Background(), "toast with jam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.Calories != 250 {
		t.Errorf("unexpected estimate: %+v", est)
	}
}
