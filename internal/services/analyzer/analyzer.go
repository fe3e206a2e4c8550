package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nutrobots/nutrobot-go/config"
	"github.com/nutrobots/nutrobot-go/internal/services/metrics"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemPrompt = `You are a nutrition expert. Analyze the meal description and estimate its nutritional content. Consider typical portion sizes and common ingredients.
Respond with JSON only, using exactly this structure:
{
    "calories": number,
    "protein": number,
    "fat": number,
    "carbs": number
}
All values are totals for the whole meal; protein, fat and carbs are grams.`

// NutritionEstimate is a validated provider response: every field
// present and non-negative.
type NutritionEstimate struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

type FailureReason string

const (
	ReasonTimeout         FailureReason = "timeout"
	ReasonRateLimited     FailureReason = "rate_limited"
	ReasonInvalidResponse FailureReason = "invalid_response"
	ReasonProviderError   FailureReason = "provider_error"
)

// AnalysisError is the only error type Analyze returns. The reason
// enumeration is closed; callers never inspect transport errors.
type AnalysisError struct {
	Reason FailureReason
	Err    error
}

func (e *AnalysisError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("analysis failed: %s", e.Reason)
	}
	return fmt.Sprintf("analysis failed: %s: %v", e.Reason, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// Interfaces
type Analyzer interface {
	Analyze(ctx context.Context, description string) (*NutritionEstimate, error)
}

// ChatCompleter is the slice of the OpenAI client the analyzer needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Implementation
type AnalyzerImpl struct {
	client ChatCompleter
	cfg    config.AnalyzerConfig
	log    *zap.Logger
}

// Constructor
func NewAnalyzer(cfg config.AnalyzerConfig, log *zap.Logger) Analyzer {
	return NewAnalyzerWithClient(openai.NewClient(cfg.APIKey), cfg, log)
}

func NewAnalyzerWithClient(client ChatCompleter, cfg config.AnalyzerConfig, log *zap.Logger) Analyzer {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 30 * time.Second
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 500 * time.Millisecond
	}
	return &AnalyzerImpl{client: client, cfg: cfg, log: log}
}

// Analyze turns a free-text meal description into a nutrition
// estimate. Transient provider failures are retried with exponential
// backoff up to the attempt ceiling; a response that does not parse
// into the numeric schema fails permanently.
func (a *AnalyzerImpl) Analyze(ctx context.Context, description string) (*NutritionEstimate, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		err := &AnalysisError{Reason: ReasonInvalidResponse, Err: errors.New("empty description")}
		metrics.AnalysisFailures.WithLabelValues(string(err.Reason)).Inc()
		return nil, err
	}
	if max := a.cfg.MaxDescriptionLen; max > 0 {
		if runes := []rune(description); len(runes) > max {
			description = string(runes[:max])
		}
	}

	req := openai.ChatCompletionRequest{
		Model: a.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Analyze this meal: %s", description)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.1,
	}

	var est *NutritionEstimate
	operation := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, a.cfg.AttemptTimeout)
		defer cancel()

		metrics.AnalysisAttempts.Inc()
		start := time.Now()
		resp, err := a.client.CreateChatCompletion(attemptCtx, req)
		metrics.AnalyzerLatency.Observe(time.Since(start).Seconds())

		if err != nil {
			aerr := classify(err)
			a.log.Warn("analyzer call failed",
				zap.String("reason", string(aerr.Reason)),
				zap.Error(err),
			)
			if aerr.Reason == ReasonInvalidResponse {
				return backoff.Permanent(aerr)
			}
			return aerr
		}

		parsed, perr := parseEstimate(resp)
		if perr != nil {
			// A malformed response shape will not improve on retry.
			return backoff.Permanent(perr)
		}
		est = parsed
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = a.cfg.InitialBackoff

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(a.cfg.MaxAttempts-1)), ctx))
	if err != nil {
		aerr := asAnalysisError(err)
		metrics.AnalysisFailures.WithLabelValues(string(aerr.Reason)).Inc()
		return nil, aerr
	}

	metrics.AnalysisSuccesses.Inc()
	return est, nil
}

func classify(err error) *AnalysisError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return &AnalysisError{Reason: ReasonRateLimited, Err: err}
		default:
			return &AnalysisError{Reason: ReasonProviderError, Err: err}
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &AnalysisError{Reason: ReasonTimeout, Err: err}
	}
	return &AnalysisError{Reason: ReasonProviderError, Err: err}
}

func asAnalysisError(err error) *AnalysisError {
	var aerr *AnalysisError
	if errors.As(err, &aerr) {
		return aerr
	}
	// Context expiry surfaced by the backoff wrapper itself.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &AnalysisError{Reason: ReasonTimeout, Err: err}
	}
	return &AnalysisError{Reason: ReasonProviderError, Err: err}
}

// parseEstimate accepts a completion only if it carries a JSON object
// with all four numeric, non-negative fields.
func parseEstimate(resp openai.ChatCompletionResponse) (*NutritionEstimate, *AnalysisError) {
	if len(resp.Choices) == 0 {
		return nil, &AnalysisError{Reason: ReasonInvalidResponse, Err: errors.New("no choices in response")}
	}

	content := resp.Choices[0].Message.Content
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return nil, &AnalysisError{Reason: ReasonInvalidResponse, Err: errors.New("no JSON object in response")}
	}

	var payload struct {
		Calories *float64 `json:"calories"`
		Protein  *float64 `json:"protein"`
		Fat      *float64 `json:"fat"`
		Carbs    *float64 `json:"carbs"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &payload); err != nil {
		return nil, &AnalysisError{Reason: ReasonInvalidResponse, Err: err}
	}
	if payload.Calories == nil || payload.Protein == nil || payload.Fat == nil || payload.Carbs == nil {
		return nil, &AnalysisError{Reason: ReasonInvalidResponse, Err: errors.New("missing nutrition field")}
	}
	if *payload.Calories < 0 || *payload.Protein < 0 || *payload.Fat < 0 || *payload.Carbs < 0 {
		return nil, &AnalysisError{Reason: ReasonInvalidResponse, Err: errors.New("negative nutrition value")}
	}

	return &NutritionEstimate{
		Calories: *payload.Calories,
		Protein:  *payload.Protein,
		Fat:      *payload.Fat,
		Carbs:    *payload.Carbs,
	}, nil
}
