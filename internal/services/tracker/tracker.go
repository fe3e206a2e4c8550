package tracker

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nutrobots/nutrobot-go/internal/db/repositories/app_user"
	"github.com/nutrobots/nutrobot-go/internal/db/repositories/meal_entry"
	"github.com/nutrobots/nutrobot-go/internal/services/analyzer"
	"github.com/nutrobots/nutrobot-go/internal/services/goals"
	"github.com/nutrobots/nutrobot-go/internal/services/metrics"
	"go.uber.org/zap"
)

// SubmitResult is the outcome of one meal submission. When analysis
// failed, Report is nil and FailureReason carries the classified
// reason; the failed entry is still recorded for auditing.
type SubmitResult struct {
	Entry         *meal_entry.MealEntry
	Report        *goals.ProgressReport
	FailureReason analyzer.FailureReason
}

// Analyzed reports whether the meal produced a usable estimate.
func (r *SubmitResult) Analyzed() bool {
	return r.FailureReason == ""
}

// Interfaces
type ProgressTracker interface {
	// SubmitMeal runs the whole pipeline for one reported meal:
	// analyze, record, recompute the day's aggregate, evaluate.
	SubmitMeal(ctx context.Context, telegramID int64, text string, at time.Time) (*SubmitResult, error)

	// DailyProgress evaluates the stored aggregate for a day without
	// recording anything.
	DailyProgress(ctx context.Context, telegramID int64, day time.Time) (*goals.ProgressReport, *meal_entry.DailyAggregate, error)

	// SetGoals updates the user's diet type and goal parameters.
	SetGoals(ctx context.Context, telegramID int64, dietType app_user.DietType, params app_user.GoalParams) (*app_user.AppUser, error)

	// MealsForDay lists all entries recorded for a day, oldest first.
	MealsForDay(ctx context.Context, telegramID int64, day time.Time) ([]*meal_entry.MealEntry, error)

	// WeeklySummary returns per-day totals for the last seven days.
	WeeklySummary(ctx context.Context, telegramID int64, now time.Time) ([]*meal_entry.DailySummary, error)
}

// Implementation
type ProgressTrackerImpl struct {
	users     app_user.AppUserRepository
	meals     meal_entry.MealEntryRepository
	analyzer  analyzer.Analyzer
	evaluator goals.Evaluator
	log       *zap.Logger
}

// Constructor
func NewProgressTracker(
	users app_user.AppUserRepository,
	meals meal_entry.MealEntryRepository,
	nutrition analyzer.Analyzer,
	evaluator goals.Evaluator,
	log *zap.Logger,
) ProgressTracker {
	return &ProgressTrackerImpl{
		users:     users,
		meals:     meals,
		analyzer:  nutrition,
		evaluator: evaluator,
		log:       log,
	}
}

func (t *ProgressTrackerImpl) SubmitMeal(ctx context.Context, telegramID int64, text string, at time.Time) (*SubmitResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &meal_entry.ValidationError{Field: "description", Reason: "empty"}
	}

	user, err := t.users.GetOrCreateByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	at = at.UTC()

	est, err := t.analyzer.Analyze(ctx, text)
	if err != nil {
		var aerr *analyzer.AnalysisError
		if !errors.As(err, &aerr) {
			return nil, err
		}

		entry := &meal_entry.MealEntry{
			UserID:      user.ID,
			Description: text,
			Status:      meal_entry.StatusFailed,
			OccurredAt:  at,
		}
		// The failed attempt is recorded so it is auditable; if even
		// that write fails the user still gets the analysis notice.
		if rerr := t.meals.RecordMeal(ctx, entry); rerr != nil {
			t.log.Error("failed to record failed meal entry",
				zap.Int64("telegram_id", telegramID),
				zap.Error(rerr),
			)
		}

		t.log.Warn("meal analysis failed",
			zap.Int64("telegram_id", telegramID),
			zap.String("reason", string(aerr.Reason)),
		)
		return &SubmitResult{Entry: entry, FailureReason: aerr.Reason}, nil
	}

	entry := &meal_entry.MealEntry{
		UserID:      user.ID,
		Description: text,
		Calories:    est.Calories,
		Protein:     est.Protein,
		Carbs:       est.Carbs,
		Fat:         est.Fat,
		Status:      meal_entry.StatusSuccess,
		OccurredAt:  at,
	}
	if err := t.meals.RecordMeal(ctx, entry); err != nil {
		// No retry here: the repository owns transient-fault policy.
		return nil, err
	}
	metrics.MealsAdded.Inc()

	aggregate, err := t.meals.DailyAggregate(ctx, user.ID, at)
	if err != nil {
		return nil, err
	}

	report := t.evaluator.Evaluate(user, aggregate)

	t.log.Info("meal recorded",
		zap.Int64("telegram_id", telegramID),
		zap.String("entry_id", entry.ID),
		zap.Float64("calories", est.Calories),
	)
	return &SubmitResult{Entry: entry, Report: &report}, nil
}

func (t *ProgressTrackerImpl) DailyProgress(ctx context.Context, telegramID int64, day time.Time) (*goals.ProgressReport, *meal_entry.DailyAggregate, error) {
	user, err := t.users.GetOrCreateByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, nil, err
	}

	aggregate, err := t.meals.DailyAggregate(ctx, user.ID, day)
	if err != nil {
		return nil, nil, err
	}

	report := t.evaluator.Evaluate(user, aggregate)
	return &report, aggregate, nil
}

func (t *ProgressTrackerImpl) SetGoals(ctx context.Context, telegramID int64, dietType app_user.DietType, params app_user.GoalParams) (*app_user.AppUser, error) {
	if params.Calories < 0 || params.Protein < 0 || params.Fat < 0 || params.Carbs < 0 {
		return nil, &meal_entry.ValidationError{Field: "goals", Reason: "negative value"}
	}

	user, err := t.users.SetGoals(ctx, telegramID, dietType, params)
	if err != nil {
		return nil, err
	}
	metrics.GoalsSet.Inc()

	t.log.Info("goals updated",
		zap.Int64("telegram_id", telegramID),
		zap.String("diet_type", string(dietType)),
	)
	return user, nil
}

func (t *ProgressTrackerImpl) MealsForDay(ctx context.Context, telegramID int64, day time.Time) ([]*meal_entry.MealEntry, error) {
	user, err := t.users.GetOrCreateByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return t.meals.ListByDay(ctx, user.ID, day)
}

func (t *ProgressTrackerImpl) WeeklySummary(ctx context.Context, telegramID int64, now time.Time) ([]*meal_entry.DailySummary, error) {
	user, err := t.users.GetOrCreateByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	start, _ := meal_entry.DayRangeUTC(now.AddDate(0, 0, -6))
	_, end := meal_entry.DayRangeUTC(now)
	return t.meals.DailyTotals(ctx, user.ID, start, end)
}
