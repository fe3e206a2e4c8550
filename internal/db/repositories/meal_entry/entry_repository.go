package meal_entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutrobots/nutrobot-go/internal/db"
)

/*
ERRORS
*/

// StorageError marks a transient persistence failure. Callers report
// it as "try again" and must not treat the meal as recorded.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable: %v", e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ValidationError marks input rejected before persistence.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

/*
REPOSITORY INTERFACE
*/

type MealEntryRepository interface {
	// RecordMeal persists an entry, success or failed. Failed entries
	// are stored with zero nutrition so the attempt is auditable
	// without ever contributing to an aggregate.
	RecordMeal(ctx context.Context, entry *MealEntry) error

	// DailyAggregate sums success entries for the UTC calendar date of
	// day. Computed from the table on every call, so a RecordMeal
	// followed by DailyAggregate observes the just-written entry.
	DailyAggregate(ctx context.Context, userID uint, day time.Time) (*DailyAggregate, error)

	// ListByDay returns all entries (any status) for the date, oldest first.
	ListByDay(ctx context.Context, userID uint, day time.Time) ([]*MealEntry, error)

	// DailyTotals returns per-day success sums for days in [from, to),
	// newest first. Days with no entries are omitted.
	DailyTotals(ctx context.Context, userID uint, from, to time.Time) ([]*DailySummary, error)
}

/*
REPOSITORY IMPL
*/

type MealEntryRepositoryImpl struct {
	db *db.DB
}

func NewMealEntryRepository(database *db.DB) MealEntryRepository {
	return &MealEntryRepositoryImpl{db: database}
}

// DayRangeUTC returns the UTC day window [start, end) containing t.
func DayRangeUTC(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

func (r *MealEntryRepositoryImpl) RecordMeal(ctx context.Context, entry *MealEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.OccurredAt = entry.OccurredAt.UTC()

	switch entry.Status {
	case StatusSuccess:
		if entry.Calories < 0 || entry.Protein < 0 || entry.Carbs < 0 || entry.Fat < 0 {
			return &ValidationError{Field: "nutrition", Reason: "negative value"}
		}
	case StatusFailed, StatusPending:
		entry.Calories, entry.Protein, entry.Carbs, entry.Fat = 0, 0, 0, 0
	default:
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", entry.Status)}
	}

	if err := r.db.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return &StorageError{Err: err}
	}
	return nil
}

func (r *MealEntryRepositoryImpl) DailyAggregate(ctx context.Context, userID uint, day time.Time) (*DailyAggregate, error) {
	start, end := DayRangeUTC(day)

	var row struct {
		Calories  float64
		Protein   float64
		Carbs     float64
		Fat       float64
		MealCount int
	}
	err := r.db.DB.WithContext(ctx).
		Model(&MealEntry{}).
		Select("COALESCE(SUM(calories), 0) AS calories, COALESCE(SUM(protein), 0) AS protein, COALESCE(SUM(carbs), 0) AS carbs, COALESCE(SUM(fat), 0) AS fat, COUNT(*) AS meal_count").
		Where("user_id = ? AND status = ? AND occurred_at >= ? AND occurred_at < ?", userID, StatusSuccess, start, end).
		Scan(&row).Error
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	return &DailyAggregate{
		UserID:    userID,
		Date:      start,
		Calories:  row.Calories,
		Protein:   row.Protein,
		Carbs:     row.Carbs,
		Fat:       row.Fat,
		MealCount: row.MealCount,
	}, nil
}

func (r *MealEntryRepositoryImpl) ListByDay(ctx context.Context, userID uint, day time.Time) ([]*MealEntry, error) {
	start, end := DayRangeUTC(day)

	var entries []*MealEntry
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Order("occurred_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, &StorageError{Err: err}
	}
	return entries, nil
}

func (r *MealEntryRepositoryImpl) DailyTotals(ctx context.Context, userID uint, from, to time.Time) ([]*DailySummary, error) {
	var rows []*DailySummary
	err := r.db.DB.WithContext(ctx).
		Model(&MealEntry{}).
		Select("date_trunc('day', occurred_at) AS date, COALESCE(SUM(calories), 0) AS calories, COALESCE(SUM(protein), 0) AS protein, COALESCE(SUM(carbs), 0) AS carbs, COALESCE(SUM(fat), 0) AS fat").
		Where("user_id = ? AND status = ? AND occurred_at >= ? AND occurred_at < ?", userID, StatusSuccess, from.UTC(), to.UTC()).
		Group("date_trunc('day', occurred_at)").
		Order("date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, &StorageError{Err: err}
	}
	return rows, nil
}
