package meal_entry

import (
	"errors"
	"testing"
	"time"
)

func TestDayRangeUTC(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantStart time.Time
	}{
		{
			"midday utc",
			time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"exactly midnight",
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"just before midnight",
			time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC),
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			"positive offset crosses date line",
			time.Date(2026, 9, 1, 2, 0, 0, 0, time.FixedZone("UTC+5", 5*3600)),
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			"negative offset crosses forward",
			time.Date(2026, 8, 31, 22, 0, 0, 0, time.FixedZone("UTC-4", -4*3600)),
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := DayRangeUTC(tt.in)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start: expected %v, got %v", tt.wantStart, start)
			}
			if !end.Equal(tt.wantStart.Add(24 * time.Hour)) {
				t.Errorf("end: expected %v, got %v", tt.wantStart.Add(24*time.Hour), end)
			}
			if start.Location() != time.UTC || end.Location() != time.UTC {
				t.Error("day window must be in UTC")
			}
		})
	}
}

func TestRecordMeal_RejectsNegativeNutrition(t *testing.T) {
	r := &MealEntryRepositoryImpl{}

	err := r.RecordMeal(nil, &MealEntry{
		UserID:      1,
		Description: "impossible meal",
		Calories:    -10,
		Status:      StatusSuccess,
		OccurredAt:  time.Now(),
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "nutrition" {
		t.Errorf("expected nutrition field, got %q", verr.Field)
	}
}

func TestRecordMeal_RejectsUnknownStatus(t *testing.T) {
	r := &MealEntryRepositoryImpl{}

	err := r.RecordMeal(nil, &MealEntry{
		UserID:      1,
		Description: "meal",
		Status:      EntryStatus("done"),
		OccurredAt:  time.Now(),
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "status" {
		t.Errorf("expected status field, got %q", verr.Field)
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := error(&StorageError{Err: inner})
	if !errors.Is(err, inner) {
		t.Error("expected StorageError to unwrap its cause")
	}
}
