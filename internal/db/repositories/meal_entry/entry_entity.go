package meal_entry

import (
	"time"
)

type EntryStatus string

const (
	StatusPending EntryStatus = "pending"
	StatusSuccess EntryStatus = "success"
	StatusFailed  EntryStatus = "failed"
)

// MealEntry is one reported meal plus its extracted nutrition values.
// Entries are immutable once written; corrections are new entries.
// A failed entry records that analysis produced no usable data and
// carries zero nutrition values.
type MealEntry struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	UserID      uint   `gorm:"column:user_id;not null;index:idx_meal_entries_user_occurred,priority:1" json:"user_id"`
	Description string `gorm:"column:description;type:text;not null" json:"description"`

	Calories float64 `gorm:"column:calories;not null;default:0" json:"calories"`
	Protein  float64 `gorm:"column:protein;not null;default:0" json:"protein"`
	Carbs    float64 `gorm:"column:carbs;not null;default:0" json:"carbs"`
	Fat      float64 `gorm:"column:fat;not null;default:0" json:"fat"`

	Status     EntryStatus `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
	OccurredAt time.Time   `gorm:"column:occurred_at;not null;index:idx_meal_entries_user_occurred,priority:2" json:"occurred_at"`
}

func (MealEntry) TableName() string {
	return "meal_entries"
}

// DailyAggregate is the summed nutrition of all success entries for
// one user and one UTC calendar date. It is a projection over
// meal_entries, recomputed on every read.
type DailyAggregate struct {
	UserID    uint      `json:"user_id"`
	Date      time.Time `json:"date"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	MealCount int       `json:"meal_count"`
}

// DailySummary is one row of a multi-day report.
type DailySummary struct {
	Date     time.Time `json:"date"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
}
