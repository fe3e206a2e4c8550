package app_user

import (
	"time"

	"gorm.io/gorm"
)

// DietType selects which macro profile applies to a user. The custom
// type means the user supplied explicit targets instead of a preset.
type DietType string

const (
	DietNone       DietType = ""
	DietWeightLoss DietType = "weight_loss"
	DietMuscleGain DietType = "muscle_gain"
	DietMaintain   DietType = "maintenance"
	DietKeto       DietType = "keto"
	DietCustom     DietType = "custom"
)

// GoalParams are the stored daily targets. For preset diet types
// these mirror the profile active when /set_goals ran; the evaluator
// always re-derives targets from the current diet type.
type GoalParams struct {
	Calories float64 `gorm:"column:goal_calories;not null;default:0"`
	Protein  float64 `gorm:"column:goal_protein;not null;default:0"`
	Fat      float64 `gorm:"column:goal_fat;not null;default:0"`
	Carbs    float64 `gorm:"column:goal_carbs;not null;default:0"`
}

type AppUser struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`

	TelegramID int64      `gorm:"column:telegram_id;uniqueIndex;not null" json:"telegram_id"`
	DietType   DietType   `gorm:"column:diet_type;type:varchar(32);not null;default:''" json:"diet_type"`
	Goals      GoalParams `gorm:"embedded" json:"goals"`
}

func (AppUser) TableName() string {
	return "app_users"
}

// HasGoals reports whether /set_goals has ever completed for the user.
func (u *AppUser) HasGoals() bool {
	return u.DietType != DietNone
}
