package goals

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nutrobots/nutrobot-go/config"
	"github.com/nutrobots/nutrobot-go/internal/db/repositories/app_user"
	"github.com/nutrobots/nutrobot-go/internal/db/repositories/meal_entry"
)

// MacroTargets are the daily thresholds an aggregate is compared to.
// They are derived on every evaluation from the user's current diet
// type and never persisted.
type MacroTargets struct {
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}

// NutrientProgress compares one nutrient against its target.
type NutrientProgress struct {
	Consumed float64 `json:"consumed"`
	Target   float64 `json:"target"`
	Percent  float64 `json:"percent"`
	Over     bool    `json:"over"`
}

// ProgressReport is the per-nutrient comparison of a DailyAggregate
// against the user's targets. GoalsSet is false when the user never
// ran /set_goals; the nutrient fields are then zero-valued.
type ProgressReport struct {
	GoalsSet bool             `json:"goals_set"`
	DietType app_user.DietType `json:"diet_type"`
	Calories NutrientProgress `json:"calories"`
	Protein  NutrientProgress `json:"protein"`
	Fat      NutrientProgress `json:"fat"`
	Carbs    NutrientProgress `json:"carbs"`
}

// Interfaces
type Evaluator interface {
	Evaluate(user *app_user.AppUser, aggregate *meal_entry.DailyAggregate) ProgressReport
	TargetsFor(user *app_user.AppUser) (MacroTargets, bool)
	ProfileFor(dietType app_user.DietType) (MacroTargets, bool)
}

// Implementation
type EvaluatorImpl struct {
	profiles map[app_user.DietType]MacroTargets
}

// Constructor
func NewEvaluator(cfg config.GoalsConfig) Evaluator {
	return &EvaluatorImpl{
		profiles: map[app_user.DietType]MacroTargets{
			app_user.DietWeightLoss: fromProfile(cfg.WeightLoss),
			app_user.DietMuscleGain: fromProfile(cfg.MuscleGain),
			app_user.DietMaintain:   fromProfile(cfg.Maintenance),
			app_user.DietKeto:       fromProfile(cfg.Keto),
		},
	}
}

func fromProfile(p config.MacroProfile) MacroTargets {
	return MacroTargets{Calories: p.Calories, Protein: p.Protein, Fat: p.Fat, Carbs: p.Carbs}
}

// ProfileFor returns the configured macro profile for a preset diet type.
func (e *EvaluatorImpl) ProfileFor(dietType app_user.DietType) (MacroTargets, bool) {
	t, ok := e.profiles[dietType]
	return t, ok
}

// TargetsFor derives the thresholds from the user's current diet
// type. Custom diets use the stored goal parameters; presets use the
// configured profile, so a later profile change applies to everyone
// on that diet. The second return is false when no goals are set.
func (e *EvaluatorImpl) TargetsFor(user *app_user.AppUser) (MacroTargets, bool) {
	if user == nil || !user.HasGoals() {
		return MacroTargets{}, false
	}
	if user.DietType == app_user.DietCustom {
		return MacroTargets{
			Calories: user.Goals.Calories,
			Protein:  user.Goals.Protein,
			Fat:      user.Goals.Fat,
			Carbs:    user.Goals.Carbs,
		}, true
	}
	t, ok := e.profiles[user.DietType]
	return t, ok
}

// Evaluate is a pure function of its inputs: no storage access, no
// side effects.
func (e *EvaluatorImpl) Evaluate(user *app_user.AppUser, aggregate *meal_entry.DailyAggregate) ProgressReport {
	targets, ok := e.TargetsFor(user)
	if !ok {
		return ProgressReport{GoalsSet: false}
	}

	var agg meal_entry.DailyAggregate
	if aggregate != nil {
		agg = *aggregate
	}

	return ProgressReport{
		GoalsSet: true,
		DietType: user.DietType,
		Calories: compare(agg.Calories, targets.Calories),
		Protein:  compare(agg.Protein, targets.Protein),
		Fat:      compare(agg.Fat, targets.Fat),
		Carbs:    compare(agg.Carbs, targets.Carbs),
	}
}

func compare(consumed, target float64) NutrientProgress {
	p := NutrientProgress{Consumed: consumed, Target: target}
	if target > 0 {
		p.Percent = consumed / target * 100
		p.Over = consumed > target
	}
	return p
}

// ParseCustomTargets parses the "calories protein fat carbs" text a
// user sends for custom goals, e.g. "2000 150 60 200".
func ParseCustomTargets(text string) (app_user.GoalParams, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) != 4 {
		return app_user.GoalParams{}, fmt.Errorf("expected 4 numbers, got %d", len(parts))
	}

	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return app_user.GoalParams{}, fmt.Errorf("not a number: %q", part)
		}
		if v < 0 {
			return app_user.GoalParams{}, fmt.Errorf("negative value: %q", part)
		}
		values[i] = v
	}

	return app_user.GoalParams{
		Calories: values[0],
		Protein:  values[1],
		Fat:      values[2],
		Carbs:    values[3],
	}, nil
}
