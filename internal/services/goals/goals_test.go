package goals

import (
	"testing"

	"github.com/nutrobots/nutrobot-go/config"
	"github.com/nutrobots/nutrobot-go/internal/db/repositories/app_user"
	"github.com/nutrobots/nutrobot-go/internal/db/repositories/meal_entry"
)

func testConfig() config.GoalsConfig {
	return config.GoalsConfig{
		WeightLoss:  config.MacroProfile{Calories: 1500, Protein: 120, Fat: 50, Carbs: 150},
		MuscleGain:  config.MacroProfile{Calories: 2500, Protein: 180, Fat: 80, Carbs: 250},
		Maintenance: config.MacroProfile{Calories: 2000, Protein: 150, Fat: 65, Carbs: 200},
		Keto:        config.MacroProfile{Calories: 1800, Protein: 120, Fat: 120, Carbs: 30},
	}
}

func TestProfileFor(t *testing.T) {
	e := NewEvaluator(testConfig())

	tests := []struct {
		dietType app_user.DietType
		calories float64
		carbs    float64
	}{
		{app_user.DietWeightLoss, 1500, 150},
		{app_user.DietMuscleGain, 2500, 250},
		{app_user.DietMaintain, 2000, 200},
		{app_user.DietKeto, 1800, 30},
	}

	for _, tt := range tests {
		profile, ok := e.ProfileFor(tt.dietType)
		if !ok {
			t.Fatalf("expected profile for %s", tt.dietType)
		}
		if profile.Calories != tt.calories {
			t.Errorf("%s: expected %0.f calories, got %0.f", tt.dietType, tt.calories, profile.Calories)
		}
		if profile.Carbs != tt.carbs {
			t.Errorf("%s: expected %0.f carbs, got %0.f", tt.dietType, tt.carbs, profile.Carbs)
		}
	}
}

func TestProfileFor_Unknown(t *testing.T) {
	e := NewEvaluator(testConfig())

	if _, ok := e.ProfileFor(app_user.DietCustom); ok {
		t.Error("custom diet should have no preset profile")
	}
	if _, ok := e.ProfileFor(app_user.DietNone); ok {
		t.Error("empty diet should have no profile")
	}
}

func TestTargetsFor_CustomUsesStoredParams(t *testing.T) {
	e := NewEvaluator(testConfig())
	user := &app_user.AppUser{
		DietType: app_user.DietCustom,
		Goals:    app_user.GoalParams{Calories: 2200, Protein: 160, Fat: 70, Carbs: 210},
	}

	targets, ok := e.TargetsFor(user)
	if !ok {
		t.Fatal("expected targets for custom diet")
	}
	if targets.Calories != 2200 || targets.Protein != 160 || targets.Fat != 70 || targets.Carbs != 210 {
		t.Errorf("unexpected targets: %+v", targets)
	}
}

func TestTargetsFor_CurrentDietTypeWins(t *testing.T) {
	// Stored params reflect the profile at /set_goals time, but the
	// current diet type decides which thresholds apply.
	e := NewEvaluator(testConfig())
	user := &app_user.AppUser{
		DietType: app_user.DietKeto,
		Goals:    app_user.GoalParams{Calories: 2000, Protein: 150, Fat: 65, Carbs: 200},
	}

	targets, ok := e.TargetsFor(user)
	if !ok {
		t.Fatal("expected targets")
	}
	if targets.Carbs != 30 {
		t.Errorf("expected keto carb ceiling 30, got %0.f", targets.Carbs)
	}
}

func TestEvaluate_NoGoals(t *testing.T) {
	e := NewEvaluator(testConfig())

	report := e.Evaluate(&app_user.AppUser{}, &meal_entry.DailyAggregate{Calories: 500})
	if report.GoalsSet {
		t.Error("expected GoalsSet=false for user without goals")
	}
	if report.Calories.Percent != 0 {
		t.Errorf("no-goals report should not fabricate percent, got %0.f", report.Calories.Percent)
	}

	report = e.Evaluate(nil, nil)
	if report.GoalsSet {
		t.Error("expected GoalsSet=false for nil user")
	}
}

func TestEvaluate_Percent(t *testing.T) {
	e := NewEvaluator(testConfig())
	user := &app_user.AppUser{DietType: app_user.DietMaintain}
	agg := &meal_entry.DailyAggregate{Calories: 500, Protein: 30, Carbs: 50, Fat: 15}

	report := e.Evaluate(user, agg)
	if !report.GoalsSet {
		t.Fatal("expected GoalsSet=true")
	}
	if report.Calories.Consumed != 500 || report.Calories.Target != 2000 {
		t.Errorf("unexpected calories comparison: %+v", report.Calories)
	}
	if report.Calories.Percent != 25 {
		t.Errorf("expected 25%%, got %0.f%%", report.Calories.Percent)
	}
	if report.Calories.Over {
		t.Error("500 of 2000 should not be over target")
	}
	if report.Protein.Percent != 20 {
		t.Errorf("expected protein 20%%, got %0.f%%", report.Protein.Percent)
	}
}

func TestEvaluate_OverTarget(t *testing.T) {
	e := NewEvaluator(testConfig())
	user := &app_user.AppUser{DietType: app_user.DietKeto}
	agg := &meal_entry.DailyAggregate{Carbs: 45}

	report := e.Evaluate(user, agg)
	if !report.Carbs.Over {
		t.Error("45g carbs should be over the 30g keto ceiling")
	}
	if report.Carbs.Percent != 150 {
		t.Errorf("expected 150%%, got %0.f%%", report.Carbs.Percent)
	}
}

func TestEvaluate_NilAggregate(t *testing.T) {
	e := NewEvaluator(testConfig())
	user := &app_user.AppUser{DietType: app_user.DietMaintain}

	report := e.Evaluate(user, nil)
	if !report.GoalsSet {
		t.Fatal("expected GoalsSet=true")
	}
	if report.Calories.Consumed != 0 || report.Calories.Percent != 0 {
		t.Errorf("empty day should read as zero progress: %+v", report.Calories)
	}
}

func TestParseCustomTargets(t *testing.T) {
	params, err := ParseCustomTargets("2000 150 60 200")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Calories != 2000 || params.Protein != 150 || params.Fat != 60 || params.Carbs != 200 {
		t.Errorf("unexpected params: %+v", params)
	}
}

func TestParseCustomTargets_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"too few", "2000 150 60"},
		{"too many", "2000 150 60 200 10"},
		{"not a number", "2000 150 sixty 200"},
		{"negative", "2000 -150 60 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCustomTargets(tt.text); err == nil {
				t.Errorf("expected error for %q", tt.text)
			}
		})
	}
}
