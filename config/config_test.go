package config

import "testing"

func TestApplyGoalDefaults(t *testing.T) {
	var g GoalsConfig
	applyGoalDefaults(&g)

	if g.WeightLoss.Calories != 1500 || g.WeightLoss.Carbs != 150 {
		t.Errorf("unexpected weight loss profile: %+v", g.WeightLoss)
	}
	if g.MuscleGain.Calories != 2500 || g.MuscleGain.Protein != 180 {
		t.Errorf("unexpected muscle gain profile: %+v", g.MuscleGain)
	}
	if g.Maintenance.Calories != 2000 {
		t.Errorf("unexpected maintenance profile: %+v", g.Maintenance)
	}
	if g.Keto.Carbs != 30 || g.Keto.Fat != 120 {
		t.Errorf("unexpected keto profile: %+v", g.Keto)
	}
}

func TestApplyGoalDefaults_KeepsOverrides(t *testing.T) {
	g := GoalsConfig{
		Keto: MacroProfile{Calories: 1600, Protein: 110, Fat: 110, Carbs: 25},
	}
	applyGoalDefaults(&g)

	if g.Keto.Calories != 1600 {
		t.Errorf("configured profile must not be overwritten: %+v", g.Keto)
	}
	if g.Maintenance.Calories != 2000 {
		t.Errorf("unset profiles still get defaults: %+v", g.Maintenance)
	}
}
