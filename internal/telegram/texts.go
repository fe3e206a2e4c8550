package telegram

import (
	"fmt"
	"strings"

	"github.com/nutrobots/nutrobot-go/internal/db/repositories/meal_entry"
	"github.com/nutrobots/nutrobot-go/internal/services/analyzer"
	"github.com/nutrobots/nutrobot-go/internal/services/goals"
)

const (
	helpText = "I track your nutrition. Here is what I can do:\n\n" +
		"/set_goals - Set your nutrition goals\n" +
		"/add_meal - Add a meal\n" +
		"/today - Show today's meals\n" +
		"/progress - Show progress against your goals\n" +
		"/week - Show the last 7 days\n" +
		"/help - Show this help"

	addMealPrompt = "Describe what you ate. For example: \"a bowl of oatmeal with banana and nuts\". You can also send a voice message."

	customGoalsPrompt = "Send your targets as four numbers:\n" +
		"calories protein fat carbs\n" +
		"For example: 2000 150 60 200"

	goalsNotSetText = "You have no goals set yet. Use /set_goals first."

	noMealsTodayText = "You have not added any meals today."

	noWeekDataText = "No meals recorded in the last 7 days."

	storageErrorText = "Something went wrong saving your data. Please try again."

	invalidCustomGoalsText = "I could not read those targets. " + customGoalsPrompt

	noSpeechText = "I could not make out any speech in that voice message. Please try again or type the meal."
)

func startText(firstName string) string {
	return fmt.Sprintf("Hi, %s! I will help you track your nutrition.\n\n", firstName) + helpText
}

var dietTitles = map[string]string{
	"weight_loss": "Weight loss",
	"muscle_gain": "Muscle gain",
	"maintenance": "Maintenance",
	"keto":        "Keto",
	"custom":      "Custom",
}

func dietTitle(dietType string) string {
	if title, ok := dietTitles[dietType]; ok {
		return title
	}
	return dietType
}

func goalsSetText(dietType string, t goals.MacroTargets) string {
	return fmt.Sprintf(
		"Goals set (%s)!\n\nCalories: %.0f\nProtein: %.0fg\nFat: %.0fg\nCarbs: %.0fg",
		dietTitle(dietType), t.Calories, t.Protein, t.Fat, t.Carbs,
	)
}

func mealSavedText(entry *meal_entry.MealEntry) string {
	return fmt.Sprintf(
		"Meal saved!\n\nCalories: %.0f\nProtein: %.0fg\nFat: %.0fg\nCarbs: %.0fg",
		entry.Calories, entry.Protein, entry.Fat, entry.Carbs,
	)
}

var failureNotices = map[analyzer.FailureReason]string{
	analyzer.ReasonTimeout:         "the analysis took too long",
	analyzer.ReasonRateLimited:     "the analysis service is busy right now",
	analyzer.ReasonInvalidResponse: "I could not understand the meal description",
	analyzer.ReasonProviderError:   "the analysis service had a problem",
}

func analysisFailedText(reason analyzer.FailureReason) string {
	notice, ok := failureNotices[reason]
	if !ok {
		notice = "the analysis failed"
	}
	return fmt.Sprintf("Sorry, %s (%s). The meal was not counted - please try again.", notice, reason)
}

func progressText(report *goals.ProgressReport) string {
	if !report.GoalsSet {
		return goalsNotSetText
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Your progress (%s):\n\n", dietTitle(string(report.DietType))))
	b.WriteString(nutrientLine("Calories", report.Calories, ""))
	b.WriteString(nutrientLine("Protein", report.Protein, "g"))
	b.WriteString(nutrientLine("Fat", report.Fat, "g"))
	b.WriteString(nutrientLine("Carbs", report.Carbs, "g"))
	return b.String()
}

func nutrientLine(name string, p goals.NutrientProgress, unit string) string {
	line := fmt.Sprintf("%s: %.0f/%.0f%s (%.0f%%)", name, p.Consumed, p.Target, unit, p.Percent)
	if p.Over {
		line += " - over target"
	}
	return line + "\n"
}

func todayText(entries []*meal_entry.MealEntry) string {
	if len(entries) == 0 {
		return noMealsTodayText
	}

	var b strings.Builder
	b.WriteString("Today's meals:\n\n")
	for _, e := range entries {
		if e.Status != meal_entry.StatusSuccess {
			b.WriteString(fmt.Sprintf("- %s (analysis failed, not counted)\n\n", e.Description))
			continue
		}
		b.WriteString(fmt.Sprintf("- %s\n  Calories: %.0f\n  P/F/C: %.0f/%.0f/%.0fg\n\n",
			e.Description, e.Calories, e.Protein, e.Fat, e.Carbs))
	}
	return strings.TrimRight(b.String(), "\n")
}

func weekText(days []*meal_entry.DailySummary) string {
	if len(days) == 0 {
		return noWeekDataText
	}

	var b strings.Builder
	b.WriteString("Last 7 days:\n\n")
	for _, d := range days {
		b.WriteString(fmt.Sprintf("%s: %.0f kcal (P/F/C: %.0f/%.0f/%.0fg)\n",
			d.Date.Format("Mon Jan 2"), d.Calories, d.Protein, d.Fat, d.Carbs))
	}
	return strings.TrimRight(b.String(), "\n")
}

func transcriptText(transcript string) string {
	return fmt.Sprintf("I heard: \"%s\"", transcript)
}
