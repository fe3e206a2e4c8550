package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nutrobots/nutrobot-go/internal/db/repositories/app_user"
	"github.com/nutrobots/nutrobot-go/internal/db/repositories/meal_entry"
	"github.com/nutrobots/nutrobot-go/internal/services/context_manager"
	"github.com/nutrobots/nutrobot-go/internal/services/goals"
	"github.com/nutrobots/nutrobot-go/internal/services/speech"
	"go.uber.org/zap"
)

func (c *CommandControllerImpl) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	name := context_manager.GetFirstNameFromContext(ctx)
	return c.reply(msg.Chat.ID, startText(name))
}

func (c *CommandControllerImpl) handleHelp(_ context.Context, msg *tgbotapi.Message) error {
	return c.reply(msg.Chat.ID, helpText)
}

func (c *CommandControllerImpl) handleSetGoals(_ context.Context, msg *tgbotapi.Message) error {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Weight loss", "goal_weight_loss"),
			tgbotapi.NewInlineKeyboardButtonData("Muscle gain", "goal_muscle_gain"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Maintenance", "goal_maintenance"),
			tgbotapi.NewInlineKeyboardButtonData("Keto", "goal_keto"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Custom", "goal_custom"),
		),
	)

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Choose a goal:")
	reply.ReplyMarkup = keyboard
	_, err := c.bot.Send(reply)
	return err
}

func (c *CommandControllerImpl) handleAddMeal(_ context.Context, msg *tgbotapi.Message) error {
	return c.reply(msg.Chat.ID, addMealPrompt)
}

func (c *CommandControllerImpl) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if _, err := c.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		c.log.Warn("failed to answer callback", zap.Error(err))
	}
	if cb.Message == nil || !strings.HasPrefix(cb.Data, "goal_") {
		return nil
	}

	chatID := cb.Message.Chat.ID
	dietType := app_user.DietType(strings.TrimPrefix(cb.Data, "goal_"))

	if dietType == app_user.DietCustom {
		c.setPending(chatID, pendingCustomGoals)
		return c.reply(chatID, customGoalsPrompt)
	}

	profile, ok := c.evaluator.ProfileFor(dietType)
	if !ok {
		return c.reply(chatID, helpText)
	}

	params := app_user.GoalParams{
		Calories: profile.Calories,
		Protein:  profile.Protein,
		Fat:      profile.Fat,
		Carbs:    profile.Carbs,
	}
	if _, err := c.tracker.SetGoals(ctx, cb.From.ID, dietType, params); err != nil {
		c.log.Error("failed to set goals", zap.Error(err))
		return c.reply(chatID, storageErrorText)
	}

	return c.reply(chatID, goalsSetText(string(dietType), profile))
}

func (c *CommandControllerImpl) handleFreeText(ctx context.Context, msg *tgbotapi.Message, text string) error {
	if c.takePending(msg.Chat.ID) == pendingCustomGoals {
		return c.handleCustomGoals(ctx, msg, text)
	}
	return c.submitMeal(ctx, msg, text)
}

func (c *CommandControllerImpl) handleCustomGoals(ctx context.Context, msg *tgbotapi.Message, text string) error {
	params, err := goals.ParseCustomTargets(text)
	if err != nil {
		// keep waiting for a valid line
		c.setPending(msg.Chat.ID, pendingCustomGoals)
		return c.reply(msg.Chat.ID, invalidCustomGoalsText)
	}

	user, err := c.tracker.SetGoals(ctx, msg.From.ID, app_user.DietCustom, params)
	if err != nil {
		c.log.Error("failed to set custom goals", zap.Error(err))
		return c.reply(msg.Chat.ID, storageErrorText)
	}

	targets, _ := c.evaluator.TargetsFor(user)
	return c.reply(msg.Chat.ID, goalsSetText(string(app_user.DietCustom), targets))
}

func (c *CommandControllerImpl) submitMeal(ctx context.Context, msg *tgbotapi.Message, text string) error {
	result, err := c.tracker.SubmitMeal(ctx, msg.From.ID, text, time.Now())
	if err != nil {
		var verr *meal_entry.ValidationError
		if errors.As(err, &verr) {
			return c.reply(msg.Chat.ID, addMealPrompt)
		}
		c.log.Error("meal submission failed", zap.Error(err))
		return c.reply(msg.Chat.ID, storageErrorText)
	}

	if !result.Analyzed() {
		return c.reply(msg.Chat.ID, analysisFailedText(result.FailureReason))
	}

	response := mealSavedText(result.Entry) + "\n\n" + progressText(result.Report)
	return c.reply(msg.Chat.ID, response)
}

func (c *CommandControllerImpl) handleToday(ctx context.Context, msg *tgbotapi.Message) error {
	entries, err := c.tracker.MealsForDay(ctx, msg.From.ID, time.Now())
	if err != nil {
		c.log.Error("failed to list today's meals", zap.Error(err))
		return c.reply(msg.Chat.ID, storageErrorText)
	}
	return c.reply(msg.Chat.ID, todayText(entries))
}

func (c *CommandControllerImpl) handleProgress(ctx context.Context, msg *tgbotapi.Message) error {
	report, _, err := c.tracker.DailyProgress(ctx, msg.From.ID, time.Now())
	if err != nil {
		c.log.Error("failed to compute progress", zap.Error(err))
		return c.reply(msg.Chat.ID, storageErrorText)
	}
	return c.reply(msg.Chat.ID, progressText(report))
}

func (c *CommandControllerImpl) handleWeek(ctx context.Context, msg *tgbotapi.Message) error {
	days, err := c.tracker.WeeklySummary(ctx, msg.From.ID, time.Now())
	if err != nil {
		c.log.Error("failed to compute weekly summary", zap.Error(err))
		return c.reply(msg.Chat.ID, storageErrorText)
	}
	return c.reply(msg.Chat.ID, weekText(days))
}

func (c *CommandControllerImpl) handleVoice(ctx context.Context, msg *tgbotapi.Message) error {
	if c.recognizer == nil {
		return c.reply(msg.Chat.ID, addMealPrompt)
	}

	url, err := c.bot.GetFileDirectURL(msg.Voice.FileID)
	if err != nil {
		c.log.Error("failed to resolve voice file", zap.Error(err))
		return c.reply(msg.Chat.ID, noSpeechText)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.log.Error("failed to download voice file", zap.Error(err))
		return c.reply(msg.Chat.ID, noSpeechText)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.log.Error("voice file download failed", zap.Int("status", resp.StatusCode))
		return c.reply(msg.Chat.ID, noSpeechText)
	}

	transcript, err := c.recognizer.Transcribe(ctx, resp.Body, fmt.Sprintf("%s.ogg", msg.Voice.FileID))
	if err != nil {
		if errors.Is(err, speech.ErrNoSpeech) {
			return c.reply(msg.Chat.ID, noSpeechText)
		}
		c.log.Error("voice transcription failed", zap.Error(err))
		return c.reply(msg.Chat.ID, noSpeechText)
	}

	if err := c.reply(msg.Chat.ID, transcriptText(transcript)); err != nil {
		return err
	}
	return c.submitMeal(ctx, msg, transcript)
}
