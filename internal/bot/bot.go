package bot

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nutrobots/nutrobot-go/config"
	"github.com/nutrobots/nutrobot-go/internal/db"
	"github.com/nutrobots/nutrobot-go/internal/db/repositories/app_user"
	"github.com/nutrobots/nutrobot-go/internal/db/repositories/meal_entry"
	"github.com/nutrobots/nutrobot-go/internal/healthcheck"
	"github.com/nutrobots/nutrobot-go/internal/logger"
	"github.com/nutrobots/nutrobot-go/internal/services/analyzer"
	"github.com/nutrobots/nutrobot-go/internal/services/goals"
	"github.com/nutrobots/nutrobot-go/internal/services/speech"
	"github.com/nutrobots/nutrobot-go/internal/services/tracker"
	"github.com/nutrobots/nutrobot-go/internal/telegram"
	"go.uber.org/zap"
)

func StartBot() error {
	cfg := config.LoadConfigOrPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log, err := logger.New(cfg.AppConfig.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting bot",
		zap.String("app", cfg.AppConfig.APPName),
		zap.String("version", cfg.AppConfig.Version),
	)
	healthcheck.StartHealthcheck(ctx, cfg.AppConfig)

	database, err := db.NewDatabase(cfg.DBConfig)
	if err != nil {
		log.Error("failed to connect to database", zap.Error(err))
		return err
	}
	defer database.Close()

	if err := db.Migrate(cfg.DBConfig); err != nil {
		log.Error("failed to run migrations", zap.Error(err))
		return err
	}
	log.Info("database ready")

	userRepo := app_user.NewUserRepository(database)
	mealRepo := meal_entry.NewMealEntryRepository(database)

	nutrition := analyzer.NewAnalyzer(cfg.AnalyzerConfig, log)
	evaluator := goals.NewEvaluator(cfg.GoalsConfig)
	recognizer := speech.NewRecognizer(cfg.AnalyzerConfig.APIKey, cfg.SpeechConfig, log)
	progress := tracker.NewProgressTracker(userRepo, mealRepo, nutrition, evaluator, log)

	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramConfig.Token)
	if err != nil {
		log.Error("failed to create telegram client", zap.Error(err))
		return err
	}
	botAPI.Debug = cfg.TelegramConfig.Debug

	controller := telegram.NewCommandController(botAPI, progress, evaluator, recognizer, log)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.TelegramConfig.PollTimeout
	updates := botAPI.GetUpdatesChan(u)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("connected to telegram", zap.String("username", botAPI.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			log.Info("shutdown signal received")
			botAPI.StopReceivingUpdates()
			return nil
		case upd := <-updates:
			if err := controller.HandleUpdate(ctx, upd); err != nil {
				log.Error("error handling update", zap.Error(err))
			}
		}
	}
}
