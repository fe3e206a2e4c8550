package telegram

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nutrobots/nutrobot-go/internal/services/context_manager"
	"github.com/nutrobots/nutrobot-go/internal/services/goals"
	"github.com/nutrobots/nutrobot-go/internal/services/speech"
	"github.com/nutrobots/nutrobot-go/internal/services/tracker"
	"go.uber.org/zap"
)

// Pending per-chat conversational state. Process-transient: a restart
// just drops the prompt.
const pendingCustomGoals = "await_custom_goals"

// BotClient is the slice of tgbotapi.BotAPI the controller needs.
type BotClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

type CommandController interface {
	HandleUpdate(ctx context.Context, upd tgbotapi.Update) error
	AddCommand(command string, handler func(ctx context.Context, msg *tgbotapi.Message) error)
}

type CommandControllerImpl struct {
	bot        BotClient
	tracker    tracker.ProgressTracker
	evaluator  goals.Evaluator
	recognizer speech.Recognizer
	log        *zap.Logger

	commands map[string]func(ctx context.Context, msg *tgbotapi.Message) error

	mu      sync.RWMutex
	pending map[int64]string // chatID -> pending state
}

func NewCommandController(
	bot BotClient,
	progress tracker.ProgressTracker,
	evaluator goals.Evaluator,
	recognizer speech.Recognizer,
	log *zap.Logger,
) *CommandControllerImpl {
	c := &CommandControllerImpl{
		bot:        bot,
		tracker:    progress,
		evaluator:  evaluator,
		recognizer: recognizer,
		log:        log,
		commands:   make(map[string]func(ctx context.Context, msg *tgbotapi.Message) error),
		pending:    make(map[int64]string),
	}

	c.AddCommand("/start", c.handleStart)
	c.AddCommand("/help", c.handleHelp)
	c.AddCommand("/set_goals", c.handleSetGoals)
	c.AddCommand("/add_meal", c.handleAddMeal)
	c.AddCommand("/today", c.handleToday)
	c.AddCommand("/progress", c.handleProgress)
	c.AddCommand("/week", c.handleWeek)

	return c
}

func (c *CommandControllerImpl) AddCommand(command string, handler func(ctx context.Context, msg *tgbotapi.Message) error) {
	c.commands[command] = handler
}

// HandleUpdate dispatches one Telegram update to the correct handler.
func (c *CommandControllerImpl) HandleUpdate(ctx context.Context, upd tgbotapi.Update) error {
	if upd.CallbackQuery != nil {
		return c.handleCallback(ctx, upd.CallbackQuery)
	}

	msg := upd.Message
	if msg == nil || msg.From == nil {
		return nil
	}

	ctx = context_manager.SetUserContext(ctx, msg.From.ID)
	ctx = context_manager.SetFirstNameContext(ctx, msg.From.FirstName)

	if msg.Voice != nil {
		return c.handleVoice(ctx, msg)
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	if strings.HasPrefix(text, "/") {
		cmd := strings.Fields(text)[0]
		// strip the @botname suffix used in group chats
		if at := strings.Index(cmd, "@"); at != -1 {
			cmd = cmd[:at]
		}
		if handler, exists := c.commands[cmd]; exists {
			return handler(ctx, msg)
		}
		return c.reply(msg.Chat.ID, helpText)
	}

	return c.handleFreeText(ctx, msg, text)
}

func (c *CommandControllerImpl) reply(chatID int64, text string) error {
	_, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (c *CommandControllerImpl) setPending(chatID int64, state string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[chatID] = state
}

func (c *CommandControllerImpl) takePending(chatID int64) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := c.pending[chatID]
	delete(c.pending, chatID)
	return state
}
