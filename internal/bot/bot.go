package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/puckwatch/puckwatch/internal/logger"
)

// Bot runs the Telegram long-polling loop and forwards commands to the handler
type Bot struct {
	api         *tgbotapi.BotAPI
	handler     *Handler
	pollTimeout int
}

// NewBot creates a bot connected with the given token
func NewBot(token string, handler *Handler, pollTimeout int) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	return &Bot{
		api:         api,
		handler:     handler,
		pollTimeout: pollTimeout,
	}, nil
}

// Run polls for updates until the context is canceled
func (b *Bot) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "bot started", zap.String("username", b.api.Self.UserName))

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			message := update.Message
			if message == nil || !message.IsCommand() {
				continue
			}

			reply := b.handler.Dispatch(ctx, message)
			if _, err := b.api.Send(tgbotapi.NewMessage(message.Chat.ID, reply)); err != nil {
				logger.ErrorCtx(ctx, err, zap.Int64("chat_id", message.Chat.ID))
			}
		}
	}
}
