package telegram

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"homework-bot/internal/domain"
	"homework-bot/internal/infra/metrics"
)

// Notifier доставляет уведомления в один чат через Bot API.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    zerolog.Logger
}

var _ domain.Notifier = (*Notifier)(nil)

// NewNotifier создаёт нотификатор для чата chatID.
func NewNotifier(bot *tgbotapi.BotAPI, chatID int64, logger zerolog.Logger) *Notifier {
	return &Notifier{bot: bot, chatID: chatID, log: logger}
}

// Send отправляет текст в чат, длинный текст уходит несколькими сообщениями.
func (n *Notifier) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, part := range SplitMessage(text) {
		msg := tgbotapi.NewMessage(n.chatID, part)
		start := time.Now()
		_, err := n.bot.Send(msg)
		metrics.ObserveNetworkRequest("telegram_bot", "send_message", strconv.FormatInt(n.chatID, 10), start, err)
		if err != nil {
			metrics.IncSendError()
			return fmt.Errorf("отправка сообщения в Telegram: %w", err)
		}
	}
	metrics.IncNotificationSent()
	n.log.Info().Str("text", text).Msg("сообщение отправлено в Telegram")
	return nil
}
