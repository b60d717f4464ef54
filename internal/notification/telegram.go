package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts bulk send summaries to a single operator chat. With
// an empty token it degrades to a no-op so local setups need no bot at all.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, operator notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyDispatchComplete(ctx context.Context, event *domain.Event, kind string, report *domain.DispatchReport) {
	text := fmt.Sprintf(
		"*Bulk %s send complete*\n\nEvent: %s\nDelivered: %d\nFailed: %d",
		kind, event.Name, len(report.Successful), len(report.Failed),
	)
	if len(report.Failed) > 0 {
		max := len(report.Failed)
		if max > 5 {
			max = 5
		}
		text += "\n\nFirst failures:"
		for _, f := range report.Failed[:max] {
			text += fmt.Sprintf("\n- %s: %s", f.Email, f.Error)
		}
	}

	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
