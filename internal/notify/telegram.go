// Package notify pushes ops alerts about hostile complaints to a Telegram
// chat.
package notify

import (
	"fmt"

	"complaintdesk/backend/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier sends one message per hostile complaint to a fixed ops
// chat. It implements complaint.Notifier.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier authenticates the bot token against the Telegram API.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram init: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// NotifyComplaint posts a Markdown summary of the complaint to the ops chat.
func (n *TelegramNotifier) NotifyComplaint(complaint *models.Complaint) error {
	msg := tgbotapi.NewMessage(n.chatID, FormatComplaint(complaint))
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// FormatComplaint renders the alert text for one complaint.
func FormatComplaint(c *models.Complaint) string {
	location := "location unknown"
	if c.IPCountry != nil {
		location = *c.IPCountry
		if c.IPCity != nil && *c.IPCity != "" {
			location = fmt.Sprintf("%s, %s", *c.IPCity, *c.IPCountry)
		}
	}

	return fmt.Sprintf("⚠️ *Complaint #%d* (%s)\n%s\n_%s_",
		c.ID, c.Sentiment, c.Text, location)
}
