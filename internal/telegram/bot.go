package telegram

import (
	"fmt"
	"strings"

	"design-vacancy-parser/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot posts pending vacancies to the moderators' chat
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

var markdownReplacer = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
	")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
	"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
	"}", "\\}", ".", "\\.", "!", "\\!",
)

func escapeMarkdown(text string) string {
	return markdownReplacer.Replace(text)
}

// FormatVacancy builds the MarkdownV2 moderation card for v
func FormatVacancy(v models.Vacancy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎨 *%s*\n", escapeMarkdown(v.Title))
	fmt.Fprintf(&b, "🏢 %s\n", escapeMarkdown(v.Company))
	fmt.Fprintf(&b, "📍 %s\n", escapeMarkdown(v.Location))
	if v.Salary != "" {
		fmt.Fprintf(&b, "💰 %s\n", escapeMarkdown(v.Salary))
	}
	fmt.Fprintf(&b, "📅 %s\n", escapeMarkdown(v.PublishedAt.Format("02.01.2006")))
	fmt.Fprintf(&b, "🔖 Source: %s\n", escapeMarkdown(v.Source))
	fmt.Fprintf(&b, "⏳ Status: %s", escapeMarkdown(string(v.Status)))
	return b.String()
}

func (b *Bot) SendVacancy(v models.Vacancy) error {
	msg := tgbotapi.NewMessage(b.chatID, FormatVacancy(v))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if v.URL != "" {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("🔗 View vacancy", v.URL)),
		)
	}

	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
