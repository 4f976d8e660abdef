package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/akira02/tg-jpg/pkg/domain"
	"github.com/akira02/tg-jpg/pkg/logger"
	"github.com/akira02/tg-jpg/pkg/render"
)

type client struct {
	bot       *tgbotapi.BotAPI
	updatesCh tgbotapi.UpdatesChannel
}

func NewClient(token string) (*client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating bot api instance: %w", err)
	}

	slog.Info("authorized on telegram", "account", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return &client{
		bot:       bot,
		updatesCh: bot.GetUpdatesChan(u),
	}, nil
}

func (c *client) GetUpdates() tgbotapi.UpdatesChannel {
	return c.updatesCh
}

// SendResponse delivers a reply. A failed send is logged and the message
// abandoned; it never crosses back into dispatch.
func (c *client) SendResponse(ctx context.Context, chatID int64, response *domain.Response) {
	if response == nil {
		return
	}

	if _, err := c.bot.Send(c.toChattable(chatID, response)); err != nil {
		slog.ErrorContext(ctx, "sending reply", "chatID", chatID, logger.Err(err))
	}
}

func (c *client) toChattable(chatID int64, response *domain.Response) tgbotapi.Chattable {
	if response.Media == nil {
		msg := tgbotapi.NewMessage(chatID, render.ToHTML(response.Text))
		msg.ParseMode = tgbotapi.ModeHTML
		return msg
	}

	file := mediaFile(response.Media)
	if response.Media.Kind == domain.KindAnimation {
		return tgbotapi.NewAnimation(chatID, file)
	}
	return tgbotapi.NewPhoto(chatID, file)
}

func mediaFile(m *domain.MediaResult) tgbotapi.RequestFileData {
	switch {
	case len(m.Data) > 0:
		return tgbotapi.FileBytes{Name: m.Name, Bytes: m.Data}
	case m.Path != "":
		return tgbotapi.FilePath(m.Path)
	default:
		return tgbotapi.FileURL(m.URL)
	}
}

func (c *client) AnswerInlineQuery(ctx context.Context, config tgbotapi.InlineConfig) {
	if _, err := c.bot.Request(config); err != nil {
		slog.ErrorContext(ctx, "answering inline query", logger.Err(err))
	}
}
