package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/akira02/tg-jpg/pkg/domain"
	"github.com/akira02/tg-jpg/pkg/filename"
	"github.com/akira02/tg-jpg/pkg/logger"
)

type mediaRequestMessage struct {
	media  MediaService
	client TelegramClient
}

func NewMediaRequestMessage(media MediaService, client TelegramClient) *mediaRequestMessage {
	return &mediaRequestMessage{media: media, client: client}
}

func (*mediaRequestMessage) CanHandle(u *tgbotapi.Update) bool {
	if u.Message == nil || u.Message.Text == "" || strings.HasPrefix(u.Message.Text, "/") {
		return false
	}
	_, ok := filename.Match(u.Message.Text)
	return ok
}

func (m *mediaRequestMessage) Handle(ctx context.Context, u *tgbotapi.Update) {
	chatID := u.Message.Chat.ID

	req, ok := filename.Match(u.Message.Text)
	if !ok {
		return
	}

	result, err := m.media.Resolve(ctx, chatID, req)
	if err != nil {
		// Every failure reads the same to the user; only the logs tell a
		// dead network from scraping drift from a plain miss.
		switch {
		case errors.Is(err, domain.ErrNoResult):
			slog.InfoContext(ctx, "no result", "chatID", chatID, "baseName", req.BaseName)
		case errors.Is(err, domain.ErrParseFailed):
			slog.ErrorContext(ctx, "malformed search response", "chatID", chatID, "baseName", req.BaseName, logger.Err(err))
		default:
			slog.ErrorContext(ctx, "resolving media request", "chatID", chatID, "baseName", req.BaseName, logger.Err(err))
		}
		m.client.SendResponse(ctx, chatID, &domain.Response{
			Text: fmt.Sprintf("找不到 %s 的圖 😢", req.BaseName),
		})
		return
	}

	m.client.SendResponse(ctx, chatID, &domain.Response{Media: result})
}
