package handler

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/akira02/tg-jpg/pkg/domain"
	"github.com/akira02/tg-jpg/pkg/logger"
)

type showStatus struct {
	settings SettingsRepository
	client   TelegramClient
}

func NewShowStatus(settings SettingsRepository, client TelegramClient) *showStatus {
	return &showStatus{settings: settings, client: client}
}

func (*showStatus) CanHandle(u *tgbotapi.Update) bool {
	return isCommand(u, "status")
}

func (s *showStatus) Handle(ctx context.Context, u *tgbotapi.Update) {
	chatID := u.Message.Chat.ID

	enabled, err := s.settings.GetMyGoMode(ctx, chatID)
	if err != nil {
		slog.ErrorContext(ctx, "reading mygo mode", "chatID", chatID, logger.Err(err))
		s.client.SendResponse(ctx, chatID, &domain.Response{Text: "讀取設定失敗,請稍後再試 🙇"})
		return
	}

	text := "MyGo 模式:關閉 ❌"
	if enabled {
		text = "MyGo 模式:開啟 ✅"
	}
	s.client.SendResponse(ctx, chatID, &domain.Response{Text: text})
}
