package handler

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/akira02/tg-jpg/pkg/domain"
	"github.com/akira02/tg-jpg/pkg/logger"
)

type disableMyGo struct {
	settings SettingsRepository
	client   TelegramClient
}

func NewDisableMyGo(settings SettingsRepository, client TelegramClient) *disableMyGo {
	return &disableMyGo{settings: settings, client: client}
}

func (*disableMyGo) CanHandle(u *tgbotapi.Update) bool {
	return isCommand(u, "disable_mygo")
}

func (d *disableMyGo) Handle(ctx context.Context, u *tgbotapi.Update) {
	chatID := u.Message.Chat.ID

	if err := d.settings.SetMyGoMode(ctx, chatID, false); err != nil {
		slog.ErrorContext(ctx, "disabling mygo mode", "chatID", chatID, logger.Err(err))
		d.client.SendResponse(ctx, chatID, &domain.Response{Text: "設定儲存失敗,請稍後再試 🙇"})
		return
	}

	d.client.SendResponse(ctx, chatID, &domain.Response{Text: "MyGo 模式已關閉,改用網路搜尋。"})
}
