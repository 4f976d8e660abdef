package handler

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/akira02/tg-jpg/pkg/domain"
	"github.com/akira02/tg-jpg/pkg/logger"
)

type enableMyGo struct {
	settings SettingsRepository
	client   TelegramClient
}

func NewEnableMyGo(settings SettingsRepository, client TelegramClient) *enableMyGo {
	return &enableMyGo{settings: settings, client: client}
}

func (*enableMyGo) CanHandle(u *tgbotapi.Update) bool {
	return isCommand(u, "enable_mygo")
}

func (e *enableMyGo) Handle(ctx context.Context, u *tgbotapi.Update) {
	chatID := u.Message.Chat.ID

	// The confirmation only goes out after the write is durable. If saving
	// failed the setting did not take, and the user must hear that.
	if err := e.settings.SetMyGoMode(ctx, chatID, true); err != nil {
		slog.ErrorContext(ctx, "enabling mygo mode", "chatID", chatID, logger.Err(err))
		e.client.SendResponse(ctx, chatID, &domain.Response{Text: "設定儲存失敗,請稍後再試 🙇"})
		return
	}

	e.client.SendResponse(ctx, chatID, &domain.Response{Text: "🎸 MyGo 模式已開啟!優先使用本地素材。"})
}
