package handler

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/akira02/tg-jpg/pkg/domain"
)

type showWelcomeMessage struct {
	client TelegramClient
}

func NewShowWelcomeMessage(client TelegramClient) *showWelcomeMessage {
	return &showWelcomeMessage{client: client}
}

func (*showWelcomeMessage) CanHandle(u *tgbotapi.Update) bool {
	return isCommand(u, "start")
}

func (s *showWelcomeMessage) Handle(ctx context.Context, u *tgbotapi.Update) {
	text := "👋 傳個檔名給我,我就去找圖!\n\n" +
		"📷 `example.jpg` / `example.png` — 找一張圖片\n" +
		"🎞 `example.gif` — 找一張動圖\n\n" +
		"指令:\n" +
		"/enable\\_mygo — 開啟 MyGo 模式(優先使用本地素材)\n" +
		"/disable\\_mygo — 關閉 MyGo 模式\n" +
		"/status — 查看目前設定"

	s.client.SendResponse(ctx, u.Message.Chat.ID, &domain.Response{Text: text})
}
