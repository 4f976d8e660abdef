package handler

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/akira02/tg-jpg/pkg/assets"
	"github.com/akira02/tg-jpg/pkg/domain"
)

type TelegramClient interface {
	SendResponse(ctx context.Context, chatID int64, response *domain.Response)
}

type SettingsRepository interface {
	GetMyGoMode(ctx context.Context, chatID int64) (bool, error)
	SetMyGoMode(ctx context.Context, chatID int64, enabled bool) error
}

type MediaService interface {
	Resolve(ctx context.Context, chatID int64, req domain.MediaRequest) (*domain.MediaResult, error)
}

type AssetMatcher interface {
	FindMatches(query string) []assets.Match
}

type InlineAnswerer interface {
	AnswerInlineQuery(ctx context.Context, config tgbotapi.InlineConfig)
}
