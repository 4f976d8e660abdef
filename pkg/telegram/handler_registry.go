package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Handler interface {
	CanHandle(update *tgbotapi.Update) bool
	Handle(ctx context.Context, update *tgbotapi.Update)
}

type Registry struct {
	handlers []Handler
}

func NewRegistry(handlers ...Handler) *Registry {
	return &Registry{handlers: handlers}
}

// HandleUpdate dispatches to the first handler that claims the update.
// Updates nobody claims are ordinary conversation; the bot stays silent.
func (r *Registry) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	for _, handler := range r.handlers {
		if handler.CanHandle(update) {
			slog.InfoContext(ctx, "calling handler", "handler", fmt.Sprintf("%T", handler))

			handler.Handle(ctx, update)
			return
		}
	}
	slog.DebugContext(ctx, "no handler claimed update, ignoring")
}
