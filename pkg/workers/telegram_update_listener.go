package workers

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/akira02/tg-jpg/pkg/logger"
)

type Handler interface {
	HandleUpdate(ctx context.Context, update *tgbotapi.Update)
}

type TelegramClient interface {
	GetUpdates() tgbotapi.UpdatesChannel
}

type telegramUpdateListener struct {
	client  TelegramClient
	handler Handler
	wg      sync.WaitGroup
}

func NewTelegramUpdateListener(client TelegramClient, handler Handler) *telegramUpdateListener {
	return &telegramUpdateListener{
		client:  client,
		handler: handler,
	}
}

func (t *telegramUpdateListener) Name() string { return "telegram_update_listener" }

// Start consumes the long-poll channel, dispatching every update on its own
// goroutine so a slow search never stalls other chats. In-flight updates are
// drained before shutdown completes.
func (t *telegramUpdateListener) Start(ctx context.Context) error {
	slog.Info("starting worker", "name", t.Name())
	defer slog.Info("worker stopped", "name", t.Name())

	updates := t.client.GetUpdates()

	for {
		select {
		case <-ctx.Done():
			t.wg.Wait()
			return nil
		case update, ok := <-updates:
			if !ok {
				t.wg.Wait()
				return nil
			}
			t.wg.Add(1)
			go func(update tgbotapi.Update) {
				defer t.wg.Done()
				t.processUpdate(ctx, &update)
			}(update)
		}
	}
}

func (t *telegramUpdateListener) processUpdate(ctx context.Context, update *tgbotapi.Update) {
	ctx = logger.ContextWithRequestID(ctx, int64(update.UpdateID))

	// A panicking handler loses its own message, never the process.
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "recovered from panic in update handler", "panic", r)
		}
	}()

	switch {
	case update.Message != nil:
		slog.InfoContext(ctx, "processing message", "chatID", update.Message.Chat.ID)
	case update.InlineQuery != nil:
		slog.InfoContext(ctx, "processing inline query", "queryID", update.InlineQuery.ID)
	default:
		slog.WarnContext(ctx, "received unknown update type")
		return
	}

	t.handler.HandleUpdate(ctx, update)
}
