package handler

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// isCommand matches a bot command exactly, case-sensitive, with an optional
// @botname suffix as sent in group chats.
func isCommand(u *tgbotapi.Update, name string) bool {
	if u.Message == nil {
		return false
	}
	text := u.Message.Text
	return text == "/"+name || strings.HasPrefix(text, "/"+name+"@")
}
