package handler

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/akira02/tg-jpg/pkg/domain"
)

const maxInlineResults = 10

// inlineQuery answers @botname queries with fuzzy matches from the local
// asset pool. Telegram requires inline media to be public URLs, so results
// point at the configured public mirror of the asset directory.
type inlineQuery struct {
	matcher  AssetMatcher
	answerer InlineAnswerer
	baseURL  string
}

func NewInlineQuery(matcher AssetMatcher, answerer InlineAnswerer, baseURL string) *inlineQuery {
	return &inlineQuery{
		matcher:  matcher,
		answerer: answerer,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}
}

func (*inlineQuery) CanHandle(u *tgbotapi.Update) bool {
	return u.InlineQuery != nil
}

func (i *inlineQuery) Handle(ctx context.Context, u *tgbotapi.Update) {
	query := u.InlineQuery.Query

	var results []interface{}
	if strings.TrimSpace(query) != "" {
		matches := i.matcher.FindMatches(query)
		if len(matches) > maxInlineResults {
			matches = matches[:maxInlineResults]
		}
		slog.InfoContext(ctx, "answering inline query", "query", query, "matches", len(matches))

		for _, m := range matches {
			assetURL := i.baseURL + "/" + escapePath(m.Rel)
			id := uuid.NewString()
			if m.Kind == domain.KindAnimation {
				gif := tgbotapi.NewInlineQueryResultGIF(id, assetURL)
				gif.ThumbURL = assetURL
				results = append(results, gif)
			} else {
				photo := tgbotapi.NewInlineQueryResultPhoto(id, assetURL)
				photo.ThumbURL = assetURL
				results = append(results, photo)
			}
		}
	}

	i.answerer.AnswerInlineQuery(ctx, tgbotapi.InlineConfig{
		InlineQueryID: u.InlineQuery.ID,
		Results:       results,
		CacheTime:     60,
	})
}

func escapePath(rel string) string {
	segments := strings.Split(rel, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
