package filename

import (
	"regexp"
	"strings"

	"github.com/akira02/tg-jpg/pkg/domain"
)

// tokenRe matches a filename-shaped token: a name without whitespace or path
// separators, a dot, and one of the known media extensions.
var tokenRe = regexp.MustCompile(`(?i)([^\s/\\]+)\.(jpe?g|png|gif)\b`)

// Match extracts a media request from message text. The leftmost qualifying
// token wins. ok is false for ordinary conversation; that is not an error,
// the message is simply not a media request.
func Match(text string) (domain.MediaRequest, bool) {
	m := tokenRe.FindStringSubmatch(text)
	if m == nil {
		return domain.MediaRequest{}, false
	}

	req := domain.MediaRequest{BaseName: m[1], Kind: domain.KindPhoto}
	if strings.EqualFold(m[2], "gif") {
		req.Kind = domain.KindAnimation
	}
	return req, true
}
