package render

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday"
)

var tagRe = regexp.MustCompile(`</?([a-zA-Z0-9]+)(?:\s[^>]*)?/?>`)

// ToHTML renders markdown into the HTML subset Telegram accepts. Tags
// Telegram does not know are rewritten to something it does, or dropped.
func ToHTML(markdown string) string {
	html := string(blackfriday.MarkdownCommon([]byte(markdown)))

	out := tagRe.ReplaceAllStringFunc(html, func(tag string) string {
		name := strings.ToLower(tagRe.FindStringSubmatch(tag)[1])
		closing := strings.HasPrefix(tag, "</")

		switch name {
		case "b", "strong", "i", "em", "u", "s", "code", "pre", "a":
			return tag
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if closing {
				return "</b>\n"
			}
			return "<b>"
		case "li":
			if closing {
				return "\n"
			}
			return "• "
		case "p":
			if closing {
				return "\n"
			}
			return ""
		case "br":
			return "\n"
		default:
			return ""
		}
	})

	return strings.TrimSpace(out)
}
