package google

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/antchfx/htmlquery"

	"github.com/akira02/tg-jpg/pkg/domain"
)

const maxCandidates = 10

var (
	// Mobile Safari pages embed results as JSON triples: ["https://…", w, h].
	jsonImageRe = regexp.MustCompile(`\["(https?://[^"]+\.(?:jpg|jpeg|png|gif)[^"]*)"\s*,\s*\d+\s*,\s*\d+\]`)

	// Fallback: any quoted image URL anywhere in the document.
	quotedURLRe = regexp.MustCompile(`"(https?://[^"]+\.(?:jpg|jpeg|png|gif)[^"]*)"`)
)

// extractImageURLs pulls candidate media URLs out of a results page, trying
// three strategies in order: the JSON result triples, plain quoted URLs, and
// finally the result <img> nodes themselves. Returns an empty slice when the
// page is well-formed but has no qualifying URL.
func extractImageURLs(page []byte) ([]string, error) {
	html := string(page)
	if !strings.Contains(strings.ToLower(html), "<html") {
		return nil, fmt.Errorf("%w: response is not an html document", domain.ErrParseFailed)
	}

	urls := collectRegex(jsonImageRe, html)
	if len(urls) == 0 {
		urls = collectRegex(quotedURLRe, html)
	}
	if len(urls) == 0 {
		var err error
		urls, err = collectImgNodes(page)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrParseFailed, err)
		}
	}

	return urls, nil
}

func collectRegex(re *regexp.Regexp, html string) []string {
	var urls []string
	for _, m := range re.FindAllStringSubmatch(html, -1) {
		if len(urls) >= maxCandidates {
			break
		}
		if u := m[1]; !isGoogleAsset(u) {
			urls = append(urls, unescape(u))
		}
	}
	return urls
}

// collectImgNodes walks the DOM for result thumbnails. Inline data URIs are
// kept as-is; they carry the image bytes themselves.
func collectImgNodes(page []byte) ([]string, error) {
	doc, err := htmlquery.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, node := range htmlquery.Find(doc, "//img") {
		if len(urls) >= maxCandidates {
			break
		}
		if htmlquery.SelectAttr(node, "alt") == "Google" {
			continue
		}
		src := htmlquery.SelectAttr(node, "src")
		if src == "" {
			src = htmlquery.SelectAttr(node, "data-src")
		}
		switch {
		case src == "":
		case strings.HasPrefix(src, "data:image/"):
			urls = append(urls, src)
		case strings.HasPrefix(src, "http") && !isGoogleAsset(src):
			urls = append(urls, unescape(src))
		}
	}
	return urls, nil
}

// isGoogleAsset filters thumbnails and Google's own chrome.
func isGoogleAsset(u string) bool {
	return strings.Contains(u, "encrypted-tbn") ||
		strings.Contains(u, "gstatic") ||
		strings.Contains(u, "googlelogo")
}

// unescape decodes the unicode escapes embedded script blocks leave in URLs.
func unescape(u string) string {
	u = strings.ReplaceAll(u, `\u0026`, "&")
	return strings.ReplaceAll(u, `\u003d`, "=")
}
