package assets

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arbovm/levenshtein"

	"github.com/akira02/tg-jpg/pkg/domain"
)

// Finder serves media files from a fixed, read-only asset directory.
type Finder struct {
	dir string
}

func NewFinder(dir string) *Finder {
	return &Finder{dir: dir}
}

// Resolve looks up an asset whose stem equals baseName, case-insensitively,
// with an extension belonging to kind. The walk order is lexical, so the
// lookup is deterministic. A miss is (_, false), never an error; base names
// that could escape the asset directory are treated as a miss too.
func (f *Finder) Resolve(baseName string, kind domain.MediaKind) (string, bool) {
	if !safeBaseName(baseName) {
		return "", false
	}

	var found string
	_ = filepath.WalkDir(f.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		stem, ext := splitName(d.Name())
		if !extIn(ext, kind.Extensions()) {
			return nil
		}
		if strings.EqualFold(stem, baseName) {
			found = path
			return fs.SkipAll
		}
		return nil
	})

	return found, found != ""
}

// Match is a fuzzy hit from the asset pool, higher score is better. Rel is
// the slash-separated path relative to the pool root, for building public
// URLs.
type Match struct {
	Path  string
	Rel   string
	Kind  domain.MediaKind
	Score int
}

// FindMatches ranks every asset against free-form query text. Used by inline
// queries, where the input is not filename-shaped. Results are sorted by
// score, ties broken by path for stable output.
func (f *Finder) FindMatches(query string) []Match {
	text := normalize(query)
	if text == "" {
		return nil
	}

	var matches []Match
	_ = filepath.WalkDir(f.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		stem, ext := splitName(d.Name())
		kind, ok := kindForExt(ext)
		if !ok {
			return nil
		}
		if score := scoreMatch(text, normalize(stem)); score > 0 {
			rel, relErr := filepath.Rel(f.dir, path)
			if relErr != nil {
				rel = d.Name()
			}
			matches = append(matches, Match{
				Path:  path,
				Rel:   filepath.ToSlash(rel),
				Kind:  kind,
				Score: score,
			})
		}
		return nil
	})

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Path < matches[j].Path
	})

	return matches
}

// scoreMatch rates how well a normalized asset stem fits the query text.
// Stems shorter than three runes only count on an exact match, otherwise
// one-word assets like "a.png" would fire on almost anything.
func scoreMatch(text, stem string) int {
	if stem == "" {
		return 0
	}

	if utf8.RuneCountInString(stem) < 3 {
		if text == stem {
			return 2000
		}
		return 0
	}

	if strings.Contains(text, stem) {
		return 1000 + len(stem)
	}
	if strings.Contains(stem, text) {
		return 900 + len(text)
	}

	stemWords := strings.Fields(stem)
	textWords := strings.Fields(text)

	matched := 0
	for _, sw := range stemWords {
		for _, tw := range textWords {
			if sw == tw || strings.Contains(tw, sw) || strings.Contains(sw, tw) ||
				levenshtein.Distance(sw, tw) <= 1 {
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return 0
	}

	return matched * 100 / len(stemWords)
}

// normalize lowercases and strips everything but letters, digits and spaces,
// collapsing runs of whitespace.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func safeBaseName(baseName string) bool {
	if baseName == "" {
		return false
	}
	if strings.ContainsAny(baseName, `/\`) {
		return false
	}
	if strings.Contains(baseName, "..") {
		return false
	}
	return true
}

func splitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	stem = strings.TrimSuffix(name, ext)
	return stem, strings.ToLower(strings.TrimPrefix(ext, "."))
}

func extIn(ext string, exts []string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func kindForExt(ext string) (domain.MediaKind, bool) {
	switch ext {
	case "jpg", "jpeg", "png":
		return domain.KindPhoto, true
	case "gif":
		return domain.KindAnimation, true
	default:
		return 0, false
	}
}
