package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akira02/tg-jpg/pkg/domain"
)

func newTestFinder(t *testing.T, names ...string) *Finder {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte{0xFF}, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return NewFinder(dir)
}

func TestResolve(t *testing.T) {
	f := newTestFinder(t, "anon_tokyo.jpg", "dance.gif", "nested/soyorin.png")

	tests := []struct {
		baseName string
		kind     domain.MediaKind
		wantHit  bool
		wantFile string
	}{
		{"anon_tokyo", domain.KindPhoto, true, "anon_tokyo.jpg"},
		{"ANON_TOKYO", domain.KindPhoto, true, "anon_tokyo.jpg"},
		{"soyorin", domain.KindPhoto, true, "soyorin.png"},
		{"dance", domain.KindAnimation, true, "dance.gif"},
		{"dance", domain.KindPhoto, false, ""},
		{"anon_tokyo", domain.KindAnimation, false, ""},
		{"missing", domain.KindPhoto, false, ""},
	}

	for _, tt := range tests {
		path, ok := f.Resolve(tt.baseName, tt.kind)
		if ok != tt.wantHit {
			t.Errorf("Resolve(%q, %v) hit = %v, want %v", tt.baseName, tt.kind, ok, tt.wantHit)
			continue
		}
		if ok && filepath.Base(path) != tt.wantFile {
			t.Errorf("Resolve(%q, %v) = %q, want file %q", tt.baseName, tt.kind, path, tt.wantFile)
		}
	}
}

func TestResolveRejectsTraversal(t *testing.T) {
	f := newTestFinder(t, "safe.jpg")

	for _, baseName := range []string{"../etc/passwd", "..", "a/b", `a\b`, ""} {
		if _, ok := f.Resolve(baseName, domain.KindPhoto); ok {
			t.Errorf("Resolve(%q) resolved a path outside the asset pool", baseName)
		}
	}
}

func TestResolveMissingDir(t *testing.T) {
	f := NewFinder(filepath.Join(t.TempDir(), "nope"))

	if _, ok := f.Resolve("anything", domain.KindPhoto); ok {
		t.Error("Resolve() reported a hit for a missing asset directory")
	}
}

func TestFindMatchesRanking(t *testing.T) {
	f := newTestFinder(t, "mic_drop.gif", "mic.png", "party_parrot.gif")

	matches := f.FindMatches("mic drop")
	if len(matches) == 0 {
		t.Fatal("FindMatches() found nothing")
	}
	if filepath.Base(matches[0].Path) != "mic_drop.gif" {
		t.Errorf("best match = %q, want mic_drop.gif", matches[0].Path)
	}
	for _, m := range matches {
		if filepath.Base(m.Path) == "party_parrot.gif" {
			t.Error("unrelated asset matched the query")
		}
	}
}

func TestFindMatchesShortStemsNeedExactMatch(t *testing.T) {
	f := newTestFinder(t, "ok.png")

	if got := f.FindMatches("looking for something"); len(got) != 0 {
		t.Errorf("short stem matched loosely: %v", got)
	}
	got := f.FindMatches("ok")
	if len(got) != 1 || got[0].Score != 2000 {
		t.Errorf("exact short-stem match = %v, want single score-2000 hit", got)
	}
}

func TestFindMatchesToleratesTypos(t *testing.T) {
	f := newTestFinder(t, "keyboard_warrior.jpg")

	if got := f.FindMatches("keybord warrior"); len(got) != 1 {
		t.Errorf("one-edit typo did not match: %v", got)
	}
}

func TestFindMatchesEmptyQuery(t *testing.T) {
	f := newTestFinder(t, "anything.jpg")

	if got := f.FindMatches("   "); got != nil {
		t.Errorf("FindMatches(blank) = %v, want nil", got)
	}
}
