package filename

import (
	"testing"

	"github.com/akira02/tg-jpg/pkg/domain"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		text     string
		wantBase string
		wantKind domain.MediaKind
		wantOK   bool
	}{
		{"example.jpg", "example", domain.KindPhoto, true},
		{"example.jpeg", "example", domain.KindPhoto, true},
		{"example.png", "example", domain.KindPhoto, true},
		{"mic_drop.gif", "mic_drop", domain.KindAnimation, true},
		{"check out mic_drop.gif please", "mic_drop", domain.KindAnimation, true},
		{"Example.JPG", "Example", domain.KindPhoto, true},
		{"dancing.GIF", "dancing", domain.KindAnimation, true},
		{"first.png then second.gif", "first", domain.KindPhoto, true},
		{"version.1.2.jpg", "version.1.2", domain.KindPhoto, true},
		{"hello there", "", 0, false},
		{"", "", 0, false},
		{"no extension.", "", 0, false},
		{"wrong.txt", "", 0, false},
		{"truncated.jpgx", "", 0, false},
		{". jpg", "", 0, false},
		{"dot.jpg.", "dot", domain.KindPhoto, true},
	}

	for _, tt := range tests {
		req, ok := Match(tt.text)
		if ok != tt.wantOK {
			t.Errorf("Match(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if req.BaseName != tt.wantBase || req.Kind != tt.wantKind {
			t.Errorf("Match(%q) = (%q, %v), want (%q, %v)",
				tt.text, req.BaseName, req.Kind, tt.wantBase, tt.wantKind)
		}
	}
}

func TestMatchKeepsOriginalCase(t *testing.T) {
	req, ok := Match("MyGo_Anon.PNG")
	if !ok {
		t.Fatal("expected a match")
	}
	if req.BaseName != "MyGo_Anon" {
		t.Errorf("BaseName = %q, want original case preserved", req.BaseName)
	}
}
