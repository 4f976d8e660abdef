package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akira02/tg-jpg/pkg/domain"
)

func TestFetchReturnsBody(t *testing.T) {
	var gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	f := New(5*time.Second, "zh-TW")
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(body) != "<html>ok</html>" {
		t.Errorf("Fetch() body = %q", body)
	}
	if gotUA != userAgent {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if gotLang != "zh-TW,en-US;q=0.8,en;q=0.7" {
		t.Errorf("Accept-Language = %q", gotLang)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(5*time.Second, "").Fetch(context.Background(), srv.URL)
	if !errors.Is(err, domain.ErrFetchFailed) {
		t.Errorf("Fetch() error = %v, want ErrFetchFailed", err)
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := New(time.Second, "").Fetch(context.Background(), srv.URL)
	if !errors.Is(err, domain.ErrFetchFailed) {
		t.Errorf("Fetch() error = %v, want ErrFetchFailed", err)
	}
}
