package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/akira02/tg-jpg/pkg/domain"
)

type SettingsRepository interface {
	GetMyGoMode(ctx context.Context, chatID int64) (bool, error)
}

type AssetFinder interface {
	Resolve(baseName string, kind domain.MediaKind) (string, bool)
}

type ImageSearcher interface {
	Search(ctx context.Context, baseName string, kind domain.MediaKind) ([]string, error)
}

type MediaDownloader interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type mediaService struct {
	settings   SettingsRepository
	assets     AssetFinder
	searcher   ImageSearcher
	downloader MediaDownloader
}

func NewMediaService(
	settings SettingsRepository,
	assets AssetFinder,
	searcher ImageSearcher,
	downloader MediaDownloader,
) *mediaService {
	return &mediaService{
		settings:   settings,
		assets:     assets,
		searcher:   searcher,
		downloader: downloader,
	}
}

// Resolve maps a media request to something sendable. With MyGo mode on the
// local pool is consulted first and search is the fallback; with it off the
// pool is never touched. Each message gets exactly one resolution attempt.
func (s *mediaService) Resolve(ctx context.Context, chatID int64, req domain.MediaRequest) (*domain.MediaResult, error) {
	myGo, err := s.settings.GetMyGoMode(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("reading mygo mode: %w", err)
	}

	if myGo {
		if assetPath, ok := s.assets.Resolve(req.BaseName, req.Kind); ok {
			slog.InfoContext(ctx, "resolved from local assets", "baseName", req.BaseName, "path", assetPath)
			return &domain.MediaResult{
				Source: domain.SourceLocalAsset,
				Kind:   req.Kind,
				Path:   assetPath,
				Name:   filepath.Base(assetPath),
			}, nil
		}
		slog.InfoContext(ctx, "no local asset, falling back to search", "baseName", req.BaseName)
	}

	urls, err := s.searcher.Search(ctx, req.BaseName, req.Kind)
	if err != nil {
		return nil, err
	}

	// First qualifying result wins, no reachability check.
	return s.toResult(ctx, req, urls[0])
}

func (s *mediaService) toResult(ctx context.Context, req domain.MediaRequest, raw string) (*domain.MediaResult, error) {
	result := &domain.MediaResult{
		Source: domain.SourceRemoteSearch,
		Kind:   req.Kind,
		Name:   req.BaseName + "." + req.Kind.Extensions()[0],
	}

	switch {
	case strings.HasPrefix(raw, "data:image/"):
		data, err := decodeDataURI(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding inline image: %v", domain.ErrParseFailed, err)
		}
		result.Data = data

	case isImgurURL(raw):
		// Telegram refuses to fetch hotlinked imgur media, so download the
		// bytes and upload them ourselves.
		slog.InfoContext(ctx, "downloading imgur media", "url", raw)
		data, err := s.downloader.Fetch(ctx, raw)
		if err != nil {
			return nil, err
		}
		result.Data = data
		result.Name = path.Base(strings.SplitN(raw, "?", 2)[0])

	default:
		result.URL = raw
	}

	return result, nil
}

func decodeDataURI(uri string) ([]byte, error) {
	_, payload, found := strings.Cut(uri, ",")
	if !found {
		return nil, fmt.Errorf("data uri has no payload")
	}
	return base64.StdEncoding.DecodeString(payload)
}

func isImgurURL(u string) bool {
	return strings.Contains(u, "imgur.com")
}
