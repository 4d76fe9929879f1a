package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/familypa-backend/internal/config"
	"github.com/heartmarshall/familypa-backend/internal/provider"
)

// Fetcher downloads message attachments from the messaging provider's media host.
type Fetcher struct {
	username   string
	password   string
	maxBytes   int64
	httpClient *http.Client
	log        *slog.Logger
}

// NewFetcher creates a Fetcher from the media settings.
func NewFetcher(cfg config.MediaConfig, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		username:   cfg.Username,
		password:   cfg.Password,
		maxBytes:   cfg.MaxBytes,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "media"),
	}
}

// Download fetches an audio attachment, enforcing the size cap both on the
// declared Content-Length and on the bytes actually read.
func (f *Fetcher) Download(ctx context.Context, url string) (*provider.Media, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("media: create request: %w", err)
	}
	if f.username != "" && f.password != "" {
		req.SetBasicAuth(f.username, f.password)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media: unexpected status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !provider.IsAudio(contentType) {
		return nil, fmt.Errorf("%w: %q", provider.ErrUnsupportedMedia, contentType)
	}

	if resp.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", provider.ErrMediaTooLarge, resp.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("media: read body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", provider.ErrMediaTooLarge, f.maxBytes)
	}

	f.log.DebugContext(ctx, "media downloaded",
		slog.Int("bytes", len(data)),
		slog.String("content_type", contentType),
	)

	return &provider.Media{Data: data, ContentType: contentType}, nil
}
