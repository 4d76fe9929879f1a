package provider

import (
	"errors"
	"mime"
	"strings"
)

var (
	// ErrNotConfigured is returned by a provider whose credentials are missing.
	ErrNotConfigured = errors.New("provider: not configured")
	// ErrMediaTooLarge is returned when an attachment exceeds the size cap.
	ErrMediaTooLarge = errors.New("provider: attachment too large")
	// ErrUnsupportedMedia is returned when an attachment is not audio.
	ErrUnsupportedMedia = errors.New("provider: unsupported content type")
)

// Media is a downloaded message attachment.
type Media struct {
	Data        []byte
	ContentType string
}

// IsAudio reports whether a MIME type denotes audio.
func IsAudio(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "audio/")
}
