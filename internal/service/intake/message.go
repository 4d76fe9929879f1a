package intake

import (
	"strings"

	"github.com/heartmarshall/familypa-backend/internal/provider"
)

// Message is one inbound delivery from the messaging provider.
type Message struct {
	MessageSID       string
	From             string
	Body             string
	NumMedia         int
	MediaURL         string
	MediaContentType string
	Raw              map[string]string
}

// HasAudio reports whether the message carries an audio attachment.
func (m Message) HasAudio() bool {
	return m.NumMedia > 0 && m.MediaURL != "" && provider.IsAudio(m.MediaContentType)
}

func (m Message) body() *string {
	b := strings.TrimSpace(m.Body)
	if b == "" {
		return nil
	}
	return &b
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
