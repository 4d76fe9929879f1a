package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProviderWhatsApp is the provider key of messages delivered by the WhatsApp webhook.
const ProviderWhatsApp = "whatsapp"

// InboundMessage is the audit and idempotency record of a delivered message.
// (Provider, ProviderMessageID) is unique.
type InboundMessage struct {
	ID                uuid.UUID
	Provider          string
	ProviderMessageID string
	FamilyID          uuid.UUID
	FromPhone         string
	Body              *string
	MediaURL          *string
	MediaContentType  *string
	RawPayload        map[string]string
	ReceivedAt        time.Time
}

// VoiceTranscription stores the text extracted from an inbound message.
type VoiceTranscription struct {
	ID         uuid.UUID
	MessageID  uuid.UUID
	FamilyID   uuid.UUID
	MediaURL   *string
	Transcript string
	CreatedAt  time.Time
}

// Classification is the validated outcome of categorizing a transcript.
// A nil CategorySlug always comes with zero confidence.
type Classification struct {
	CategorySlug *string
	Confidence   float64
}

// Unclassified is the fallback used whenever classification cannot produce a result.
func Unclassified() Classification {
	return Classification{}
}

// NewClassification validates a raw model answer against the allowed slugs.
// A confidence outside [0,1] becomes 0; an unknown or empty slug discards
// the suggestion entirely.
func NewClassification(slug string, confidence float64, allowed []string) Classification {
	if !IsValidConfidence(confidence) {
		confidence = 0
	}
	for _, s := range allowed {
		if s == slug && slug != "" {
			return Classification{CategorySlug: &slug, Confidence: confidence}
		}
	}
	return Unclassified()
}
