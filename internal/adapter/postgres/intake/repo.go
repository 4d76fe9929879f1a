// Package intake stores the audit trail of inbound messages using PostgreSQL.
// The unique (provider, provider_message_id) constraint is the idempotency guard.
package intake

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/familypa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// Repo provides inbound message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new intake repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type messageRow struct {
	ID         uuid.UUID `db:"id"`
	ReceivedAt time.Time `db:"received_at"`
}

// CreateInboundMessage records a delivered message. A redelivery of the same
// provider message yields domain.ErrAlreadyExists.
func (r *Repo) CreateInboundMessage(ctx context.Context, m domain.InboundMessage) (domain.InboundMessage, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	payload := m.RawPayload
	if payload == nil {
		payload = map[string]string{}
	}

	q := postgres.Builder().
		Insert("inbound_messages").
		Columns("id", "provider", "provider_message_id", "family_id", "from_phone",
			"body", "media_url", "media_content_type", "raw_payload").
		Values(m.ID, m.Provider, m.ProviderMessageID, m.FamilyID, m.FromPhone,
			m.Body, m.MediaURL, m.MediaContentType, payload).
		Suffix("RETURNING id, received_at")

	var rw messageRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, q); err != nil {
		return domain.InboundMessage{}, postgres.MapError(err, "inbound_message", m.ProviderMessageID)
	}
	m.ID = rw.ID
	m.ReceivedAt = rw.ReceivedAt
	return m, nil
}

// CreateTranscription stores the text extracted from a message.
func (r *Repo) CreateTranscription(ctx context.Context, v domain.VoiceTranscription) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	q := postgres.Builder().
		Insert("voice_transcriptions").
		Columns("id", "message_id", "family_id", "media_url", "transcript").
		Values(v.ID, v.MessageID, v.FamilyID, v.MediaURL, v.Transcript)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "voice_transcription", v.ID)
	}
	return nil
}
