package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
	"github.com/heartmarshall/familypa-backend/internal/provider"
)

// Result is the outcome of handling one message.
type Result struct {
	Reply     string
	Duplicate bool
	Task      *domain.Task
}

// Handle runs a message through the intake pipeline. Upstream failures
// degrade to a warning reply; an error is returned only for failures the
// sender cannot act on, such as an unknown phone number or a storage outage.
func (s *Service) Handle(ctx context.Context, msg Message) (Result, error) {
	familyID, err := s.families.FamilyIDByPhone(ctx, domain.NormalizePhone(msg.From))
	if err != nil {
		return Result{}, fmt.Errorf("resolve family by phone: %w", err)
	}

	log := s.log.With(
		slog.String("family_id", familyID.String()),
		slog.String("message_sid", msg.MessageSID),
	)

	inbound, err := s.messages.CreateInboundMessage(ctx, domain.InboundMessage{
		Provider:          domain.ProviderWhatsApp,
		ProviderMessageID: msg.MessageSID,
		FamilyID:          familyID,
		FromPhone:         domain.NormalizePhone(msg.From),
		Body:              msg.body(),
		MediaURL:          optional(msg.MediaURL),
		MediaContentType:  optional(msg.MediaContentType),
		RawPayload:        msg.Raw,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		log.InfoContext(ctx, "duplicate delivery skipped")
		return Result{Reply: ReplyDuplicate, Duplicate: true}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("record inbound message: %w", err)
	}

	text, mediaURL, warning := s.extractText(ctx, log, msg)
	if warning != "" {
		return Result{Reply: warning}, nil
	}

	if err := s.messages.CreateTranscription(ctx, domain.VoiceTranscription{
		MessageID:  inbound.ID,
		FamilyID:   familyID,
		MediaURL:   mediaURL,
		Transcript: text,
	}); err != nil {
		log.WarnContext(ctx, "transcription audit write failed", slog.String("error", err.Error()))
	}

	categories, err := s.categories.ListVisible(ctx, familyID)
	if err != nil {
		log.WarnContext(ctx, "load categories for classification", slog.String("error", err.Error()))
		categories = nil
	}
	classification := s.classifier.Classify(ctx, text, categories)

	category := s.resolveCategory(ctx, log, familyID, classification)

	t := domain.Task{
		FamilyID:       familyID,
		Title:          text,
		Status:         domain.TaskStatusInbox,
		Categories:     []string{},
		Source:         domain.TaskSourceVoice,
		SourceMediaURL: mediaURL,
		Confidence:     &classification.Confidence,
	}
	if category != nil {
		t.CategoryID = &category.ID
		if path := domain.CategoryPath(categories, category.ID); path != "" {
			t.Categories = []string{path}
		}
	}

	created, err := s.tasks.Create(ctx, t)
	if err != nil {
		return Result{}, fmt.Errorf("create task: %w", err)
	}

	log.InfoContext(ctx, "voice task created",
		slog.String("task_id", created.ID.String()),
		slog.Float64("confidence", classification.Confidence),
		slog.Bool("categorized", category != nil),
	)

	reply := ReplyUncategorized
	if category != nil {
		reply = replyCreated(category.Name)
	}
	return Result{Reply: reply, Task: &created}, nil
}

// extractText returns the task text and the stored media reference, or a
// warning reply when the message yields no usable text.
func (s *Service) extractText(ctx context.Context, log *slog.Logger, msg Message) (string, *string, string) {
	if !msg.HasAudio() {
		if body := msg.body(); body != nil {
			return *body, nil, ""
		}
		return "", nil, ReplyEmpty
	}

	m, err := s.media.Download(ctx, msg.MediaURL)
	switch {
	case errors.Is(err, provider.ErrMediaTooLarge):
		log.WarnContext(ctx, "voice note too large", slog.String("error", err.Error()))
		return "", nil, ReplyMediaTooLarge
	case errors.Is(err, provider.ErrUnsupportedMedia):
		log.WarnContext(ctx, "unsupported media", slog.String("error", err.Error()))
		return "", nil, ReplyUnsupportedMedia
	case err != nil:
		log.WarnContext(ctx, "media download failed", slog.String("error", err.Error()))
		return "", nil, ReplyMediaUnavailable
	}

	text, err := s.transcriber.Transcribe(ctx, m.Data, m.ContentType)
	if err != nil {
		log.WarnContext(ctx, "transcription failed", slog.String("error", err.Error()))
		return "", nil, ReplyTranscriptionFail
	}
	if text == "" {
		return "", nil, ReplyEmpty
	}

	url := msg.MediaURL
	return text, &url, ""
}

// resolveCategory maps a confident classification to a category the family
// can see. Any miss leaves the task uncategorized.
func (s *Service) resolveCategory(
	ctx context.Context,
	log *slog.Logger,
	familyID uuid.UUID,
	c domain.Classification,
) *domain.Category {
	if c.CategorySlug == nil || c.Confidence < s.threshold {
		return nil
	}

	category, err := s.categories.GetBySlug(ctx, familyID, *c.CategorySlug)
	if err != nil {
		log.WarnContext(ctx, "classified category not resolved",
			slog.String("slug", *c.CategorySlug),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &category
}
