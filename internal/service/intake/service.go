package intake

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
	"github.com/heartmarshall/familypa-backend/internal/provider"
)

type familyRepo interface {
	FamilyIDByPhone(ctx context.Context, phone string) (uuid.UUID, error)
}

type messageRepo interface {
	CreateInboundMessage(ctx context.Context, m domain.InboundMessage) (domain.InboundMessage, error)
	CreateTranscription(ctx context.Context, v domain.VoiceTranscription) error
}

type categoryRepo interface {
	ListVisible(ctx context.Context, familyID uuid.UUID) ([]domain.Category, error)
	GetBySlug(ctx context.Context, familyID uuid.UUID, slug string) (domain.Category, error)
}

type taskRepo interface {
	Create(ctx context.Context, t domain.Task) (domain.Task, error)
}

type mediaFetcher interface {
	Download(ctx context.Context, url string) (*provider.Media, error)
}

type transcriber interface {
	Transcribe(ctx context.Context, audio []byte, contentType string) (string, error)
}

type classifier interface {
	Classify(ctx context.Context, transcript string, categories []domain.Category) domain.Classification
}

// Deps bundles the collaborators of the intake pipeline.
type Deps struct {
	Families    familyRepo
	Messages    messageRepo
	Categories  categoryRepo
	Tasks       taskRepo
	Media       mediaFetcher
	Transcriber transcriber
	Classifier  classifier
}

// Service turns inbound messages into inbox tasks.
type Service struct {
	families    familyRepo
	messages    messageRepo
	categories  categoryRepo
	tasks       taskRepo
	media       mediaFetcher
	transcriber transcriber
	classifier  classifier
	threshold   float64
	log         *slog.Logger
}

// NewService creates a new intake Service. A category is attached to the
// created task only when the classification confidence reaches threshold.
func NewService(log *slog.Logger, deps Deps, threshold float64) *Service {
	return &Service{
		families:    deps.Families,
		messages:    deps.Messages,
		categories:  deps.Categories,
		tasks:       deps.Tasks,
		media:       deps.Media,
		transcriber: deps.Transcriber,
		classifier:  deps.Classifier,
		threshold:   threshold,
		log:         log.With("service", "intake"),
	}
}
