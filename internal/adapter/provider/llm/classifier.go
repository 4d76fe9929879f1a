package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/familypa-backend/internal/config"
	"github.com/heartmarshall/familypa-backend/internal/domain"
)

// Classifier assigns a transcript to one of a family's categories using Claude.
type Classifier struct {
	client    anthropic.Client
	enabled   bool
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewClassifier creates a Classifier from the LLM settings.
// Without an API key every call returns an unclassified result.
func NewClassifier(cfg config.LLMConfig, logger *slog.Logger) *Classifier {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Classifier{
		client:    anthropic.NewClient(opts...),
		enabled:   cfg.APIKey != "",
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "llm"),
	}
}

// answer is the JSON object the model is asked to produce.
type answer struct {
	CategorySlug *string  `json:"category_slug"`
	Confidence   *float64 `json:"confidence"`
}

// Classify never fails: any provider or parse problem yields domain.Unclassified.
func (c *Classifier) Classify(ctx context.Context, transcript string, categories []domain.Category) domain.Classification {
	if len(categories) == 0 {
		return domain.Unclassified()
	}
	if !c.enabled {
		c.log.WarnContext(ctx, "llm classification skipped: no api key")
		return domain.Unclassified()
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	slugs := make([]string, 0, len(categories))
	for _, cat := range categories {
		slugs = append(slugs, cat.Slug)
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(transcript, categories))),
		},
	})
	if err != nil {
		c.log.WarnContext(ctx, "llm classification failed", slog.String("error", err.Error()))
		return domain.Unclassified()
	}
	if len(msg.Content) == 0 {
		c.log.WarnContext(ctx, "llm classification: empty response")
		return domain.Unclassified()
	}

	result, err := parseAnswer(msg.Content[0].Text, slugs)
	if err != nil {
		c.log.WarnContext(ctx, "llm classification: bad response", slog.String("error", err.Error()))
		return domain.Unclassified()
	}

	c.log.DebugContext(ctx, "llm classification",
		slog.Any("category_slug", result.CategorySlug),
		slog.Float64("confidence", result.Confidence),
	)

	return result
}

// parseAnswer validates the model output against the allowed slugs.
func parseAnswer(text string, slugs []string) (domain.Classification, error) {
	jsonStr, err := extractJSON(text)
	if err != nil {
		return domain.Unclassified(), err
	}

	var a answer
	if err := json.Unmarshal([]byte(jsonStr), &a); err != nil {
		return domain.Unclassified(), fmt.Errorf("decode json: %w", err)
	}
	if a.CategorySlug == nil {
		return domain.Unclassified(), nil
	}

	var confidence float64
	if a.Confidence != nil {
		confidence = *a.Confidence
	}

	return domain.NewClassification(strings.TrimSpace(*a.CategorySlug), confidence, slugs), nil
}

func buildPrompt(transcript string, categories []domain.Category) string {
	var b strings.Builder
	for _, cat := range domain.WithPaths(categories) {
		fmt.Fprintf(&b, "- %s (%s)\n", cat.Slug, cat.Path)
	}

	return fmt.Sprintf(`You sort messages from a family's shared to-do inbox into categories.

Available categories (slug and full path):
%s
Message:
%q

Pick the single best category for this message.

Output ONLY a valid JSON object matching this exact schema:
{"category_slug": "<one of the slugs above, or null>", "confidence": <number between 0 and 1>}

Rules:
- Use only slugs from the list above
- Use null and confidence 0 if no category fits
- Output ONLY the JSON, no markdown, no explanations`, b.String(), transcript)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
