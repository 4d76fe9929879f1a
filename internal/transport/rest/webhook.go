package rest

import (
	"context"
	"crypto/subtle"
	"encoding/xml"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/familypa-backend/internal/config"
	"github.com/heartmarshall/familypa-backend/internal/service/intake"
)

type intakeService interface {
	Handle(ctx context.Context, msg intake.Message) (intake.Result, error)
}

// WebhookHandler receives messages from the WhatsApp provider.
type WebhookHandler struct {
	svc          intakeService
	verifyToken  string
	sharedSecret string
	log          *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(svc intakeService, cfg config.WebhookConfig, logger *slog.Logger) *WebhookHandler {
	verifyToken := ""
	if cfg.VerificationEnabled() {
		verifyToken = cfg.VerifyToken
	}
	return &WebhookHandler{
		svc:          svc,
		verifyToken:  verifyToken,
		sharedSecret: cfg.SharedSecret,
		log:          logger.With("handler", "webhook"),
	}
}

// twiml is the provider's markup reply format.
type twiml struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// Verify handles GET /whatsapp-webhook, the provider's subscription handshake.
func (h *WebhookHandler) Verify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if h.verifyToken == "" || q.Get("hub.mode") != "subscribe" || !secretEqual(q.Get("hub.verify_token"), h.verifyToken) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(q.Get("hub.challenge"))) //nolint:errcheck
}

// Receive handles POST /whatsapp-webhook. Everything past request validation
// is answered with 200 and a TwiML message.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !secretEqual(r.URL.Query().Get("secret"), h.sharedSecret) {
		h.log.WarnContext(ctx, "webhook secret mismatch")
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}

	msg := messageFromForm(r)
	if msg.MessageSID == "" || msg.From == "" {
		writeError(w, http.StatusBadRequest, "MessageSid and From are required")
		return
	}

	result, err := h.svc.Handle(ctx, msg)
	if err != nil {
		h.log.ErrorContext(ctx, "webhook processing failed",
			slog.String("message_sid", msg.MessageSID),
			slog.String("error", err.Error()),
		)
		writeTwiML(w, intake.ReplyError)
		return
	}

	writeTwiML(w, result.Reply)
}

func messageFromForm(r *http.Request) intake.Message {
	raw := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		raw[k] = r.PostForm.Get(k)
	}

	numMedia, _ := strconv.Atoi(r.PostForm.Get("NumMedia"))
	return intake.Message{
		MessageSID:       r.PostForm.Get("MessageSid"),
		From:             r.PostForm.Get("From"),
		Body:             r.PostForm.Get("Body"),
		NumMedia:         numMedia,
		MediaURL:         r.PostForm.Get("MediaUrl0"),
		MediaContentType: r.PostForm.Get("MediaContentType0"),
		Raw:              raw,
	}
}

func writeTwiML(w http.ResponseWriter, message string) {
	out, err := xml.Marshal(twiml{Message: message})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header)) //nolint:errcheck
	w.Write(out)                //nolint:errcheck
}

func secretEqual(got, want string) bool {
	return want != "" && subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
