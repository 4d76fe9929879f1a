package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
	"github.com/heartmarshall/familypa-backend/internal/service/person"
)

type personService interface {
	List(ctx context.Context) ([]domain.Person, error)
	Create(ctx context.Context, input person.CreateInput) (domain.Person, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.PersonPatch) (domain.Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PersonHandler serves /api/people.
type PersonHandler struct {
	svc personService
	log *slog.Logger
}

// NewPersonHandler creates a PersonHandler.
func NewPersonHandler(svc personService, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{svc: svc, log: logger.With("handler", "person")}
}

type personResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Group     string    `json:"group"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type createPersonRequest struct {
	Name  string  `json:"name"`
	Group *string `json:"group"`
	Notes *string `json:"notes"`
}

type patchPersonRequest struct {
	Name  optional[string] `json:"name"`
	Group optional[string] `json:"group"`
	Notes optional[string] `json:"notes"`
}

// List handles GET /api/people.
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]personResponse, len(people))
	for i, p := range people {
		out[i] = toPersonResponse(p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"people": out})
}

// Create handles POST /api/people.
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPersonRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), person.CreateInput{
		Name:  req.Name,
		Group: req.Group,
		Notes: req.Notes,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPersonResponse(created))
}

// Update handles PATCH /api/people/{id}.
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req patchPersonRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, domain.PersonPatch{
		Name:  req.Name.field(),
		Group: mapOptional(req.Group, func(s string) domain.PersonGroup { return domain.PersonGroup(s) }),
		Notes: req.Notes.field(),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPersonResponse(updated))
}

// Delete handles DELETE /api/people/{id}.
func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *PersonHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(w, r, h.log, err, "Person")
}

func toPersonResponse(p domain.Person) personResponse {
	return personResponse{
		ID:        p.ID,
		Name:      p.Name,
		Group:     p.Group.String(),
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
