package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
	"github.com/heartmarshall/familypa-backend/internal/service/category"
)

type categoryService interface {
	List(ctx context.Context) ([]domain.CategoryWithPath, error)
	Tree(ctx context.Context) ([]*domain.CategoryTreeNode, error)
	GetBySlug(ctx context.Context, slug string) (domain.CategoryWithPath, error)
	Create(ctx context.Context, input category.CreateInput) (domain.CategoryWithPath, error)
}

// CategoryHandler serves /api/categories.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type categoryResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Path          string     `json:"path"`
	Level         int        `json:"level"`
	ParentID      *uuid.UUID `json:"parent_id"`
	SortOrder     int        `json:"sort_order"`
	DefaultStatus *string    `json:"default_status"`
	IsSystem      bool       `json:"is_system"`
	CreatedAt     time.Time  `json:"created_at"`
}

type categoryTreeResponse struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	Slug          string                 `json:"slug"`
	Level         int                    `json:"level"`
	SortOrder     int                    `json:"sort_order"`
	DefaultStatus *string                `json:"default_status"`
	IsSystem      bool                   `json:"is_system"`
	Children      []categoryTreeResponse `json:"children"`
}

type createCategoryRequest struct {
	Path          string  `json:"path"`
	ParentPath    *string `json:"parent_path"`
	SortOrder     int     `json:"sort_order"`
	DefaultStatus *string `json:"default_status"`
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = toCategoryResponse(c)
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

// Tree handles GET /api/categories/tree.
func (h *CategoryHandler) Tree(w http.ResponseWriter, r *http.Request) {
	roots, err := h.svc.Tree(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": toTreeResponses(roots)})
}

// GetBySlug handles GET /api/categories/{slug}.
func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), category.CreateInput{
		Path:          req.Path,
		ParentPath:    req.ParentPath,
		SortOrder:     req.SortOrder,
		DefaultStatus: req.DefaultStatus,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(created))
}

func (h *CategoryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, category.ErrDuplicatePath) {
		writeError(w, http.StatusConflict, "Category with this path already exists")
		return
	}
	writeServiceError(w, r, h.log, err, "Category")
}

func statusString(s *domain.TaskStatus) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}

func toCategoryResponse(c domain.CategoryWithPath) categoryResponse {
	return categoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Path:          c.Path,
		Level:         c.Level,
		ParentID:      c.ParentID,
		SortOrder:     c.SortOrder,
		DefaultStatus: statusString(c.DefaultStatus),
		IsSystem:      c.FamilyID == nil,
		CreatedAt:     c.CreatedAt,
	}
}

func toTreeResponses(nodes []*domain.CategoryTreeNode) []categoryTreeResponse {
	out := make([]categoryTreeResponse, len(nodes))
	for i, n := range nodes {
		out[i] = categoryTreeResponse{
			ID:            n.ID,
			Name:          n.Name,
			Slug:          n.Slug,
			Level:         n.Level,
			SortOrder:     n.SortOrder,
			DefaultStatus: statusString(n.DefaultStatus),
			IsSystem:      n.FamilyID == nil,
			Children:      toTreeResponses(n.Children),
		}
	}
	return out
}
