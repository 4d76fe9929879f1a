package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
	"github.com/heartmarshall/familypa-backend/internal/service/diagnostics"
)

type diagnosticsService interface {
	Categories(ctx context.Context) (diagnostics.Report, error)
}

// DebugHandler serves /api/debug.
type DebugHandler struct {
	svc diagnosticsService
	log *slog.Logger
}

// NewDebugHandler creates a DebugHandler.
func NewDebugHandler(svc diagnosticsService, logger *slog.Logger) *DebugHandler {
	return &DebugHandler{svc: svc, log: logger.With("handler", "debug")}
}

type categorySetResponse struct {
	Count int                `json:"count"`
	Items []categoryResponse `json:"items"`
}

type orphanResponse struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type categoryReportResponse struct {
	UserID           uuid.UUID           `json:"user_id"`
	FamilyID         uuid.UUID           `json:"family_id"`
	Family           categorySetResponse `json:"family_categories"`
	System           categorySetResponse `json:"system_categories"`
	Orphaned         []orphanResponse    `json:"orphaned"`
	TopLevelCount    int                 `json:"top_level_count"`
	SubcategoryCount int                 `json:"subcategory_count"`
}

// Categories handles GET /api/debug/categories. System categories are
// sampled, family categories are listed in full.
func (h *DebugHandler) Categories(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Categories(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err, "Category")
		return
	}

	orphans := make([]orphanResponse, len(report.Orphaned))
	for i, c := range report.Orphaned {
		orphans[i] = orphanResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, ParentID: c.ParentID}
	}

	writeJSON(w, http.StatusOK, categoryReportResponse{
		UserID:           report.UserID,
		FamilyID:         report.FamilyID,
		Family:           categorySet(report.FamilyCount, report.FamilyCategories),
		System:           categorySet(report.SystemCount, report.SystemSample),
		Orphaned:         orphans,
		TopLevelCount:    report.TopLevelCount,
		SubcategoryCount: report.SubcategoryCount,
	})
}

func categorySet(count int, items []domain.CategoryWithPath) categorySetResponse {
	out := make([]categoryResponse, len(items))
	for i, c := range items {
		out[i] = toCategoryResponse(c)
	}
	return categorySetResponse{Count: count, Items: out}
}
