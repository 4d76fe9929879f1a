package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/familypa-backend/internal/domain"
	"github.com/heartmarshall/familypa-backend/internal/service/task"
)

type taskService interface {
	List(ctx context.Context, input task.ListInput) (task.ListResult, error)
	Summary(ctx context.Context) (domain.TaskCounts, error)
	Create(ctx context.Context, input task.CreateInput) (domain.Task, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskHandler serves /api/tasks.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type taskResponse struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Description     *string     `json:"description"`
	Status          string      `json:"status"`
	CategoryID      *uuid.UUID  `json:"category_id"`
	Categories      []string    `json:"categories"`
	People          []uuid.UUID `json:"people"`
	DueAt           *time.Time  `json:"due_at"`
	ScheduledFor    *time.Time  `json:"scheduled_for"`
	HighRisk        bool        `json:"high_risk"`
	Source          string      `json:"source"`
	SourceMediaURL  *string     `json:"source_media_url"`
	Confidence      *float64    `json:"confidence"`
	AssigneeUserID  *uuid.UUID  `json:"assignee_user_id"`
	CreatedByUserID *uuid.UUID  `json:"created_by_user_id"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type taskListResponse struct {
	View        string         `json:"view"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tasks       []taskResponse `json:"tasks"`
}

type taskSummaryResponse struct {
	Inbox     int `json:"inbox"`
	Pending   int `json:"pending"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type createTaskRequest struct {
	Title          string      `json:"title"`
	Description    *string     `json:"description"`
	Status         *string     `json:"status"`
	Source         string      `json:"source"`
	CategoryID     *uuid.UUID  `json:"category_id"`
	SubcategoryID  *uuid.UUID  `json:"subcategory_id"`
	Categories     []string    `json:"categories"`
	People         []uuid.UUID `json:"people"`
	DueAt          *time.Time  `json:"due_at"`
	ScheduledFor   *time.Time  `json:"scheduled_for"`
	HighRisk       bool        `json:"high_risk"`
	AssigneeUserID *uuid.UUID  `json:"assignee_user_id"`
}

type patchTaskRequest struct {
	Title          optional[string]      `json:"title"`
	Description    optional[string]      `json:"description"`
	Status         optional[string]      `json:"status"`
	CategoryID     optional[uuid.UUID]   `json:"category_id"`
	Categories     optional[[]string]    `json:"categories"`
	People         optional[[]uuid.UUID] `json:"people"`
	DueAt          optional[time.Time]   `json:"due_at"`
	ScheduledFor   optional[time.Time]   `json:"scheduled_for"`
	HighRisk       optional[bool]        `json:"high_risk"`
	AssigneeUserID optional[uuid.UUID]   `json:"assignee_user_id"`
}

func (p patchTaskRequest) toPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:          p.Title.field(),
		Description:    p.Description.field(),
		Status:         mapOptional(p.Status, func(s string) domain.TaskStatus { return domain.TaskStatus(s) }),
		CategoryID:     p.CategoryID.field(),
		Categories:     p.Categories.field(),
		People:         p.People.field(),
		DueAt:          p.DueAt.field(),
		ScheduledFor:   p.ScheduledFor.field(),
		HighRisk:       p.HighRisk.field(),
		AssigneeUserID: p.AssigneeUserID.field(),
	}
}

// List handles GET /api/tasks?view&person_id&days_ahead&category_id&uncategorized.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := task.ListInput{
		View:          q.Get("view"),
		Uncategorized: q.Get("uncategorized") == "true",
	}

	var ok bool
	if input.PersonID, ok = queryUUID(w, q.Get("person_id"), "person_id"); !ok {
		return
	}
	if input.CategoryID, ok = queryUUID(w, q.Get("category_id"), "category_id"); !ok {
		return
	}
	if v := q.Get("days_ahead"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid days_ahead")
			return
		}
		input.DaysAhead = &n
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, taskListResponse{
		View:        result.Filter.Type.String(),
		Title:       result.Title,
		Description: result.Description,
		Tasks:       toTaskResponses(result.Tasks),
	})
}

// Summary handles GET /api/tasks/summary.
func (h *TaskHandler) Summary(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Summary(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, taskSummaryResponse{
		Inbox:     counts.Inbox,
		Pending:   counts.Pending,
		Scheduled: counts.Scheduled,
		Completed: counts.Completed,
		Total:     counts.Total,
	})
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), task.CreateInput{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Source:         domain.TaskSource(req.Source),
		CategoryID:     req.CategoryID,
		SubcategoryID:  req.SubcategoryID,
		Categories:     req.Categories,
		People:         req.People,
		DueAt:          req.DueAt,
		ScheduledFor:   req.ScheduledFor,
		HighRisk:       req.HighRisk,
		AssigneeUserID: req.AssigneeUserID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(created))
}

// Update handles PATCH /api/tasks/{id}. Only keys present in the body change.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req patchTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.toPatch())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(updated))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *TaskHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(w, r, h.log, err, "Task")
}

func queryUUID(w http.ResponseWriter, raw, name string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid "+name)
		return nil, false
	}
	return &id, true
}

func toTaskResponse(t domain.Task) taskResponse {
	categories := t.Categories
	if categories == nil {
		categories = []string{}
	}
	people := t.People
	if people == nil {
		people = []uuid.UUID{}
	}
	return taskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status.String(),
		CategoryID:      t.CategoryID,
		Categories:      categories,
		People:          people,
		DueAt:           t.DueAt,
		ScheduledFor:    t.ScheduledFor,
		HighRisk:        t.HighRisk,
		Source:          t.Source.String(),
		SourceMediaURL:  t.SourceMediaURL,
		Confidence:      t.Confidence,
		AssigneeUserID:  t.AssigneeUserID,
		CreatedByUserID: t.CreatedByUserID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func toTaskResponses(tasks []domain.Task) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}
