package rest

import (
	"net/http"

	"github.com/heartmarshall/familypa-backend/internal/transport/middleware"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Tasks      *TaskHandler
	Categories *CategoryHandler
	People     *PersonHandler
	Debug      *DebugHandler
	Webhook    *WebhookHandler
}

// NewRouter mounts every route. /api routes require an authenticated user;
// the webhook authenticates with its shared secret and is wrapped in limit.
func NewRouter(h Handlers, limit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("GET /api/tasks", user(h.Tasks.List))
	mux.Handle("GET /api/tasks/summary", user(h.Tasks.Summary))
	mux.Handle("POST /api/tasks", user(h.Tasks.Create))
	mux.Handle("PATCH /api/tasks/{id}", user(h.Tasks.Update))
	mux.Handle("DELETE /api/tasks/{id}", user(h.Tasks.Delete))

	mux.Handle("GET /api/categories", user(h.Categories.List))
	mux.Handle("GET /api/categories/tree", user(h.Categories.Tree))
	mux.Handle("GET /api/categories/{slug}", user(h.Categories.GetBySlug))
	mux.Handle("POST /api/categories", user(h.Categories.Create))

	mux.Handle("GET /api/people", user(h.People.List))
	mux.Handle("POST /api/people", user(h.People.Create))
	mux.Handle("PATCH /api/people/{id}", user(h.People.Update))
	mux.Handle("DELETE /api/people/{id}", user(h.People.Delete))

	mux.Handle("GET /api/debug/categories", user(h.Debug.Categories))

	mux.Handle("GET /whatsapp-webhook", limit(http.HandlerFunc(h.Webhook.Verify)))
	mux.Handle("POST /whatsapp-webhook", limit(http.HandlerFunc(h.Webhook.Receive)))

	return mux
}

func user(fn http.HandlerFunc) http.Handler {
	return middleware.RequireUser(fn)
}
