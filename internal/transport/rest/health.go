package rest

import (
	"context"
	"net/http"
	"time"
)

const healthProbeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// Integration is an outbound provider listed by /health. Leaving one
// unconfigured turns the matching intake step into a no-op, so it shows
// as "disabled" without failing the check.
type Integration struct {
	Name       string
	Configured bool
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	db           dbPinger
	version      string
	integrations []Integration
	now          func() time.Time
}

func NewHealthHandler(db dbPinger, version string, integrations ...Integration) *HealthHandler {
	return &HealthHandler{db: db, version: version, integrations: integrations, now: time.Now}
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]componentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type componentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// pingDB reports the database component and whether it is reachable.
func (h *HealthHandler) pingDB(ctx context.Context) (componentStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	start := h.now()
	if err := h.db.Ping(ctx); err != nil {
		return componentStatus{Status: "down"}, false
	}
	return componentStatus{Status: "ok", Latency: h.now().Sub(start).String()}, true
}

func (h *HealthHandler) respond(w http.ResponseWriter, up bool, resp healthResponse) {
	resp.Status, resp.Timestamp = "ok", h.now()
	code := http.StatusOK
	if !up {
		resp.Status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

// Live always answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.respond(w, true, healthResponse{})
}

// Ready answers 503 until the database is reachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, up := h.pingDB(r.Context())
	h.respond(w, up, healthResponse{})
}

// Health reports every component along with the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db, up := h.pingDB(r.Context())

	components := map[string]componentStatus{"database": db}
	for _, in := range h.integrations {
		state := "disabled"
		if in.Configured {
			state = "configured"
		}
		components[in.Name] = componentStatus{Status: state}
	}

	h.respond(w, up, healthResponse{Version: h.version, Components: components})
}
