package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// queueSizer reports how many deletes are still restorable.
type queueSizer interface {
	Size() int
}

// HealthHandler serves liveness, readiness and full health endpoints.
type HealthHandler struct {
	db      dbPinger
	queue   queueSizer
	clock   clockwork.Clock
	version string
}

// NewHealthHandler creates a HealthHandler. queue may be nil.
func NewHealthHandler(db dbPinger, queue queueSizer, clock clockwork.Clock, version string) *HealthHandler {
	return &HealthHandler{db: db, queue: queue, clock: clock, version: version}
}

// HealthResponse is the JSON body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Pending *int   `json:"pending,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now()})
}

// Ready answers 200 when the database responds, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.clock.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now()})
}

// Health reports database latency, the undo queue size and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus, 2)
	status := http.StatusOK
	overall := "ok"

	latency, err := h.ping(r.Context())
	if err != nil {
		components["database"] = CompStatus{Status: "down"}
		status = http.StatusServiceUnavailable
		overall = "down"
	} else {
		components["database"] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	if h.queue != nil {
		n := h.queue.Size()
		components["undo_queue"] = CompStatus{Status: "ok", Pending: &n}
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.clock.Now(),
	})
}

func (h *HealthHandler) ping(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := h.clock.Now()
	err := h.db.Ping(ctx)
	return h.clock.Since(start), err
}
