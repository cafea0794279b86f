package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/dayflow-backend/internal/transport/middleware"
)

// Handlers groups everything the router serves. Metrics may be nil.
type Handlers struct {
	Undo        *UndoHandler
	Habit       *HabitHandler
	Notice      *NoticeHandler
	Health      *HealthHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers all routes. routeMW run after route matching, so they
// can read the route template.
func NewRouter(h Handlers, routeMW ...middleware.Middleware) *mux.Router {
	r := mux.NewRouter()
	for _, mw := range routeMW {
		r.Use(mux.MiddlewareFunc(mw))
	}

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	if h.Metrics != nil {
		r.Handle(h.MetricsPath, h.Metrics).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/tasks/{id}", h.Undo.DeleteTask).Methods(http.MethodDelete)
	api.HandleFunc("/habits/{id}", h.Undo.DeleteHabit).Methods(http.MethodDelete)
	api.HandleFunc("/events/{id}", h.Undo.DeleteEvent).Methods(http.MethodDelete)
	api.HandleFunc("/transactions/{id}", h.Undo.DeleteTransaction).Methods(http.MethodDelete)
	api.HandleFunc("/undo", h.Undo.ListPending).Methods(http.MethodGet)
	api.HandleFunc("/undo/{key}", h.Undo.Undo).Methods(http.MethodPost)

	api.HandleFunc("/habits/{id}/logs/{date}", h.Habit.Completion).Methods(http.MethodGet)
	api.HandleFunc("/habits/{id}/logs/{date}", h.Habit.Toggle).Methods(http.MethodPost)

	api.HandleFunc("/notices", h.Notice.List).Methods(http.MethodGet)
	api.HandleFunc("/notices/{id}", h.Notice.Dismiss).Methods(http.MethodDelete)
	api.HandleFunc("/notices/{id}/action", h.Notice.RunAction).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
