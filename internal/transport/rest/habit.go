package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
	"github.com/heartmarshall/dayflow-backend/internal/service/habit"
)

type habitService interface {
	CompletionStatus(ctx context.Context, input habit.CompletionInput) (*habit.CompletionState, error)
	ToggleCompletion(ctx context.Context, input habit.CompletionInput) (*habit.CompletionState, error)
	StartToggleCompletion(ctx context.Context, input habit.CompletionInput) (*habit.CompletionState, error)
}

// HabitHandler serves per-day habit completion.
type HabitHandler struct {
	svc habitService
	log *slog.Logger
}

// NewHabitHandler creates a HabitHandler.
func NewHabitHandler(svc habitService, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{svc: svc, log: logger.With("handler", "habit")}
}

type completionResponse struct {
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Syncing   bool   `json:"syncing"`
}

// Completion handles GET /api/v1/habits/{id}/logs/{date}.
func (h *HabitHandler) Completion(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, http.StatusOK, h.svc.CompletionStatus)
}

// Toggle handles POST /api/v1/habits/{id}/logs/{date}.
// With ?async=true it answers 202 once the new state is visible and leaves
// the write running.
func (h *HabitHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	async, err := parseBoolQuery(r, "async")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if async {
		h.serve(w, r, http.StatusAccepted, h.svc.StartToggleCompletion)
		return
	}
	h.serve(w, r, http.StatusOK, h.svc.ToggleCompletion)
}

func (h *HabitHandler) serve(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	fn func(context.Context, habit.CompletionInput) (*habit.CompletionState, error),
) {
	input, err := parseCompletionInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	state, err := fn(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, status, completionResponse{
		HabitID:   state.HabitID.String(),
		Date:      state.Date.Format(dateLayout),
		Completed: state.Completed,
		Syncing:   state.Syncing,
	})
}

func parseCompletionInput(r *http.Request) (habit.CompletionInput, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return habit.CompletionInput{}, err
	}
	date, err := time.Parse(dateLayout, mux.Vars(r)["date"])
	if err != nil {
		return habit.CompletionInput{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return habit.CompletionInput{HabitID: id, Date: date}, nil
}

func parseBoolQuery(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(name, "must be a boolean")
	}
	return v, nil
}
