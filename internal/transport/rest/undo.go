package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
	"github.com/heartmarshall/dayflow-backend/internal/service/undo"
)

type undoService interface {
	DeleteTask(ctx context.Context, input undo.DeleteInput, opts ...undo.DeleteOption) (*undo.DeleteResult, error)
	DeleteHabit(ctx context.Context, input undo.DeleteInput, opts ...undo.DeleteOption) (*undo.DeleteResult, error)
	DeleteEvent(ctx context.Context, input undo.DeleteInput, opts ...undo.DeleteOption) (*undo.DeleteResult, error)
	DeleteTransaction(ctx context.Context, input undo.DeleteInput, opts ...undo.DeleteOption) (*undo.DeleteResult, error)
	Undo(ctx context.Context, key string) (*undo.UndoResult, error)
	ListPending(ctx context.Context) ([]undo.PendingUndo, error)
}

// habitStateCache drops cached completion state of a deleted habit.
type habitStateCache interface {
	Evict(habitID uuid.UUID)
}

type deleteFunc func(ctx context.Context, input undo.DeleteInput, opts ...undo.DeleteOption) (*undo.DeleteResult, error)

// UndoHandler serves reversible deletes and their undo.
type UndoHandler struct {
	svc    undoService
	habits habitStateCache
	log    *slog.Logger
}

// NewUndoHandler creates an UndoHandler. habits may be nil.
func NewUndoHandler(svc undoService, habits habitStateCache, logger *slog.Logger) *UndoHandler {
	return &UndoHandler{svc: svc, habits: habits, log: logger.With("handler", "undo")}
}

type deleteResponse struct {
	UndoKey   string    `json:"undo_key"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

type undoResponse struct {
	UndoKey    string  `json:"undo_key"`
	Kind       string  `json:"kind"`
	Restored   bool    `json:"restored"`
	RestoredID *string `json:"restored_id,omitempty"`
}

type pendingResponse struct {
	UndoKey   string    `json:"undo_key"`
	Kind      string    `json:"kind"`
	EntityID  string    `json:"entity_id"`
	Label     string    `json:"label"`
	ExpiresAt time.Time `json:"expires_at"`
}

type pendingListResponse struct {
	Items []pendingResponse `json:"items"`
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *UndoHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.svc.DeleteTask)
}

// DeleteHabit handles DELETE /api/v1/habits/{id}.
func (h *UndoHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	var opts []undo.DeleteOption
	if h.habits != nil {
		opts = append(opts, undo.WithOnDeleted(func(_ context.Context, snap domain.Snapshot) {
			h.habits.Evict(snap.EntityID())
		}))
	}
	h.delete(w, r, h.svc.DeleteHabit, opts...)
}

// DeleteEvent handles DELETE /api/v1/events/{id}.
func (h *UndoHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.svc.DeleteEvent)
}

// DeleteTransaction handles DELETE /api/v1/transactions/{id}.
func (h *UndoHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.svc.DeleteTransaction)
}

func (h *UndoHandler) delete(w http.ResponseWriter, r *http.Request, fn deleteFunc, opts ...undo.DeleteOption) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := fn(r.Context(), undo.DeleteInput{ID: id}, opts...)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{
		UndoKey:   res.Key,
		Kind:      res.Kind.String(),
		Message:   res.Message,
		ExpiresAt: res.ExpiresAt,
	})
}

// Undo handles POST /api/v1/undo/{key}. A key whose window has closed
// answers 200 with restored=false.
func (h *UndoHandler) Undo(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Undo(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := undoResponse{UndoKey: res.Key, Kind: res.Kind.String(), Restored: res.Restored}
	if res.Restored {
		id := res.RestoredID.String()
		resp.RestoredID = &id
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListPending handles GET /api/v1/undo.
func (h *UndoHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.svc.ListPending(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := pendingListResponse{Items: make([]pendingResponse, 0, len(pending))}
	for _, p := range pending {
		resp.Items = append(resp.Items, pendingResponse{
			UndoKey:   p.Key,
			Kind:      p.Kind.String(),
			EntityID:  p.EntityID.String(),
			Label:     p.Label,
			ExpiresAt: p.ExpiresAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
