package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
)

type noticeFeed interface {
	Active(userID uuid.UUID) []domain.Notice
	Dismiss(userID, noticeID uuid.UUID) bool
	RunAction(ctx context.Context, userID, noticeID uuid.UUID) (bool, error)
}

// NoticeHandler serves the caller's active notices.
type NoticeHandler struct {
	feed noticeFeed
	log  *slog.Logger
}

// NewNoticeHandler creates a NoticeHandler.
func NewNoticeHandler(feed noticeFeed, logger *slog.Logger) *NoticeHandler {
	return &NoticeHandler{feed: feed, log: logger.With("handler", "notice")}
}

type noticeResponse struct {
	ID        string          `json:"id"`
	Level     string          `json:"level"`
	Message   string          `json:"message"`
	ShownAt   time.Time       `json:"shown_at"`
	ExpiresAt time.Time       `json:"expires_at"`
	Action    *actionResponse `json:"action,omitempty"`
}

type actionResponse struct {
	Label   string `json:"label"`
	UndoKey string `json:"undo_key,omitempty"`
}

type noticeListResponse struct {
	Items []noticeResponse `json:"items"`
}

// List handles GET /api/v1/notices.
func (h *NoticeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	notices := h.feed.Active(userID)
	resp := noticeListResponse{Items: make([]noticeResponse, 0, len(notices))}
	for _, n := range notices {
		item := noticeResponse{
			ID:        n.ID.String(),
			Level:     n.Level.String(),
			Message:   n.Message,
			ShownAt:   n.ShownAt,
			ExpiresAt: n.ExpiresAt(),
		}
		if n.Action != nil {
			item.Action = &actionResponse{Label: n.Action.Label, UndoKey: n.Action.UndoKey}
		}
		resp.Items = append(resp.Items, item)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Dismiss handles DELETE /api/v1/notices/{id}.
func (h *NoticeHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	userID, noticeID, err := h.target(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if !h.feed.Dismiss(userID, noticeID) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type actionResultResponse struct {
	Restored bool `json:"restored"`
}

// RunAction handles POST /api/v1/notices/{id}/action.
func (h *NoticeHandler) RunAction(w http.ResponseWriter, r *http.Request) {
	userID, noticeID, err := h.target(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	restored, err := h.feed.RunAction(r.Context(), userID, noticeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, actionResultResponse{Restored: restored})
}

func (h *NoticeHandler) target(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	userID, err := requireUser(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	noticeID, err := pathUUID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, noticeID, nil
}
