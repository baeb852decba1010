package handler

import (
	"net/http"
	"strconv"

	"github.com/vayura/oxygen-calculator/internal/api/response"
	"github.com/vayura/oxygen-calculator/internal/history"
)

// maxHistoryLimit caps the page size of history queries.
const maxHistoryLimit = 200

// HistoryHandler handles calculation history endpoints.
type HistoryHandler struct {
	history *history.Service
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(hist *history.Service) *HistoryHandler {
	return &HistoryHandler{history: hist}
}

// historyResponse wraps the record list.
type historyResponse struct {
	Items []*history.Record `json:"items"`
}

// ListCalculations handles GET /calculations - recent calculations,
// optionally filtered by ?district= and capped by ?limit=.
func (h *HistoryHandler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	district := r.URL.Query().Get("district")

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxHistoryLimit {
			response.BadRequest(w, r, "limit must be an integer between 1 and 200", nil)
			return
		}
		limit = parsed
	}

	records, err := h.history.ListRecent(r.Context(), district, limit)
	if err != nil {
		response.ServiceUnavailable(w, r, "calculation history is temporarily unavailable")
		return
	}

	if records == nil {
		records = []*history.Record{}
	}
	response.JSON(w, r, http.StatusOK, historyResponse{Items: records})
}
