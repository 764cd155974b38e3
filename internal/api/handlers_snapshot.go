package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vitalbridge/vitalbridge/internal/api/respond"
	"github.com/vitalbridge/vitalbridge/internal/services"
)

type SnapshotHandler struct {
	svc *services.SnapshotService
}

func NewSnapshotHandler(svc *services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{svc: svc}
}

// GetSummary handles GET /v1/data/{category}/{userId}/summary?date=.
func (h *SnapshotHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := r.URL.Query().Get("date")
	respond.WriteOutcome(w, h.svc.GetSnapshot(r.Context(), vars["userId"], vars["category"], "", date))
}

// GetEvents handles GET /v1/data/{category}/{userId}/events/{subtype}?date=.
func (h *SnapshotHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := r.URL.Query().Get("date")
	respond.WriteOutcome(w, h.svc.GetSnapshot(r.Context(), vars["userId"], vars["category"], vars["subtype"], date))
}
