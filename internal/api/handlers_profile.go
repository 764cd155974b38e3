package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vitalbridge/vitalbridge/internal/api/respond"
	"github.com/vitalbridge/vitalbridge/internal/model"
	"github.com/vitalbridge/vitalbridge/internal/services"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler { return &ProfileHandler{svc: svc} }

// SubmitProfile handles POST /v1/user/profile. The body is a partial
// profile; omitted fields keep their stored values.
func (h *ProfileHandler) SubmitProfile(w http.ResponseWriter, r *http.Request) {
	var in model.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	respond.WriteOutcome(w, h.svc.SubmitProfile(r.Context(), &in))
}

// SetTimeZone handles PUT /v1/user/{userId}/timezone.
func (h *ProfileHandler) SetTimeZone(w http.ResponseWriter, r *http.Request) {
	var in struct {
		TimeZone  string `json:"timeZone"`
		UTCOffset string `json:"utcOffset,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	userID := mux.Vars(r)["userId"]
	respond.WriteOutcome(w, h.svc.SetTimeZone(r.Context(), userID, in.TimeZone, in.UTCOffset))
}

// GetProfile handles GET /v1/user/{userId}/profile. An optional date query
// parameter scopes the read to a day and forces an upstream fetch.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	date := r.URL.Query().Get("date")
	respond.WriteOutcome(w, h.svc.GetProfile(r.Context(), userID, date))
}
