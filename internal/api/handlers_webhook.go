package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/vitalbridge/vitalbridge/internal/api/respond"
)

// WebhookHandler acknowledges provider push notifications. The gateway is
// pull-based: notifications are logged and acked so the provider does not
// retry, and the data itself is fetched on the next read.
type WebhookHandler struct{}

func NewWebhookHandler() *WebhookHandler { return &WebhookHandler{} }

// Receive handles POST /v1/webhook.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var in struct {
		EventType string `json:"eventType"`
		UserID    string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}

	log.Info().
		Str("event_type", in.EventType).
		Str("user_id", in.UserID).
		Msg("provider notification received")

	respond.WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
}
