package api

import (
	"github.com/gorilla/mux"

	"github.com/vitalbridge/vitalbridge/internal/api/recovery"
	"github.com/vitalbridge/vitalbridge/internal/provider"
	"github.com/vitalbridge/vitalbridge/internal/services"
	"github.com/vitalbridge/vitalbridge/internal/store"
)

// NewRouter wires all gateway routes to handlers.
func NewRouter(st store.Store, pv provider.Provider) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	// Profile
	profileSvc := services.NewProfileService(st, pv)
	profile := NewProfileHandler(profileSvc)
	root.HandleFunc("/v1/user/profile", profile.SubmitProfile).Methods("POST")
	root.HandleFunc("/v1/user/{userId}/timezone", profile.SetTimeZone).Methods("PUT")
	root.HandleFunc("/v1/user/{userId}/profile", profile.GetProfile).Methods("GET")

	// Health data
	snapshotSvc := services.NewSnapshotService(st, pv)
	snapshot := NewSnapshotHandler(snapshotSvc)
	root.HandleFunc("/v1/data/{category}/{userId}/summary", snapshot.GetSummary).Methods("GET")
	root.HandleFunc("/v1/data/{category}/{userId}/events/{subtype}", snapshot.GetEvents).Methods("GET")

	// Provider notifications
	webhook := NewWebhookHandler()
	root.HandleFunc("/v1/webhook", webhook.Receive).Methods("POST")

	// Health
	healthHandler := NewHealthHandler()
	root.HandleFunc("/v1/health", healthHandler.CheckHealth).Methods("GET")

	return root
}
