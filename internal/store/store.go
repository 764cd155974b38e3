package store

import (
	"context"

	"github.com/vitalbridge/vitalbridge/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
type Store interface {
	Profiles() Profiles
	Snapshots() Snapshots
}

// Profiles holds one durable record per user.
type Profiles interface {
	// Get returns the stored profile or model.ErrNotFound.
	Get(ctx context.Context, userID string) (*model.UserProfile, error)
	// Upsert merges the non-nil fields of patch into the stored row,
	// creating it on first write. Nil fields never overwrite stored values.
	Upsert(ctx context.Context, patch *model.UserProfile) (*model.UserProfile, error)
}

// Snapshots is the append-only cache of upstream health payloads.
// The (user_id, data_type, date) tuple is enforced unique.
type Snapshots interface {
	// Find returns the cached snapshot for the key or model.ErrNotFound.
	Find(ctx context.Context, userID, dataType, date string) (*model.HealthSnapshot, error)
	// Create inserts a new snapshot. A duplicate key returns
	// model.ErrConflict and leaves the existing row untouched.
	Create(ctx context.Context, snap *model.HealthSnapshot) (*model.HealthSnapshot, error)
}
