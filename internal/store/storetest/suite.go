package storetest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/vitalbridge/vitalbridge/internal/model"
	"github.com/vitalbridge/vitalbridge/internal/store"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Unique test identifiers
	userID := "u-" + uuid.New().String()

	// Profiles: Get on a missing row reports ErrNotFound
	if _, err := s.Profiles().Get(ctx, userID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get missing profile: want ErrNotFound, got %v", err)
	}

	// First write creates the row
	p1, err := s.Profiles().Upsert(ctx, &model.UserProfile{
		UserID:   userID,
		HeightCm: intPtr(180),
		Sex:      strPtr("male"),
	})
	if err != nil {
		t.Fatalf("Upsert create: %v", err)
	}
	if p1.HeightCm == nil || *p1.HeightCm != 180 || p1.Sex == nil || *p1.Sex != "male" {
		t.Fatalf("Upsert create: got %+v", p1)
	}
	if p1.CreationTime.IsZero() || p1.UpdateTime.IsZero() {
		t.Fatalf("Upsert create: timestamps not assigned: %+v", p1)
	}

	// Partial update merges field-wise: absent fields keep stored values
	p2, err := s.Profiles().Upsert(ctx, &model.UserProfile{
		UserID:   userID,
		WeightKg: f64Ptr(75),
	})
	if err != nil {
		t.Fatalf("Upsert merge: %v", err)
	}
	if p2.HeightCm == nil || *p2.HeightCm != 180 {
		t.Fatalf("merge erased height_cm: %+v", p2)
	}
	if p2.Sex == nil || *p2.Sex != "male" {
		t.Fatalf("merge erased sex: %+v", p2)
	}
	if p2.WeightKg == nil || *p2.WeightKg != 75 {
		t.Fatalf("merge did not apply weight_kg: %+v", p2)
	}

	// Explicit new values do overwrite
	p3, err := s.Profiles().Upsert(ctx, &model.UserProfile{
		UserID:   userID,
		HeightCm: intPtr(181),
	})
	if err != nil {
		t.Fatalf("Upsert overwrite: %v", err)
	}
	if p3.HeightCm == nil || *p3.HeightCm != 181 {
		t.Fatalf("explicit value not applied: %+v", p3)
	}

	// Timezone fields merge under the same rule
	p4, err := s.Profiles().Upsert(ctx, &model.UserProfile{
		UserID:    userID,
		TimeZone:  strPtr("America/Chicago"),
		UTCOffset: strPtr("-06:00"),
	})
	if err != nil {
		t.Fatalf("Upsert timezone: %v", err)
	}
	if p4.TimeZone == nil || *p4.TimeZone != "America/Chicago" || p4.WeightKg == nil {
		t.Fatalf("timezone merge wrong: %+v", p4)
	}

	// Snapshots: miss reports ErrNotFound
	if _, err := s.Snapshots().Find(ctx, userID, "sleep_summary", "2024-06-01"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Find missing snapshot: want ErrNotFound, got %v", err)
	}

	payload := json.RawMessage(`{"score":82,"stages":{"deep":95,"rem":110}}`)
	snap, err := s.Snapshots().Create(ctx, &model.HealthSnapshot{
		UserID:   userID,
		DataType: "sleep_summary",
		Date:     "2024-06-01",
		Data:     payload,
	})
	if err != nil {
		t.Fatalf("Create snapshot: %v", err)
	}
	if snap.SnapshotID == "" || snap.FetchedAt.IsZero() {
		t.Fatalf("Create snapshot: identity not assigned: %+v", snap)
	}

	got, err := s.Snapshots().Find(ctx, userID, "sleep_summary", "2024-06-01")
	if err != nil {
		t.Fatalf("Find snapshot: %v", err)
	}
	if string(got.Data) != string(payload) {
		t.Fatalf("snapshot payload mutated: want %s, got %s", payload, got.Data)
	}

	// The composite key is unique: a duplicate create loses with ErrConflict
	_, err = s.Snapshots().Create(ctx, &model.HealthSnapshot{
		UserID:   userID,
		DataType: "sleep_summary",
		Date:     "2024-06-01",
		Data:     json.RawMessage(`{"score":1}`),
	})
	if !errors.Is(err, model.ErrConflict) {
		t.Fatalf("duplicate create: want ErrConflict, got %v", err)
	}
	if again, err := s.Snapshots().Find(ctx, userID, "sleep_summary", "2024-06-01"); err != nil || string(again.Data) != string(payload) {
		t.Fatalf("duplicate create must not touch existing row: %s err=%v", again.Data, err)
	}

	// Different data_type or date is an independent key
	if _, err := s.Snapshots().Create(ctx, &model.HealthSnapshot{
		UserID:   userID,
		DataType: "physical_steps",
		Date:     "2024-06-01",
		Data:     json.RawMessage(`{"steps":10421}`),
	}); err != nil {
		t.Fatalf("Create sibling data_type: %v", err)
	}
	if _, err := s.Snapshots().Create(ctx, &model.HealthSnapshot{
		UserID:   userID,
		DataType: "sleep_summary",
		Date:     "2024-06-02",
		Data:     json.RawMessage(`{"score":79}`),
	}); err != nil {
		t.Fatalf("Create sibling date: %v", err)
	}
}
