package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	sqlite3 "modernc.org/sqlite"

	"github.com/vitalbridge/vitalbridge/internal/model"
	"github.com/vitalbridge/vitalbridge/internal/store"
)

// New opens the database at path, applies the schema and returns the store.
func New(ctx context.Context, path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(ctx, db)
}

// NewWithDB wraps an existing connection (used by tests and the factory).
func NewWithDB(ctx context.Context, db *sql.DB) (store.Store, error) {
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &liteStore{db: db}, nil
}

type liteStore struct{ db *sql.DB }

func (s *liteStore) Profiles() store.Profiles   { return &profiles{db: s.db} }
func (s *liteStore) Snapshots() store.Snapshots { return &snapshots{db: s.db} }

// HealthPing implements health.HealthPinger for the SQLite-backed store.
func (s *liteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SQLITE_CONSTRAINT_UNIQUE and SQLITE_CONSTRAINT_PRIMARYKEY extended codes.
const (
	sqliteConstraintUnique     = 2067
	sqliteConstraintPrimaryKey = 1555
)

func isUniqueViolation(err error) bool {
	var se *sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqliteConstraintUnique || se.Code() == sqliteConstraintPrimaryKey
}

// --- Profiles ---

type profiles struct{ db *sql.DB }

func (p *profiles) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	var out model.UserProfile
	row := p.db.QueryRowContext(ctx, `
        SELECT user_id, date_of_birth, sex, height_cm, weight_kg, bmi, time_zone, utc_offset, creation_time, update_time
        FROM user_profiles WHERE user_id = ?
    `, userID)
	if err := row.Scan(&out.UserID, &out.DateOfBirth, &out.Sex, &out.HeightCm, &out.WeightKg,
		&out.BMI, &out.TimeZone, &out.UTCOffset, &out.CreationTime, &out.UpdateTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (p *profiles) Upsert(ctx context.Context, patch *model.UserProfile) (*model.UserProfile, error) {
	now := time.Now().UTC()
	// COALESCE keeps the stored value whenever the incoming field is NULL,
	// so a partial update can never erase existing data.
	_, err := p.db.ExecContext(ctx, `
        INSERT INTO user_profiles (user_id, date_of_birth, sex, height_cm, weight_kg, bmi, time_zone, utc_offset, creation_time, update_time)
        VALUES (?,?,?,?,?,?,?,?,?,?)
        ON CONFLICT (user_id) DO UPDATE SET
            date_of_birth = COALESCE(excluded.date_of_birth, user_profiles.date_of_birth),
            sex           = COALESCE(excluded.sex, user_profiles.sex),
            height_cm     = COALESCE(excluded.height_cm, user_profiles.height_cm),
            weight_kg     = COALESCE(excluded.weight_kg, user_profiles.weight_kg),
            bmi           = COALESCE(excluded.bmi, user_profiles.bmi),
            time_zone     = COALESCE(excluded.time_zone, user_profiles.time_zone),
            utc_offset    = COALESCE(excluded.utc_offset, user_profiles.utc_offset),
            update_time   = excluded.update_time
    `, patch.UserID, patch.DateOfBirth, patch.Sex, patch.HeightCm, patch.WeightKg,
		patch.BMI, patch.TimeZone, patch.UTCOffset, now, now)
	if err != nil {
		return nil, err
	}
	return p.Get(ctx, patch.UserID)
}

// --- Snapshots ---

type snapshots struct{ db *sql.DB }

func (s *snapshots) Find(ctx context.Context, userID, dataType, date string) (*model.HealthSnapshot, error) {
	var out model.HealthSnapshot
	row := s.db.QueryRowContext(ctx, `
        SELECT snapshot_id, user_id, data_type, date, data, fetched_at
        FROM health_snapshots WHERE user_id = ? AND data_type = ? AND date = ?
    `, userID, dataType, date)
	var data []byte
	if err := row.Scan(&out.SnapshotID, &out.UserID, &out.DataType, &out.Date, &data, &out.FetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	out.Data = data
	return &out, nil
}

func (s *snapshots) Create(ctx context.Context, snap *model.HealthSnapshot) (*model.HealthSnapshot, error) {
	out := *snap
	if out.SnapshotID == "" {
		out.SnapshotID = uuid.New().String()
	}
	if out.FetchedAt.IsZero() {
		out.FetchedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO health_snapshots (snapshot_id, user_id, data_type, date, data, fetched_at)
        VALUES (?,?,?,?,?,?)
    `, out.SnapshotID, out.UserID, out.DataType, out.Date, []byte(out.Data), out.FetchedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrConflict
		}
		return nil, err
	}
	return &out, nil
}
