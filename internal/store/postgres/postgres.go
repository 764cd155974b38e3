package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/vitalbridge/vitalbridge/internal/model"
	"github.com/vitalbridge/vitalbridge/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
// Schema setup is handled by deployment migrations, not at runtime.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Profiles() store.Profiles   { return &profiles{db: s.db} }
func (s *pgStore) Snapshots() store.Snapshots { return &snapshots{db: s.db} }

// HealthPing implements health.HealthPinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// --- Profiles ---

type profiles struct{ db *sql.DB }

func (p *profiles) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	var out model.UserProfile
	row := p.db.QueryRowContext(ctx, `
        SELECT user_id, date_of_birth, sex, height_cm, weight_kg, bmi, time_zone, utc_offset, creation_time, update_time
        FROM user_profiles WHERE user_id=$1
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
	var out model.UserProfile
	// COALESCE keeps the stored value whenever the incoming field is NULL,
	// so a partial update can never erase existing data.
	row := p.db.QueryRowContext(ctx, `
        INSERT INTO user_profiles (user_id, date_of_birth, sex, height_cm, weight_kg, bmi, time_zone, utc_offset, creation_time, update_time)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
        ON CONFLICT (user_id) DO UPDATE SET
            date_of_birth = COALESCE(EXCLUDED.date_of_birth, user_profiles.date_of_birth),
            sex           = COALESCE(EXCLUDED.sex, user_profiles.sex),
            height_cm     = COALESCE(EXCLUDED.height_cm, user_profiles.height_cm),
            weight_kg     = COALESCE(EXCLUDED.weight_kg, user_profiles.weight_kg),
            bmi           = COALESCE(EXCLUDED.bmi, user_profiles.bmi),
            time_zone     = COALESCE(EXCLUDED.time_zone, user_profiles.time_zone),
            utc_offset    = COALESCE(EXCLUDED.utc_offset, user_profiles.utc_offset),
            update_time   = EXCLUDED.update_time
        RETURNING user_id, date_of_birth, sex, height_cm, weight_kg, bmi, time_zone, utc_offset, creation_time, update_time
    `, patch.UserID, patch.DateOfBirth, patch.Sex, patch.HeightCm, patch.WeightKg,
		patch.BMI, patch.TimeZone, patch.UTCOffset, now)
	if err := row.Scan(&out.UserID, &out.DateOfBirth, &out.Sex, &out.HeightCm, &out.WeightKg,
		&out.BMI, &out.TimeZone, &out.UTCOffset, &out.CreationTime, &out.UpdateTime); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Snapshots ---

type snapshots struct{ db *sql.DB }

func (s *snapshots) Find(ctx context.Context, userID, dataType, date string) (*model.HealthSnapshot, error) {
	var out model.HealthSnapshot
	row := s.db.QueryRowContext(ctx, `
        SELECT snapshot_id, user_id, data_type, date, data, fetched_at
        FROM health_snapshots WHERE user_id=$1 AND data_type=$2 AND date=$3
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
        VALUES ($1,$2,$3,$4,$5,$6)
    `, out.SnapshotID, out.UserID, out.DataType, out.Date, []byte(out.Data), out.FetchedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrConflict
		}
		return nil, err
	}
	return &out, nil
}
