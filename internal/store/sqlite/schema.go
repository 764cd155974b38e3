package sqlite

import (
	"context"
	"database/sql"
)

// schemaDDL is applied on open. The UNIQUE constraint on
// (user_id, data_type, date) makes snapshot cache keys unambiguous:
// concurrent duplicate fetches lose the insert race instead of piling up
// duplicate rows.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS user_profiles (
        user_id       TEXT PRIMARY KEY,
        date_of_birth TEXT,
        sex           TEXT,
        height_cm     INTEGER,
        weight_kg     REAL,
        bmi           REAL,
        time_zone     TEXT,
        utc_offset    TEXT,
        creation_time TIMESTAMP NOT NULL,
        update_time   TIMESTAMP NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS health_snapshots (
        snapshot_id TEXT PRIMARY KEY,
        user_id     TEXT NOT NULL,
        data_type   TEXT NOT NULL,
        date        TEXT NOT NULL,
        data        BLOB NOT NULL,
        fetched_at  TIMESTAMP NOT NULL,
        UNIQUE (user_id, data_type, date)
    )`,
}

// EnsureSchema creates the gateway tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
