package model

import (
	"encoding/json"
	"time"
)

// UserProfile is the durable per-user record. All demographic and
// measurement fields are optional; a nil field in an update means "leave
// the stored value alone", never "erase it".
type UserProfile struct {
	UserID      string   `json:"userId"`
	DateOfBirth *string  `json:"dateOfBirth,omitempty"`
	Sex         *string  `json:"sex,omitempty"`
	HeightCm    *int     `json:"heightCm,omitempty"`
	WeightKg    *float64 `json:"weightKg,omitempty"`
	BMI         *float64 `json:"bmi,omitempty"`
	TimeZone    *string  `json:"timeZone,omitempty"`
	UTCOffset   *string  `json:"utcOffset,omitempty"`

	CreationTime time.Time `json:"creationTime"`
	UpdateTime   time.Time `json:"updateTime"`
}

// HealthSnapshot is one cached upstream payload for a (user, data type,
// date) key. The payload is stored and served verbatim; the gateway never
// looks inside it. Rows are written once and never updated or expired.
type HealthSnapshot struct {
	SnapshotID string          `json:"snapshotId"`
	UserID     string          `json:"userId"`
	DataType   string          `json:"dataType"`
	Date       string          `json:"date"`
	Data       json.RawMessage `json:"data"`
	FetchedAt  time.Time       `json:"fetchedAt"`
}

// ProfileSource tags which path produced a profile read.
type ProfileSource string

const (
	// ProfileSourceStore marks a profile served from the durable record.
	ProfileSourceStore ProfileSource = "store"
	// ProfileSourceUpstream marks a raw payload fetched from the provider.
	ProfileSourceUpstream ProfileSource = "upstream"
)

// ProfileResult is the tagged read result for GetProfile. Exactly one of
// Profile or Payload is set, according to Source, so callers must handle
// both shapes explicitly.
type ProfileResult struct {
	Source  ProfileSource   `json:"source"`
	Profile *UserProfile    `json:"profile,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DataType builds the cache-key tag for a category/subtype pair.
// An empty subtype selects the category summary: ("sleep", "") yields
// "sleep_summary", ("physical", "steps") yields "physical_steps".
func DataType(category, subtype string) string {
	if subtype == "" {
		subtype = "summary"
	}
	return category + "_" + subtype
}
