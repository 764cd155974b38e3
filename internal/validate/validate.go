// Package validate holds input validation shared by the HTTP layer and the
// core services. Anything rejected here never reaches upstream or the store.
package validate

import (
	"fmt"
	"regexp"
	"time"

	"github.com/vitalbridge/vitalbridge/internal/model"
)

// userIDRx allows lowercase alphanumerics plus underscore and hyphen, 1-64 chars.
var userIDRx = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// subtypeRx covers event subtypes such as "steps" or "heart_rate".
var subtypeRx = regexp.MustCompile(`^[a-z][a-z0-9_]{0,31}$`)

var categories = map[string]bool{
	"physical": true,
	"sleep":    true,
	"body":     true,
}

var sexes = map[string]bool{
	"male":   true,
	"female": true,
	"other":  true,
}

func UserID(v string) error {
	if v == "" {
		return fmt.Errorf("user_id is required")
	}
	if !userIDRx.MatchString(v) {
		return fmt.Errorf("user_id must match %s", userIDRx.String())
	}
	return nil
}

// Date requires a calendar date in YYYY-MM-DD form.
func Date(v string) error {
	if v == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

func Category(v string) error {
	if !categories[v] {
		return fmt.Errorf("unknown data category %q", v)
	}
	return nil
}

// Subtype validates an optional event subtype; empty selects the summary.
func Subtype(v string) error {
	if v == "" {
		return nil
	}
	if !subtypeRx.MatchString(v) {
		return fmt.Errorf("subtype must match %s", subtypeRx.String())
	}
	return nil
}

func TimeZone(v string) error {
	if v == "" {
		return fmt.Errorf("time_zone is required")
	}
	if len(v) > 64 {
		return fmt.Errorf("time_zone exceeds 64 characters")
	}
	return nil
}

// Profile checks every supplied field of a partial profile update.
// Nil fields are absent by definition and are not checked.
func Profile(p *model.UserProfile) error {
	if err := UserID(p.UserID); err != nil {
		return err
	}
	if p.DateOfBirth != nil {
		if _, err := time.Parse("2006-01-02", *p.DateOfBirth); err != nil {
			return fmt.Errorf("date_of_birth must be YYYY-MM-DD")
		}
	}
	if p.Sex != nil && !sexes[*p.Sex] {
		return fmt.Errorf("sex must be one of male, female, other")
	}
	if p.HeightCm != nil && (*p.HeightCm < 30 || *p.HeightCm > 300) {
		return fmt.Errorf("height_cm out of range 30-300")
	}
	if p.WeightKg != nil && (*p.WeightKg < 2 || *p.WeightKg > 500) {
		return fmt.Errorf("weight_kg out of range 2-500")
	}
	if p.BMI != nil && (*p.BMI < 5 || *p.BMI > 100) {
		return fmt.Errorf("bmi out of range 5-100")
	}
	if p.TimeZone != nil {
		if err := TimeZone(*p.TimeZone); err != nil {
			return err
		}
	}
	return nil
}
