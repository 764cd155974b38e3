package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/vitalbridge/vitalbridge/internal/model"
	"github.com/vitalbridge/vitalbridge/internal/outcome"
	"github.com/vitalbridge/vitalbridge/internal/provider"
	"github.com/vitalbridge/vitalbridge/internal/store"
	"github.com/vitalbridge/vitalbridge/internal/validate"
)

// ProfileService reconciles partial profile updates with the upstream
// provider and the durable record. The provider is always consulted first;
// the store is only written after upstream accepts, so a remote rejection
// can never be masked by a local write.
type ProfileService struct {
	store    store.Store
	provider provider.Provider
}

func NewProfileService(st store.Store, pv provider.Provider) *ProfileService {
	return &ProfileService{store: st, provider: pv}
}

// SubmitProfile forwards a partial profile upstream and, only on
// acceptance, merges the supplied fields into the stored row. Fields absent
// from the patch keep their stored values.
func (s *ProfileService) SubmitProfile(ctx context.Context, patch *model.UserProfile) outcome.Outcome {
	if err := validate.Profile(patch); err != nil {
		return outcome.Invalid(err.Error())
	}

	resp, err := s.provider.Do(ctx, http.MethodPost, provider.PathProfile, nil, patch)
	out := outcome.FromUpstream(resp, err)
	if !out.IsSuccess() {
		return out
	}

	if _, err := s.store.Profiles().Upsert(ctx, patch); err != nil {
		return outcome.StoreFailure(err)
	}
	return out
}

// SetTimeZone updates exactly the timezone pair under the same
// upstream-first, merge-on-success contract as SubmitProfile.
func (s *ProfileService) SetTimeZone(ctx context.Context, userID, timeZone, utcOffset string) outcome.Outcome {
	if err := validate.UserID(userID); err != nil {
		return outcome.Invalid(err.Error())
	}
	if err := validate.TimeZone(timeZone); err != nil {
		return outcome.Invalid(err.Error())
	}

	patch := &model.UserProfile{UserID: userID, TimeZone: &timeZone}
	if utcOffset != "" {
		patch.UTCOffset = &utcOffset
	}

	resp, err := s.provider.Do(ctx, http.MethodPost, provider.PathUserTimeZone, nil, patch)
	out := outcome.FromUpstream(resp, err)
	if !out.IsSuccess() {
		return out
	}

	if _, err := s.store.Profiles().Upsert(ctx, patch); err != nil {
		return outcome.StoreFailure(err)
	}
	return out
}

// GetProfile reads a profile. Without a date the stored record is
// authoritative and no upstream call is made; with a date (or when no
// record exists yet) the provider is queried and the raw payload is
// returned. The two shapes are tagged via model.ProfileResult so callers
// must handle both.
func (s *ProfileService) GetProfile(ctx context.Context, userID, date string) outcome.Outcome {
	if err := validate.UserID(userID); err != nil {
		return outcome.Invalid(err.Error())
	}
	if date != "" {
		if err := validate.Date(date); err != nil {
			return outcome.Invalid(err.Error())
		}
	}

	if date == "" {
		p, err := s.store.Profiles().Get(ctx, userID)
		switch {
		case err == nil:
			return resultOutcome(http.StatusOK, model.ProfileResult{Source: model.ProfileSourceStore, Profile: p})
		case !errors.Is(err, model.ErrNotFound):
			return outcome.StoreFailure(err)
		}
	}

	q := url.Values{"user_id": {userID}}
	if date != "" {
		q.Set("date", date)
	}
	resp, err := s.provider.Do(ctx, http.MethodGet, provider.PathProfile, q, nil)
	out := outcome.FromUpstream(resp, err)
	if !out.IsSuccess() {
		return out
	}

	// Opportunistic write-back: keep a discovered date of birth without
	// touching any other stored field.
	if dob := extractDateOfBirth(out.Body); dob != "" {
		patch := &model.UserProfile{UserID: userID, DateOfBirth: &dob}
		if _, err := s.store.Profiles().Upsert(ctx, patch); err != nil {
			return outcome.StoreFailure(err)
		}
	}

	return resultOutcome(out.StatusCode, model.ProfileResult{Source: model.ProfileSourceUpstream, Payload: out.Body})
}

func resultOutcome(status int, res model.ProfileResult) outcome.Outcome {
	b, err := json.Marshal(res)
	if err != nil {
		return outcome.StoreFailure(err)
	}
	return outcome.Outcome{StatusCode: status, Body: b}
}

// extractDateOfBirth pulls a date_of_birth string out of an upstream
// profile payload, returning "" when none is present. A value that fails
// the same date check applied to caller-supplied profiles is dropped
// rather than written back.
func extractDateOfBirth(body json.RawMessage) string {
	var payload struct {
		DateOfBirth string `json:"date_of_birth"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.DateOfBirth == "" {
		return ""
	}
	if err := validate.Date(payload.DateOfBirth); err != nil {
		return ""
	}
	return payload.DateOfBirth
}
