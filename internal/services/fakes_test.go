package services

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/vitalbridge/vitalbridge/internal/model"
	"github.com/vitalbridge/vitalbridge/internal/provider"
	"github.com/vitalbridge/vitalbridge/internal/store"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

// --- Provider fake ---

type providerCall struct {
	method string
	path   string
	query  url.Values
	body   any
}

type fakeProvider struct {
	calls   []providerCall
	respond func(call providerCall) (*provider.Response, error)
}

func (f *fakeProvider) Do(_ context.Context, method, path string, query url.Values, body any) (*provider.Response, error) {
	call := providerCall{method: method, path: path, query: query, body: body}
	f.calls = append(f.calls, call)
	return f.respond(call)
}

func respondWith(status int, body string) func(providerCall) (*provider.Response, error) {
	return func(providerCall) (*provider.Response, error) {
		return &provider.Response{StatusCode: status, Body: json.RawMessage(body)}, nil
	}
}

// --- Store fake ---

type fakeStore struct {
	profiles      map[string]*model.UserProfile
	snapshots     map[string]*model.HealthSnapshot
	upsertErr     error
	createErr     error
	forceConflict bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles:  map[string]*model.UserProfile{},
		snapshots: map[string]*model.HealthSnapshot{},
	}
}

func (f *fakeStore) Profiles() store.Profiles   { return &fakeProfiles{f} }
func (f *fakeStore) Snapshots() store.Snapshots { return &fakeSnapshots{f} }

type fakeProfiles struct{ p *fakeStore }

func (fp *fakeProfiles) Get(_ context.Context, userID string) (*model.UserProfile, error) {
	if prof, ok := fp.p.profiles[userID]; ok {
		cp := *prof
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (fp *fakeProfiles) Upsert(_ context.Context, patch *model.UserProfile) (*model.UserProfile, error) {
	if fp.p.upsertErr != nil {
		return nil, fp.p.upsertErr
	}
	cur, ok := fp.p.profiles[patch.UserID]
	if !ok {
		cp := *patch
		cp.CreationTime = time.Now().UTC()
		cp.UpdateTime = cp.CreationTime
		fp.p.profiles[patch.UserID] = &cp
		out := cp
		return &out, nil
	}
	if patch.DateOfBirth != nil {
		cur.DateOfBirth = patch.DateOfBirth
	}
	if patch.Sex != nil {
		cur.Sex = patch.Sex
	}
	if patch.HeightCm != nil {
		cur.HeightCm = patch.HeightCm
	}
	if patch.WeightKg != nil {
		cur.WeightKg = patch.WeightKg
	}
	if patch.BMI != nil {
		cur.BMI = patch.BMI
	}
	if patch.TimeZone != nil {
		cur.TimeZone = patch.TimeZone
	}
	if patch.UTCOffset != nil {
		cur.UTCOffset = patch.UTCOffset
	}
	cur.UpdateTime = time.Now().UTC()
	out := *cur
	return &out, nil
}

type fakeSnapshots struct{ p *fakeStore }

func snapKey(userID, dataType, date string) string {
	return userID + "|" + dataType + "|" + date
}

func (fs *fakeSnapshots) Find(_ context.Context, userID, dataType, date string) (*model.HealthSnapshot, error) {
	if snap, ok := fs.p.snapshots[snapKey(userID, dataType, date)]; ok {
		cp := *snap
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (fs *fakeSnapshots) Create(_ context.Context, snap *model.HealthSnapshot) (*model.HealthSnapshot, error) {
	if fs.p.createErr != nil {
		return nil, fs.p.createErr
	}
	key := snapKey(snap.UserID, snap.DataType, snap.Date)
	if _, exists := fs.p.snapshots[key]; exists || fs.p.forceConflict {
		return nil, model.ErrConflict
	}
	cp := *snap
	if cp.SnapshotID == "" {
		cp.SnapshotID = uuid.New().String()
	}
	fs.p.snapshots[key] = &cp
	out := cp
	return &out, nil
}
