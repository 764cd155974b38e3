package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/vitalbridge/vitalbridge/internal/provider"
)

func TestGetSnapshot_CacheIdempotence(t *testing.T) {
	fs := newFakeStore()
	fp := &fakeProvider{respond: respondWith(http.StatusOK, `{"score":82}`)}
	svc := NewSnapshotService(fs, fp)
	ctx := context.Background()

	first := svc.GetSnapshot(ctx, "u1", "sleep", "", "2024-06-01")
	if !first.IsSuccess() || string(first.Body) != `{"score":82}` {
		t.Fatalf("first call: %d %s", first.StatusCode, first.Body)
	}
	if _, ok := fs.snapshots[snapKey("u1", "sleep_summary", "2024-06-01")]; !ok {
		t.Fatal("first call did not populate the cache under sleep_summary")
	}

	second := svc.GetSnapshot(ctx, "u1", "sleep", "", "2024-06-01")
	if !second.IsSuccess() || string(second.Body) != string(first.Body) {
		t.Fatalf("second call differs: %d %s", second.StatusCode, second.Body)
	}
	if len(fp.calls) != 1 {
		t.Fatalf("want exactly one upstream call across both reads, got %d", len(fp.calls))
	}
}

func TestGetSnapshot_NoWriteOnEmptyBody(t *testing.T) {
	for _, body := range []string{"", "null", "{}", "[]"} {
		fs := newFakeStore()
		fp := &fakeProvider{respond: respondWith(http.StatusOK, body)}
		svc := NewSnapshotService(fs, fp)

		out := svc.GetSnapshot(context.Background(), "u1", "body", "", "2024-06-01")
		if !out.IsSuccess() {
			t.Fatalf("body %q: unexpected status %d", body, out.StatusCode)
		}
		if len(fs.snapshots) != 0 {
			t.Fatalf("body %q: empty payload must not create cache rows", body)
		}
	}
}

func TestGetSnapshot_NoDataSignalPassthrough(t *testing.T) {
	fs := newFakeStore()
	fp := &fakeProvider{respond: respondWith(http.StatusNoContent, "")}
	svc := NewSnapshotService(fs, fp)

	out := svc.GetSnapshot(context.Background(), "u1", "physical", "", "2024-06-01")
	if !out.IsNoData() {
		t.Fatalf("want no-data outcome, got %d", out.StatusCode)
	}
	if len(fs.snapshots) != 0 {
		t.Fatal("no-data signal must not create cache rows")
	}
}

func TestGetSnapshot_KeyParameterization(t *testing.T) {
	fs := newFakeStore()
	fp := &fakeProvider{respond: func(call providerCall) (*provider.Response, error) {
		return &provider.Response{StatusCode: http.StatusOK, Body: []byte(`{"path":"` + call.path + `"}`)}, nil
	}}
	svc := NewSnapshotService(fs, fp)
	ctx := context.Background()

	if out := svc.GetSnapshot(ctx, "u1", "physical", "steps", "2024-01-01"); !out.IsSuccess() {
		t.Fatalf("physical steps: %d", out.StatusCode)
	}
	if out := svc.GetSnapshot(ctx, "u1", "body", "weight", "2024-01-01"); !out.IsSuccess() {
		t.Fatalf("body weight: %d", out.StatusCode)
	}

	if _, ok := fs.snapshots[snapKey("u1", "physical_steps", "2024-01-01")]; !ok {
		t.Fatal("missing physical_steps cache row")
	}
	if _, ok := fs.snapshots[snapKey("u1", "body_weight", "2024-01-01")]; !ok {
		t.Fatal("missing body_weight cache row")
	}
	if fp.calls[0].path != "/v1/physical/events/steps" || fp.calls[1].path != "/v1/body/events/weight" {
		t.Fatalf("unexpected resource paths: %q %q", fp.calls[0].path, fp.calls[1].path)
	}
}

func TestGetSnapshot_UpstreamErrorNotCached(t *testing.T) {
	fs := newFakeStore()
	fp := &fakeProvider{respond: respondWith(http.StatusServiceUnavailable, `{"detail":"maintenance"}`)}
	svc := NewSnapshotService(fs, fp)

	out := svc.GetSnapshot(context.Background(), "u1", "sleep", "", "2024-06-01")
	if out.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("want upstream status passthrough, got %d", out.StatusCode)
	}
	if len(fs.snapshots) != 0 {
		t.Fatal("upstream error must not create cache rows")
	}
}

func TestGetSnapshot_TransportFailure(t *testing.T) {
	fs := newFakeStore()
	fp := &fakeProvider{respond: func(providerCall) (*provider.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	}}
	svc := NewSnapshotService(fs, fp)

	out := svc.GetSnapshot(context.Background(), "u1", "sleep", "", "2024-06-01")
	if out.StatusCode != http.StatusBadGateway {
		t.Fatalf("want 502 for transport failure, got %d", out.StatusCode)
	}
}

func TestGetSnapshot_LostInsertRaceIsBenign(t *testing.T) {
	fs := newFakeStore()
	fs.forceConflict = true
	fp := &fakeProvider{respond: respondWith(http.StatusOK, `{"score":82}`)}
	svc := NewSnapshotService(fs, fp)

	out := svc.GetSnapshot(context.Background(), "u1", "sleep", "", "2024-06-01")
	if !out.IsSuccess() || string(out.Body) != `{"score":82}` {
		t.Fatalf("lost race should still serve the fetched payload: %d %s", out.StatusCode, out.Body)
	}
}

func TestGetSnapshot_CacheWriteFailureFailsCall(t *testing.T) {
	fs := newFakeStore()
	fs.createErr = errors.New("disk full")
	fp := &fakeProvider{respond: respondWith(http.StatusOK, `{"score":82}`)}
	svc := NewSnapshotService(fs, fp)

	out := svc.GetSnapshot(context.Background(), "u1", "sleep", "", "2024-06-01")
	if out.StatusCode != http.StatusInternalServerError {
		t.Fatalf("cache write failure must fail the call, got %d", out.StatusCode)
	}
}

func TestGetSnapshot_ValidationShortCircuits(t *testing.T) {
	fs := newFakeStore()
	fp := &fakeProvider{respond: respondWith(http.StatusOK, `{}`)}
	svc := NewSnapshotService(fs, fp)
	ctx := context.Background()

	cases := []struct{ user, category, subtype, date string }{
		{"", "sleep", "", "2024-06-01"},
		{"u1", "mood", "", "2024-06-01"},
		{"u1", "sleep", "Bad Subtype", "2024-06-01"},
		{"u1", "sleep", "", "june 1st"},
	}
	for i, c := range cases {
		out := svc.GetSnapshot(ctx, c.user, c.category, c.subtype, c.date)
		if out.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("case %d: want 422, got %d", i, out.StatusCode)
		}
	}
	if len(fp.calls) != 0 {
		t.Fatalf("invalid input must never reach upstream, got %d calls", len(fp.calls))
	}
}
