package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"reviewlens/internal/app"
	"reviewlens/internal/domain"
)

// fakeCache stores JSON blobs like the real adapters do.
type fakeCache struct {
	store map[string][]byte
	sets  int
}

func (c *fakeCache) Get(_ context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(_ context.Context, key string, v any, _ int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	c.sets++
	return nil
}

func (c *fakeCache) Del(_ context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func newSessions(c domain.Cache) *app.SessionService {
	return app.NewSessionService(c, newTestAnalyzer(), time.Hour)
}

func TestSessionService_CreateAndGet(t *testing.T) {
	cache := &fakeCache{}
	svc := newSessions(cache)

	sess, err := svc.Create(context.Background(), "reviews.csv", testTable())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected a session id")
	}

	got, err := svc.Get(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Filename != "reviews.csv" || len(got.Table.Rows) != 5 {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestSessionService_GetUnknown(t *testing.T) {
	svc := newSessions(&fakeCache{})
	_, err := svc.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionService_ReportCached(t *testing.T) {
	cache := &fakeCache{}
	svc := newSessions(cache)

	sess, err := svc.Create(context.Background(), "reviews.csv", testTable())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rep, err := svc.Report(context.Background(), sess.ID, app.Params{TopN: 5})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if rep.Summary.ReviewCount != 5 {
		t.Fatalf("report %+v", rep.Summary)
	}
	setsAfterFirst := cache.sets

	// Second identical request comes straight from the cache.
	if _, err := svc.Report(context.Background(), sess.ID, app.Params{TopN: 5}); err != nil {
		t.Fatalf("report: %v", err)
	}
	if cache.sets != setsAfterFirst {
		t.Fatal("second report should not recompute")
	}

	// Different controls mean a new computation.
	if _, err := svc.Report(context.Background(), sess.ID, app.Params{TopN: 1}); err != nil {
		t.Fatalf("report: %v", err)
	}
	if cache.sets != setsAfterFirst+1 {
		t.Fatal("changed params must recompute")
	}
}

func TestSessionService_ReportUnknownSession(t *testing.T) {
	svc := newSessions(&fakeCache{})
	_, err := svc.Report(context.Background(), "gone", app.Params{})
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}
