package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"reviewlens/internal/domain"
)

// SessionService owns the per-upload working copies and their derived
// reports. Tables and reports live in the cache under the session TTL,
// so nothing outlives the session; a re-upload is a brand new session
// computed from scratch.
type SessionService struct {
	cache domain.Cache
	an    *Analyzer
	ttl   time.Duration
	sf    singleflight.Group
}

func NewSessionService(c domain.Cache, an *Analyzer, ttl time.Duration) *SessionService {
	return &SessionService{cache: c, an: an, ttl: ttl}
}

// Create stores a freshly parsed table as a new session.
func (s *SessionService) Create(ctx context.Context, filename string, t domain.Table) (domain.Session, error) {
	sess := domain.Session{
		ID:         uuid.NewString(),
		Filename:   filename,
		Table:      t,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.cache.Set(ctx, sessionKey(sess.ID), sess, s.ttlSec()); err != nil {
		return domain.Session{}, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// Get loads a live session or reports domain.ErrSessionNotFound.
func (s *SessionService) Get(ctx context.Context, id string) (domain.Session, error) {
	var sess domain.Session
	ok, err := s.cache.Get(ctx, sessionKey(id), &sess)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Report returns the analysis for one session under one set of
// controls, recomputing on a miss. Concurrent identical requests are
// collapsed to a single pass.
func (s *SessionService) Report(ctx context.Context, id string, p Params) (domain.Report, error) {
	key := reportKey(id, p)

	var cached domain.Report
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		sess, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		rep, err := s.an.Analyze(id, sess.Table, p)
		if err != nil {
			return nil, err
		}
		_ = s.cache.Set(ctx, key, rep, s.ttlSec())
		return rep, nil
	})
	if err != nil {
		return domain.Report{}, err
	}
	return v.(domain.Report), nil
}

// Suggest exposes column auto-detection for a live session.
func (s *SessionService) Suggest(ctx context.Context, id string) (domain.ColumnMapping, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return domain.ColumnMapping{}, err
	}
	return s.an.Suggest(sess.Table), nil
}

func (s *SessionService) ttlSec() int { return int(s.ttl.Seconds()) }

func sessionKey(id string) string { return "session:" + id }

// reportKey hashes the controls so every parameter combination caches
// independently.
func reportKey(id string, p Params) string {
	b, _ := json.Marshal(p)
	sum := sha1.Sum(b)
	return fmt.Sprintf("report:%s:%s", id, hex.EncodeToString(sum[:8]))
}
