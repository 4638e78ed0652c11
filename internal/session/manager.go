package session

import (
	"context"
	"errors"
	"time"
)

// Manager handles session lifecycle: creation, retrieval by cookie token,
// expiration, and write-back. The touch interval throttles how often
// sessions are extended on access, reducing store writes.
type Manager struct {
	store         Store
	ttl           time.Duration
	touchInterval time.Duration
}

// NewManager creates a session manager with the specified store and timing.
func NewManager(store Store, opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Manager{
		store:         store,
		ttl:           cfg.TTL,
		touchInterval: cfg.TouchInterval,
	}
}

// NewFromConfig creates a session manager from environment configuration.
func NewFromConfig(cfg Config, store Store) *Manager {
	return NewManager(store, WithTTL(cfg.TTL), WithTouchInterval(cfg.TouchInterval))
}

// New creates and persists a fresh anonymous session.
func (m *Manager) New(ctx context.Context) (Session, error) {
	sess, err := New(m.ttl)
	if err != nil {
		return Session{}, err
	}
	if err := m.store.Save(ctx, &sess); err != nil {
		return Session{}, errors.Join(ErrSaveSession, err)
	}
	sess.isModified = false
	return sess, nil
}

// GetByToken retrieves a session by token and validates expiration.
func (m *Manager) GetByToken(ctx context.Context, token string) (Session, error) {
	sess, err := m.store.GetByToken(ctx, token)
	if err != nil {
		return Session{}, err
	}

	if sess.IsExpired() {
		return Session{}, ErrExpired
	}

	return *sess, nil
}

// Save persists the session if it changed, extends its lifetime when the
// touch interval has elapsed, and drops the stale entry left behind by a
// token rotation.
func (m *Manager) Save(ctx context.Context, sess *Session) error {
	sess.Touch(m.ttl, m.touchInterval)

	if !sess.IsModified() {
		return nil
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return errors.Join(ErrSaveSession, err)
	}

	if sess.prevToken != "" && sess.prevToken != sess.Token {
		if err := m.store.DeleteByToken(ctx, sess.prevToken); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		sess.prevToken = ""
	}

	sess.isModified = false
	return nil
}

// CleanupExpired removes all expired sessions from the store.
// Should be called periodically to prevent session growth.
func (m *Manager) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// TTL returns the session time-to-live duration.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
