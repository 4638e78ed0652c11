package session

import "context"

// Store defines the persistence interface for visitor sessions, keyed by
// token. Implementations must handle concurrent access safely.
type Store interface {
	GetByToken(ctx context.Context, token string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	DeleteByToken(ctx context.Context, token string) error
	// DeleteExpired removes all expired sessions and returns the count of
	// deleted sessions. Backends with native TTL may report zero.
	DeleteExpired(ctx context.Context) (int64, error)
}
