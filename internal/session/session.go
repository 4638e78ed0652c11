package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/scrapegenie/storefront/internal/marketplace"
)

// Session is one browser visitor's state.
type Session struct {
	// ID is the stable unique session identifier that never changes during
	// the session lifecycle.
	ID uuid.UUID `json:"id"`

	// Token is the cryptographically secure session token (32 bytes
	// base64url) carried in the signed browser cookie. It rotates whenever
	// the authentication state changes.
	Token string `json:"token"`

	// Identity is the authenticated user, nil while unauthenticated.
	// At most one identity is active at a time.
	Identity *marketplace.Identity `json:"identity,omitempty"`

	// Loading is true while session resolution or a credential operation
	// is in flight. Views disable their submit controls while it is set.
	Loading bool `json:"loading,omitempty"`

	// Credential is the opaque marketplace credential replayed on upstream
	// calls. Its structure belongs to the backend.
	Credential string `json:"credential,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// prevToken remembers the pre-rotation token so the store can drop the
	// stale entry on save.
	prevToken string
	// isModified tracks if the session needs saving
	isModified bool
}

// New creates a new anonymous session with a generated token and ID.
// The session is marked as modified and ready to be saved.
func New(ttl time.Duration) (Session, error) {
	token, err := generateToken()
	if err != nil {
		return Session{}, errors.Join(ErrTokenGeneration, err)
	}

	now := time.Now()
	return Session{
		ID:         uuid.New(),
		Token:      token,
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
		UpdatedAt:  now,
		isModified: true,
	}, nil
}

// Authenticate binds an identity and its marketplace credential to the
// session. The token rotates but the session ID is preserved. A role change
// can only happen through re-authentication, which passes through here.
func (s *Session) Authenticate(identity marketplace.Identity, credential string) error {
	if err := s.rotateToken(); err != nil {
		return err
	}
	s.Identity = &identity
	s.Credential = credential
	s.UpdatedAt = time.Now()
	s.isModified = true
	return nil
}

// RestoreIdentity re-binds an identity confirmed by the backend for the
// credential the session already holds. No token rotation: the
// authentication state is not changing, only being re-established.
func (s *Session) RestoreIdentity(identity marketplace.Identity) {
	s.Identity = &identity
	s.UpdatedAt = time.Now()
	s.isModified = true
}

// DropIdentity forgets the identity but keeps the credential, e.g. when the
// backend could not be reached to confirm it. The visitor browses
// unauthenticated until the next successful resolution.
func (s *Session) DropIdentity() {
	if s.Identity == nil {
		return
	}
	s.Identity = nil
	s.UpdatedAt = time.Now()
	s.isModified = true
}

// Clear drops the identity and credential, returning the session to the
// anonymous state. The token rotates so the old cookie value dies with the
// authenticated session.
func (s *Session) Clear() error {
	if err := s.rotateToken(); err != nil {
		return err
	}
	s.Identity = nil
	s.Credential = ""
	s.UpdatedAt = time.Now()
	s.isModified = true
	return nil
}

// SetLoading flips the in-flight flag for credential operations.
func (s *Session) SetLoading(loading bool) {
	if s.Loading == loading {
		return
	}
	s.Loading = loading
	s.UpdatedAt = time.Now()
	s.isModified = true
}

// Touch extends the session expiration if the touch interval has elapsed.
// This reduces write operations by only updating when sufficient time has passed.
func (s *Session) Touch(ttl, touchInterval time.Duration) {
	if time.Since(s.UpdatedAt) >= touchInterval {
		s.ExpiresAt = time.Now().Add(ttl)
		s.UpdatedAt = time.Now()
		s.isModified = true
	}
}

// IsAuthenticated returns true if the session carries an identity.
func (s Session) IsAuthenticated() bool {
	return s.Identity != nil
}

// IsExpired returns true if the session has expired.
func (s Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsModified returns true if the session has been modified and needs saving.
func (s Session) IsModified() bool {
	return s.isModified
}

// rotateToken generates a new token while preserving the session ID.
func (s *Session) rotateToken() error {
	newToken, err := generateToken()
	if err != nil {
		return errors.Join(ErrTokenGeneration, err)
	}
	if s.prevToken == "" {
		s.prevToken = s.Token
	}
	s.Token = newToken
	s.isModified = true
	return nil
}

// generateToken creates a cryptographically secure random token using
// 32 bytes (256 bits) encoded as base64 URL-safe string without padding.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
