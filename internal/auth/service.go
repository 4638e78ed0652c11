package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/scrapegenie/storefront/internal/marketplace"
	"github.com/scrapegenie/storefront/internal/session"
)

// Service runs the credential operations against the marketplace API and
// keeps the visitor session in sync. It is the only writer of the session's
// identity; every other component reads.
type Service struct {
	api      *marketplace.Client
	sessions *session.Manager
	logger   *slog.Logger
}

// ServiceOption configures the service.
type ServiceOption func(*Service)

// WithLogger sets a custom logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// NewService creates the auth service.
func NewService(api *marketplace.Client, sessions *session.Manager, opts ...ServiceOption) *Service {
	s := &Service{
		api:      api,
		sessions: sessions,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve re-establishes the identity for a session that carries a
// marketplace credential. It never fails from the caller's perspective: an
// unauthenticated visitor is an expected condition, so every failure path
// simply leaves the session unauthenticated. Loading is false when it
// returns regardless of outcome.
func (s *Service) Resolve(ctx context.Context, sess *session.Session) {
	if sess.Credential == "" {
		sess.DropIdentity()
		return
	}

	sess.SetLoading(true)
	s.save(ctx, sess)
	defer func() {
		sess.SetLoading(false)
		s.save(ctx, sess)
	}()

	identity, err := s.api.Profile(ctx, sess.Credential)
	switch {
	case err == nil:
		sess.RestoreIdentity(identity)
	case errors.Is(err, marketplace.ErrRejected):
		// Credential revoked or expired upstream; drop it with the identity.
		if clearErr := sess.Clear(); clearErr != nil {
			s.logger.ErrorContext(ctx, "failed to clear session", slog.Any("error", clearErr))
		}
	default:
		// Transport failure: stay unauthenticated but keep the credential
		// so a later resolution can succeed.
		s.logger.WarnContext(ctx, "session resolution failed", slog.Any("error", err))
		sess.DropIdentity()
	}
}

// SignUpParams are the validated sign-up form values.
type SignUpParams struct {
	Name     string
	Email    string
	Password string
	Role     marketplace.Role
}

// SignUp registers a new account and authenticates the session with the
// returned identity. On failure the session's identity is untouched and the
// error carries a user-facing message. Loading is false on every return path.
func (s *Service) SignUp(ctx context.Context, sess *session.Session, params SignUpParams) error {
	sess.SetLoading(true)
	s.save(ctx, sess)
	defer func() {
		sess.SetLoading(false)
		s.save(ctx, sess)
	}()

	identity, credential, err := s.api.Register(ctx, marketplace.RegisterParams{
		FullName: params.Name,
		Email:    params.Email,
		Password: params.Password,
		Role:     params.Role,
	})
	if err != nil {
		return err
	}

	return sess.Authenticate(identity, credential)
}

// SignIn exchanges credentials for an identity. Same contract as SignUp.
// The rememberMe flag is passed through to the backend as a hint; its only
// client-visible effect is the email prefill handled by the sign-in page.
func (s *Service) SignIn(ctx context.Context, sess *session.Session, email, password string, rememberMe bool) error {
	sess.SetLoading(true)
	s.save(ctx, sess)
	defer func() {
		sess.SetLoading(false)
		s.save(ctx, sess)
	}()

	identity, credential, err := s.api.Login(ctx, marketplace.LoginParams{
		Email:      email,
		Password:   password,
		RememberMe: rememberMe,
	})
	if err != nil {
		return err
	}

	return sess.Authenticate(identity, credential)
}

// Logout terminates the session. The backend call is best-effort: the local
// identity is cleared unconditionally so the visitor is never left looking
// authenticated after asking to leave. The remote error, if any, is
// returned for logging only.
func (s *Service) Logout(ctx context.Context, sess *session.Session) error {
	sess.SetLoading(true)
	s.save(ctx, sess)

	var remoteErr error
	if sess.Credential != "" {
		remoteErr = s.api.Logout(ctx, sess.Credential)
	}

	if err := sess.Clear(); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear session", slog.Any("error", err))
	}
	sess.SetLoading(false)
	s.save(ctx, sess)

	if remoteErr != nil {
		s.logger.WarnContext(ctx, "remote logout failed", slog.Any("error", remoteErr))
	}
	return remoteErr
}

// save persists the session, logging instead of failing: a session that
// could not be written is a degraded experience, not a broken request.
func (s *Service) save(ctx context.Context, sess *session.Session) {
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.logger.ErrorContext(ctx, "failed to save session", slog.Any("error", err))
	}
}
