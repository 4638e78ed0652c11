package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/scrapegenie/storefront/internal/auth"
	"github.com/scrapegenie/storefront/internal/cookie"
	"github.com/scrapegenie/storefront/internal/session"
)

// DefaultSessionCookie names the signed cookie carrying the session token.
const DefaultSessionCookie = "sg_session"

type sessionKey struct{}

// WithSession stores the visitor session in the request context.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// GetSession retrieves the visitor session from the request context.
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*session.Session)
	return sess, ok
}

// SessionConfig configures the visitor session middleware.
type SessionConfig struct {
	Manager *session.Manager
	Cookies *cookie.Manager
	// Auth, when set, resolves the identity of a restored session that
	// still carries a marketplace credential.
	Auth *auth.Service
	// CookieName defaults to DefaultSessionCookie.
	CookieName string
	Logger     *slog.Logger
}

// Session loads the visitor session from the signed cookie, creating a new
// anonymous session when there is none or the token is invalid (graceful
// degradation: every request gets a valid session). The session is written
// back to the store and the cookie refreshed just before the response
// headers go out, so token rotations inside handlers are picked up.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultSessionCookie
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess := cfg.load(r)

			// A restored session knows its credential but not its
			// identity yet; resolve it before the page renders.
			if cfg.Auth != nil && sess.Credential != "" && !sess.IsAuthenticated() {
				cfg.Auth.Resolve(ctx, sess)
			}

			saver := &beforeWriteResponse{ResponseWriter: w}
			saver.fn = func() {
				if err := cfg.Manager.Save(ctx, sess); err != nil {
					cfg.Logger.ErrorContext(ctx, "failed to save session", slog.Any("error", err))
					return
				}
				maxAge := int(cfg.Manager.TTL().Seconds())
				if err := cfg.Cookies.SetSigned(w, cfg.CookieName, sess.Token, cookie.WithMaxAge(maxAge)); err != nil {
					cfg.Logger.ErrorContext(ctx, "failed to set session cookie", slog.Any("error", err))
				}
			}

			next.ServeHTTP(saver, r.WithContext(WithSession(ctx, sess)))

			// Handlers that never wrote a body still need the write-back.
			saver.flush()
		})
	}
}

// load returns the session for the request's cookie, or a fresh anonymous
// session when the cookie is absent, forged, or stale.
func (cfg SessionConfig) load(r *http.Request) *session.Session {
	ctx := r.Context()

	token, err := cfg.Cookies.GetSigned(r, cfg.CookieName)
	if err == nil {
		if sess, err := cfg.Manager.GetByToken(ctx, token); err == nil {
			return &sess
		}
	}

	sess, err := cfg.Manager.New(ctx)
	if err != nil {
		cfg.Logger.ErrorContext(ctx, "failed to create session", slog.Any("error", err))
		// Degrade to an unsaved throwaway session rather than failing the
		// request; the visitor simply stays anonymous.
		sess = session.Session{}
	}
	return &sess
}

// beforeWriteResponse runs fn once, immediately before the first header or
// body write, so Set-Cookie headers from the session write-back make it
// into the response.
type beforeWriteResponse struct {
	http.ResponseWriter
	once sync.Once
	fn   func()
}

func (b *beforeWriteResponse) flush() {
	b.once.Do(func() {
		if b.fn != nil {
			b.fn()
		}
	})
}

func (b *beforeWriteResponse) WriteHeader(statusCode int) {
	b.flush()
	b.ResponseWriter.WriteHeader(statusCode)
}

func (b *beforeWriteResponse) Write(p []byte) (int, error) {
	b.flush()
	return b.ResponseWriter.Write(p)
}
