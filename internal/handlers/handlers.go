package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/scrapegenie/storefront/internal/auth"
	"github.com/scrapegenie/storefront/internal/cookie"
	"github.com/scrapegenie/storefront/internal/marketplace"
	"github.com/scrapegenie/storefront/internal/middleware"
	"github.com/scrapegenie/storefront/internal/session"
)

// rememberCookie stores the sign-in email of visitors who checked
// "remember me", so the form prefills on their next visit.
const rememberCookie = "sg_remembered_email"

// rememberMaxAge keeps the prefill for 30 days.
const rememberMaxAge = 30 * 24 * 60 * 60

// Handlers wires the page and action handlers to their dependencies.
type Handlers struct {
	api     *marketplace.Client
	auth    *auth.Service
	cookies *cookie.Manager
	views   *Views
	logger  *slog.Logger
}

// Option configures the handler set.
type Option func(*Handlers)

// WithLogger sets a custom logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handlers) {
		if log != nil {
			h.logger = log
		}
	}
}

// New creates the handler set.
func New(api *marketplace.Client, authSvc *auth.Service, cookies *cookie.Manager, views *Views, opts ...Option) *Handlers {
	h := &Handlers{
		api:     api,
		auth:    authSvc,
		cookies: cookies,
		views:   views,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// sessionFrom returns the request session. The session middleware always
// installs one; the fallback only guards direct handler invocation in tests.
func (h *Handlers) sessionFrom(r *http.Request) *session.Session {
	if sess, ok := middleware.GetSession(r.Context()); ok {
		return sess
	}
	return &session.Session{}
}

// roleHome is where a freshly authenticated visitor lands.
func roleHome(role marketplace.Role) string {
	switch role {
	case marketplace.RoleAdmin:
		return "/admin-dashboard"
	case marketplace.RoleSeller:
		return "/seller-dashboard"
	default:
		return "/"
	}
}

// Pending renders the session-resolution placeholder used by the gates.
func (h *Handlers) Pending(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, h.cookies, http.StatusOK, "pending", "Loading", nil)
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	h.views.Render(w, r, h.cookies, status, page, title, data)
}
