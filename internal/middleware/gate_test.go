package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapegenie/storefront/internal/authgate"
	"github.com/scrapegenie/storefront/internal/cookie"
	"github.com/scrapegenie/storefront/internal/flash"
	"github.com/scrapegenie/storefront/internal/marketplace"
	"github.com/scrapegenie/storefront/internal/middleware"
	"github.com/scrapegenie/storefront/internal/session"
)

func gateRequest(t *testing.T, sess *session.Session) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil)
	return req.WithContext(middleware.WithSession(req.Context(), sess))
}

func sessionWith(t *testing.T, identity *marketplace.Identity, loading bool) *session.Session {
	t.Helper()

	sess, err := session.New(time.Hour)
	require.NoError(t, err)
	if identity != nil {
		require.NoError(t, sess.Authenticate(*identity, "cred=1"))
	}
	sess.SetLoading(loading)
	return &sess
}

func TestGate_AllowsMatchingRole(t *testing.T) {
	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	called := false
	handler := middleware.Gate(authgate.AdminDashboard(), cookies, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		}))

	rec := httptest.NewRecorder()
	sess := sessionWith(t, &marketplace.Identity{ID: "a1", Role: marketplace.RoleAdmin}, false)
	handler.ServeHTTP(rec, gateRequest(t, sess))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGate_RedirectsGuestWithNotice(t *testing.T) {
	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	handler := middleware.Gate(authgate.AdminDashboard(), cookies, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for redirected guests")
		}))

	rec := httptest.NewRecorder()
	sess := sessionWith(t, nil, false)
	handler.ServeHTTP(rec, gateRequest(t, sess))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, authgate.SignInPath, rec.Header().Get("Location"))

	// The redirect queues a notice that the next page can pop.
	next := httptest.NewRequest(http.MethodGet, authgate.SignInPath, nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	notice, ok := flash.Pop(cookies, httptest.NewRecorder(), next)
	require.True(t, ok)
	assert.Equal(t, "Authentication required", notice.Title)
	assert.Equal(t, flash.VariantDestructive, notice.Variant)
}

func TestGate_RedirectsWrongRoleHome(t *testing.T) {
	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	handler := middleware.Gate(authgate.AdminDashboard(), cookies, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for mismatched roles")
		}))

	rec := httptest.NewRecorder()
	sess := sessionWith(t, &marketplace.Identity{ID: "u1", Role: marketplace.RoleUser}, false)
	handler.ServeHTTP(rec, gateRequest(t, sess))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, authgate.HomePath, rec.Header().Get("Location"))

	next := httptest.NewRequest(http.MethodGet, authgate.HomePath, nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	notice, ok := flash.Pop(cookies, httptest.NewRecorder(), next)
	require.True(t, ok)
	assert.Equal(t, "Access denied", notice.Title)
}

func TestGate_PendingRendersPlaceholder(t *testing.T) {
	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	pendingCalled := false
	handler := middleware.Gate(authgate.AdminDashboard(), cookies,
		func(w http.ResponseWriter, r *http.Request) {
			pendingCalled = true
			w.WriteHeader(http.StatusOK)
		})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run while resolution is pending")
		}))

	rec := httptest.NewRecorder()
	sess := sessionWith(t, nil, true)
	handler.ServeHTTP(rec, gateRequest(t, sess))

	assert.True(t, pendingCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"), "pending must not redirect")
}
