package middleware

import (
	"net/http"

	"github.com/scrapegenie/storefront/internal/authgate"
	"github.com/scrapegenie/storefront/internal/cookie"
	"github.com/scrapegenie/storefront/internal/flash"
	"github.com/scrapegenie/storefront/internal/marketplace"
)

// PendingHandler renders a placeholder page while session resolution is
// still in flight. The gate middleware calls it instead of the route
// handler when the decision is Pending.
type PendingHandler func(w http.ResponseWriter, r *http.Request)

// Gate applies a page's access policy before its handler runs. Redirects
// use 303 See Other so a gated POST never gets replayed at the target, and
// each redirect queues a notice explaining why the visitor was moved.
func Gate(gate authgate.Gate, cookies *cookie.Manager, pending PendingHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				loading  bool
				identity *marketplace.Identity
			)
			if sess, ok := GetSession(r.Context()); ok {
				loading = sess.Loading
				identity = sess.Identity
			}

			decision := gate.Decide(loading, identity)
			switch decision.Kind {
			case authgate.Pending:
				pending(w, r)
			case authgate.Redirect:
				if identity == nil {
					flash.Error(cookies, w, "Authentication required", "Please sign in to continue.")
				} else {
					flash.Error(cookies, w, "Access denied", "You do not have permission to view that page.")
				}
				http.Redirect(w, r, decision.Target, http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
