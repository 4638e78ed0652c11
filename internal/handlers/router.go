package handlers

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/scrapegenie/storefront/internal/auth"
	"github.com/scrapegenie/storefront/internal/authgate"
	"github.com/scrapegenie/storefront/internal/cookie"
	"github.com/scrapegenie/storefront/internal/middleware"
	"github.com/scrapegenie/storefront/internal/session"
)

//go:embed static
var staticFS embed.FS

// RouterConfig carries the router's dependencies.
type RouterConfig struct {
	Handlers *Handlers
	Sessions *session.Manager
	Cookies  *cookie.Manager
	Auth     *auth.Service
	Logger   *slog.Logger
	// AllowedOrigins for the JSON endpoints. When empty the cors
	// middleware is not installed at all, since go-chi/cors treats an
	// empty origin list as allow-all.
	AllowedOrigins []string
}

// NewRouter assembles the full route tree with the middleware chain and the
// per-page access gates.
func NewRouter(cfg RouterConfig) http.Handler {
	h := cfg.Handlers

	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(cfg.Logger))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost},
			AllowCredentials: true,
		}))
	}
	r.Use(middleware.Session(middleware.SessionConfig{
		Manager: cfg.Sessions,
		Cookies: cfg.Cookies,
		Auth:    cfg.Auth,
		Logger:  cfg.Logger,
	}))

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.NotFound(h.NotFound)

	r.Get("/", h.Home)
	r.Get("/sign-in", h.SignInPage)
	r.Post("/sign-in", h.SignInSubmit)
	r.Get("/sign-up", h.SignUpPage)
	r.Post("/sign-up", h.SignUpSubmit)
	r.Post("/sign-out", h.SignOut)

	r.Get("/api/session", h.SessionStatus)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Gate(authgate.Profile(), cfg.Cookies, h.Pending))
		r.Get("/profile", h.Profile)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Gate(authgate.SellerDashboard(), cfg.Cookies, h.Pending))
		r.Get("/seller-dashboard", h.SellerDashboard)
		r.Post("/seller-dashboard/orders/{orderID}/status", h.UpdateOrderStatus)
		r.Post("/seller-dashboard/products/{productID}/delete", h.SellerDeleteProduct)
		r.Get("/sell", h.SellPage)
		r.Post("/sell", h.SellSubmit)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Gate(authgate.AdminDashboard(), cfg.Cookies, h.Pending))
		r.Get("/admin-dashboard", h.AdminDashboard)
		r.Post("/admin-dashboard/sellers/{userID}/approve", h.ApproveSeller)
		r.Post("/admin-dashboard/sellers/{userID}/reject", h.RejectSeller)
		r.Post("/admin-dashboard/users/{userID}/delete", h.DeleteUser)
		r.Post("/admin-dashboard/products/{productID}/delete", h.AdminDeleteProduct)
	})

	return r
}
