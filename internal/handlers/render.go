package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/scrapegenie/storefront/internal/cookie"
	"github.com/scrapegenie/storefront/internal/flash"
	"github.com/scrapegenie/storefront/internal/marketplace"
	"github.com/scrapegenie/storefront/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Views renders pages from the embedded templates. Each page template is
// parsed together with the shared layout so blocks resolve per page.
type Views struct {
	appName   string
	templates map[string]*template.Template
	logger    *slog.Logger
}

// NewViews parses the embedded templates.
func NewViews(appName string, logger *slog.Logger) (*Views, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	pages := []string{
		"home", "sign-in", "sign-up", "profile",
		"admin-dashboard", "seller-dashboard", "sell",
		"pending", "error",
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &Views{appName: appName, templates: templates, logger: logger}, nil
}

// viewData is the data every template receives.
type viewData struct {
	AppName  string
	Title    string
	Identity *marketplace.Identity
	Loading  bool
	Notice   *flash.Notice
	Data     any
}

// Render writes the named page. The visitor identity comes from the request
// session and any queued flash notice is consumed here, so individual
// handlers only supply page data.
func (v *Views) Render(w http.ResponseWriter, r *http.Request, cookies *cookie.Manager, status int, page, title string, data any) {
	tmpl, ok := v.templates[page]
	if !ok {
		v.logger.ErrorContext(r.Context(), "unknown template", slog.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	vd := viewData{
		AppName: v.appName,
		Title:   title,
		Data:    data,
	}
	if sess, ok := middleware.GetSession(r.Context()); ok {
		vd.Identity = sess.Identity
		vd.Loading = sess.Loading
	}
	if notice, ok := flash.Pop(cookies, w, r); ok {
		vd.Notice = &notice
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", vd); err != nil {
		v.logger.ErrorContext(r.Context(), "render failed", slog.String("page", page), slog.Any("error", err))
	}
}
