package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/scrapegenie/storefront/internal/marketplace"
)

// sessionStatus is the JSON shape polled by the pending page script and
// available to any frontend embedding the storefront.
type sessionStatus struct {
	Authenticated bool             `json:"authenticated"`
	Loading       bool             `json:"loading"`
	Role          marketplace.Role `json:"role,omitempty"`
	DisplayName   string           `json:"displayName,omitempty"`
}

// SessionStatus reports the visitor's authentication state as JSON.
func (h *Handlers) SessionStatus(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)

	status := sessionStatus{
		Authenticated: sess.IsAuthenticated(),
		Loading:       sess.Loading,
	}
	if sess.Identity != nil {
		status.Role = sess.Identity.Role
		status.DisplayName = sess.Identity.DisplayName
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to encode session status")
	}
}
