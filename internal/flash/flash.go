// Package flash carries one-shot user notifications across redirects using
// the signed flash cookie. Every credential operation and dashboard action
// surfaces exactly one notice, success or failure.
package flash

import (
	"net/http"

	"github.com/scrapegenie/storefront/internal/cookie"
)

const noticeKey = "notice"

// Variants mirror the toast styles of the storefront UI.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notice is a single dismissible notification.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant,omitempty"`
}

// Success queues an ordinary notice for the next rendered page.
func Success(m *cookie.Manager, w http.ResponseWriter, title, description string) {
	set(m, w, Notice{Title: title, Description: description, Variant: VariantDefault})
}

// Error queues a destructive notice for the next rendered page.
func Error(m *cookie.Manager, w http.ResponseWriter, title, description string) {
	set(m, w, Notice{Title: title, Description: description, Variant: VariantDestructive})
}

// Pop returns the queued notice, if any, deleting it in the same response.
func Pop(m *cookie.Manager, w http.ResponseWriter, r *http.Request) (Notice, bool) {
	var n Notice
	err := m.GetFlash(w, r, noticeKey, &n)
	if err != nil {
		return Notice{}, false
	}
	return n, n.Title != ""
}

func set(m *cookie.Manager, w http.ResponseWriter, n Notice) {
	// A notice that cannot be queued is dropped; rendering still succeeds.
	_ = m.SetFlash(w, noticeKey, n)
}
