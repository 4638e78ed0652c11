package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scrapegenie/storefront/internal/flash"
	"github.com/scrapegenie/storefront/internal/marketplace"
)

type adminData struct {
	Users          []marketplace.User
	PendingSellers []marketplace.User
	Products       []marketplace.Product
	LoadError      string
}

// AdminDashboard renders the moderation view: pending seller applications,
// the user roster, and every listing. Partial backend failures degrade to
// whichever sections loaded.
func (h *Handlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := h.sessionFrom(r)
	data := adminData{}

	users, err := h.api.Users(ctx, sess.Credential)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to load users", slog.Any("error", err))
		data.LoadError = marketplace.UserMessage(err)
	} else {
		data.Users = users
	}

	if sellers, err := h.api.PendingSellers(ctx, sess.Credential); err != nil {
		h.logger.WarnContext(ctx, "failed to load pending sellers", slog.Any("error", err))
	} else {
		data.PendingSellers = sellers
	}

	if products, err := h.api.Products(ctx); err != nil {
		h.logger.WarnContext(ctx, "failed to load products", slog.Any("error", err))
	} else {
		data.Products = products
	}

	h.render(w, r, http.StatusOK, "admin-dashboard", "Admin Dashboard", data)
}

// ApproveSeller accepts a pending seller application.
func (h *Handlers) ApproveSeller(w http.ResponseWriter, r *http.Request) {
	h.reviewSeller(w, r, true)
}

// RejectSeller declines a pending seller application.
func (h *Handlers) RejectSeller(w http.ResponseWriter, r *http.Request) {
	h.reviewSeller(w, r, false)
}

func (h *Handlers) reviewSeller(w http.ResponseWriter, r *http.Request, approved bool) {
	sess := h.sessionFrom(r)
	userID := chi.URLParam(r, "userID")

	if err := h.api.ApproveSeller(r.Context(), sess.Credential, userID, approved); err != nil {
		h.logger.WarnContext(r.Context(), "seller review failed", slog.Any("error", err))
		flash.Error(h.cookies, w, "Update failed", marketplace.UserMessage(err))
	} else if approved {
		flash.Success(h.cookies, w, "Seller approved", "The seller can now publish listings.")
	} else {
		flash.Success(h.cookies, w, "Application rejected", "The applicant has been notified.")
	}

	http.Redirect(w, r, "/admin-dashboard", http.StatusSeeOther)
}

// DeleteUser removes an account from the marketplace.
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)
	userID := chi.URLParam(r, "userID")

	if err := h.api.DeleteUser(r.Context(), sess.Credential, userID); err != nil {
		h.logger.WarnContext(r.Context(), "user delete failed", slog.Any("error", err))
		flash.Error(h.cookies, w, "Delete failed", marketplace.UserMessage(err))
	} else {
		flash.Success(h.cookies, w, "User deleted", "The account has been removed.")
	}

	http.Redirect(w, r, "/admin-dashboard", http.StatusSeeOther)
}

// AdminDeleteProduct removes any listing on behalf of a moderator.
func (h *Handlers) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)
	productID := chi.URLParam(r, "productID")

	if err := h.api.DeleteProduct(r.Context(), sess.Credential, productID); err != nil {
		h.logger.WarnContext(r.Context(), "product delete failed", slog.Any("error", err))
		flash.Error(h.cookies, w, "Delete failed", marketplace.UserMessage(err))
	} else {
		flash.Success(h.cookies, w, "Listing removed", "The product is no longer visible.")
	}

	http.Redirect(w, r, "/admin-dashboard", http.StatusSeeOther)
}
