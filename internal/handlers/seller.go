package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scrapegenie/storefront/internal/flash"
	"github.com/scrapegenie/storefront/internal/marketplace"
)

type sellerData struct {
	Orders    []marketplace.Order
	Products  []marketplace.Product
	Statuses  []marketplace.OrderStatus
	LoadError string
}

// SellerDashboard renders the seller's orders and listings.
func (h *Handlers) SellerDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := h.sessionFrom(r)
	data := sellerData{Statuses: marketplace.OrderStatuses()}

	orders, err := h.api.OrdersBySeller(ctx, sess.Credential, sess.Identity.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to load orders", slog.Any("error", err))
		data.LoadError = marketplace.UserMessage(err)
	} else {
		data.Orders = orders
	}

	if products, err := h.api.ProductsBySeller(ctx, sess.Credential, sess.Identity.ID); err != nil {
		h.logger.WarnContext(ctx, "failed to load seller products", slog.Any("error", err))
	} else {
		data.Products = products
	}

	h.render(w, r, http.StatusOK, "seller-dashboard", "Seller Dashboard", data)
}

// UpdateOrderStatus moves an order to the submitted fulfillment state.
func (h *Handlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)
	orderID := chi.URLParam(r, "orderID")

	status, err := marketplace.ParseOrderStatus(r.PostFormValue("status"))
	if err != nil {
		flash.Error(h.cookies, w, "Update failed", "Choose a valid order status.")
		http.Redirect(w, r, "/seller-dashboard", http.StatusSeeOther)
		return
	}

	if err := h.api.UpdateOrderStatus(r.Context(), sess.Credential, orderID, status); err != nil {
		h.logger.WarnContext(r.Context(), "order status update failed", slog.Any("error", err))
		flash.Error(h.cookies, w, "Update failed", marketplace.UserMessage(err))
	} else {
		flash.Success(h.cookies, w, "Order updated", "Status set to "+string(status)+".")
	}

	http.Redirect(w, r, "/seller-dashboard", http.StatusSeeOther)
}

// SellerDeleteProduct removes one of the seller's own listings.
func (h *Handlers) SellerDeleteProduct(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)
	productID := chi.URLParam(r, "productID")

	if err := h.api.DeleteProduct(r.Context(), sess.Credential, productID); err != nil {
		h.logger.WarnContext(r.Context(), "product delete failed", slog.Any("error", err))
		flash.Error(h.cookies, w, "Delete failed", marketplace.UserMessage(err))
	} else {
		flash.Success(h.cookies, w, "Listing removed", "The product is no longer for sale.")
	}

	http.Redirect(w, r, "/seller-dashboard", http.StatusSeeOther)
}
