package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/scrapegenie/storefront/internal/auth"
	"github.com/scrapegenie/storefront/internal/flash"
	"github.com/scrapegenie/storefront/internal/marketplace"
)

type homeData struct {
	Products  []marketplace.Product
	LoadError string
}

// Home renders the storefront with the product catalog. A backend failure
// degrades to an empty catalog with an inline message; the page itself
// always renders.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	data := homeData{}

	products, err := h.api.Products(r.Context())
	if err != nil {
		h.logger.WarnContext(r.Context(), "failed to load products", slog.Any("error", err))
		data.LoadError = "Products are unavailable right now. " + marketplace.UserMessage(err)
	} else {
		data.Products = products
	}

	h.render(w, r, http.StatusOK, "home", "", data)
}

// Profile renders the account page. Guests reach it too: the gate allows
// them through and the template shows a sign-in notice instead of data.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "profile", "Profile", nil)
}

type errorData struct {
	Message string
}

// NotFound renders the error page for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "error", "Not Found", errorData{
		Message: "That page does not exist.",
	})
}

// sellForm carries the listing form's raw values for re-rendering.
type sellForm struct {
	Name        string
	Description string
	Price       string
	Condition   string
	Category    string
	Photo       string
}

type sellData struct {
	Form       sellForm
	Errors     auth.FieldErrors
	Conditions []string
	Categories []string
}

func newSellData(form sellForm, errs auth.FieldErrors) sellData {
	if form.Condition == "" {
		form.Condition = "good"
	}
	if form.Category == "" {
		form.Category = "other"
	}
	return sellData{
		Form:       form,
		Errors:     errs,
		Conditions: []string{"new", "like-new", "good", "fair", "poor"},
		Categories: []string{"electronics", "clothing", "home", "sports", "toys", "books", "other"},
	}
}

// SellPage renders the new-listing form. The gate already ensured the
// visitor is an approved seller.
func (h *Handlers) SellPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "sell", "Sell an Item", newSellData(sellForm{}, nil))
}

// SellSubmit validates and publishes a new listing.
func (h *Handlers) SellSubmit(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)

	form := sellForm{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Price:       strings.TrimSpace(r.PostFormValue("price")),
		Condition:   r.PostFormValue("condition"),
		Category:    r.PostFormValue("category"),
		Photo:       strings.TrimSpace(r.PostFormValue("photo")),
	}

	errs := make(auth.FieldErrors)
	if form.Name == "" {
		errs["name"] = "Name is required"
	}
	if form.Description == "" {
		errs["description"] = "Description is required"
	}
	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price <= 0 {
		errs["price"] = "Enter a price greater than zero"
	}
	if !errs.Valid() {
		h.render(w, r, http.StatusUnprocessableEntity, "sell", "Sell an Item", newSellData(form, errs))
		return
	}

	params := marketplace.NewProductParams{
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		Condition:   form.Condition,
		Category:    form.Category,
	}
	if form.Photo != "" {
		params.Photos = []string{form.Photo}
	}

	if _, err := h.api.CreateProduct(r.Context(), sess.Credential, params); err != nil {
		h.logger.WarnContext(r.Context(), "failed to create product", slog.Any("error", err))
		errs["form"] = marketplace.UserMessage(err)
		h.render(w, r, http.StatusUnprocessableEntity, "sell", "Sell an Item", newSellData(form, errs))
		return
	}

	flash.Success(h.cookies, w, "Listing published", form.Name+" is now live.")
	http.Redirect(w, r, "/seller-dashboard", http.StatusSeeOther)
}
