package marketplace

import (
	"context"
	"net/http"
)

// ProductSeller is the seller summary embedded in a product.
type ProductSeller struct {
	ID       string  `json:"_id"`
	FullName string  `json:"fullName"`
	Rating   float64 `json:"rating,omitempty"`
}

// Product is a marketplace listing.
type Product struct {
	ID                 string        `json:"_id"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	Price              float64       `json:"price"`
	Condition          string        `json:"condition"`
	Category           string        `json:"category"`
	Photos             []string      `json:"photos,omitempty"`
	Seller             ProductSeller `json:"seller"`
	Likes              int           `json:"likes,omitempty"`
	VerificationStatus string        `json:"verificationStatus,omitempty"`
}

// productsEnvelope matches the list endpoints' {data:{products:[...]}} shape.
type productsEnvelope struct {
	Data struct {
		Products []Product `json:"products"`
	} `json:"data"`
}

// Products lists all listings for the storefront.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var envelope productsEnvelope
	if _, err := c.do(ctx, http.MethodGet, "/products", "", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Products, nil
}

// ProductsBySeller lists the listings owned by one seller.
func (c *Client) ProductsBySeller(ctx context.Context, credential, sellerID string) ([]Product, error) {
	var envelope productsEnvelope
	if _, err := c.do(ctx, http.MethodGet, "/products/seller/"+sellerID, credential, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Products, nil
}

// NewProductParams is the create-listing payload.
type NewProductParams struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Condition   string   `json:"condition"`
	Category    string   `json:"category"`
	Photos      []string `json:"photos,omitempty"`
}

// CreateProduct publishes a new listing on behalf of the credential's seller.
func (c *Client) CreateProduct(ctx context.Context, credential string, params NewProductParams) (Product, error) {
	var product Product
	if _, err := c.do(ctx, http.MethodPost, "/products", credential, params, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// DeleteProduct removes a listing.
func (c *Client) DeleteProduct(ctx context.Context, credential, productID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/products/"+productID, credential, nil, nil)
	return err
}
