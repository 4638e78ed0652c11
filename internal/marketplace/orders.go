package marketplace

import (
	"context"
	"fmt"
	"net/http"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists the valid statuses in progression order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}
}

// ParseOrderStatus validates a status submitted from the seller dashboard.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, status := range OrderStatuses() {
		if OrderStatus(s) == status {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Order is a purchase as reported by the API.
type Order struct {
	ID              string      `json:"_id"`
	ProductID       string      `json:"productId"`
	SellerID        string      `json:"sellerId"`
	BuyerID         string      `json:"buyerId"`
	Date            string      `json:"date"`
	Status          OrderStatus `json:"status"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	PaymentStatus   string      `json:"paymentStatus"`
}

// OrdersBySeller lists the orders placed against one seller's listings.
func (c *Client) OrdersBySeller(ctx context.Context, credential, sellerID string) ([]Order, error) {
	var orders []Order
	if _, err := c.do(ctx, http.MethodGet, "/orders/"+sellerID, credential, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to a new fulfillment state.
func (c *Client) UpdateOrderStatus(ctx context.Context, credential, orderID string, status OrderStatus) error {
	payload := struct {
		Status OrderStatus `json:"status"`
	}{Status: status}

	_, err := c.do(ctx, http.MethodPut, "/orders/"+orderID, credential, payload, nil)
	return err
}
