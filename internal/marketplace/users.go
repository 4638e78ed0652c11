package marketplace

import (
	"context"
	"net/http"
)

// User is an account as listed on the admin dashboard.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Approved bool   `json:"approved,omitempty"`
}

// Users lists every account. Admin credential required.
func (c *Client) Users(ctx context.Context, credential string) ([]User, error) {
	var users []User
	if _, err := c.do(ctx, http.MethodGet, "/users", credential, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// PendingSellers lists seller accounts awaiting approval.
func (c *Client) PendingSellers(ctx context.Context, credential string) ([]User, error) {
	var sellers []User
	if _, err := c.do(ctx, http.MethodGet, "/users/sellers", credential, nil, &sellers); err != nil {
		return nil, err
	}
	return sellers, nil
}

// ApproveSeller accepts or rejects a pending seller application.
func (c *Client) ApproveSeller(ctx context.Context, credential, userID string, approved bool) error {
	payload := struct {
		Approved bool `json:"approved"`
	}{Approved: approved}

	_, err := c.do(ctx, http.MethodPut, "/users/"+userID, credential, payload, nil)
	return err
}

// DeleteUser removes an account. Admin credential required.
func (c *Client) DeleteUser(ctx context.Context, credential, userID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/users/"+userID, credential, nil, nil)
	return err
}
