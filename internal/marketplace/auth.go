package marketplace

import (
	"context"
	"net/http"
)

// Profile returns the identity bound to the given credential. A rejection
// means the credential is missing, expired, or revoked; the caller treats
// that as an ordinary unauthenticated state.
func (c *Client) Profile(ctx context.Context, credential string) (Identity, error) {
	var identity Identity
	if _, err := c.do(ctx, http.MethodGet, "/auth/profile", credential, nil, &identity); err != nil {
		return Identity{}, err
	}
	return identity, nil
}

// RegisterParams is the sign-up payload.
type RegisterParams struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Register creates an account and returns the new identity together with
// the session credential issued by the API.
func (c *Client) Register(ctx context.Context, params RegisterParams) (Identity, string, error) {
	var identity Identity
	cookies, err := c.do(ctx, http.MethodPost, "/auth/register", "", params, &identity)
	if err != nil {
		return Identity{}, "", err
	}
	return identity, credentialFromCookies(cookies), nil
}

// LoginParams is the sign-in payload. RememberMe is a pass-through hint;
// the backend may use it to extend credential lifetime, but it never
// changes the authorization semantics of the session.
type LoginParams struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// Login exchanges credentials for an identity and a session credential.
func (c *Client) Login(ctx context.Context, params LoginParams) (Identity, string, error) {
	var identity Identity
	cookies, err := c.do(ctx, http.MethodPost, "/auth/login", "", params, &identity)
	if err != nil {
		return Identity{}, "", err
	}
	return identity, credentialFromCookies(cookies), nil
}

// Logout asks the API to terminate the session. The response body is
// ignored; callers clear local state regardless of the outcome.
func (c *Client) Logout(ctx context.Context, credential string) error {
	_, err := c.do(ctx, http.MethodGet, "/auth/logout", credential, nil, nil)
	return err
}
