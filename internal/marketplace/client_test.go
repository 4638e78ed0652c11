package marketplace_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapegenie/storefront/internal/marketplace"
)

func TestClient_Login(t *testing.T) {
	t.Run("captures identity and credential", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/auth/login", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "abc123", HttpOnly: true})
			_ = json.NewEncoder(w).Encode(map[string]any{
				"_id": "u1", "name": "Jamie", "email": "jamie@example.com", "role": "seller",
			})
		}))
		defer srv.Close()

		client, err := marketplace.New(srv.URL)
		require.NoError(t, err)

		identity, credential, err := client.Login(context.Background(), marketplace.LoginParams{
			Email:      "jamie@example.com",
			Password:   "secret1",
			RememberMe: true,
		})
		require.NoError(t, err)

		assert.Equal(t, "u1", identity.ID)
		assert.Equal(t, "Jamie", identity.DisplayName)
		assert.Equal(t, marketplace.RoleSeller, identity.Role)
		assert.Equal(t, "sid=abc123", credential)
		assert.Equal(t, true, gotBody["rememberMe"])
	})

	t.Run("rejection carries backend message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
		}))
		defer srv.Close()

		client, err := marketplace.New(srv.URL)
		require.NoError(t, err)

		_, _, err = client.Login(context.Background(), marketplace.LoginParams{Email: "a@b.co", Password: "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, marketplace.ErrRejected)

		var rejected *marketplace.RejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, http.StatusUnauthorized, rejected.Status)
		assert.Equal(t, "Invalid credentials", rejected.Message)
		assert.Equal(t, "Invalid credentials", marketplace.UserMessage(err))
	})

	t.Run("rejection without body falls back to status text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client, err := marketplace.New(srv.URL)
		require.NoError(t, err)

		_, err = client.Profile(context.Background(), "sid=abc")
		var rejected *marketplace.RejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, http.StatusText(http.StatusBadGateway), rejected.Message)
	})
}

func TestClient_Unavailable(t *testing.T) {
	t.Run("unreachable host", func(t *testing.T) {
		client, err := marketplace.New("http://127.0.0.1:1")
		require.NoError(t, err)

		_, err = client.Products(context.Background())
		assert.ErrorIs(t, err, marketplace.ErrUnavailable)
	})

	t.Run("hung backend fails by timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		client, err := marketplace.New(srv.URL, marketplace.WithTimeout(50*time.Millisecond))
		require.NoError(t, err)

		_, err = client.Products(context.Background())
		assert.ErrorIs(t, err, marketplace.ErrUnavailable)
	})
}

func TestClient_CredentialReplay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "sid=abc123; csrf=zz", r.Header.Get("Cookie"))
		_ = json.NewEncoder(w).Encode(marketplace.Identity{ID: "u1", Role: marketplace.RoleUser})
	}))
	defer srv.Close()

	client, err := marketplace.New(srv.URL)
	require.NoError(t, err)

	identity, err := client.Profile(context.Background(), "sid=abc123; csrf=zz")
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.ID)
}

func TestClient_Products(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"products": []map[string]any{
					{"_id": "p1", "name": "Lamp", "price": 12.5},
					{"_id": "p2", "name": "Desk", "price": 80},
				},
			},
		})
	}))
	defer srv.Close()

	client, err := marketplace.New(srv.URL)
	require.NoError(t, err)

	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Lamp", products[0].Name)
	assert.Equal(t, 80.0, products[1].Price)
}

func TestClient_UpdateOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/orders/o1", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "shipped", payload["status"])
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := marketplace.New(srv.URL)
	require.NoError(t, err)

	err = client.UpdateOrderStatus(context.Background(), "sid=s", "o1", marketplace.OrderShipped)
	require.NoError(t, err)
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"user", "seller", "admin"} {
		role, err := marketplace.ParseRole(valid)
		require.NoError(t, err)
		assert.True(t, role.Valid())
	}

	_, err := marketplace.ParseRole("superadmin")
	assert.Error(t, err)
}

func TestParseOrderStatus(t *testing.T) {
	status, err := marketplace.ParseOrderStatus("delivered")
	require.NoError(t, err)
	assert.Equal(t, marketplace.OrderDelivered, status)

	_, err = marketplace.ParseOrderStatus("lost")
	assert.Error(t, err)
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := marketplace.New("   ")
	assert.Error(t, err)
}

func TestUserMessage_Unknown(t *testing.T) {
	assert.Equal(t, "An unknown error occurred", marketplace.UserMessage(errors.New("boom")))
	assert.Equal(t, "", marketplace.UserMessage(nil))
}
