package userclient_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shophub/order-placement-service/internal/config"
	"github.com/shophub/order-placement-service/internal/entities"
	"github.com/shophub/order-placement-service/internal/userclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, url string) *userclient.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return userclient.New(logger, config.UserService{URL: url, Timeout: time.Second})
}

func TestClient_UserByID(t *testing.T) {
	t.Run("resolves existing user", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/7", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"userId":7,"firstName":"Ann","lastName":"Lee","email":"ann@example.com","phone":"+1234567"}`))
		}))
		defer srv.Close()

		client := newClient(t, srv.URL)

		got, err := client.UserByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, entities.User{
			UserID:    7,
			FirstName: "Ann",
			LastName:  "Lee",
			Email:     "ann@example.com",
			Phone:     "+1234567",
		}, got)
	})

	t.Run("404 means the user does not exist", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := newClient(t, srv.URL)

		_, err := client.UserByID(context.Background(), 99)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("server error means unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := newClient(t, srv.URL)

		_, err := client.UserByID(context.Background(), 7)
		assert.ErrorIs(t, err, entities.ErrUserUnreachable)
	})

	t.Run("malformed body means unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"userId":`))
		}))
		defer srv.Close()

		client := newClient(t, srv.URL)

		_, err := client.UserByID(context.Background(), 7)
		assert.ErrorIs(t, err, entities.ErrUserUnreachable)
	})

	t.Run("connection failure means unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		client := newClient(t, srv.URL)

		_, err := client.UserByID(context.Background(), 7)
		assert.ErrorIs(t, err, entities.ErrUserUnreachable)
	})
}
