package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"noirlabs_billing/internal/infrastructure/httpx"
	"noirlabs_billing/internal/usecase/interfaces"
)

func TestSupabaseAuthenticator_Authenticate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/v1/user", r.URL.Path)
			require.Equal(t, "anon", r.Header.Get("apikey"))
			require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			_, _ = io.WriteString(w, `{"id":"u-1","email":"alice@example.com","role":"authenticated"}`)
		}))
		defer srv.Close()

		a := NewSupabaseAuthenticator(srv.URL+"/", "anon", httpx.NewClient(5*time.Second), nil)
		id, err := a.Authenticate(context.Background(), "tok")
		require.NoError(t, err)
		require.Equal(t, "u-1", id.UserID)
		require.Equal(t, "alice@example.com", id.Email)
	})

	t.Run("rejected token carries provider message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `{"code":403,"error_code":"bad_jwt","msg":"invalid JWT: token is expired"}`)
		}))
		defer srv.Close()

		a := NewSupabaseAuthenticator(srv.URL, "anon", httpx.NewClient(5*time.Second), nil)
		_, err := a.Authenticate(context.Background(), "expired")

		var authErr *interfaces.AuthError
		require.True(t, errors.As(err, &authErr))
		require.Equal(t, "invalid JWT: token is expired", authErr.Reason)
		require.ErrorIs(t, err, interfaces.ErrUnauthenticated)
	})

	t.Run("no user in body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{}`)
		}))
		defer srv.Close()

		a := NewSupabaseAuthenticator(srv.URL, "anon", httpx.NewClient(5*time.Second), nil)
		_, err := a.Authenticate(context.Background(), "tok")

		var authErr *interfaces.AuthError
		require.True(t, errors.As(err, &authErr))
		require.Equal(t, "no user", authErr.Reason)
	})

	t.Run("transport failure is unauthenticated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		a := NewSupabaseAuthenticator(url, "anon", httpx.NewClient(time.Second), nil)
		_, err := a.Authenticate(context.Background(), "tok")
		require.ErrorIs(t, err, interfaces.ErrUnauthenticated)
	})

	t.Run("missing configuration", func(t *testing.T) {
		for _, a := range []*SupabaseAuthenticator{
			NewSupabaseAuthenticator("", "anon", http.DefaultClient, nil),
			NewSupabaseAuthenticator("https://x.supabase.co", "", http.DefaultClient, nil),
		} {
			_, err := a.Authenticate(context.Background(), "tok")
			require.ErrorIs(t, err, interfaces.ErrAuthNotConfigured)
		}
	})

	t.Run("empty token skips the provider", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { atomic.AddInt32(&calls, 1) }))
		defer srv.Close()

		a := NewSupabaseAuthenticator(srv.URL, "anon", httpx.NewClient(time.Second), nil)
		_, err := a.Authenticate(context.Background(), "")
		require.ErrorIs(t, err, interfaces.ErrUnauthenticated)
		require.Zero(t, atomic.LoadInt32(&calls))
	})
}
