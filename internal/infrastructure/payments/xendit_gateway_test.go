package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"noirlabs_billing/internal/config"
	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/infrastructure/httpx"
	"noirlabs_billing/internal/usecase/interfaces"
)

var testPayload = entities.InvoicePayload{
	ExternalID:         "ord-1",
	Amount:             150000,
	PayerEmail:         "alice@example.com",
	Description:        "Researcher plan",
	InvoiceDuration:    86400,
	Currency:           "IDR",
	SuccessRedirectURL: "https://app.example/profile?payment=success",
	FailureRedirectURL: "https://app.example/pricing?payment=failed",
}

func TestXenditGateway_CreateInvoice(t *testing.T) {
	t.Run("sends basic auth and relays body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v2/invoices", r.URL.Path)
			// base64("xnd_test:")
			require.Equal(t, "Basic eG5kX3Rlc3Q6", r.Header.Get("Authorization"))
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var got entities.InvoicePayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			require.Equal(t, testPayload, got)

			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{"id":"inv-1","invoice_url":"https://checkout.xendit.co/web/inv-1"}`)
		}))
		defer srv.Close()

		g := NewXenditGateway(config.XenditConfig{SecretKey: "xnd_test", BaseURL: srv.URL}, httpx.NewClient(5*time.Second), nil)
		raw, err := g.CreateInvoice(context.Background(), testPayload)
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"inv-1","invoice_url":"https://checkout.xendit.co/web/inv-1"}`, string(raw))
	})

	t.Run("provider rejection keeps status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error_code":"API_VALIDATION_ERROR","message":"amount too low"}`)
		}))
		defer srv.Close()

		g := NewXenditGateway(config.XenditConfig{SecretKey: "k", BaseURL: srv.URL}, httpx.NewClient(5*time.Second), nil)
		_, err := g.CreateInvoice(context.Background(), testPayload)

		var gwErr *interfaces.GatewayError
		require.True(t, errors.As(err, &gwErr))
		require.Equal(t, http.StatusBadRequest, gwErr.HTTPStatus())
		require.Equal(t, json.RawMessage(`{"error_code":"API_VALIDATION_ERROR","message":"amount too low"}`), gwErr.Details)
	})

	t.Run("non json error body kept as text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "bad gateway")
		}))
		defer srv.Close()

		g := NewXenditGateway(config.XenditConfig{SecretKey: "k", BaseURL: srv.URL}, httpx.NewClient(5*time.Second), nil)
		_, err := g.CreateInvoice(context.Background(), testPayload)

		var gwErr *interfaces.GatewayError
		require.True(t, errors.As(err, &gwErr))
		require.Equal(t, http.StatusBadGateway, gwErr.HTTPStatus())
		require.Equal(t, "bad gateway", gwErr.Details)
	})

	t.Run("oversized success body is rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"id":"inv-1","pad":"`+strings.Repeat("x", maxResponseSize)+`"}`)
		}))
		defer srv.Close()

		g := NewXenditGateway(config.XenditConfig{SecretKey: "k", BaseURL: srv.URL}, httpx.NewClient(5*time.Second), nil)
		raw, err := g.CreateInvoice(context.Background(), testPayload)

		require.Nil(t, raw)
		var gwErr *interfaces.GatewayError
		require.True(t, errors.As(err, &gwErr))
		require.Equal(t, http.StatusInternalServerError, gwErr.HTTPStatus())
	})

	t.Run("body at the size limit is relayed", func(t *testing.T) {
		prefix, suffix := `{"pad":"`, `"}`
		body := prefix + strings.Repeat("x", maxResponseSize-len(prefix)-len(suffix)) + suffix
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, body)
		}))
		defer srv.Close()

		g := NewXenditGateway(config.XenditConfig{SecretKey: "k", BaseURL: srv.URL}, httpx.NewClient(5*time.Second), nil)
		raw, err := g.CreateInvoice(context.Background(), testPayload)
		require.NoError(t, err)
		require.Len(t, raw, maxResponseSize)
	})

	t.Run("non json success body is rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "<html>ok</html>")
		}))
		defer srv.Close()

		g := NewXenditGateway(config.XenditConfig{SecretKey: "k", BaseURL: srv.URL}, httpx.NewClient(5*time.Second), nil)
		_, err := g.CreateInvoice(context.Background(), testPayload)

		var gwErr *interfaces.GatewayError
		require.True(t, errors.As(err, &gwErr))
		require.Equal(t, http.StatusInternalServerError, gwErr.HTTPStatus())
	})

	t.Run("transport failure maps to 500", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		g := NewXenditGateway(config.XenditConfig{SecretKey: "k", BaseURL: url}, httpx.NewClient(time.Second), nil)
		_, err := g.CreateInvoice(context.Background(), testPayload)

		var gwErr *interfaces.GatewayError
		require.True(t, errors.As(err, &gwErr))
		require.Equal(t, 0, gwErr.Status)
		require.Equal(t, http.StatusInternalServerError, gwErr.HTTPStatus())
	})

	t.Run("missing secret", func(t *testing.T) {
		g := NewXenditGateway(config.XenditConfig{BaseURL: "http://unused"}, httpx.NewClient(time.Second), nil)
		_, err := g.CreateInvoice(context.Background(), testPayload)
		require.ErrorIs(t, err, interfaces.ErrPaymentGatewayNotConfigured)
	})

	t.Run("mock mode", func(t *testing.T) {
		g := NewXenditGateway(config.XenditConfig{Mock: "true"}, nil, nil)
		raw, err := g.CreateInvoice(context.Background(), testPayload)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		require.NotEmpty(t, body["id"])
		require.Equal(t, "PENDING", body["status"])
		require.Equal(t, testPayload.SuccessRedirectURL, body["invoice_url"])
		require.Equal(t, "ord-1", body["external_id"])
	})
}
