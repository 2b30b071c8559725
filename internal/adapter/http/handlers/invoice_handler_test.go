package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"noirlabs_billing/internal/adapter/http/handlers/mocks"
	"noirlabs_billing/internal/adapter/http/middleware"
	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase"
	"noirlabs_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validInvoiceBody = `{"external_id":"ord-1","amount":150000,"payer_email":"alice@example.com","description":"Researcher plan"}`

func newInvoiceRouter(uc usecase.IInvoiceUseCase) *gin.Engine {
	h := NewInvoiceHandler(uc, nil)
	r := gin.New()
	r.POST("/api/create-invoice", h.CreateInvoice)
	return r
}

func postInvoice(r *gin.Engine, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/create-invoice", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not json: %s", w.Body.String())
	}
	return body
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	bearer := map[string]string{"Authorization": "Bearer tok", "Origin": "https://app.example"}

	t.Run("missing authorization header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)

		// Malformed body too: the header check comes first.
		w := postInvoice(newInvoiceRouter(uc), "{", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if got := decodeBody(t, w)["error"]; got != "Missing Authorization header" {
			t.Fatalf("unexpected error %v", got)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)

		w := postInvoice(newInvoiceRouter(uc), `{"amount":"lots"}`, bearer)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if _, ok := decodeBody(t, w)["details"]; !ok {
			t.Fatalf("expected details")
		}
	})

	t.Run("passes stripped token, origin and body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)

		uc.EXPECT().CreateInvoice(gomock.Any(), usecase.CreateInvoiceCommand{
			Token:  "tok",
			Origin: "https://app.example",
			Request: entities.InvoiceRequest{
				ExternalID:  "ord-1",
				Amount:      150000,
				PayerEmail:  "alice@example.com",
				Description: "Researcher plan",
			},
		}).Return(json.RawMessage(`{"id":"inv-1","invoice_url":"https://checkout.xendit.co/web/inv-1","extra":{"n":1}}`), nil)

		w := postInvoice(newInvoiceRouter(uc), validInvoiceBody, bearer)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"id":"inv-1","invoice_url":"https://checkout.xendit.co/web/inv-1","extra":{"n":1}}` {
			t.Fatalf("expected provider body verbatim, got %s", w.Body.String())
		}
	})

	errorCases := []struct {
		name    string
		err     error
		status  int
		message string
		details any
	}{
		{"validation", &usecase.ValidationError{Fields: map[string]string{"amount": "must be greater than 0"}}, http.StatusBadRequest, "Invalid request", map[string]any{"amount": "must be greater than 0"}},
		{"empty token", usecase.ErrMissingAuthorization, http.StatusUnauthorized, "Missing Authorization header", nil},
		{"token rejected", &interfaces.AuthError{Reason: "invalid JWT"}, http.StatusUnauthorized, "Unauthorized", "invalid JWT"},
		{"auth misconfigured", interfaces.ErrAuthNotConfigured, http.StatusInternalServerError, "Server configuration error: Supabase credentials missing", nil},
		{"email mismatch", usecase.ErrPayerEmailMismatch, http.StatusForbidden, "Email mismatch: Payer email must match authenticated user.", nil},
		{"xendit key missing", interfaces.ErrPaymentGatewayNotConfigured, http.StatusInternalServerError, "Server configuration error: XENDIT_SECRET_KEY missing", nil},
		{"gateway 400", &interfaces.GatewayError{Status: 400, Details: json.RawMessage(`{"error_code":"API_VALIDATION_ERROR"}`)}, http.StatusBadRequest, "Failed to create invoice", map[string]any{"error_code": "API_VALIDATION_ERROR"}},
		{"gateway 503", &interfaces.GatewayError{Status: 503, Details: "unavailable"}, http.StatusServiceUnavailable, "Failed to create invoice", "unavailable"},
		{"gateway transport", &interfaces.GatewayError{Details: "dial tcp: connection refused"}, http.StatusInternalServerError, "Failed to create invoice", "dial tcp: connection refused"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "An internal error occurred", nil},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIInvoiceUseCase(ctrl)
			uc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := postInvoice(newInvoiceRouter(uc), validInvoiceBody, bearer)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			body := decodeBody(t, w)
			if body["error"] != tc.message {
				t.Fatalf("unexpected error %v", body["error"])
			}
			if tc.details == nil {
				if _, ok := body["details"]; ok {
					t.Fatalf("unexpected details %v", body["details"])
				}
				return
			}
			want, _ := json.Marshal(tc.details)
			got, _ := json.Marshal(body["details"])
			if string(want) != string(got) {
				t.Fatalf("expected details %s, got %s", want, got)
			}
		})
	}
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc, nil)

	identity := entities.Identity{UserID: "u-1", Email: "alice@example.com"}
	r := gin.New()
	r.GET("/api/invoices", func(c *gin.Context) { middleware.SetIdentity(c, identity) }, h.ListInvoices)

	uc.EXPECT().ListByUser(gomock.Any(), identity).Return([]entities.InvoiceRecord{
		{ID: "inv-1", Status: entities.InvoiceStatusPending, CreatedAt: time.Now()},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil || len(items) != 1 || items[0]["id"] != "inv-1" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
