package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"noirlabs_billing/internal/adapter/http/dto/request"
	"noirlabs_billing/internal/adapter/http/dto/response"
	"noirlabs_billing/internal/adapter/http/middleware"
	"noirlabs_billing/internal/metrics"
	"noirlabs_billing/internal/usecase"
)

// InvoiceHandler handles HTTP requests for Xendit invoices.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	logger  *zap.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, logger *zap.Logger) *InvoiceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceHandler{usecase: uc, logger: logger.Named("invoice.handler")}
}

// CreateInvoice godoc
// @Summary      Create a hosted checkout invoice
// @Description  Authenticates the caller, checks that payer_email is the caller's email and creates a Xendit invoice. The provider's body is returned unchanged.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        Origin   header  string                          false  "Base URL for the redirect links"
// @Param        request  body    request.CreateInvoiceRequest    true   "Invoice"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      405  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/create-invoice [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if strings.TrimSpace(header) == "" {
		metrics.InvoiceRequest(metrics.OutcomeUnauthenticated)
		writeError(c, middleware.ErrMissingAuthorization)
		return
	}

	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Info("invalid body", zap.String("request_id", middleware.RequestIDFromContext(c)), zap.Error(err))
		metrics.InvoiceRequest(metrics.OutcomeInvalid)
		writeError(c, bindError(err))
		return
	}

	raw, err := h.usecase.CreateInvoice(c.Request.Context(), usecase.CreateInvoiceCommand{
		Token:   middleware.BearerToken(header),
		Origin:  c.GetHeader("Origin"),
		Request: req.ToEntity(),
	})
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// ListInvoices godoc
// @Summary   List the caller's invoices
// @Tags      invoices
// @Produce   json
// @Security  Bearer
// @Success   200  {array}   response.InvoiceResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /api/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	items, err := h.usecase.ListByUser(c.Request.Context(), identity)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceRecords(items))
}
