package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"noirlabs_billing/internal/adapter/http/dto/response"
	"noirlabs_billing/internal/adapter/http/middleware"
	"noirlabs_billing/internal/usecase"
)

type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
	now     func() time.Time
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc, now: time.Now}
}

// Activate godoc
// @Summary   Activate the researcher plan for 30 days
// @Tags      subscriptions
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.SubscriptionResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /api/subscriptions/activate [post]
func (h *SubscriptionHandler) Activate(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	sub, err := h.usecase.Activate(c.Request.Context(), identity)
	if err != nil {
		writeError(c, mapSubscriptionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSubscription(sub, h.now()))
}

// GetMine godoc
// @Summary   Current user's subscription
// @Tags      subscriptions
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.SubscriptionResponse
// @Failure   404  {object}  pkg.HTTPError
// @Router    /api/subscriptions/me [get]
func (h *SubscriptionHandler) GetMine(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	sub, err := h.usecase.GetMine(c.Request.Context(), identity)
	if err != nil {
		writeError(c, mapSubscriptionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSubscription(sub, h.now()))
}
