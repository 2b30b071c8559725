package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"noirlabs_billing/internal/adapter/http/dto/request"
	"noirlabs_billing/internal/adapter/http/dto/response"
	"noirlabs_billing/internal/usecase"
)

type WaitlistHandler struct {
	usecase usecase.IWaitlistUseCase
}

func NewWaitlistHandler(uc usecase.IWaitlistUseCase) *WaitlistHandler {
	return &WaitlistHandler{usecase: uc}
}

// Join godoc
// @Summary  Join the early access waitlist
// @Tags     waitlist
// @Accept   json
// @Produce  json
// @Param    request  body      request.JoinWaitlistRequest  true  "Signup"
// @Success  201      {object}  response.WaitlistEntryResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /api/waitlist [post]
func (h *WaitlistHandler) Join(c *gin.Context) {
	var req request.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(err))
		return
	}

	entry, sent, err := h.usecase.Join(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, mapWaitlistError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWaitlistEntry(entry, sent))
}

// Count godoc
// @Summary  Number of waitlist signups
// @Tags     waitlist
// @Produce  json
// @Success  200  {object}  response.WaitlistCountResponse
// @Router   /api/waitlist/count [get]
func (h *WaitlistHandler) Count(c *gin.Context) {
	n, err := h.usecase.Count(c.Request.Context())
	if err != nil {
		writeError(c, mapWaitlistError(err))
		return
	}
	c.JSON(http.StatusOK, response.WaitlistCountResponse{Count: n})
}
