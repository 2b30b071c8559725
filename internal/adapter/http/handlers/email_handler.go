package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"noirlabs_billing/internal/adapter/http/dto/request"
	"noirlabs_billing/internal/adapter/http/dto/response"
	"noirlabs_billing/internal/adapter/http/middleware"
	"noirlabs_billing/internal/usecase"
)

type EmailHandler struct {
	usecase usecase.IEmailUseCase
}

func NewEmailHandler(uc usecase.IEmailUseCase) *EmailHandler {
	return &EmailHandler{usecase: uc}
}

// SendWelcome godoc
// @Summary   Send the welcome email to the caller
// @Tags      emails
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     request  body      request.WelcomeEmailRequest  false  "Display name"
// @Success   200      {object}  response.EmailSentResponse
// @Failure   502      {object}  pkg.HTTPError
// @Router    /api/emails/welcome [post]
func (h *EmailHandler) SendWelcome(c *gin.Context) {
	var req request.WelcomeEmailRequest
	// The body is optional.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, bindError(err))
		return
	}
	identity, _ := middleware.IdentityFromContext(c)

	data, err := h.usecase.SendWelcome(c.Request.Context(), identity, req.Name)
	if err != nil {
		writeError(c, mapEmailError(err))
		return
	}
	c.JSON(http.StatusOK, response.EmailSentResponse{Success: true, Data: data})
}
