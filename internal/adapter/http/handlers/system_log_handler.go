package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"noirlabs_billing/internal/adapter/http/dto/response"
	"noirlabs_billing/internal/adapter/http/middleware"
	"noirlabs_billing/internal/usecase"
)

type SystemLogHandler struct {
	usecase usecase.ISystemLogUseCase
}

func NewSystemLogHandler(uc usecase.ISystemLogUseCase) *SystemLogHandler {
	return &SystemLogHandler{usecase: uc}
}

// RecordLogin godoc
// @Summary   Write the sign-in line to the activity feed
// @Tags      system-logs
// @Produce   json
// @Security  Bearer
// @Success   201  {object}  response.SystemLogResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /api/system-logs/login [post]
func (h *SystemLogHandler) RecordLogin(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	entry, err := h.usecase.RecordLogin(c.Request.Context(), identity)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSystemLog(entry))
}
