package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"noirlabs_billing/internal/adapter/http/dto/response"
	"noirlabs_billing/internal/usecase"
)

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// Stats godoc
// @Summary   Dashboard counters
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.AdminStatsResponse
// @Failure   403  {object}  pkg.HTTPError
// @Router    /api/admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAdminStats(stats))
}

// Waitlist godoc
// @Summary   Every waitlist signup, newest first
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {array}   response.WaitlistRowResponse
// @Failure   403  {object}  pkg.HTTPError
// @Router    /api/admin/waitlist [get]
func (h *AdminHandler) Waitlist(c *gin.Context) {
	entries, err := h.usecase.Waitlist(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWaitlistEntries(entries))
}

// Logs godoc
// @Summary   Recent activity feed, newest first
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Param     limit  query     int  false  "Entries to return (default 5, max 50)"
// @Success   200    {array}   response.SystemLogResponse
// @Failure   400    {object}  pkg.HTTPError
// @Failure   403    {object}  pkg.HTTPError
// @Router    /api/admin/logs [get]
func (h *AdminHandler) Logs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, errInvalidRequest.WithDetails(map[string]string{"limit": "must be an integer"}))
			return
		}
		limit = n
	}

	logs, err := h.usecase.RecentLogs(c.Request.Context(), limit)
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSystemLogs(logs))
}
