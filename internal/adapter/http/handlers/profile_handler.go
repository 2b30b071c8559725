package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"noirlabs_billing/internal/adapter/http/dto/request"
	"noirlabs_billing/internal/adapter/http/dto/response"
	"noirlabs_billing/internal/adapter/http/middleware"
	"noirlabs_billing/internal/usecase"
)

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// GetMine godoc
// @Summary   Current user's settings
// @Tags      profiles
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.ProfileResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /api/profiles/me [get]
func (h *ProfileHandler) GetMine(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	p, err := h.usecase.GetMine(c.Request.Context(), identity)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p, identity.Email))
}

// Update godoc
// @Summary   Replace the current user's settings
// @Tags      profiles
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     request  body      request.UpdateProfileRequest  true  "Settings"
// @Success   200      {object}  response.ProfileResponse
// @Failure   400      {object}  pkg.HTTPError
// @Failure   401      {object}  pkg.HTTPError
// @Router    /api/profiles/me [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(err))
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), identity, req.ToCommand())
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p, identity.Email))
}

// SelectProduct godoc
// @Summary   Record the lab product the user opened
// @Tags      profiles
// @Accept    json
// @Security  Bearer
// @Param     request  body  request.SelectProductRequest  true  "Product"
// @Success   204
// @Failure   400  {object}  pkg.HTTPError
// @Failure   401  {object}  pkg.HTTPError
// @Router    /api/profiles/me/active-product [put]
func (h *ProfileHandler) SelectProduct(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req request.SelectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(err))
		return
	}

	if err := h.usecase.SelectProduct(c.Request.Context(), identity, req.Product); err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
