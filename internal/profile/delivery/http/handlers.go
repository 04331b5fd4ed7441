package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
)

// Get godoc
// @Summary     Get my profile
// @Tags        Profile
// @Produce     json
// @Success     200 {object} profileResp
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     404 {object} response.ErrorResp "No profile row"
// @Router      /api/profile [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	p, err := h.uc.Get(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "profile.http.Get uc.Get: %v", err)
		response.Error(c, h.mapError(err), h.withDetails)
		return
	}

	response.OK(c, h.newProfileResp(p))
}

// Update godoc
// @Summary     Update my profile
// @Description Changes display_name and/or avatar_url. null clears a field.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Fields to change"
// @Success     200  {object} profileResp
// @Failure     400  {object} response.ErrorResp "Invalid fields"
// @Failure     401  {object} response.ErrorResp "Unauthorized"
// @Failure     404  {object} response.ErrorResp "No profile row"
// @Router      /api/profile [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	p, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "profile.http.Update uc.Update: %v", err)
		response.Error(c, h.mapError(err), h.withDetails)
		return
	}

	response.OK(c, h.newProfileResp(p))
}
