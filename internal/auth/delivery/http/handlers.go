package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
)

// Login godoc
// @Summary     Sign in with email and password
// @Description Starts a cookie session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.ErrorResp "Missing fields"
// @Failure     401  {object} response.ErrorResp "Wrong credentials"
// @Router      /api/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	out, err := h.uc.SignIn(ctx, h.cookies(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "auth.http.Login uc.SignIn: %v", err)
		response.Error(c, h.mapError(err), h.withDetails)
		return
	}

	response.OK(c, h.newSessionResp(out))
}

// Refresh godoc
// @Summary     Refresh the cookie session
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.ErrorResp "No session"
// @Router      /api/auth/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Refresh(ctx, h.cookies(c))
	if err != nil {
		h.l.Warnf(ctx, "auth.http.Refresh uc.Refresh: %v", err)
		response.Error(c, h.mapError(err), h.withDetails)
		return
	}

	response.OK(c, h.newSessionResp(out))
}

// Logout godoc
// @Summary     Sign out
// @Description Revokes the session and clears the cookies.
// @Tags        Auth
// @Success     204
// @Router      /api/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.SignOut(ctx, h.cookies(c)); err != nil {
		h.l.Errorf(ctx, "auth.http.Logout uc.SignOut: %v", err)
		response.Error(c, h.mapError(err), h.withDetails)
		return
	}

	c.Status(http.StatusNoContent)
}

// Focus godoc
// @Summary     Report that the app regained focus
// @Description The next todo list read reloads from the backend.
// @Tags        Auth
// @Success     204
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Router      /api/auth/focus [POST]
func (h *handler) Focus(c *gin.Context) {
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	h.uc.Focus(c.Request.Context(), sc)
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Router      /api/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	response.OK(c, h.newMeResp(sc))
}
