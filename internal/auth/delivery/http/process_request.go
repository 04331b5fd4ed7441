package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/internal/model"
	"smart-todo/pkg/response"
)

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.NewHTTPError(http.StatusBadRequest, errMalformedBody.Error(), err)
	}
	return req, nil
}

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, response.NewHTTPError(http.StatusUnauthorized, errUnauthorized.Error(), nil)
	}
	return sc, nil
}
