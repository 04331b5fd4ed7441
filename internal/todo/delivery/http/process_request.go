package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/internal/model"
	"smart-todo/pkg/response"
)

// scope returns the caller set by the Auth middleware.
func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, response.NewHTTPError(http.StatusUnauthorized, errUnauthorized.Error(), nil)
	}
	return sc, nil
}

func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, badRequest(errMalformedBody, err)
	}
	return sc, req, nil
}

// processCreateReq binds a create or draft approval body.
func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, badRequest(errMalformedBody, err)
	}
	return sc, req, nil
}

// processUpdateReq binds the patch body and the URI id.
func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, id, err := h.processIDReq(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, badRequest(errMalformedBody, err)
	}
	req.ID = id
	return sc, req, nil
}

func (h *handler) processIDReq(c *gin.Context) (model.Scope, string, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, "", err
	}
	id := c.Param("id")
	if id == "" {
		return sc, "", badRequest(errMissingID, nil)
	}
	return sc, id, nil
}

func (h *handler) processAnalyzeReq(c *gin.Context) (model.Scope, analyzeReq, error) {
	var req analyzeReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, badRequest(errMalformedBody, err)
	}
	return sc, req, nil
}
