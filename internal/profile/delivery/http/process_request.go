package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/internal/model"
	"smart-todo/pkg/response"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, response.NewHTTPError(http.StatusUnauthorized, errUnauthorized.Error(), nil)
	}
	return sc, nil
}

// processUpdateReq binds the patch body. A JSON null clears the field.
func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}

	var raw map[string]*string
	if err := c.ShouldBindJSON(&raw); err != nil {
		return sc, req, response.NewHTTPError(http.StatusBadRequest, errMalformedBody.Error(), err)
	}
	req.DisplayName = present(raw, "display_name")
	req.AvatarURL = present(raw, "avatar_url")
	return sc, req, nil
}

// present maps an absent key to nil and null to an empty value.
func present(raw map[string]*string, key string) *string {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	if v == nil {
		empty := ""
		return &empty
	}
	return v
}
