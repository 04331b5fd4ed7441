package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds the generate request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(errMalformedBody, err)
	}
	return req, nil
}

// processAnalyzeReq binds and validates the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(errMalformedBody, err)
	}
	if err := req.validate(); err != nil {
		return req, badRequest(err, nil)
	}
	return req, nil
}
