package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
)

// GenerateTodo godoc
// @Summary     Generate a todo draft from text
// @Description Parses one free-text sentence into a structured todo draft. Nothing is stored.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Free text"
// @Success     200  {object} draftResp
// @Failure     400  {object} response.ErrorResp "Invalid text"
// @Failure     401  {object} response.ErrorResp "Unauthorized"
// @Failure     429  {object} response.ErrorResp "Model quota exceeded"
// @Failure     500  {object} response.ErrorResp "Model call failed"
// @Router      /api/ai/generate-todo [POST]
func (h *handler) GenerateTodo(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	draft, err := h.uc.GenerateTodo(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "assistant.http.GenerateTodo uc.GenerateTodo: %v", err)
		response.Error(c, h.mapError(err, msgGenerateFail), h.withDetails)
		return
	}

	response.OK(c, h.newDraftResp(draft))
}

// AnalyzeTodos godoc
// @Summary     Analyze todos for a period
// @Description Summarizes the given todos for today or this week with urgent items, insights and recommendations.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Todos and period (today|week)"
// @Success     200  {object} analysisResp
// @Failure     400  {object} response.ErrorResp "Invalid todos or period"
// @Failure     401  {object} response.ErrorResp "Unauthorized"
// @Failure     429  {object} response.ErrorResp "Model quota exceeded"
// @Failure     500  {object} response.ErrorResp "Model call failed"
// @Router      /api/ai/analyze-todos [POST]
func (h *handler) AnalyzeTodos(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	result, err := h.uc.AnalyzeTodos(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "assistant.http.AnalyzeTodos uc.AnalyzeTodos: %v", err)
		response.Error(c, h.mapError(err, msgAnalyzeFail), h.withDetails)
		return
	}

	response.OK(c, h.newAnalysisResp(result))
}
