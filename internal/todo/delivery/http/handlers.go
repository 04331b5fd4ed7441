package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/model"
	"smart-todo/pkg/response"
)

// List godoc
// @Summary     List todos
// @Description Returns the caller's todos, newest first. Todos waiting for deletion are hidden.
// @Tags        Todos
// @Produce     json
// @Param       refresh query bool false "Reload from the backend instead of the session cache"
// @Success     200 {array}  taskResp
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     500 {object} response.ErrorResp "Backend error"
// @Router      /api/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	tasks, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "todo.http.List uc.List: %v", err)
		response.Error(c, h.mapError(err, msgLoadFail), h.withDetails)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Create godoc
// @Summary     Create a todo
// @Description Creates a todo. Priority defaults to medium.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo fields"
// @Success     201  {object} taskResp
// @Failure     400  {object} response.ErrorResp "Invalid fields"
// @Failure     401  {object} response.ErrorResp "Unauthorized"
// @Failure     500  {object} response.ErrorResp "Backend error"
// @Router      /api/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	task, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "todo.http.Create uc.Create: %v", err)
		response.Error(c, h.mapError(err, msgSaveFail), h.withDetails)
		return
	}

	response.Created(c, h.newTaskResp(task))
}

// ApproveDraft godoc
// @Summary     Save an AI draft
// @Description Normalizes a generated (and possibly edited) draft and stores it as a todo.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Draft fields"
// @Success     201  {object} taskResp
// @Failure     400  {object} response.ErrorResp "Invalid fields"
// @Failure     401  {object} response.ErrorResp "Unauthorized"
// @Failure     500  {object} response.ErrorResp "Backend error"
// @Router      /api/todos/drafts [POST]
func (h *handler) ApproveDraft(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	task, err := h.uc.ApproveDraft(ctx, sc, req.toDraft())
	if err != nil {
		h.l.Warnf(ctx, "todo.http.ApproveDraft uc.ApproveDraft: %v", err)
		response.Error(c, h.mapError(err, msgSaveFail), h.withDetails)
		return
	}

	response.Created(c, h.newTaskResp(task))
}

// Update godoc
// @Summary     Update a todo
// @Description Partial update. Omitted keys keep their value and null clears an optional field.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Todo ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.ErrorResp "Invalid fields"
// @Failure     401  {object} response.ErrorResp "Unauthorized"
// @Failure     404  {object} response.ErrorResp "Not found"
// @Failure     500  {object} response.ErrorResp "Backend error"
// @Router      /api/todos/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	task, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "todo.http.Update uc.Update: %v", err)
		response.Error(c, h.mapError(err, msgSaveFail), h.withDetails)
		return
	}

	response.OK(c, h.newTaskResp(task))
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Flips the completed flag and stamps or clears completed_at.
// @Tags        Todos
// @Produce     json
// @Param       id  path string true "Todo ID"
// @Success     200 {object} taskResp
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     404 {object} response.ErrorResp "Not found"
// @Failure     500 {object} response.ErrorResp "Backend error"
// @Router      /api/todos/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	task, err := h.uc.ToggleComplete(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "todo.http.Toggle uc.ToggleComplete: %v", err)
		response.Error(c, h.mapError(err, msgSaveFail), h.withDetails)
		return
	}

	response.OK(c, h.newTaskResp(task))
}

// Delete godoc
// @Summary     Delete a todo
// @Description Hides the todo at once and removes it after the undo window unless it is restored.
// @Tags        Todos
// @Produce     json
// @Param       id  path string true "Todo ID"
// @Success     202 {object} deleteResp
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     404 {object} response.ErrorResp "Not found"
// @Failure     500 {object} response.ErrorResp "Backend error"
// @Router      /api/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	out, err := h.uc.Delete(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "todo.http.Delete uc.Delete: %v", err)
		response.Error(c, h.mapError(err, msgDeleteFail), h.withDetails)
		return
	}

	response.Accepted(c, deleteResp{ID: out.ID, UndoUntil: out.UndoUntil})
}

// Restore godoc
// @Summary     Undo a delete
// @Description Brings back a todo whose undo window is still open.
// @Tags        Todos
// @Produce     json
// @Param       id  path string true "Todo ID"
// @Success     200 {object} restoreResp
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     404 {object} response.ErrorResp "Not found"
// @Failure     409 {object} response.ErrorResp "Undo window closed"
// @Router      /api/todos/{id}/restore [POST]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	if err := h.uc.Restore(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "todo.http.Restore uc.Restore: %v", err)
		response.Error(c, h.mapError(err, msgDeleteFail), h.withDetails)
		return
	}

	response.OK(c, restoreResp{ID: id})
}

// Analyze godoc
// @Summary     Analyze stored todos
// @Description Filters the caller's stored todos to today or this week and asks the assistant for a summary.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Period (today|week)"
// @Success     200  {object} analysisResp
// @Failure     400  {object} response.ErrorResp "Invalid period or nothing to analyze"
// @Failure     401  {object} response.ErrorResp "Unauthorized"
// @Failure     429  {object} response.ErrorResp "Rate limited"
// @Failure     500  {object} response.ErrorResp "Model call failed"
// @Router      /api/todos/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, h.withDetails)
		return
	}

	result, err := h.uc.Analyze(ctx, sc, model.Period(req.Period))
	if err != nil {
		h.l.Warnf(ctx, "todo.http.Analyze uc.Analyze: %v", err)
		response.Error(c, h.mapError(err, msgAnalyzeFail), h.withDetails)
		return
	}

	response.OK(c, h.newAnalysisResp(result))
}
