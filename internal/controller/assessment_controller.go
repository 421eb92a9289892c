package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/service"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

func assessmentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrSessionCompleted):
		util.BadRequest(ctx, "session is no longer in progress")
	case errors.Is(err, util.ErrQuestionNotFound):
		util.BadRequest(ctx, "unknown question")
	default:
		util.LogInternalError(ctx, err)
	}
}

// Start godoc
// @Summary Start an assessment session
// @Description Opens an in-progress session and returns the first question batch
// @Tags assessments
// @Produce  json
// @Security BearerAuth
// @Success 201 {object} util.Response{data=service.StartSessionResponse}
// @Router /api/assessments/start [post]
func (c *AssessmentController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	resp, err := c.AssessmentService.StartSession(ctx.Request.Context(), claims.UserID)
	if err != nil {
		assessmentError(ctx, err)
		return
	}
	util.Created(ctx, resp)
}

// Questions godoc
// @Summary Next question batch
// @Description Returns the current batch for an in-progress session; empty when nothing remains
// @Tags assessments
// @Produce  json
// @Security BearerAuth
// @Param   sessionId path int true "session id"
// @Success 200 {object} util.Response{data=[]model.AssessmentQuestion}
// @Failure 404 {object} util.Response "session not found"
// @Router /api/assessments/{sessionId}/questions [get]
func (c *AssessmentController) Questions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	batch, err := c.AssessmentService.NextBatch(ctx.Request.Context(), util.MustParseUint(ctx.Param("sessionId")), claims.UserID)
	if err != nil {
		assessmentError(ctx, err)
		return
	}
	util.Success(ctx, batch)
}

// Respond godoc
// @Summary Answer a question
// @Description Records one answer and returns the next batch; re-answering overwrites
// @Tags assessments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   sessionId path int true "session id"
// @Param   body body service.RespondRequest true "answer"
// @Success 200 {object} util.Response{data=service.RespondResponse}
// @Failure 400 {object} util.Response "unknown question or closed session"
// @Router /api/assessments/{sessionId}/respond [post]
func (c *AssessmentController) Respond(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RespondRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.AssessmentService.Respond(ctx.Request.Context(), util.MustParseUint(ctx.Param("sessionId")), claims.UserID, req)
	if err != nil {
		assessmentError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// Complete godoc
// @Summary Complete a session
// @Description Scores the responses and returns the session with its result
// @Tags assessments
// @Produce  json
// @Security BearerAuth
// @Param   sessionId path int true "session id"
// @Success 200 {object} util.Response{data=model.AssessmentSession}
// @Failure 404 {object} util.Response "session not found"
// @Router /api/assessments/{sessionId}/complete [post]
func (c *AssessmentController) Complete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.AssessmentService.Complete(ctx.Request.Context(), util.MustParseUint(ctx.Param("sessionId")), claims.UserID)
	if err != nil {
		assessmentError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// History godoc
// @Summary Own assessment history
// @Tags assessments
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.AssessmentSession}
// @Router /api/assessments [get]
func (c *AssessmentController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.AssessmentService.ListUserSessions(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}

// Get godoc
// @Summary Session detail
// @Description Owners and admins may read a session, including its result
// @Tags assessments
// @Produce  json
// @Security BearerAuth
// @Param   sessionId path int true "session id"
// @Success 200 {object} util.Response{data=model.AssessmentSession}
// @Failure 403 {object} util.Response "not the owner"
// @Router /api/assessments/{sessionId} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.AssessmentService.GetSession(util.MustParseUint(ctx.Param("sessionId")), claims.UserID, claims.Role == model.RoleAdmin)
	if err != nil {
		assessmentError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// --- admin: question bank ---

// CreateQuestion godoc
// @Summary Create a question
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.QuestionRequest true "question fields"
// @Success 201 {object} util.Response{data=model.AssessmentQuestion}
// @Failure 400 {object} util.Response "invalid payload"
// @Router /api/admin/assessments/questions [post]
func (c *AssessmentController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.AssessmentService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, q)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "question id"
// @Param   body body service.QuestionRequest true "question fields"
// @Success 200 {object} util.Response{data=model.AssessmentQuestion}
// @Failure 404 {object} util.Response "question not found"
// @Router /api/admin/assessments/questions/{id} [put]
func (c *AssessmentController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.AssessmentService.UpdateQuestion(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, q)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Soft delete; answered sessions keep their stored scores
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "question id"
// @Success 200 {object} util.Response
// @Router /api/admin/assessments/questions/{id} [delete]
func (c *AssessmentController) DeleteQuestion(ctx *gin.Context) {
	if err := c.AssessmentService.DeleteQuestion(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// GetQuestion godoc
// @Summary Question detail
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "question id"
// @Success 200 {object} util.Response{data=model.AssessmentQuestion}
// @Failure 404 {object} util.Response "question not found"
// @Router /api/admin/assessments/questions/{id} [get]
func (c *AssessmentController) GetQuestion(ctx *gin.Context) {
	q, err := c.AssessmentService.GetQuestion(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, q)
}

// ListQuestions godoc
// @Summary List questions
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/assessments/questions [get]
func (c *AssessmentController) ListQuestions(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	questions, total, err := c.AssessmentService.ListQuestions(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: questions, Total: total, Page: page, Limit: limit})
}

// Analytics godoc
// @Summary Assessment analytics
// @Description Session counts, completion rate, condition and severity distributions
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.AssessmentAnalytics}
// @Router /api/admin/assessments/analytics [get]
func (c *AssessmentController) Analytics(ctx *gin.Context) {
	analytics, err := c.AssessmentService.Analytics()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}

// Export godoc
// @Summary Export completed sessions as CSV
// @Tags admin
// @Produce  text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Router /api/admin/assessments/export [get]
func (c *AssessmentController) Export(ctx *gin.Context) {
	data, err := c.AssessmentService.ExportCSV(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filename := fmt.Sprintf("assessments-%s.csv", time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(200, "text/csv", data)
}

// ListSessions godoc
// @Summary List all sessions
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Param   status query string false "status filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/assessments/sessions [get]
func (c *AssessmentController) ListSessions(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	sessions, total, err := c.AssessmentService.ListSessions(page, limit, ctx.Query("status"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: sessions, Total: total, Page: page, Limit: limit})
}
