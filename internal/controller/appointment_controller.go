package controller

import (
	"errors"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/service"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	AppointmentService *service.AppointmentService
}

func NewAppointmentController(appointmentService *service.AppointmentService) *AppointmentController {
	return &AppointmentController{AppointmentService: appointmentService}
}

func appointmentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCounselorNotFound), errors.Is(err, util.ErrAppointmentNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrCounselorUnverified):
		util.BadRequest(ctx, "counselor is not verified")
	case errors.Is(err, util.ErrSlotTaken):
		util.Error(ctx, 409, "time slot unavailable")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// Book godoc
// @Summary Book an appointment
// @Description Books a video or chat session with a verified counselor
// @Tags appointments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.BookRequest true "booking details"
// @Success 201 {object} util.Response{data=model.Appointment}
// @Failure 409 {object} util.Response "time slot unavailable"
// @Router /api/appointments [post]
func (c *AppointmentController) Book(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.AppointmentService.Book(claims.UserID, req)
	if err != nil {
		appointmentError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// Get godoc
// @Summary Appointment detail
// @Tags appointments
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "appointment id"
// @Success 200 {object} util.Response{data=model.Appointment}
// @Failure 403 {object} util.Response "not a participant"
// @Router /api/appointments/{id} [get]
func (c *AppointmentController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	a, err := c.AppointmentService.Get(util.MustParseUint(ctx.Param("id")), claims.UserID, claims.Role == model.RoleAdmin)
	if err != nil {
		appointmentError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// List godoc
// @Summary Own appointments
// @Description Users see their bookings; counselors see their schedule
// @Tags appointments
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Param   status query string false "status filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/appointments [get]
func (c *AppointmentController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := pageParams(ctx)
	status := ctx.Query("status")

	var (
		list  []model.Appointment
		total int64
		err   error
	)
	if claims.Role == model.RoleCounselor {
		list, total, err = c.AppointmentService.ListForCounselor(claims.UserID, page, limit, status)
	} else {
		list, total, err = c.AppointmentService.ListForUser(claims.UserID, page, limit, status)
	}
	if err != nil {
		appointmentError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

// Confirm godoc
// @Summary Confirm a booked appointment
// @Tags appointments
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "appointment id"
// @Success 200 {object} util.Response{data=model.Appointment}
// @Router /api/counselor/appointments/{id}/confirm [put]
func (c *AppointmentController) Confirm(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	a, err := c.AppointmentService.Confirm(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		appointmentError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// Complete godoc
// @Summary Mark an appointment completed
// @Tags appointments
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "appointment id"
// @Success 200 {object} util.Response{data=model.Appointment}
// @Router /api/counselor/appointments/{id}/complete [put]
func (c *AppointmentController) Complete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	a, err := c.AppointmentService.Complete(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		appointmentError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// Cancel godoc
// @Summary Cancel an appointment
// @Description Either participant may cancel while the appointment is still live
// @Tags appointments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "appointment id"
// @Param   body body service.CancelRequest true "cancellation reason"
// @Success 200 {object} util.Response{data=model.Appointment}
// @Router /api/appointments/{id}/cancel [put]
func (c *AppointmentController) Cancel(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CancelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.AppointmentService.Cancel(util.MustParseUint(ctx.Param("id")), claims.UserID, req)
	if err != nil {
		appointmentError(ctx, err)
		return
	}
	util.Success(ctx, a)
}
