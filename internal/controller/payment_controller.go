package controller

import (
	"errors"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/service"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	PaymentService *service.PaymentService
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{PaymentService: paymentService}
}

func paymentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPlanNotFound), errors.Is(err, util.ErrPaymentNotFound), errors.Is(err, util.ErrNoActiveSub):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPaymentSettled):
		util.Error(ctx, 409, "payment already settled")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// ListPlans godoc
// @Summary List active plans
// @Tags subscriptions
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Plan}
// @Router /api/plans [get]
func (c *PaymentController) ListPlans(ctx *gin.Context) {
	plans, err := c.PaymentService.ListPlans()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, plans)
}

// Subscribe godoc
// @Summary Subscribe to a plan
// @Description Creates the subscription with a pending payment record to settle
// @Tags subscriptions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.SubscribeRequest true "plan choice"
// @Success 201 {object} util.Response{data=service.SubscribeResponse}
// @Failure 404 {object} util.Response "plan not found"
// @Router /api/subscriptions [post]
func (c *PaymentController) Subscribe(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.PaymentService.Subscribe(claims.UserID, req)
	if err != nil {
		paymentError(ctx, err)
		return
	}
	util.Created(ctx, resp)
}

// Settle godoc
// @Summary Settle a pending payment
// @Description Marks the payment completed or failed; failure cancels the subscription
// @Tags subscriptions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "payment id"
// @Param   body body service.SettleRequest true "settlement outcome"
// @Success 200 {object} util.Response{data=model.Payment}
// @Failure 409 {object} util.Response "payment already settled"
// @Router /api/payments/{id}/settle [put]
func (c *PaymentController) Settle(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SettleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	payment, err := c.PaymentService.Settle(ctx.Param("id"), claims.UserID, req)
	if err != nil {
		paymentError(ctx, err)
		return
	}
	util.Success(ctx, payment)
}

// ActiveSubscription godoc
// @Summary Current active subscription
// @Tags subscriptions
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Subscription}
// @Failure 404 {object} util.Response "no active subscription"
// @Router /api/subscriptions/active [get]
func (c *PaymentController) ActiveSubscription(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	sub, err := c.PaymentService.ActiveSubscription(claims.UserID)
	if err != nil {
		paymentError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}

// ListSubscriptions godoc
// @Summary Own subscription history
// @Tags subscriptions
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Subscription}
// @Router /api/subscriptions [get]
func (c *PaymentController) ListSubscriptions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	subs, err := c.PaymentService.ListUserSubscriptions(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subs)
}

// ListOwnPayments godoc
// @Summary Own payment history
// @Tags subscriptions
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/payments [get]
func (c *PaymentController) ListOwnPayments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	page, limit := pageParams(ctx)
	payments, total, err := c.PaymentService.ListUserPayments(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: payments, Total: total, Page: page, Limit: limit})
}

// CreatePlan godoc
// @Summary Create a plan
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.PlanRequest true "plan fields"
// @Success 201 {object} util.Response{data=model.Plan}
// @Router /api/admin/plans [post]
func (c *PaymentController) CreatePlan(ctx *gin.Context) {
	var req service.PlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	plan, err := c.PaymentService.CreatePlan(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, plan)
}

// UpdatePlan godoc
// @Summary Update a plan
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "plan id"
// @Param   body body service.PlanRequest true "plan fields"
// @Success 200 {object} util.Response{data=model.Plan}
// @Failure 404 {object} util.Response "plan not found"
// @Router /api/admin/plans/{id} [put]
func (c *PaymentController) UpdatePlan(ctx *gin.Context) {
	var req service.PlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	plan, err := c.PaymentService.UpdatePlan(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		paymentError(ctx, err)
		return
	}
	util.Success(ctx, plan)
}

// ListPayments godoc
// @Summary List all payments
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Param   status query string false "status filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/payments [get]
func (c *PaymentController) ListPayments(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	payments, total, err := c.PaymentService.ListPayments(page, limit, ctx.Query("status"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: payments, Total: total, Page: page, Limit: limit})
}

// Refund godoc
// @Summary Refund a completed payment
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "payment id"
// @Success 200 {object} util.Response{data=model.Payment}
// @Failure 409 {object} util.Response "payment not refundable"
// @Router /api/admin/payments/{id}/refund [put]
func (c *PaymentController) Refund(ctx *gin.Context) {
	payment, err := c.PaymentService.Refund(ctx.Param("id"))
	if err != nil {
		paymentError(ctx, err)
		return
	}
	util.Success(ctx, payment)
}
