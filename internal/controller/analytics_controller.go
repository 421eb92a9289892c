package controller

import (
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/service"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// Overview godoc
// @Summary Platform analytics
// @Description User, counselor, appointment and revenue counters
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.PlatformAnalytics}
// @Router /api/admin/analytics [get]
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	analytics, err := c.AnalyticsService.Overview()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}
