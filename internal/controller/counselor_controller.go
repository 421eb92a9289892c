package controller

import (
	"errors"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/service"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type CounselorController struct {
	CounselorService *service.CounselorService
}

func NewCounselorController(counselorService *service.CounselorService) *CounselorController {
	return &CounselorController{CounselorService: counselorService}
}

// Browse godoc
// @Summary Browse verified counselors
// @Description Public listing of verified counselors, optionally filtered by specialization
// @Tags counselors
// @Produce  json
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Param   specialization query string false "specialization filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/counselors [get]
func (c *CounselorController) Browse(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	profiles, total, err := c.CounselorService.Browse(page, limit, ctx.Query("specialization"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: profiles, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Counselor public profile
// @Tags counselors
// @Produce  json
// @Param   id path int true "counselor profile id"
// @Success 200 {object} util.Response{data=model.CounselorProfile}
// @Failure 404 {object} util.Response "not found or not verified"
// @Router /api/counselors/{id} [get]
func (c *CounselorController) Get(ctx *gin.Context) {
	profile, err := c.CounselorService.GetPublicProfile(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, profile)
}

// UpsertProfile godoc
// @Summary Create or update own counselor profile
// @Description Edits put the profile back into pending review
// @Tags counselors
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CounselorProfileRequest true "profile fields"
// @Success 200 {object} util.Response{data=model.CounselorProfile}
// @Failure 403 {object} util.Response "not a counselor account"
// @Router /api/counselor/profile [put]
func (c *CounselorController) UpsertProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CounselorProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.CounselorService.UpsertProfile(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, profile)
}

// OwnProfile godoc
// @Summary Own counselor profile
// @Tags counselors
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.CounselorProfile}
// @Failure 404 {object} util.Response "no profile yet"
// @Router /api/counselor/profile [get]
func (c *CounselorController) OwnProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	profile, err := c.CounselorService.GetOwnProfile(claims.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, profile)
}

// ListForAdmin godoc
// @Summary List counselor profiles by status
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Param   status query string false "pending, verified or rejected"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/counselors [get]
func (c *CounselorController) ListForAdmin(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	profiles, total, err := c.CounselorService.ListForAdmin(page, limit, model.CounselorStatus(ctx.Query("status")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: profiles, Total: total, Page: page, Limit: limit})
}

// Verify godoc
// @Summary Approve or reject a counselor profile
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "counselor profile id"
// @Param   body body service.VerifyRequest true "decision"
// @Success 200 {object} util.Response{data=model.CounselorProfile}
// @Failure 404 {object} util.Response "profile not found"
// @Router /api/admin/counselors/{id}/verify [put]
func (c *CounselorController) Verify(ctx *gin.Context) {
	var req service.VerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.CounselorService.Verify(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrCounselorNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, profile)
}
