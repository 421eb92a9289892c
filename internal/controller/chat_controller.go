package controller

import (
	"errors"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/service"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
	Hub         *service.ChatHub
}

func NewChatController(chatService *service.ChatService, hub *service.ChatHub) *ChatController {
	return &ChatController{ChatService: chatService, Hub: hub}
}

func chatError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrAppointmentNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// Conversation godoc
// @Summary Open the appointment conversation
// @Description Returns the conversation for an appointment, creating it on first access
// @Tags chat
// @Produce  json
// @Security BearerAuth
// @Param   appointmentId path int true "appointment id"
// @Success 200 {object} util.Response{data=model.Conversation}
// @Failure 403 {object} util.Response "not a participant"
// @Router /api/chat/appointments/{appointmentId} [get]
func (c *ChatController) Conversation(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	conv, err := c.ChatService.Conversation(util.MustParseUint(ctx.Param("appointmentId")), claims.UserID)
	if err != nil {
		chatError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"conversation":    conv,
		"counselorOnline": c.Hub.IsOnline(conv.CounselorUID),
		"userOnline":      c.Hub.IsOnline(conv.UserID),
	})
}

// Messages godoc
// @Summary Conversation message history
// @Tags chat
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "conversation id"
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/chat/conversations/{id}/messages [get]
func (c *ChatController) Messages(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := pageParams(ctx)
	messages, total, err := c.ChatService.Messages(ctx.Param("id"), claims.UserID, page, limit)
	if err != nil {
		chatError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: messages, Total: total, Page: page, Limit: limit})
}

// WebSocket godoc
// @Summary Connect to the chat hub
// @Description Upgrades to a WebSocket for real-time session chat
// @Tags chat
// @Security BearerAuth
// @Success 101 {string} string "switching protocols"
// @Router /api/chat/ws [get]
func (c *ChatController) WebSocket(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Hub.ServeWS(ctx.Writer, ctx.Request, claims.UserID); err != nil {
		util.BadRequest(ctx, "websocket upgrade failed")
	}
}
