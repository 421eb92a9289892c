package app

import (
	"github.com/dhruvikmodi23/HealingMinds-sub000/docs"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/config"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/middleware"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerUserRoutes(authGroup, c)
		a.registerCounselorRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/plans", c.payment.ListPlans)
		public.GET("/counselors", c.counselor.Browse)
		public.GET("/counselors/:id", c.counselor.Get)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.Profile)
	rg.PUT("/profile", c.user.UpdateProfile)

	// Self-assessment workflow
	rg.POST("/assessments/start", c.assessment.Start)
	rg.GET("/assessments", c.assessment.History)
	rg.GET("/assessments/:sessionId", c.assessment.Get)
	rg.GET("/assessments/:sessionId/questions", c.assessment.Questions)
	rg.POST("/assessments/:sessionId/respond", c.assessment.Respond)
	rg.POST("/assessments/:sessionId/complete", c.assessment.Complete)

	// Appointments
	rg.POST("/appointments", c.appointment.Book)
	rg.GET("/appointments", c.appointment.List)
	rg.GET("/appointments/:id", c.appointment.Get)
	rg.PUT("/appointments/:id/cancel", c.appointment.Cancel)

	// Subscriptions and payments
	rg.POST("/subscriptions", c.payment.Subscribe)
	rg.GET("/subscriptions", c.payment.ListSubscriptions)
	rg.GET("/subscriptions/active", c.payment.ActiveSubscription)
	rg.GET("/payments", c.payment.ListOwnPayments)
	rg.PUT("/payments/:id/settle", c.payment.Settle)

	// Session chat
	rg.GET("/chat/ws", c.chat.WebSocket)
	rg.GET("/chat/appointments/:appointmentId", c.chat.Conversation)
	rg.GET("/chat/conversations/:id/messages", c.chat.Messages)
}

func (a *App) registerCounselorRoutes(rg *gin.RouterGroup, c *controllers) {
	counselor := rg.Group("/counselor")
	counselor.Use(middleware.RoleMiddleware(model.RoleCounselor))
	{
		counselor.GET("/profile", c.counselor.OwnProfile)
		counselor.PUT("/profile", c.counselor.UpsertProfile)
		counselor.PUT("/appointments/:id/confirm", c.appointment.Confirm)
		counselor.PUT("/appointments/:id/complete", c.appointment.Complete)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/users", c.user.List)
		admin.PUT("/users/:id/disable", c.user.SetDisabled)

		admin.GET("/counselors", c.counselor.ListForAdmin)
		admin.PUT("/counselors/:id/verify", c.counselor.Verify)

		admin.POST("/plans", c.payment.CreatePlan)
		admin.PUT("/plans/:id", c.payment.UpdatePlan)
		admin.GET("/payments", c.payment.ListPayments)
		admin.PUT("/payments/:id/refund", c.payment.Refund)

		admin.GET("/analytics", c.analytics.Overview)

		assessments := admin.Group("/assessments")
		{
			assessments.GET("/questions", c.assessment.ListQuestions)
			assessments.POST("/questions", c.assessment.CreateQuestion)
			assessments.GET("/questions/:id", c.assessment.GetQuestion)
			assessments.PUT("/questions/:id", c.assessment.UpdateQuestion)
			assessments.DELETE("/questions/:id", c.assessment.DeleteQuestion)
			assessments.GET("/sessions", c.assessment.ListSessions)
			assessments.GET("/analytics", c.assessment.Analytics)
			assessments.GET("/export", c.assessment.Export)
		}
	}
}
