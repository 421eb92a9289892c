package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/config"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/controller"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/repository"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/service"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/database"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/logger"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/monitoring"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/security"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	counselor    *repository.CounselorRepository
	appointment  *repository.AppointmentRepository
	subscription *repository.SubscriptionRepository
	payment      *repository.PaymentRepository
	question     *repository.QuestionRepository
	assessment   *repository.AssessmentRepository
	chat         *repository.ChatRepository
}

type services struct {
	storage     *service.StorageService
	auth        *service.AuthService
	user        *service.UserService
	counselor   *service.CounselorService
	appointment *service.AppointmentService
	payment     *service.PaymentService
	assessment  *service.AssessmentService
	analytics   *service.AnalyticsService
	chat        *service.ChatService
	chatHub     *service.ChatHub
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	counselor   *controller.CounselorController
	appointment *controller.AppointmentController
	payment     *controller.PaymentController
	assessment  *controller.AssessmentController
	analytics   *controller.AnalyticsController
	chat        *controller.ChatController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		counselor:    repository.NewCounselorRepository(db),
		appointment:  repository.NewAppointmentRepository(db),
		subscription: repository.NewSubscriptionRepository(db),
		payment:      repository.NewPaymentRepository(db),
		question:     repository.NewQuestionRepository(db),
		assessment:   repository.NewAssessmentRepository(db),
		chat:         repository.NewChatRepository(db, rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.counselor = service.NewCounselorService(repos.counselor, repos.user)
	s.appointment = service.NewAppointmentService(repos.appointment, repos.counselor)
	s.payment = service.NewPaymentService(repos.subscription, repos.payment)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.question, repos.user, rdb, s.storage, cfg)
	s.analytics = service.NewAnalyticsService(repos.user, repos.counselor, repos.appointment, repos.payment)

	s.chatHub = service.NewChatHub(rdb, repos.chat)
	go s.chatHub.Run()

	s.chat = service.NewChatService(repos.chat, repos.appointment)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		counselor:   controller.NewCounselorController(s.counselor),
		appointment: controller.NewAppointmentController(s.appointment),
		payment:     controller.NewPaymentController(s.payment),
		assessment:  controller.NewAssessmentController(s.assessment),
		analytics:   controller.NewAnalyticsController(s.analytics),
		chat:        controller.NewChatController(s.chat, s.chatHub),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		for range ticker.C {
			if err := s.assessment.SweepAbandoned(); err != nil {
				logger.Log.Error("abandoned session sweep error", zap.Error(err))
			}
			if err := s.payment.ExpireStaleSubscriptions(); err != nil {
				logger.Log.Error("subscription expiry sweep error", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("healingminds", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Drop WebSocket connections and Redis presence before the listener.
	if a.services != nil && a.services.chatHub != nil {
		a.services.chatHub.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
