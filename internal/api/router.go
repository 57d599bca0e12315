package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskflow/taskboard/internal/api/handler"
	"github.com/taskflow/taskboard/internal/api/middleware"
	"github.com/taskflow/taskboard/internal/core/domain"
	"github.com/taskflow/taskboard/internal/core/service"
	mongodb "github.com/taskflow/taskboard/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskboard"))

	// --- Dependencies ---
	taskRepo := mongodb.NewTaskRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	notificationService := service.NewNotificationService(notificationRepo, log)
	taskService := service.NewTaskService(taskRepo, profileRepo, notificationService, log)
	authService := service.NewAuthService(profileRepo, jwtSecret, 24*time.Hour)
	dashboardService := service.NewDashboardService(taskRepo)
	teamService := service.NewTeamService(taskRepo, profileRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, teamService)
	userHandler := handler.NewUserHandler(profileRepo)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/tasks", taskHandler.List)
	v1.POST("/tasks", taskHandler.Create)
	v1.GET("/tasks/overdue", taskHandler.Overdue)
	v1.GET("/tasks/:id", taskHandler.Get)
	v1.PATCH("/tasks/:id", taskHandler.Update)
	v1.DELETE("/tasks/:id", taskHandler.Delete)

	v1.GET("/notifications", notificationHandler.List)
	v1.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	v1.POST("/notifications/:id/read", notificationHandler.MarkRead)
	v1.POST("/notifications/read-all", notificationHandler.MarkAllRead)

	v1.GET("/dashboard/summary", dashboardHandler.Summary)
	v1.GET("/dashboard/by-status", dashboardHandler.ByStatus)
	v1.GET("/dashboard/upcoming", dashboardHandler.Upcoming)
	v1.GET("/team", dashboardHandler.Team)

	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.Get)
	v1.PUT("/users/:id/role", userHandler.UpdateRole, middleware.RBAC(domain.RoleAdmin))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
