package v1

import (
	"log"

	"hr360/internal/config"
	"hr360/internal/database"
	"hr360/internal/delivery/http/handler"
	"hr360/internal/delivery/http/middleware"
	"hr360/internal/infrastructure/cache"
	"hr360/internal/pkg/jwt"
	"hr360/internal/repository"
	"hr360/internal/usecase"
	"hr360/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	attendanceRepo := repository.NewPostgresAttendanceRepository(db)
	leaveRepo := repository.NewPostgresLeaveRepository(db)
	payrollRepo := repository.NewPostgresPayrollRepository(db)
	performanceRepo := repository.NewPostgresPerformanceRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)
	interviewRepo := repository.NewPostgresInterviewRepository(db)
	notificationRepo := repository.NewPostgresNotificationRepository(db)
	chatRepo := repository.NewPostgresChatRepository(db)

	var cacheLayer usecase.Cache
	if redis != nil {
		cacheLayer = redis
	}

	var pusher usecase.Pusher
	if hub != nil {
		pusher = hub
	}
	notifier := usecase.NewNotifier(notificationRepo, pusher, logger)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	attendanceUC := usecase.NewAttendanceUsecase(attendanceRepo)
	leaveUC := usecase.NewLeaveUsecase(leaveRepo, notifier)
	payrollUC := usecase.NewPayrollUsecase(payrollRepo, notifier)
	performanceUC := usecase.NewPerformanceUsecase(performanceRepo)
	hiringUC := usecase.NewHiringUsecase(candidateRepo, interviewRepo, notifier)
	chatUC := usecase.NewChatUsecase(chatRepo, cacheLayer)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	reportUC := usecase.NewReportUsecase(userRepo, attendanceRepo, leaveRepo, payrollRepo, candidateRepo, cacheLayer)

	authHandler := handler.NewAuthHandler(authUC)
	authHandler.RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())

	userHandler := handler.NewUserHandler(userUC)
	userHandler.RegisterRoutes(protected.Group("/users"), authMw)

	attendanceHandler := handler.NewAttendanceHandler(attendanceUC)
	attendanceHandler.RegisterRoutes(protected.Group("/attendance"), authMw)

	leaveHandler := handler.NewLeaveHandler(leaveUC)
	leaveHandler.RegisterRoutes(protected.Group("/leaves"), authMw)

	payrollHandler := handler.NewPayrollHandler(payrollUC)
	payrollHandler.RegisterRoutes(protected.Group("/payroll"), authMw)

	performanceHandler := handler.NewPerformanceHandler(performanceUC)
	performanceHandler.RegisterRoutes(protected.Group("/performance"), authMw)

	hrOnly := protected.Group("", authMw.RequireRoles("admin", "hr"))

	candidateHandler := handler.NewCandidateHandler(hiringUC)
	candidateHandler.RegisterRoutes(hrOnly.Group("/candidates"))

	interviewHandler := handler.NewInterviewHandler(hiringUC)
	interviewHandler.RegisterRoutes(hrOnly.Group("/interviews"))

	reportHandler := handler.NewReportHandler(reportUC)
	reportHandler.RegisterRoutes(hrOnly.Group("/reports"))

	chatHandler := handler.NewChatHandler(chatUC)
	chatHandler.RegisterRoutes(protected.Group("/chat"))

	notificationHandler := handler.NewNotificationHandler(notificationUC)
	notificationHandler.RegisterRoutes(protected.Group("/notifications"))

	if hub != nil {
		wsHandler := ws.NewHandler(hub, jwtSvc, logger)
		r.Get("/ws", wsHandler.HandleNotificationsWS)
	}
}
