package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/CollabR18X/CollabR18X/api/handler"
	apiMiddleware "github.com/CollabR18X/CollabR18X/api/middleware"
	"github.com/CollabR18X/CollabR18X/api/routes"
	"github.com/CollabR18X/CollabR18X/config"
	"github.com/CollabR18X/CollabR18X/internal/database"
	"github.com/CollabR18X/CollabR18X/internal/ratelimit"
	"github.com/CollabR18X/CollabR18X/internal/repository"
	"github.com/CollabR18X/CollabR18X/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

const (
	sessionTTL        = 365 * 24 * time.Hour
	messageRateLimit  = 30
	messageRateWindow = 60 * time.Second
)

func main() {
	db := config.ConnectionDb()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := database.AutoMigrate(db); err != nil {
		logger.WithError(err).Fatal("database migration failed")
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	reportRepo := repository.NewReportRepository(db)
	collabRepo := repository.NewCollaborationRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)

	sessionService := service.NewSessionService(sessionRepo, service.RealClock{}, sessionTTL)
	authService := service.NewAuthService(userRepo, sessionService, securityRepo, service.Argon2PasswordHasher{})
	moderationService := service.NewModerationService(blockRepo, reportRepo, securityRepo)
	matchingService := service.NewMatchingService(likeRepo, matchRepo, moderationService)
	messageService := service.NewMessageService(
		messageRepo,
		matchRepo,
		ratelimit.NewWindow(messageRateLimit, messageRateWindow),
	)
	collabService := service.NewCollaborationService(collabRepo, moderationService)

	// One-shot sweep before serving; failures are logged, not fatal.
	if err := sessionService.SweepExpired(context.Background()); err != nil {
		logger.WithError(err).Warn("could not clean up expired sessions")
	}

	authHandler := handler.NewAuthHandler(authService, validate)
	authHandler.CookieDomain = os.Getenv("COOKIE_DOMAIN")
	authHandler.SecureCookies = os.Getenv("COOKIE_SECURE") != "false"

	matchingHandler := handler.NewMatchingHandler(matchingService, validate)
	messageHandler := handler.NewMessageHandler(messageService, matchingService, validate)
	moderationHandler := handler.NewModerationHandler(moderationService, validate)
	collabHandler := handler.NewCollaborationHandler(collabService, validate)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{Sessions: sessionService}
	router := routes.NewRouter(
		app,
		authHandler,
		matchingHandler,
		messageHandler,
		moderationHandler,
		collabHandler,
		authMiddleware,
	)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
