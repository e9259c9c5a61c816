package routes

import (
	"time"

	"github.com/CollabR18X/CollabR18X/api/handler"
	"github.com/CollabR18X/CollabR18X/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Matching       *handler.MatchingHandler
	Messages       *handler.MessageHandler
	Moderation     *handler.ModerationHandler
	Collaborations *handler.CollaborationHandler
	AuthMiddleware middleware.AuthMiddleware
	RegisterRate   *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	matching *handler.MatchingHandler,
	messages *handler.MessageHandler,
	moderation *handler.ModerationHandler,
	collaborations *handler.CollaborationHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Matching:       matching,
		Messages:       messages,
		Moderation:     moderation,
		Collaborations: collaborations,
		AuthMiddleware: authMiddleware,
		RegisterRate:   middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	requireAuth := r.AuthMiddleware.RequireAuth
	withAuth := r.AuthMiddleware.WithAuth

	e.POST("/auth/register", r.Auth.Register, r.RegisterRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware())
	e.GET("/auth/logout", r.Auth.Logout, withAuth)
	e.GET("/auth/user", r.Auth.CurrentUser, requireAuth)
	e.PUT("/auth/password", r.Auth.ChangePassword, requireAuth)

	e.POST("/likes", r.Matching.CreateLike, requireAuth)
	e.POST("/likes/pass", r.Matching.Pass, requireAuth)
	e.GET("/likes/received", r.Matching.LikesReceived, requireAuth)
	e.GET("/matches", r.Matching.ListMatches, requireAuth)
	e.GET("/matches/:id", r.Matching.GetMatch, requireAuth)
	e.DELETE("/matches/:id", r.Matching.Unmatch, requireAuth)

	e.POST("/matches/:id/messages", r.Messages.Send, requireAuth)
	e.GET("/matches/:id/messages", r.Messages.List, requireAuth)
	e.POST("/matches/:id/messages/read", r.Messages.MarkRead, requireAuth)

	e.GET("/blocks", r.Moderation.ListBlocks, requireAuth)
	e.POST("/blocks", r.Moderation.CreateBlock, requireAuth)
	e.DELETE("/blocks/:id", r.Moderation.RemoveBlock, requireAuth)
	e.POST("/reports", r.Moderation.CreateReport, requireAuth)

	e.GET("/collaborations", r.Collaborations.List, requireAuth)
	e.POST("/collaborations", r.Collaborations.Create, requireAuth)
	e.PATCH("/collaborations/:id/status", r.Collaborations.UpdateStatus, requireAuth)
	e.POST("/collaborations/:id/acknowledge", r.Collaborations.Acknowledge, requireAuth)
}
