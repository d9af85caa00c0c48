package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/huddle/internal/middleware"
	"github.com/lalith-99/huddle/internal/repository"
	"go.uber.org/zap"
)

// Deps is everything the router needs. Stats is optional; when set its
// result is reported by the health check.
type Deps struct {
	Users    repository.UserRepository
	Teams    repository.TeamRepository
	Channels repository.ChannelRepository
	Members  repository.MembershipRepository
	Messages repository.MessageRepository
	Calls    repository.VideoCallRepository

	Logger *zap.Logger
	Stats  func() any

	CallerUserID    int64
	JWTSecret       string
	MessageLimitMax int
}

// NewRouter builds the gin engine with every /v1 route registered.
func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	gate := NewGate(d.Channels, d.Members, logger)

	userHandler := NewUserHandler(d.Users, logger)
	teamHandler := NewTeamHandler(d.Teams, d.Users, d.Members, gate, logger)
	membershipHandler := NewMembershipHandler(d.Members, d.Users, gate, logger)
	channelHandler := NewChannelHandler(d.Channels, gate, logger)
	messageHandler := NewMessageHandler(d.Messages, gate, d.MessageLimitMax, logger)
	callHandler := NewVideoCallHandler(d.Calls, gate, logger)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// Health check is public.
	r.GET("/v1/health", func(c *gin.Context) {
		body := gin.H{"status": "ok"}
		if d.Stats != nil {
			body["store"] = d.Stats()
		}
		c.JSON(http.StatusOK, body)
	})

	v1 := r.Group("/v1")
	v1.Use(middleware.Identity(d.CallerUserID, d.JWTSecret))

	v1.GET("/users/me", userHandler.GetMe)
	v1.PATCH("/users/me/status", userHandler.UpdateStatus)

	v1.GET("/teams", teamHandler.List)
	v1.POST("/teams", teamHandler.Create)
	v1.GET("/teams/:id", teamHandler.GetByID)
	v1.GET("/teams/:id/members", membershipHandler.ListMembers)
	v1.POST("/teams/:id/members", membershipHandler.AddMember)
	v1.GET("/teams/:id/channels", channelHandler.List)
	v1.POST("/teams/:id/channels", channelHandler.Create)

	v1.GET("/channels/:id/messages", messageHandler.List)
	v1.POST("/channels/:id/messages", messageHandler.Create)
	v1.POST("/messages/:id/reactions", messageHandler.AddReaction)

	v1.GET("/channels/:id/video-call", callHandler.GetActive)
	v1.POST("/channels/:id/video-call", callHandler.Start)
	v1.POST("/video-calls/:id/join", callHandler.Join)
	v1.POST("/video-calls/:id/leave", callHandler.Leave)
	v1.POST("/video-calls/:id/end", callHandler.End)

	return r
}
