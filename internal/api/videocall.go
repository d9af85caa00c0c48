package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/huddle/internal/middleware"
	"github.com/lalith-99/huddle/internal/models"
	"github.com/lalith-99/huddle/internal/repository"
	"go.uber.org/zap"
)

type VideoCallHandler struct {
	repo   repository.VideoCallRepository
	gate   *Gate
	logger *zap.Logger
}

func NewVideoCallHandler(repo repository.VideoCallRepository, gate *Gate, logger *zap.Logger) *VideoCallHandler {
	return &VideoCallHandler{repo: repo, gate: gate, logger: logger}
}

// GetActive handles GET /v1/channels/:id/video-call
func (h *VideoCallHandler) GetActive(c *gin.Context) {
	channelID, ok := pathID(c, "id", "channel")
	if !ok {
		return
	}
	if _, ok := h.gate.Channel(c, channelID); !ok {
		return
	}

	call, err := h.repo.GetActive(c.Request.Context(), channelID)
	if err != nil {
		h.logger.Error("failed to get active call", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get video call"})
		return
	}
	if call == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active video call"})
		return
	}

	c.JSON(http.StatusOK, call)
}

type startCallRequest struct {
	Title string `json:"title" binding:"required"`
}

// Start handles POST /v1/channels/:id/video-call
//
// The caller hosts. At most one call per channel is active at a time.
func (h *VideoCallHandler) Start(c *gin.Context) {
	channelID, ok := pathID(c, "id", "channel")
	if !ok {
		return
	}

	var req startCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.gate.Channel(c, channelID); !ok {
		return
	}

	call, err := h.repo.Start(c.Request.Context(), models.NewVideoCall{
		ChannelID:  channelID,
		HostUserID: middleware.GetUserID(c),
		Title:      req.Title,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCallActive) {
			c.JSON(http.StatusConflict, gin.H{"error": "video call already active"})
			return
		}
		h.logger.Error("failed to start video call", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start video call"})
		return
	}

	c.JSON(http.StatusCreated, call)
}

// Join handles POST /v1/video-calls/:id/join
func (h *VideoCallHandler) Join(c *gin.Context) {
	h.callAction(c, "join", func(call *models.VideoCall) error {
		return h.repo.Join(c.Request.Context(), call.ID, middleware.GetUserID(c))
	})
}

// Leave handles POST /v1/video-calls/:id/leave
func (h *VideoCallHandler) Leave(c *gin.Context) {
	h.callAction(c, "leave", func(call *models.VideoCall) error {
		return h.repo.Leave(c.Request.Context(), call.ID, middleware.GetUserID(c))
	})
}

// End handles POST /v1/video-calls/:id/end
//
// Any member of the channel's team may end the call, not only the host.
func (h *VideoCallHandler) End(c *gin.Context) {
	h.callAction(c, "end", func(call *models.VideoCall) error {
		return h.repo.End(c.Request.Context(), call.ID)
	})
}

// callAction resolves call -> channel -> team, checks the caller, runs op
// and answers 204.
func (h *VideoCallHandler) callAction(c *gin.Context, action string, op func(*models.VideoCall) error) {
	callID, ok := pathID(c, "id", "video call")
	if !ok {
		return
	}

	call, err := h.repo.GetByID(c.Request.Context(), callID)
	if err != nil {
		h.logger.Error("failed to get video call", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action + " video call"})
		return
	}
	if call == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video call not found"})
		return
	}
	if _, ok := h.gate.Channel(c, call.ChannelID); !ok {
		return
	}

	if err := op(call); err != nil {
		h.logger.Error("video call action failed",
			zap.String("action", action),
			zap.Int64("call_id", callID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action + " video call"})
		return
	}

	c.Status(http.StatusNoContent)
}
