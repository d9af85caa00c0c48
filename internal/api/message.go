package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/huddle/internal/middleware"
	"github.com/lalith-99/huddle/internal/models"
	"github.com/lalith-99/huddle/internal/repository"
	"go.uber.org/zap"
)

// defaultMessageLimit applies when ?limit= is absent.
const defaultMessageLimit = 50

type MessageHandler struct {
	repo     repository.MessageRepository
	gate     *Gate
	maxLimit int
	logger   *zap.Logger
}

// NewMessageHandler caps ?limit= at maxLimit.
func NewMessageHandler(repo repository.MessageRepository, gate *Gate, maxLimit int, logger *zap.Logger) *MessageHandler {
	if maxLimit < 1 {
		maxLimit = defaultMessageLimit
	}
	return &MessageHandler{repo: repo, gate: gate, maxLimit: maxLimit, logger: logger}
}

type fileRequest struct {
	URL  string `json:"url" binding:"required"`
	Name string `json:"name" binding:"required"`
	Size int64  `json:"size" binding:"gte=0"`
}

type createMessageRequest struct {
	Content   string       `json:"content" binding:"required"`
	Type      string       `json:"type" binding:"omitempty,oneof=text file system"`
	File      *fileRequest `json:"file"`
	ReplyToID *int64       `json:"reply_to_id"`
}

// Create handles POST /v1/channels/:id/messages
//
// The author is always the caller. A reply must point at a message in
// the same channel.
func (h *MessageHandler) Create(c *gin.Context) {
	channelID, ok := pathID(c, "id", "channel")
	if !ok {
		return
	}

	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type == models.MessageTypeFile && req.File == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file messages need a file"})
		return
	}

	if _, ok := h.gate.Channel(c, channelID); !ok {
		return
	}

	ctx := c.Request.Context()

	if req.ReplyToID != nil {
		target, err := h.repo.GetByID(ctx, *req.ReplyToID)
		if err != nil {
			h.logger.Error("failed to get reply target", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create message"})
			return
		}
		if target == nil || target.ChannelID != channelID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reply target not found in this channel"})
			return
		}
	}

	nm := models.NewMessage{
		ChannelID: channelID,
		UserID:    middleware.GetUserID(c),
		Content:   req.Content,
		Type:      req.Type,
		ReplyToID: req.ReplyToID,
	}
	if req.File != nil {
		nm.File = &models.FileAttachment{URL: req.File.URL, Name: req.File.Name, Size: req.File.Size}
	}

	msg, err := h.repo.Create(ctx, nm)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			h.logger.Error("message author does not exist", zap.Int64("user_id", nm.UserID), zap.Error(err))
		} else {
			h.logger.Error("failed to create message", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create message"})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// List handles GET /v1/channels/:id/messages?limit=50
//
// Returns the newest limit messages, oldest first. limit defaults to 50
// and is capped at the configured maximum.
func (h *MessageHandler) List(c *gin.Context) {
	channelID, ok := pathID(c, "id", "channel")
	if !ok {
		return
	}

	limit := defaultMessageLimit
	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'limit' parameter"})
			return
		}
		limit = n
	}
	limit = min(limit, h.maxLimit)

	if _, ok := h.gate.Channel(c, channelID); !ok {
		return
	}

	messages, err := h.repo.ListByChannel(c.Request.Context(), channelID, limit)
	if err != nil {
		h.logger.Error("failed to list messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

type addReactionRequest struct {
	Reaction string `json:"reaction" binding:"required"`
}

// AddReaction handles POST /v1/messages/:id/reactions
func (h *MessageHandler) AddReaction(c *gin.Context) {
	messageID, ok := pathID(c, "id", "message")
	if !ok {
		return
	}

	var req addReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	msg, err := h.repo.GetByID(ctx, messageID)
	if err != nil {
		h.logger.Error("failed to get message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add reaction"})
		return
	}
	if msg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}
	if _, ok := h.gate.Channel(c, msg.ChannelID); !ok {
		return
	}

	if err := h.repo.AddReaction(ctx, messageID, req.Reaction); err != nil {
		h.logger.Error("failed to add reaction", zap.Int64("message_id", messageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add reaction"})
		return
	}

	c.Status(http.StatusNoContent)
}
