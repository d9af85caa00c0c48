package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/huddle/internal/models"
	"github.com/lalith-99/huddle/internal/repository"
	"go.uber.org/zap"
)

// ChannelHandler handles the channels of a team.
type ChannelHandler struct {
	repo   repository.ChannelRepository
	gate   *Gate
	logger *zap.Logger
}

func NewChannelHandler(repo repository.ChannelRepository, gate *Gate, logger *zap.Logger) *ChannelHandler {
	return &ChannelHandler{repo: repo, gate: gate, logger: logger}
}

// createChannelRequest is the expected JSON body for
// POST /v1/teams/:id/channels. The team comes from the path.
type createChannelRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Type        string  `json:"type" binding:"omitempty,oneof=text voice"`
}

// Create handles POST /v1/teams/:id/channels
func (h *ChannelHandler) Create(c *gin.Context) {
	teamID, ok := pathID(c, "id", "team")
	if !ok {
		return
	}

	var req createChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.gate.Team(c, teamID) {
		return
	}

	ch, err := h.repo.Create(c.Request.Context(), models.NewChannel{
		TeamID:      teamID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		h.logger.Error("failed to create channel", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create channel"})
		return
	}

	c.JSON(http.StatusCreated, ch)
}

// List handles GET /v1/teams/:id/channels
func (h *ChannelHandler) List(c *gin.Context) {
	teamID, ok := pathID(c, "id", "team")
	if !ok || !h.gate.Team(c, teamID) {
		return
	}

	channels, err := h.repo.ListByTeam(c.Request.Context(), teamID)
	if err != nil {
		h.logger.Error("failed to list channels", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list channels"})
		return
	}

	c.JSON(http.StatusOK, channels)
}
