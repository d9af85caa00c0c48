package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/huddle/internal/middleware"
	"github.com/lalith-99/huddle/internal/repository"
	"go.uber.org/zap"
)

// UserHandler handles the caller's own profile and presence.
type UserHandler struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserHandler(repo repository.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{repo: repo, logger: logger}
}

// GetMe handles GET /v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.repo.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}

	// The caller id comes from config or a token, not from the store, so
	// it can point at nobody.
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=online offline away busy"`
}

// UpdateStatus handles PATCH /v1/users/me/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.GetUserID(c)
	if err := h.repo.UpdateStatus(c.Request.Context(), userID, req.Status); err != nil {
		h.logger.Error("failed to update status", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}

	c.Status(http.StatusNoContent)
}
