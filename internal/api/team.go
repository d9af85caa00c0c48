package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/huddle/internal/middleware"
	"github.com/lalith-99/huddle/internal/models"
	"github.com/lalith-99/huddle/internal/repository"
	"go.uber.org/zap"
)

type TeamHandler struct {
	teams   repository.TeamRepository
	users   repository.UserRepository
	members repository.MembershipRepository
	gate    *Gate
	logger  *zap.Logger
}

func NewTeamHandler(
	teams repository.TeamRepository,
	users repository.UserRepository,
	members repository.MembershipRepository,
	gate *Gate,
	logger *zap.Logger,
) *TeamHandler {
	return &TeamHandler{
		teams:   teams,
		users:   users,
		members: members,
		gate:    gate,
		logger:  logger,
	}
}

// List handles GET /v1/teams
//
// Only teams the caller belongs to are returned, each with its channels
// and member count.
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teams.ListForUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.logger.Error("failed to list teams", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list teams"})
		return
	}
	c.JSON(http.StatusOK, teams)
}

type createTeamRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Avatar      *string `json:"avatar"`
	Color       string  `json:"color"`
}

// Create handles POST /v1/teams
//
// The caller becomes the team's owner, otherwise nobody could reach the
// team they just made.
func (h *TeamHandler) Create(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	owner, err := h.users.GetByID(ctx, userID)
	if err != nil {
		h.logger.Error("failed to get user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team"})
		return
	}
	if owner == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	team, err := h.teams.Create(ctx, models.NewTeam{
		Name:        req.Name,
		Description: req.Description,
		Avatar:      req.Avatar,
		Color:       req.Color,
	})
	if err != nil {
		h.logger.Error("failed to create team", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team"})
		return
	}

	if _, err := h.members.AddMember(ctx, models.NewTeamMember{
		TeamID: team.ID,
		UserID: owner.ID,
		Role:   models.RoleOwner,
	}); err != nil {
		h.logger.Error("failed to add team owner", zap.Int64("team_id", team.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team"})
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetByID handles GET /v1/teams/:id
func (h *TeamHandler) GetByID(c *gin.Context) {
	teamID, ok := pathID(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teams.GetByID(c.Request.Context(), teamID)
	if err != nil {
		h.logger.Error("failed to get team", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get team"})
		return
	}
	if team == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return
	}
	if !h.gate.Team(c, teamID) {
		return
	}

	c.JSON(http.StatusOK, team)
}
