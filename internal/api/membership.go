package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/huddle/internal/models"
	"github.com/lalith-99/huddle/internal/repository"
	"go.uber.org/zap"
)

// MembershipHandler handles who belongs to a team.
type MembershipHandler struct {
	repo   repository.MembershipRepository
	users  repository.UserRepository
	gate   *Gate
	logger *zap.Logger
}

func NewMembershipHandler(
	repo repository.MembershipRepository,
	users repository.UserRepository,
	gate *Gate,
	logger *zap.Logger,
) *MembershipHandler {
	return &MembershipHandler{repo: repo, users: users, gate: gate, logger: logger}
}

// ListMembers handles GET /v1/teams/:id/members
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	teamID, ok := pathID(c, "id", "team")
	if !ok || !h.gate.Team(c, teamID) {
		return
	}

	members, err := h.repo.ListMembers(c.Request.Context(), teamID)
	if err != nil {
		h.logger.Error("failed to list members", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// addMemberRequest is the JSON body for POST /v1/teams/:id/members.
// Role defaults to "member".
type addMemberRequest struct {
	UserID int64  `json:"user_id" binding:"required,gt=0"`
	Role   string `json:"role" binding:"omitempty,oneof=owner admin member"`
}

// AddMember handles POST /v1/teams/:id/members
//
// Any member may add another user. The store itself allows duplicate
// memberships, so the duplicate check lives here.
func (h *MembershipHandler) AddMember(c *gin.Context) {
	teamID, ok := pathID(c, "id", "team")
	if !ok {
		return
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role == "" {
		req.Role = models.RoleMember
	}

	if !h.gate.Team(c, teamID) {
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.GetByID(ctx, req.UserID)
	if err != nil {
		h.logger.Error("failed to get user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add member"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	already, err := h.repo.IsMember(ctx, teamID, req.UserID)
	if err != nil {
		h.logger.Error("failed to check membership", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add member"})
		return
	}
	if already {
		c.JSON(http.StatusConflict, gin.H{"error": "user is already a member"})
		return
	}

	member, err := h.repo.AddMember(ctx, models.NewTeamMember{
		TeamID: teamID,
		UserID: req.UserID,
		Role:   req.Role,
	})
	if err != nil {
		h.logger.Error("failed to add member", zap.Int64("team_id", teamID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add member"})
		return
	}

	c.JSON(http.StatusCreated, member)
}
