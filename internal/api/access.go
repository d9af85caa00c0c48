package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/huddle/internal/middleware"
	"github.com/lalith-99/huddle/internal/models"
	"github.com/lalith-99/huddle/internal/repository"
	"go.uber.org/zap"
)

// Gate answers "may the caller touch this?" for every route below a team.
// Team membership is the only permission; channels, messages and calls
// inherit it through their team.
//
// Each method writes the error response itself and returns false, so a
// handler only has to return.
type Gate struct {
	channels repository.ChannelRepository
	members  repository.MembershipRepository
	logger   *zap.Logger
}

func NewGate(channels repository.ChannelRepository, members repository.MembershipRepository, logger *zap.Logger) *Gate {
	return &Gate{channels: channels, members: members, logger: logger}
}

// Team checks that the caller belongs to teamID. 403 otherwise.
func (g *Gate) Team(c *gin.Context, teamID int64) bool {
	ok, err := g.members.IsMember(c.Request.Context(), teamID, middleware.GetUserID(c))
	if err != nil {
		g.logger.Error("failed to check team membership", zap.Int64("team_id", teamID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check access"})
		return false
	}
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return false
	}
	return true
}

// Channel loads channelID and checks the caller belongs to its team.
// 404 when the channel does not exist, 403 when the caller is not a member.
func (g *Gate) Channel(c *gin.Context, channelID int64) (*models.Channel, bool) {
	ch, err := g.channels.GetByID(c.Request.Context(), channelID)
	if err != nil {
		g.logger.Error("failed to get channel", zap.Int64("channel_id", channelID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get channel"})
		return nil, false
	}
	if ch == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "channel not found"})
		return nil, false
	}
	if !g.Team(c, ch.TeamID) {
		return nil, false
	}
	return ch, true
}

// pathID reads a positive integer path parameter. 400 otherwise.
func pathID(c *gin.Context, param, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + what + " id"})
		return 0, false
	}
	return id, true
}
