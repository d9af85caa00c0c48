package repository

import (
	"context"
	"errors"

	"github.com/lalith-99/huddle/internal/models"
)

// Every method takes ctx first so handlers can pass c.Request.Context()
// straight through, whatever backs the interface.
//
// Lookups return nil, nil when the entity does not exist. Writes that
// reference missing entities are silent no-ops, with two exceptions
// listed below as sentinel errors.

var (
	// ErrAuthorNotFound is returned by MessageRepository.Create when the
	// author does not resolve to a user. Nothing is inserted.
	ErrAuthorNotFound = errors.New("message author not found")

	// ErrCallActive is returned by VideoCallRepository.Start when the
	// channel already has an active call.
	ErrCallActive = errors.New("video call already active")
)

// UserRepository handles users and their presence.
type UserRepository interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)

	// GetByEmail returns the first user with a matching email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Create stores a new user. Status always starts as offline. No
	// uniqueness check is made on email or username.
	Create(ctx context.Context, u models.NewUser) (*models.User, error)

	// UpdateStatus sets the user's presence. No-op for unknown users.
	UpdateStatus(ctx context.Context, userID int64, status string) error
}

// TeamRepository handles teams and the team-with-channels view.
type TeamRepository interface {
	GetByID(ctx context.Context, teamID int64) (*models.Team, error)

	// ListForUser returns every team the user is a member of, in
	// membership order, each with its channels and member count.
	// Returns empty slice (not nil) so JSON serializes to [] not null.
	ListForUser(ctx context.Context, userID int64) ([]models.TeamWithChannels, error)

	Create(ctx context.Context, t models.NewTeam) (*models.Team, error)
}

// ChannelRepository handles channels within teams.
type ChannelRepository interface {
	GetByID(ctx context.Context, channelID int64) (*models.Channel, error)

	// ListByTeam returns the team's channels in creation order.
	ListByTeam(ctx context.Context, teamID int64) ([]models.Channel, error)

	Create(ctx context.Context, ch models.NewChannel) (*models.Channel, error)
}

// MembershipRepository handles who belongs to which team.
type MembershipRepository interface {
	// AddMember does not check for an existing (team, user) pair.
	AddMember(ctx context.Context, m models.NewTeamMember) (*models.TeamMember, error)

	// ListMembers drops memberships whose user no longer exists.
	ListMembers(ctx context.Context, teamID int64) ([]models.TeamMemberWithUser, error)

	// IsMember is the authorization check in front of every team,
	// channel, message and call route.
	IsMember(ctx context.Context, teamID, userID int64) (bool, error)
}

// MessageRepository handles channel messages and reactions.
type MessageRepository interface {
	GetByID(ctx context.Context, messageID int64) (*models.MessageWithUser, error)

	// ListByChannel returns the most recent limit messages, oldest first.
	// Messages whose author is gone are left out entirely.
	ListByChannel(ctx context.Context, channelID int64, limit int) ([]models.MessageWithUser, error)

	// Create fails with ErrAuthorNotFound when m.UserID is unknown.
	Create(ctx context.Context, m models.NewMessage) (*models.MessageWithUser, error)

	// AddReaction appends token. No-op for unknown messages.
	AddReaction(ctx context.Context, messageID int64, token string) error
}

// VideoCallRepository handles call sessions.
type VideoCallRepository interface {
	GetByID(ctx context.Context, callID int64) (*models.VideoCall, error)

	// GetActive returns the channel's active call with host and
	// participants resolved, or nil if there is none or its host is gone.
	GetActive(ctx context.Context, channelID int64) (*models.VideoCallWithParticipants, error)

	// Create stores a call without checking for an existing active one.
	Create(ctx context.Context, vc models.NewVideoCall) (*models.VideoCall, error)

	// Start is Create guarded by the active-call check, done atomically.
	Start(ctx context.Context, vc models.NewVideoCall) (*models.VideoCall, error)

	Join(ctx context.Context, callID, userID int64) error
	Leave(ctx context.Context, callID, userID int64) error

	// End marks the call ended. The first End wins; later calls change nothing.
	End(ctx context.Context, callID int64) error
}
