package memory

import (
	"context"

	"github.com/lalith-99/huddle/internal/models"
	"go.uber.org/zap"
)

type MembershipStore struct {
	s *Store
}

func NewMembershipStore(s *Store) *MembershipStore {
	return &MembershipStore{s: s}
}

// AddMember always inserts a new row. Callers that care about duplicate
// (team, user) pairs check IsMember first.
func (ms *MembershipStore) AddMember(_ context.Context, nm models.NewTeamMember) (*models.TeamMember, error) {
	role := nm.Role
	if role == "" {
		role = models.RoleMember
	}

	ms.s.mu.Lock()
	defer ms.s.mu.Unlock()

	m := models.TeamMember{
		ID:       ms.s.allocID(),
		TeamID:   nm.TeamID,
		UserID:   nm.UserID,
		Role:     role,
		JoinedAt: ms.s.now(),
	}
	ms.s.members.put(m.ID, &m)

	ms.s.logger.Debug("team member added",
		zap.Int64("team_id", m.TeamID),
		zap.Int64("user_id", m.UserID),
		zap.String("role", m.Role),
	)

	out := m
	return &out, nil
}

func (ms *MembershipStore) ListMembers(_ context.Context, teamID int64) ([]models.TeamMemberWithUser, error) {
	ms.s.mu.RLock()
	defer ms.s.mu.RUnlock()

	members := make([]models.TeamMemberWithUser, 0)
	ms.s.members.each(func(m *models.TeamMember) bool {
		if m.TeamID != teamID {
			return true
		}
		u, ok := ms.s.users.get(m.UserID)
		if !ok {
			return true
		}
		members = append(members, models.TeamMemberWithUser{
			TeamMember: *m,
			User:       cloneUser(*u),
		})
		return true
	})
	return members, nil
}

func (ms *MembershipStore) IsMember(_ context.Context, teamID, userID int64) (bool, error) {
	ms.s.mu.RLock()
	defer ms.s.mu.RUnlock()

	found := false
	ms.s.members.each(func(m *models.TeamMember) bool {
		if m.TeamID == teamID && m.UserID == userID {
			found = true
			return false
		}
		return true
	})
	return found, nil
}
