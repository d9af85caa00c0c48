package memory

import (
	"context"

	"github.com/lalith-99/huddle/internal/models"
	"go.uber.org/zap"
)

type TeamStore struct {
	s *Store
}

func NewTeamStore(s *Store) *TeamStore {
	return &TeamStore{s: s}
}

func (ts *TeamStore) GetByID(_ context.Context, teamID int64) (*models.Team, error) {
	ts.s.mu.RLock()
	defer ts.s.mu.RUnlock()

	t, ok := ts.s.teams.get(teamID)
	if !ok {
		return nil, nil
	}
	out := cloneTeam(*t)
	return &out, nil
}

// ListForUser walks memberships in insertion order and collects each
// team once. Memberships pointing at a missing team are skipped.
func (ts *TeamStore) ListForUser(_ context.Context, userID int64) ([]models.TeamWithChannels, error) {
	ts.s.mu.RLock()
	defer ts.s.mu.RUnlock()

	var teamIDs []int64
	seen := make(map[int64]bool)
	ts.s.members.each(func(m *models.TeamMember) bool {
		if m.UserID == userID && !seen[m.TeamID] {
			seen[m.TeamID] = true
			teamIDs = append(teamIDs, m.TeamID)
		}
		return true
	})

	teams := make([]models.TeamWithChannels, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		t, ok := ts.s.teams.get(teamID)
		if !ok {
			continue
		}
		teams = append(teams, models.TeamWithChannels{
			Team:        cloneTeam(*t),
			Channels:    ts.s.channelsForTeam(teamID),
			MemberCount: ts.s.memberCount(teamID),
		})
	}
	return teams, nil
}

func (ts *TeamStore) Create(_ context.Context, nt models.NewTeam) (*models.Team, error) {
	color := nt.Color
	if color == "" {
		color = models.DefaultTeamColor
	}

	ts.s.mu.Lock()
	defer ts.s.mu.Unlock()

	t := models.Team{
		ID:          ts.s.allocID(),
		Name:        nt.Name,
		Description: cloneString(nt.Description),
		Avatar:      cloneString(nt.Avatar),
		Color:       color,
		CreatedAt:   ts.s.now(),
	}
	ts.s.teams.put(t.ID, &t)

	ts.s.logger.Debug("team created", zap.Int64("team_id", t.ID), zap.String("name", t.Name))

	out := cloneTeam(t)
	return &out, nil
}

// memberCount counts membership rows, duplicates included. Caller holds s.mu.
func (s *Store) memberCount(teamID int64) int {
	n := 0
	s.members.each(func(m *models.TeamMember) bool {
		if m.TeamID == teamID {
			n++
		}
		return true
	})
	return n
}
