package memory

import (
	"context"

	"github.com/lalith-99/huddle/internal/models"
	"go.uber.org/zap"
)

type ChannelStore struct {
	s *Store
}

func NewChannelStore(s *Store) *ChannelStore {
	return &ChannelStore{s: s}
}

func (cs *ChannelStore) GetByID(_ context.Context, channelID int64) (*models.Channel, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	ch, ok := cs.s.channels.get(channelID)
	if !ok {
		return nil, nil
	}
	out := cloneChannel(*ch)
	return &out, nil
}

func (cs *ChannelStore) ListByTeam(_ context.Context, teamID int64) ([]models.Channel, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	return cs.s.channelsForTeam(teamID), nil
}

// Create does not check that TeamID exists; a channel of a missing team
// simply never shows up in any team view.
func (cs *ChannelStore) Create(_ context.Context, nc models.NewChannel) (*models.Channel, error) {
	kind := nc.Type
	if kind == "" {
		kind = models.ChannelTypeText
	}

	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	ch := models.Channel{
		ID:          cs.s.allocID(),
		TeamID:      nc.TeamID,
		Name:        nc.Name,
		Description: cloneString(nc.Description),
		Type:        kind,
		CreatedAt:   cs.s.now(),
	}
	cs.s.channels.put(ch.ID, &ch)

	cs.s.logger.Debug("channel created",
		zap.Int64("channel_id", ch.ID),
		zap.Int64("team_id", ch.TeamID),
		zap.String("name", ch.Name),
	)

	out := cloneChannel(ch)
	return &out, nil
}

// channelsForTeam returns copies in insertion order. Caller holds s.mu.
func (s *Store) channelsForTeam(teamID int64) []models.Channel {
	channels := make([]models.Channel, 0)
	s.channels.each(func(ch *models.Channel) bool {
		if ch.TeamID == teamID {
			channels = append(channels, cloneChannel(*ch))
		}
		return true
	})
	return channels
}
