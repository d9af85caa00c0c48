package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/lalith-99/huddle/internal/models"
	"github.com/lalith-99/huddle/internal/repository"
	"go.uber.org/zap"
)

type VideoCallStore struct {
	s *Store
}

func NewVideoCallStore(s *Store) *VideoCallStore {
	return &VideoCallStore{s: s}
}

func (vs *VideoCallStore) GetByID(_ context.Context, callID int64) (*models.VideoCall, error) {
	vs.s.mu.RLock()
	defer vs.s.mu.RUnlock()

	vc, ok := vs.s.videoCalls.get(callID)
	if !ok {
		return nil, nil
	}
	out := cloneVideoCall(*vc)
	return &out, nil
}

// GetActive returns the first active call of the channel in creation
// order. The whole call is hidden when its host no longer exists;
// participants that no longer exist are left out of ParticipantUsers.
func (vs *VideoCallStore) GetActive(_ context.Context, channelID int64) (*models.VideoCallWithParticipants, error) {
	vs.s.mu.RLock()
	defer vs.s.mu.RUnlock()

	vc := vs.s.activeCall(channelID)
	if vc == nil {
		return nil, nil
	}
	host, ok := vs.s.users.get(vc.HostUserID)
	if !ok {
		return nil, nil
	}

	participants := make([]models.User, 0, len(vc.Participants))
	for _, userID := range vc.Participants {
		if u, ok := vs.s.users.get(userID); ok {
			participants = append(participants, cloneUser(*u))
		}
	}

	return &models.VideoCallWithParticipants{
		VideoCall:        cloneVideoCall(*vc),
		Host:             cloneUser(*host),
		ParticipantUsers: participants,
	}, nil
}

// Create inserts an active call with the host as its only participant.
// It does not look for an existing active call; see Start.
func (vs *VideoCallStore) Create(_ context.Context, nv models.NewVideoCall) (*models.VideoCall, error) {
	vs.s.mu.Lock()
	defer vs.s.mu.Unlock()

	return vs.s.insertCall(nv), nil
}

// Start is Create with the "no active call in this channel" check taken
// under the same lock, so two concurrent starts cannot both succeed.
func (vs *VideoCallStore) Start(_ context.Context, nv models.NewVideoCall) (*models.VideoCall, error) {
	vs.s.mu.Lock()
	defer vs.s.mu.Unlock()

	if existing := vs.s.activeCall(nv.ChannelID); existing != nil {
		return nil, fmt.Errorf("start call in channel %d (call %d is active): %w", nv.ChannelID, existing.ID, repository.ErrCallActive)
	}
	return vs.s.insertCall(nv), nil
}

// Join adds userID once. Ended calls accept joins too; status is not checked.
func (vs *VideoCallStore) Join(_ context.Context, callID, userID int64) error {
	vs.s.mu.Lock()
	defer vs.s.mu.Unlock()

	vc, ok := vs.s.videoCalls.get(callID)
	if !ok || slices.Contains(vc.Participants, userID) {
		return nil
	}
	vc.Participants = append(vc.Participants, userID)

	vs.s.logger.Debug("video call joined", zap.Int64("call_id", callID), zap.Int64("user_id", userID))
	return nil
}

// Leave removes every occurrence of userID. An empty call stays active.
func (vs *VideoCallStore) Leave(_ context.Context, callID, userID int64) error {
	vs.s.mu.Lock()
	defer vs.s.mu.Unlock()

	vc, ok := vs.s.videoCalls.get(callID)
	if !ok {
		return nil
	}
	vc.Participants = slices.DeleteFunc(vc.Participants, func(id int64) bool {
		return id == userID
	})

	vs.s.logger.Debug("video call left", zap.Int64("call_id", callID), zap.Int64("user_id", userID))
	return nil
}

// End moves an active call to ended and stamps EndedAt. Ending an ended
// or unknown call changes nothing, so the first EndedAt is kept.
func (vs *VideoCallStore) End(_ context.Context, callID int64) error {
	vs.s.mu.Lock()
	defer vs.s.mu.Unlock()

	vc, ok := vs.s.videoCalls.get(callID)
	if !ok || vc.Status != models.CallStatusActive {
		return nil
	}
	endedAt := vs.s.now()
	vc.Status = models.CallStatusEnded
	vc.EndedAt = &endedAt

	vs.s.logger.Debug("video call ended", zap.Int64("call_id", callID), zap.Int64("channel_id", vc.ChannelID))
	return nil
}

// activeCall returns the first active call for channelID. Caller holds s.mu.
func (s *Store) activeCall(channelID int64) *models.VideoCall {
	var found *models.VideoCall
	s.videoCalls.each(func(vc *models.VideoCall) bool {
		if vc.ChannelID == channelID && vc.Status == models.CallStatusActive {
			found = vc
			return false
		}
		return true
	})
	return found
}

// insertCall stores a new active call and returns a copy. Caller holds s.mu for writing.
func (s *Store) insertCall(nv models.NewVideoCall) *models.VideoCall {
	vc := models.VideoCall{
		ID:           s.allocID(),
		ChannelID:    nv.ChannelID,
		HostUserID:   nv.HostUserID,
		Title:        nv.Title,
		Status:       models.CallStatusActive,
		Participants: []int64{nv.HostUserID},
		StartedAt:    s.now(),
	}
	s.videoCalls.put(vc.ID, &vc)

	s.logger.Debug("video call started",
		zap.Int64("call_id", vc.ID),
		zap.Int64("channel_id", vc.ChannelID),
		zap.Int64("host_user_id", vc.HostUserID),
	)

	out := cloneVideoCall(vc)
	return &out
}
