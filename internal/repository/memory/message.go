package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/lalith-99/huddle/internal/models"
	"github.com/lalith-99/huddle/internal/repository"
	"go.uber.org/zap"
)

// DefaultMessageLimit is used by ListByChannel when limit is not positive.
const DefaultMessageLimit = 50

type MessageStore struct {
	s *Store
}

func NewMessageStore(s *Store) *MessageStore {
	return &MessageStore{s: s}
}

// GetByID returns nil when the message or its author is gone.
func (ms *MessageStore) GetByID(_ context.Context, messageID int64) (*models.MessageWithUser, error) {
	ms.s.mu.RLock()
	defer ms.s.mu.RUnlock()

	m, ok := ms.s.messages.get(messageID)
	if !ok {
		return nil, nil
	}
	out, ok := ms.s.resolveMessage(m, ms.s.replyDepth, nil)
	if !ok {
		return nil, nil
	}
	return &out, nil
}

// ListByChannel sorts the channel's messages by creation time (id breaks
// ties), keeps the last limit of them and resolves authors and replies.
//
// The window is cut before authors are resolved, so a message dropped for
// a missing author still takes up a slot.
func (ms *MessageStore) ListByChannel(_ context.Context, channelID int64, limit int) ([]models.MessageWithUser, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}

	ms.s.mu.RLock()
	defer ms.s.mu.RUnlock()

	var rows []*models.Message
	ms.s.messages.each(func(m *models.Message) bool {
		if m.ChannelID == channelID {
			rows = append(rows, m)
		}
		return true
	})

	slices.SortStableFunc(rows, func(a, b *models.Message) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}

	messages := make([]models.MessageWithUser, 0, len(rows))
	for _, m := range rows {
		out, ok := ms.s.resolveMessage(m, ms.s.replyDepth, nil)
		if !ok {
			continue
		}
		messages = append(messages, out)
	}
	return messages, nil
}

// Create checks the author before anything is written. If the author is
// unknown the message is not stored and no id is consumed.
func (ms *MessageStore) Create(_ context.Context, nm models.NewMessage) (*models.MessageWithUser, error) {
	kind := nm.Type
	if kind == "" {
		kind = models.MessageTypeText
	}

	ms.s.mu.Lock()
	defer ms.s.mu.Unlock()

	if _, ok := ms.s.users.get(nm.UserID); !ok {
		return nil, fmt.Errorf("create message in channel %d by user %d: %w", nm.ChannelID, nm.UserID, repository.ErrAuthorNotFound)
	}

	m := cloneMessage(models.Message{
		ID:        ms.s.allocID(),
		ChannelID: nm.ChannelID,
		UserID:    nm.UserID,
		Content:   nm.Content,
		Type:      kind,
		File:      nm.File,
		ReplyToID: nm.ReplyToID,
		CreatedAt: ms.s.now(),
	})
	ms.s.messages.put(m.ID, &m)

	ms.s.logger.Debug("message created",
		zap.Int64("message_id", m.ID),
		zap.Int64("channel_id", m.ChannelID),
		zap.Int64("user_id", m.UserID),
	)

	out, _ := ms.s.resolveMessage(&m, ms.s.replyDepth, nil)
	return &out, nil
}

// AddReaction appends token; the same token may be added any number of
// times. Unknown messages are ignored.
func (ms *MessageStore) AddReaction(_ context.Context, messageID int64, token string) error {
	ms.s.mu.Lock()
	defer ms.s.mu.Unlock()

	m, ok := ms.s.messages.get(messageID)
	if !ok {
		return nil
	}
	m.Reactions = append(m.Reactions, token)

	ms.s.logger.Debug("reaction added", zap.Int64("message_id", messageID), zap.String("reaction", token))
	return nil
}

// resolveMessage attaches the author and follows ReplyToID for up to
// depth hops. ok is false when the author is missing. A reply target
// that is missing, authorless, or already on the current chain resolves
// to no ReplyTo. Caller holds s.mu.
func (s *Store) resolveMessage(m *models.Message, depth int, chain map[int64]bool) (models.MessageWithUser, bool) {
	u, ok := s.users.get(m.UserID)
	if !ok {
		return models.MessageWithUser{}, false
	}
	out := models.MessageWithUser{
		Message: cloneMessage(*m),
		User:    cloneUser(*u),
	}

	if depth <= 0 || m.ReplyToID == nil {
		return out, true
	}
	if chain == nil {
		chain = make(map[int64]bool)
	}
	chain[m.ID] = true
	defer delete(chain, m.ID)

	target, ok := s.messages.get(*m.ReplyToID)
	if !ok || chain[target.ID] {
		return out, true
	}
	if reply, ok := s.resolveMessage(target, depth-1, chain); ok {
		out.ReplyTo = &reply
	}
	return out, true
}
