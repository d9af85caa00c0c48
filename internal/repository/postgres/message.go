package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lalith-99/huddle/internal/models"
)

type MessageStore struct {
	db Querier
}

func NewMessageStore(db Querier) *MessageStore {
	return &MessageStore{db: db}
}

// List returns every message. The attachment is stored flat as three
// nullable columns and comes back as a *FileAttachment when file_url is set.
func (s *MessageStore) List(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT id, channel_id, user_id, content, type,
		       file_url, file_name, file_size,
		       reply_to_id, reactions, created_at
		FROM messages
		ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	messages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Message, error) {
		var (
			m        models.Message
			fileURL  *string
			fileName *string
			fileSize *int64
		)
		if err := row.Scan(
			&m.ID,
			&m.ChannelID,
			&m.UserID,
			&m.Content,
			&m.Type,
			&fileURL,
			&fileName,
			&fileSize,
			&m.ReplyToID,
			&m.Reactions,
			&m.CreatedAt,
		); err != nil {
			return m, err
		}

		if fileURL != nil {
			m.File = &models.FileAttachment{URL: *fileURL}
			if fileName != nil {
				m.File.Name = *fileName
			}
			if fileSize != nil {
				m.File.Size = *fileSize
			}
		}
		return m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan messages: %w", err)
	}
	return messages, nil
}
