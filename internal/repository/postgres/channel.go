package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lalith-99/huddle/internal/models"
)

type ChannelStore struct {
	db Querier
}

func NewChannelStore(db Querier) *ChannelStore {
	return &ChannelStore{db: db}
}

// List orders by id so each team's channels come back in creation order.
func (s *ChannelStore) List(ctx context.Context) ([]models.Channel, error) {
	query := `
		SELECT id, team_id, name, description, type, created_at
		FROM channels
		ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}

	channels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Channel, error) {
		var ch models.Channel
		err := row.Scan(
			&ch.ID,
			&ch.TeamID,
			&ch.Name,
			&ch.Description,
			&ch.Type,
			&ch.CreatedAt,
		)
		return ch, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan channels: %w", err)
	}
	return channels, nil
}
