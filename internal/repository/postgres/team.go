package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lalith-99/huddle/internal/models"
)

type TeamStore struct {
	db Querier
}

func NewTeamStore(db Querier) *TeamStore {
	return &TeamStore{db: db}
}

func (s *TeamStore) List(ctx context.Context) ([]models.Team, error) {
	query := `
		SELECT id, name, description, avatar, color, created_at
		FROM teams
		ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	teams, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Team, error) {
		var t models.Team
		err := row.Scan(
			&t.ID,
			&t.Name,
			&t.Description,
			&t.Avatar,
			&t.Color,
			&t.CreatedAt,
		)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan teams: %w", err)
	}
	return teams, nil
}
