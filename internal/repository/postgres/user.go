package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lalith-99/huddle/internal/models"
)

type UserStore struct {
	db Querier
}

func NewUserStore(db Querier) *UserStore {
	return &UserStore{db: db}
}

// List returns every user ordered by id.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, username, display_name, email, avatar, status, role
		FROM users
		ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.User, error) {
		var u models.User
		err := row.Scan(
			&u.ID,
			&u.Username,
			&u.DisplayName,
			&u.Email,
			&u.Avatar,
			&u.Status,
			&u.Role,
		)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	return users, nil
}
