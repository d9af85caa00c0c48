package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lalith-99/huddle/internal/models"
)

type MembershipStore struct {
	db Querier
}

func NewMembershipStore(db Querier) *MembershipStore {
	return &MembershipStore{db: db}
}

// List returns every team_members row. Membership order decides the
// order of a user's team list, so rows are ordered by id.
func (s *MembershipStore) List(ctx context.Context) ([]models.TeamMember, error) {
	query := `
		SELECT id, team_id, user_id, role, joined_at
		FROM team_members
		ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	members, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TeamMember, error) {
		var m models.TeamMember
		err := row.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.JoinedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan members: %w", err)
	}
	return members, nil
}
