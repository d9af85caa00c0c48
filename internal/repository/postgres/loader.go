// Package postgres reads an initial workspace out of Postgres. The
// service itself never writes back; the database is only a seed source.
package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lalith-99/huddle/internal/repository/memory"
	"go.uber.org/zap"
)

// Schema creates the tables the loader reads.
//
//go:embed schema.sql
var Schema string

// Querier is satisfied by *pgxpool.Pool and *pgx.Conn.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Load reads every table into a memory.Seed. Rows keep their ids.
func Load(ctx context.Context, db Querier, logger *zap.Logger) (*memory.Seed, error) {
	var (
		seed memory.Seed
		err  error
	)

	if seed.Users, err = NewUserStore(db).List(ctx); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if seed.Teams, err = NewTeamStore(db).List(ctx); err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	if seed.Channels, err = NewChannelStore(db).List(ctx); err != nil {
		return nil, fmt.Errorf("load channels: %w", err)
	}
	if seed.Members, err = NewMembershipStore(db).List(ctx); err != nil {
		return nil, fmt.Errorf("load team members: %w", err)
	}
	if seed.Messages, err = NewMessageStore(db).List(ctx); err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	logger.Info("seed loaded from postgres",
		zap.Int("users", len(seed.Users)),
		zap.Int("teams", len(seed.Teams)),
		zap.Int("channels", len(seed.Channels)),
		zap.Int("members", len(seed.Members)),
		zap.Int("messages", len(seed.Messages)),
	)
	return &seed, nil
}
