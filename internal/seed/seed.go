// Package seed turns YAML fixtures into the initial content of a
// memory.Store.
//
// Timestamps are not written in fixtures. Each row may carry an "age"
// (a Go duration such as "15m") and gets now-age as its creation time,
// so a fixture looks fresh whenever the process starts.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lalith-99/huddle/internal/models"
	"github.com/lalith-99/huddle/internal/repository/memory"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoFixture []byte

type fixture struct {
	Users    []userRow    `yaml:"users"`
	Teams    []teamRow    `yaml:"teams"`
	Channels []channelRow `yaml:"channels"`
	Members  []memberRow  `yaml:"members"`
	Messages []messageRow `yaml:"messages"`
}

type userRow struct {
	ID          int64   `yaml:"id"`
	Username    string  `yaml:"username"`
	DisplayName string  `yaml:"display_name"`
	Email       string  `yaml:"email"`
	Avatar      *string `yaml:"avatar"`
	Status      string  `yaml:"status"`
	Role        string  `yaml:"role"`
}

type teamRow struct {
	ID          int64         `yaml:"id"`
	Name        string        `yaml:"name"`
	Description *string       `yaml:"description"`
	Avatar      *string       `yaml:"avatar"`
	Color       string        `yaml:"color"`
	Age         time.Duration `yaml:"age"`
}

type channelRow struct {
	ID          int64         `yaml:"id"`
	TeamID      int64         `yaml:"team_id"`
	Name        string        `yaml:"name"`
	Description *string       `yaml:"description"`
	Type        string        `yaml:"type"`
	Age         time.Duration `yaml:"age"`
}

type memberRow struct {
	ID     int64         `yaml:"id"`
	TeamID int64         `yaml:"team_id"`
	UserID int64         `yaml:"user_id"`
	Role   string        `yaml:"role"`
	Age    time.Duration `yaml:"age"`
}

type fileRow struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
	Size int64  `yaml:"size"`
}

type messageRow struct {
	ID        int64         `yaml:"id"`
	ChannelID int64         `yaml:"channel_id"`
	UserID    int64         `yaml:"user_id"`
	Content   string        `yaml:"content"`
	Type      string        `yaml:"type"`
	File      *fileRow      `yaml:"file"`
	ReplyToID *int64        `yaml:"reply_to_id"`
	Reactions []string      `yaml:"reactions"`
	Age       time.Duration `yaml:"age"`
}

// Demo returns the built-in demo workspace.
func Demo(now time.Time) (*memory.Seed, error) {
	return Load(bytes.NewReader(demoFixture), now)
}

// LoadFile reads a fixture from disk.
func LoadFile(path string, now time.Time) (*memory.Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return Load(f, now)
}

// Load decodes a YAML fixture. Ids must be positive and unique within
// their kind; unknown keys are rejected so typos do not go unnoticed.
func Load(r io.Reader, now time.Time) (*memory.Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx fixture
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := fx.validate(); err != nil {
		return nil, err
	}
	return fx.toSeed(now), nil
}

func (fx *fixture) validate() error {
	if err := checkIDs("users", fx.Users, func(r userRow) int64 { return r.ID }); err != nil {
		return err
	}
	if err := checkIDs("teams", fx.Teams, func(r teamRow) int64 { return r.ID }); err != nil {
		return err
	}
	if err := checkIDs("channels", fx.Channels, func(r channelRow) int64 { return r.ID }); err != nil {
		return err
	}
	if err := checkIDs("members", fx.Members, func(r memberRow) int64 { return r.ID }); err != nil {
		return err
	}
	return checkIDs("messages", fx.Messages, func(r messageRow) int64 { return r.ID })
}

func checkIDs[T any](kind string, rows []T, id func(T) int64) error {
	seen := make(map[int64]bool, len(rows))
	for _, row := range rows {
		v := id(row)
		if v <= 0 {
			return fmt.Errorf("seed %s: id must be positive, got %d", kind, v)
		}
		if seen[v] {
			return fmt.Errorf("seed %s: duplicate id %d", kind, v)
		}
		seen[v] = true
	}
	return nil
}

func (fx *fixture) toSeed(now time.Time) *memory.Seed {
	s := &memory.Seed{}

	for _, u := range fx.Users {
		s.Users = append(s.Users, models.User{
			ID:          u.ID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			Email:       u.Email,
			Avatar:      u.Avatar,
			Status:      orDefault(u.Status, models.StatusOffline),
			Role:        orDefault(u.Role, models.RoleMember),
		})
	}
	for _, t := range fx.Teams {
		s.Teams = append(s.Teams, models.Team{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Avatar:      t.Avatar,
			Color:       orDefault(t.Color, models.DefaultTeamColor),
			CreatedAt:   now.Add(-t.Age),
		})
	}
	for _, ch := range fx.Channels {
		s.Channels = append(s.Channels, models.Channel{
			ID:          ch.ID,
			TeamID:      ch.TeamID,
			Name:        ch.Name,
			Description: ch.Description,
			Type:        orDefault(ch.Type, models.ChannelTypeText),
			CreatedAt:   now.Add(-ch.Age),
		})
	}
	for _, m := range fx.Members {
		s.Members = append(s.Members, models.TeamMember{
			ID:       m.ID,
			TeamID:   m.TeamID,
			UserID:   m.UserID,
			Role:     orDefault(m.Role, models.RoleMember),
			JoinedAt: now.Add(-m.Age),
		})
	}
	for _, m := range fx.Messages {
		msg := models.Message{
			ID:        m.ID,
			ChannelID: m.ChannelID,
			UserID:    m.UserID,
			Content:   m.Content,
			Type:      orDefault(m.Type, models.MessageTypeText),
			ReplyToID: m.ReplyToID,
			Reactions: m.Reactions,
			CreatedAt: now.Add(-m.Age),
		}
		if m.File != nil {
			msg.File = &models.FileAttachment{URL: m.File.URL, Name: m.File.Name, Size: m.File.Size}
		}
		s.Messages = append(s.Messages, msg)
	}
	return s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
