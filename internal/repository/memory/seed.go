package memory

import (
	"github.com/lalith-99/huddle/internal/models"
	"go.uber.org/zap"
)

// Seed is the initial content of a store. Rows keep the ids they carry;
// the counter resumes after the highest one.
type Seed struct {
	Users    []models.User
	Teams    []models.Team
	Channels []models.Channel
	Members  []models.TeamMember
	Messages []models.Message
}

func (s *Store) load(seed *Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range seed.Users {
		u := cloneUser(seed.Users[i])
		s.users.put(u.ID, &u)
		s.reserve(u.ID)
	}
	for i := range seed.Teams {
		t := cloneTeam(seed.Teams[i])
		s.teams.put(t.ID, &t)
		s.reserve(t.ID)
	}
	for i := range seed.Channels {
		ch := cloneChannel(seed.Channels[i])
		s.channels.put(ch.ID, &ch)
		s.reserve(ch.ID)
	}
	for i := range seed.Members {
		m := seed.Members[i]
		s.members.put(m.ID, &m)
		s.reserve(m.ID)
	}
	for i := range seed.Messages {
		msg := cloneMessage(seed.Messages[i])
		s.messages.put(msg.ID, &msg)
		s.reserve(msg.ID)
	}

	s.logger.Debug("store seeded",
		zap.Int("users", s.users.len()),
		zap.Int("teams", s.teams.len()),
		zap.Int("channels", s.channels.len()),
		zap.Int("members", s.members.len()),
		zap.Int("messages", s.messages.len()),
		zap.Int64("next_id", s.nextID),
	)
}
