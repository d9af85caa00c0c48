package memory

import (
	"github.com/lalith-99/huddle/internal/models"
)

// Rows handed out of the store are copies. Nothing a caller does to a
// returned value can reach the tables.

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneUser(u models.User) models.User {
	u.Avatar = cloneString(u.Avatar)
	return u
}

func cloneTeam(t models.Team) models.Team {
	t.Description = cloneString(t.Description)
	t.Avatar = cloneString(t.Avatar)
	return t
}

func cloneChannel(ch models.Channel) models.Channel {
	ch.Description = cloneString(ch.Description)
	return ch
}

func cloneMessage(m models.Message) models.Message {
	if m.File != nil {
		f := *m.File
		m.File = &f
	}
	if m.ReplyToID != nil {
		id := *m.ReplyToID
		m.ReplyToID = &id
	}
	reactions := make([]string, len(m.Reactions))
	copy(reactions, m.Reactions)
	m.Reactions = reactions
	return m
}

func cloneVideoCall(vc models.VideoCall) models.VideoCall {
	participants := make([]int64, len(vc.Participants))
	copy(participants, vc.Participants)
	vc.Participants = participants
	if vc.EndedAt != nil {
		t := *vc.EndedAt
		vc.EndedAt = &t
	}
	return vc
}
