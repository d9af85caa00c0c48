package memory

import (
	"context"
	"testing"

	"github.com/lalith-99/huddle/internal/models"
	"github.com/stretchr/testify/require"
)

func TestChatAndCallScenario(t *testing.T) {
	seed := &Seed{
		Users:    []models.User{{ID: 1, Username: "sarah", Email: "sarah@example.com", Status: models.StatusOnline}},
		Teams:    []models.Team{{ID: 1, Name: "Marketing", Color: models.DefaultTeamColor}},
		Channels: []models.Channel{{ID: 1, TeamID: 1, Name: "General", Type: models.ChannelTypeText}},
		Members:  []models.TeamMember{{ID: 1, TeamID: 1, UserID: 1, Role: models.RoleOwner}},
	}
	st := bootstrap(t, WithSeed(seed))
	ctx := context.Background()

	msg, err := st.messages.Create(ctx, models.NewMessage{ChannelID: 1, UserID: 1, Content: "hi"})
	require.NoError(t, err)
	require.NotZero(t, msg.ID)
	require.Equal(t, "hi", msg.Content)
	require.Empty(t, msg.Reactions)

	require.NoError(t, st.messages.AddReaction(ctx, msg.ID, "👍"))
	require.NoError(t, st.messages.AddReaction(ctx, msg.ID, "👍"))

	messages, err := st.messages.ListByChannel(ctx, 1, DefaultMessageLimit)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, []string{"👍", "👍"}, messages[0].Reactions)

	vc, err := st.calls.Create(ctx, models.NewVideoCall{ChannelID: 1, HostUserID: 1, Title: "Sync"})
	require.NoError(t, err)

	active, err := st.calls.GetActive(ctx, 1)
	require.NoError(t, err)
	require.Len(t, active.ParticipantUsers, 1)
	require.Equal(t, int64(1), active.ParticipantUsers[0].ID)

	require.NoError(t, st.calls.End(ctx, vc.ID))
	active, err = st.calls.GetActive(ctx, 1)
	require.NoError(t, err)
	require.Nil(t, active)
}
