package memory

import (
	"context"
	"testing"

	"github.com/lalith-99/huddle/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeamDefaultsColor(t *testing.T) {
	st := bootstrap(t)

	team := st.mustTeam(t, "Design")
	require.Equal(t, models.DefaultTeamColor, team.Color)
	require.False(t, team.CreatedAt.IsZero())
}

func TestListTeamsForUserFollowsMembership(t *testing.T) {
	st := bootstrap(t)
	ctx := context.Background()

	alice := st.mustUser(t, "alice@example.com")
	bob := st.mustUser(t, "bob@example.com")

	marketing := st.mustTeam(t, "Marketing")
	design := st.mustTeam(t, "Design")
	eng := st.mustTeam(t, "Engineering")

	general := st.mustChannel(t, marketing.ID, "General")
	launch := st.mustChannel(t, marketing.ID, "Launch")
	st.mustChannel(t, design.ID, "Creative Hub")
	st.mustChannel(t, eng.ID, "Development")

	// Design first, then Marketing: the result follows membership order.
	st.mustMember(t, design.ID, alice.ID)
	st.mustMember(t, marketing.ID, alice.ID)
	st.mustMember(t, marketing.ID, bob.ID)
	st.mustMember(t, eng.ID, bob.ID)

	teams, err := st.teams.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, design.ID, teams[0].ID)
	assert.Equal(t, 1, teams[0].MemberCount)
	assert.Len(t, teams[0].Channels, 1)

	assert.Equal(t, marketing.ID, teams[1].ID)
	assert.Equal(t, 2, teams[1].MemberCount)
	assert.Equal(t, []models.Channel{*general, *launch}, teams[1].Channels)
}

func TestListTeamsForUserCollectsEachTeamOnce(t *testing.T) {
	st := bootstrap(t)

	u := st.mustUser(t, "alice@example.com")
	team := st.mustTeam(t, "Marketing")
	st.mustMember(t, team.ID, u.ID)
	st.mustMember(t, team.ID, u.ID)

	teams, err := st.teams.ListForUser(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	// Duplicate rows still count toward the member total.
	require.Equal(t, 2, teams[0].MemberCount)
}

func TestListTeamsForUserSkipsMissingTeam(t *testing.T) {
	st := bootstrap(t)

	u := st.mustUser(t, "alice@example.com")
	st.mustMember(t, 404, u.ID)

	teams, err := st.teams.ListForUser(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, teams)
	require.Empty(t, teams)
}

func TestChannelsForTeam(t *testing.T) {
	st := bootstrap(t)
	ctx := context.Background()

	team := st.mustTeam(t, "Marketing")
	a := st.mustChannel(t, team.ID, "General")
	st.mustChannel(t, team.ID+100, "Elsewhere")
	b := st.mustChannel(t, team.ID, "Launch")

	channels, err := st.channels.ListByTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Equal(t, []models.Channel{*a, *b}, channels)
	require.Equal(t, models.ChannelTypeText, channels[0].Type)

	none, err := st.channels.ListByTeam(ctx, 999)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)

	missing, err := st.channels.GetByID(ctx, 999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestTeamMembers(t *testing.T) {
	st := bootstrap(t)
	ctx := context.Background()

	team := st.mustTeam(t, "Marketing")
	alice := st.mustUser(t, "alice@example.com")
	bob := st.mustUser(t, "bob@example.com")
	st.mustMember(t, team.ID, alice.ID)
	st.mustMember(t, team.ID, bob.ID)

	ok, err := st.members.IsMember(ctx, team.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.members.IsMember(ctx, team.ID+1, alice.ID)
	require.NoError(t, err)
	require.False(t, ok)

	st.removeUser(bob.ID)

	members, err := st.members.ListMembers(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, alice.ID, members[0].User.ID)
	require.Equal(t, models.RoleMember, members[0].Role)
}
