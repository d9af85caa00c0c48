package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lalith-99/huddle/internal/models"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// tickingClock returns a clock that advances one second per call, so
// every timestamp the store assigns is strictly increasing.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	now := testEpoch
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

type stores struct {
	base     *Store
	users    *UserStore
	teams    *TeamStore
	channels *ChannelStore
	members  *MembershipStore
	messages *MessageStore
	calls    *VideoCallStore
}

func bootstrap(t *testing.T, opts ...Option) stores {
	t.Helper()

	opts = append([]Option{WithClock(tickingClock())}, opts...)
	s := NewStore(opts...)
	return stores{
		base:     s,
		users:    NewUserStore(s),
		teams:    NewTeamStore(s),
		channels: NewChannelStore(s),
		members:  NewMembershipStore(s),
		messages: NewMessageStore(s),
		calls:    NewVideoCallStore(s),
	}
}

// removeUser simulates a user vanishing, which no production path does.
func (st stores) removeUser(userID int64) {
	st.base.mu.Lock()
	defer st.base.mu.Unlock()
	delete(st.base.users.rows, userID)
}

func (st stores) mustUser(t *testing.T, email string) *models.User {
	t.Helper()
	u, err := st.users.Create(context.Background(), models.NewUser{
		Username:    email,
		DisplayName: email,
		Email:       email,
	})
	require.NoError(t, err)
	return u
}

func (st stores) mustTeam(t *testing.T, name string) *models.Team {
	t.Helper()
	team, err := st.teams.Create(context.Background(), models.NewTeam{Name: name})
	require.NoError(t, err)
	return team
}

func (st stores) mustChannel(t *testing.T, teamID int64, name string) *models.Channel {
	t.Helper()
	ch, err := st.channels.Create(context.Background(), models.NewChannel{TeamID: teamID, Name: name})
	require.NoError(t, err)
	return ch
}

func (st stores) mustMember(t *testing.T, teamID, userID int64) {
	t.Helper()
	_, err := st.members.AddMember(context.Background(), models.NewTeamMember{TeamID: teamID, UserID: userID})
	require.NoError(t, err)
}

func (st stores) mustMessage(t *testing.T, channelID, userID int64, content string) *models.MessageWithUser {
	t.Helper()
	m, err := st.messages.Create(context.Background(), models.NewMessage{
		ChannelID: channelID,
		UserID:    userID,
		Content:   content,
	})
	require.NoError(t, err)
	return m
}

func TestIDsUniqueAcrossTables(t *testing.T) {
	st := bootstrap(t)
	ctx := context.Background()

	seen := make(map[int64]bool)
	record := func(id int64) {
		require.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}

	for i := 0; i < 5; i++ {
		u := st.mustUser(t, "user"+string(rune('a'+i))+"@example.com")
		record(u.ID)
		team := st.mustTeam(t, "team")
		record(team.ID)
		ch := st.mustChannel(t, team.ID, "general")
		record(ch.ID)
		m, err := st.members.AddMember(ctx, models.NewTeamMember{TeamID: team.ID, UserID: u.ID})
		require.NoError(t, err)
		record(m.ID)
		msg := st.mustMessage(t, ch.ID, u.ID, "hi")
		record(msg.ID)
		vc, err := st.calls.Create(ctx, models.NewVideoCall{ChannelID: ch.ID, HostUserID: u.ID, Title: "sync"})
		require.NoError(t, err)
		record(vc.ID)
	}
	require.Len(t, seen, 30)
}

func TestIDsUniqueUnderConcurrency(t *testing.T) {
	st := bootstrap(t)

	const workers = 8
	const perWorker = 50

	ids := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				team, err := st.teams.Create(context.Background(), models.NewTeam{Name: "t"})
				if err != nil {
					t.Error(err)
					return
				}
				ids <- team.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		require.False(t, seen[id])
		seen[id] = true
	}
	require.Len(t, seen, workers*perWorker)
}

func TestSeedKeepsIDsAndCounterResumesAfterThem(t *testing.T) {
	seed := &Seed{
		Users: []models.User{{ID: 3, Email: "a@example.com", Status: models.StatusOnline}},
		Teams: []models.Team{{ID: 7, Name: "Ops"}},
	}
	st := bootstrap(t, WithSeed(seed))

	u, err := st.users.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, models.StatusOnline, u.Status)

	created := st.mustUser(t, "b@example.com")
	require.Equal(t, int64(8), created.ID)

	require.Equal(t, Stats{Users: 2, Teams: 1}, st.base.Stats())
}

func TestReturnedValuesAreCopies(t *testing.T) {
	st := bootstrap(t)
	ctx := context.Background()

	u := st.mustUser(t, "a@example.com")
	ch := st.mustChannel(t, 1, "general")
	msg := st.mustMessage(t, ch.ID, u.ID, "hello")
	require.NoError(t, st.messages.AddReaction(ctx, msg.ID, "👍"))

	got, err := st.messages.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	got.Reactions[0] = "mutated"
	got.User.DisplayName = "mutated"

	again, err := st.messages.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"👍"}, again.Reactions)
	require.Equal(t, "a@example.com", again.User.DisplayName)
}
