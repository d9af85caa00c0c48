package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lalith-99/huddle/internal/models"
	"github.com/lalith-99/huddle/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestDemo(t *testing.T) {
	s, err := Demo(now)
	require.NoError(t, err)

	assert.Len(t, s.Users, 4)
	assert.Len(t, s.Teams, 3)
	assert.Len(t, s.Channels, 3)
	assert.Len(t, s.Members, 4)
	require.Len(t, s.Messages, 3)

	file := s.Messages[1]
	assert.Equal(t, models.MessageTypeFile, file.Type)
	require.NotNil(t, file.File)
	assert.Equal(t, int64(2457600), file.File.Size)
	assert.Equal(t, now.Add(-15*time.Minute), file.CreatedAt)
	assert.Equal(t, []string{"👍"}, file.Reactions)
}

func TestDemoLoadsIntoStore(t *testing.T) {
	s, err := Demo(now)
	require.NoError(t, err)

	store := memory.NewStore(memory.WithSeed(s))
	ctx := context.Background()

	teams, err := memory.NewTeamStore(store).ListForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Marketing Team", teams[0].Name)
	assert.Equal(t, 4, teams[0].MemberCount)

	messages, err := memory.NewMessageStore(store).ListByChannel(ctx, 1, 50)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "Sarah Anderson", messages[0].User.DisplayName)
	assert.Len(t, messages[2].Reactions, 5)

	// New rows continue after the seeded ids.
	u, err := memory.NewUserStore(store).Create(ctx, models.NewUser{Email: "new@company.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)
}

func TestLoadDefaults(t *testing.T) {
	doc := `
users:
  - id: 9
    email: a@example.com
channels:
  - id: 2
    team_id: 1
    name: general
messages:
  - id: 3
    channel_id: 2
    user_id: 9
    content: hello
`
	s, err := Load(strings.NewReader(doc), now)
	require.NoError(t, err)

	assert.Equal(t, models.StatusOffline, s.Users[0].Status)
	assert.Equal(t, models.RoleMember, s.Users[0].Role)
	assert.Equal(t, models.ChannelTypeText, s.Channels[0].Type)
	assert.Equal(t, models.MessageTypeText, s.Messages[0].Type)
	assert.Equal(t, now, s.Messages[0].CreatedAt)
}

func TestLoadEmpty(t *testing.T) {
	s, err := Load(strings.NewReader(""), now)
	require.NoError(t, err)
	assert.Empty(t, s.Users)
}

func TestLoadRejectsBadFixtures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "duplicate id",
			doc:  "users:\n  - id: 1\n  - id: 1\n",
			want: "duplicate id 1",
		},
		{
			name: "missing id",
			doc:  "teams:\n  - name: nameless\n",
			want: "id must be positive",
		},
		{
			name: "unknown key",
			doc:  "users:\n  - id: 1\n    nickname: x\n",
			want: "decode seed",
		},
		{
			name: "bad age",
			doc:  "messages:\n  - id: 1\n    age: yesterday\n",
			want: "decode seed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc), now)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("teams:\n  - id: 4\n    name: Ops\n    age: 1h\n"), 0o600))

	s, err := LoadFile(path, now)
	require.NoError(t, err)
	require.Len(t, s.Teams, 1)
	assert.Equal(t, now.Add(-time.Hour), s.Teams[0].CreatedAt)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), now)
	require.Error(t, err)
}
