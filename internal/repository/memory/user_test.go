package memory

import (
	"context"
	"testing"

	"github.com/lalith-99/huddle/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDefaultsToOffline(t *testing.T) {
	st := bootstrap(t)

	u := st.mustUser(t, "sarah@example.com")
	require.Equal(t, models.StatusOffline, u.Status)
	require.Equal(t, models.RoleMember, u.Role)

	got, err := st.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestGetUserMissing(t *testing.T) {
	st := bootstrap(t)

	u, err := st.users.GetByID(context.Background(), 42)
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestGetUserByEmailFirstMatchWins(t *testing.T) {
	st := bootstrap(t)
	ctx := context.Background()

	first := st.mustUser(t, "dup@example.com")
	st.mustUser(t, "dup@example.com")

	got, err := st.users.GetByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)

	missing, err := st.users.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUpdateUserStatus(t *testing.T) {
	st := bootstrap(t)
	ctx := context.Background()

	u := st.mustUser(t, "mike@example.com")
	require.NoError(t, st.users.UpdateStatus(ctx, u.ID, models.StatusBusy))

	got, err := st.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusBusy, got.Status)

	// The store keeps whatever token it is given.
	require.NoError(t, st.users.UpdateStatus(ctx, u.ID, "in-a-meeting"))
	got, err = st.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "in-a-meeting", got.Status)
}

func TestUpdateStatusUnknownUserIsNoop(t *testing.T) {
	st := bootstrap(t)

	require.NoError(t, st.users.UpdateStatus(context.Background(), 99, models.StatusOnline))
	require.Equal(t, 0, st.base.Stats().Users)
}
