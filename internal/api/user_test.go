package api

import (
	"net/http"
	"testing"

	"github.com/lalith-99/huddle/internal/models"
	"github.com/stretchr/testify/require"
)

func TestGetMe(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/v1/users/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	me := decode[models.User](t, w)
	require.Equal(t, f.alice.ID, me.ID)
	require.Equal(t, models.StatusOffline, me.Status)
}

func TestGetMeUnknownCaller(t *testing.T) {
	f := newFixtureAs(t, 999, "")

	w := f.do(t, http.MethodGet, "/v1/users/me", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPatch, "/v1/users/me/status", map[string]string{"status": "busy"})
	require.Equal(t, http.StatusNoContent, w.Code)

	me := decode[models.User](t, f.do(t, http.MethodGet, "/v1/users/me", nil))
	require.Equal(t, models.StatusBusy, me.Status)

	for _, body := range []any{
		map[string]string{"status": "sleeping"},
		map[string]string{},
		nil,
	} {
		w := f.do(t, http.MethodPatch, "/v1/users/me/status", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "%v", body)
	}

	me = decode[models.User](t, f.do(t, http.MethodGet, "/v1/users/me", nil))
	require.Equal(t, models.StatusBusy, me.Status)
}
