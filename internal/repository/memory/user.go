package memory

import (
	"context"

	"github.com/lalith-99/huddle/internal/models"
	"go.uber.org/zap"
)

type UserStore struct {
	s *Store
}

func NewUserStore(s *Store) *UserStore {
	return &UserStore{s: s}
}

func (us *UserStore) GetByID(_ context.Context, userID int64) (*models.User, error) {
	us.s.mu.RLock()
	defer us.s.mu.RUnlock()

	u, ok := us.s.users.get(userID)
	if !ok {
		return nil, nil
	}
	out := cloneUser(*u)
	return &out, nil
}

// GetByEmail is a linear scan; the first user in insertion order wins.
func (us *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	us.s.mu.RLock()
	defer us.s.mu.RUnlock()

	var found *models.User
	us.s.users.each(func(u *models.User) bool {
		if u.Email == email {
			out := cloneUser(*u)
			found = &out
			return false
		}
		return true
	})
	return found, nil
}

func (us *UserStore) Create(_ context.Context, nu models.NewUser) (*models.User, error) {
	role := nu.Role
	if role == "" {
		role = models.RoleMember
	}

	us.s.mu.Lock()
	defer us.s.mu.Unlock()

	u := models.User{
		ID:          us.s.allocID(),
		Username:    nu.Username,
		DisplayName: nu.DisplayName,
		Email:       nu.Email,
		Avatar:      cloneString(nu.Avatar),
		Status:      models.StatusOffline,
		Role:        role,
	}
	us.s.users.put(u.ID, &u)

	us.s.logger.Debug("user created", zap.Int64("user_id", u.ID), zap.String("email", u.Email))

	out := cloneUser(u)
	return &out, nil
}

// UpdateStatus stores status as given. Unknown users are ignored.
func (us *UserStore) UpdateStatus(_ context.Context, userID int64, status string) error {
	us.s.mu.Lock()
	defer us.s.mu.Unlock()

	u, ok := us.s.users.get(userID)
	if !ok {
		return nil
	}
	u.Status = status

	us.s.logger.Debug("user status updated", zap.Int64("user_id", userID), zap.String("status", status))
	return nil
}
