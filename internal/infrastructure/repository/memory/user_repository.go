package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-registry/internal/domain/store"
	"github.com/riskibarqy/league-registry/internal/domain/user"
)

type UserRepository struct {
	scope
}

func (r *UserRepository) Create(_ context.Context, item user.User) error {
	return r.mutate(func(d *dataset) error {
		if _, ok := d.users[item.ID]; ok {
			return fmt.Errorf("%w: user id=%s", store.ErrDuplicate, item.ID)
		}
		for _, existing := range d.users {
			if strings.EqualFold(existing.Username, item.Username) {
				return fmt.Errorf("%w: username=%s", store.ErrDuplicate, item.Username)
			}
			if strings.EqualFold(existing.Email, item.Email) {
				return fmt.Errorf("%w: email=%s", store.ErrDuplicate, item.Email)
			}
		}
		d.users[item.ID] = item
		return nil
	})
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	var (
		item   user.User
		exists bool
	)
	r.view(func(d *dataset) {
		item, exists = d.users[userID]
	})
	return item, exists, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	return r.find(func(item user.User) bool { return strings.EqualFold(item.Username, username) })
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	return r.find(func(item user.User) bool { return strings.EqualFold(item.Email, email) })
}

func (r *UserRepository) ListByIDs(_ context.Context, userIDs []string) ([]user.User, error) {
	out := make([]user.User, 0, len(userIDs))
	r.view(func(d *dataset) {
		for id := range idSet(userIDs) {
			if item, ok := d.users[id]; ok {
				out = append(out, item)
			}
		}
	})
	return out, nil
}

func (r *UserRepository) find(match func(user.User) bool) (user.User, bool, error) {
	var (
		item   user.User
		exists bool
	)
	r.view(func(d *dataset) {
		for _, candidate := range d.users {
			if match(candidate) {
				item, exists = candidate, true
				return
			}
		}
	})
	return item, exists, nil
}
